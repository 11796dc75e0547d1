package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

const blacklistCollection = "blacklisted_tokens"

// BlacklistRepository stores revoked tokens. A TTL index on expires_at (see
// EnsureIndexes) garbage collects entries once the underlying token has
// expired on its own, so storage is bounded by not-yet-expired revocations.
type BlacklistRepository struct {
	coll *mongo.Collection
}

func NewBlacklistRepository(db *mongo.Database) *BlacklistRepository {
	return &BlacklistRepository{coll: db.Collection(blacklistCollection)}
}

type blacklistDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Token     string             `bson:"token"`
	UserID    string             `bson:"user_id"`
	ExpiresAt time.Time          `bson:"expires_at"`
	Reason    string             `bson:"reason"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *BlacklistRepository) Revoke(ctx context.Context, token, userID string, expiresAt time.Time, reason domain.RevocationReason) error {
	doc := blacklistDoc{
		Token:     token,
		UserID:    userID,
		ExpiresAt: expiresAt.UTC(),
		Reason:    string(reason),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		// Revoking the same token twice is not an error; the first entry
		// already does the job.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("insert blacklist entry: %w", err)
	}
	return nil
}

// IsRevoked filters on expires_at as well as the token so a lazily collected
// expired entry never shadows the answer for a live token, and an expired
// entry never reports a token revoked that plain verification would reject
// as expired anyway.
func (r *BlacklistRepository) IsRevoked(ctx context.Context, token string) (bool, error) {
	filter := bson.M{
		"token":      token,
		"expires_at": bson.M{"$gt": time.Now().UTC()},
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("blacklist lookup: %w", err)
	}
	return n > 0, nil
}
