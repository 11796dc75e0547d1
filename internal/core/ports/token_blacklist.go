package ports

import (
	"context"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// TokenBlacklist records revoked tokens until their natural expiry. Entries
// past ExpiresAt are garbage collected by the store; lazy collection must
// never hide a not-yet-expired revocation.
type TokenBlacklist interface {
	Revoke(ctx context.Context, token, userID string, expiresAt time.Time, reason domain.RevocationReason) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
