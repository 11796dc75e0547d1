package service

import (
	"context"
	"strings"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/password"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// CredentialStore is the single write path for credential records. Every
// password that reaches the repository has been hashed here, exactly once;
// no caller ever hands plaintext to persistence.
type CredentialStore struct {
	repo   ports.UserRepository
	hasher *password.Hasher
}

func NewCredentialStore(repo ports.UserRepository, hasher *password.Hasher) *CredentialStore {
	return &CredentialStore{repo: repo, hasher: hasher}
}

// NormalizeEmail lowercases and trims an address; email matching is
// case-insensitive throughout.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create hashes plaintext and persists a new active user.
func (s *CredentialStore) Create(ctx context.Context, name, email, plaintext, role string) (*domain.User, error) {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// SetPassword re-hashes and persists a new password, clearing any pending
// reset token so it cannot be replayed.
func (s *CredentialStore) SetPassword(ctx context.Context, user *domain.User, plaintext string) error {
	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = ""
	user.ResetTokenExpiry = time.Time{}
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

// VerifyPassword reports whether plaintext matches the stored hash.
func (s *CredentialStore) VerifyPassword(user *domain.User, plaintext string) bool {
	return s.hasher.Verify(plaintext, user.PasswordHash)
}

func (s *CredentialStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, NormalizeEmail(email))
}

func (s *CredentialStore) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CredentialStore) FindByResetToken(ctx context.Context, email, resetToken string) (*domain.User, error) {
	return s.repo.FindByResetToken(ctx, NormalizeEmail(email), resetToken)
}

func (s *CredentialStore) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}
