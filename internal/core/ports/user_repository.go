package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// UserRepository persists credential records. Email lookups are
// case-insensitive; uniqueness of email is enforced by the store and
// surfaces as domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByResetToken matches email AND token AND an unexpired expiry;
	// anything else is domain.ErrUserNotFound.
	FindByResetToken(ctx context.Context, email, resetToken string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
