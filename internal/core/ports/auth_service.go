package ports

import (
	"context"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// RegisterInput carries a registration request. Role is advisory: admin and
// author collapse to client server-side, so the payload can never escalate
// privileges.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type UpdateProfileInput struct {
	UserID string
	Name   string
	Email  string
}

// ChangePasswordInput carries a password change. RawToken is the bearer
// token of the requesting session; when present it is revoked with reason
// password_change.
type ChangePasswordInput struct {
	UserID          string
	CurrentPassword string
	NewPassword     string
	RawToken        string
}

type ResetPasswordInput struct {
	Email       string
	Token       string
	NewPassword string
}

// AuthResult is returned by flows that mint a token.
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Logout blacklists the presented token and drops the session entry.
	Logout(ctx context.Context, rawToken, userID string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, in UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, in ChangePasswordInput) error
	// RequestPasswordReset never reveals whether the email exists.
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, in ResetPasswordInput) error
}

// AuthGate admits or rejects a raw bearer token, resolving it to a fresh
// identity on success.
type AuthGate interface {
	Admit(ctx context.Context, rawToken string) (*domain.Identity, error)
}
