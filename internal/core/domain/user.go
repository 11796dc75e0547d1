package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleAuthor = "author"
	RoleClient = "client"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrAccountDeactivated = errors.New("account is deactivated")
var ErrSamePassword = errors.New("new password must differ from current password")
var ErrResetTokenInvalid = errors.New("invalid or expired reset token")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the known user roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleAuthor, RoleClient:
		return true
	}
	return false
}

// User is the credential record. PasswordHash is never the plaintext; the
// credential store hashes on every write of the password field.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Role             string    `json:"role"`
	IsActive         bool      `json:"is_active"`
	ResetToken       string    `json:"-"`
	ResetTokenExpiry time.Time `json:"-"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasValidResetToken reports whether the record carries a reset token that
// has not yet expired.
func (u *User) HasValidResetToken(now time.Time) bool {
	return u.ResetToken != "" && u.ResetTokenExpiry.After(now)
}

// Identity is the resolved caller attached to a request by the auth gate.
type Identity struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}
