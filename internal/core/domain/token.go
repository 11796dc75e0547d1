package domain

import (
	"errors"
	"time"
)

// RevocationReason explains why a token was blacklisted before its natural expiry.
type RevocationReason string

const (
	RevokedLogout         RevocationReason = "logout"
	RevokedPasswordChange RevocationReason = "password_change"
	RevokedSecurityBreach RevocationReason = "security_breach"
)

var ErrNoToken = errors.New("no token provided")
var ErrMalformedToken = errors.New("malformed authorization token")
var ErrTokenInvalid = errors.New("token signature is invalid")
var ErrTokenExpired = errors.New("token has expired")
var ErrTokenRevoked = errors.New("token has been revoked")
var ErrSessionSuperseded = errors.New("session superseded by a newer login")

// BlacklistEntry records a revoked token. ExpiresAt mirrors the token's own
// expiry so the entry never outlives the token it shadows.
type BlacklistEntry struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	Reason    RevocationReason
	CreatedAt time.Time
}

// Session tracks the most recently issued token for a user. Held in volatile
// memory (or Redis); losing it fails open, it never locks users out.
type Session struct {
	UserID     string
	Token      string
	CreatedAt  time.Time
	LastActive time.Time
}
