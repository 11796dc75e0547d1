package ports

import "context"

// SessionRegistry tracks at most one live token per user. It is a hardening
// layer over stateless tokens: a newer login supersedes the tracked entry,
// and the auth gate rejects older tokens on mismatch. An absent entry is
// non-blocking: after a restart the registry is empty and requests with
// otherwise valid tokens must still pass.
type SessionRegistry interface {
	// CreateSession records token as the current session for userID,
	// silently replacing any prior entry.
	CreateSession(ctx context.Context, userID, token string) error
	RemoveSession(ctx context.Context, userID string) error
	// CurrentToken returns the tracked token for userID. tracked is false
	// when no entry exists.
	CurrentToken(ctx context.Context, userID string) (token string, tracked bool, err error)
	// Touch refreshes the entry's last-active time, if one exists.
	Touch(ctx context.Context, userID string) error
}
