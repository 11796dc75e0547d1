package service

import (
	"context"
	"fmt"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/token"
)

// AuthGate decides per request whether a bearer token is admitted. The
// checks run in a fixed order: blacklist, signature/expiry, session
// currency, then a fresh credential load so deactivations take effect
// immediately rather than at token expiry.
type AuthGate struct {
	issuer    *token.Issuer
	blacklist ports.TokenBlacklist
	sessions  ports.SessionRegistry
	users     ports.UserRepository
}

func NewAuthGate(issuer *token.Issuer, blacklist ports.TokenBlacklist, sessions ports.SessionRegistry, users ports.UserRepository) *AuthGate {
	return &AuthGate{issuer: issuer, blacklist: blacklist, sessions: sessions, users: users}
}

// Admit resolves rawToken to a fresh identity or rejects it with one of the
// domain token errors. A missing session entry does not block: after a
// restart the registry is empty and otherwise valid tokens must still pass.
// Only an explicit mismatch rejects.
func (g *AuthGate) Admit(ctx context.Context, rawToken string) (*domain.Identity, error) {
	revoked, err := g.blacklist.IsRevoked(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("blacklist check: %w", err)
	}
	if revoked {
		return nil, domain.ErrTokenRevoked
	}

	claims, err := g.issuer.Verify(rawToken)
	if err != nil {
		return nil, err
	}

	current, tracked, err := g.sessions.CurrentToken(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("session lookup: %w", err)
	}
	if tracked {
		if current != rawToken {
			return nil, domain.ErrSessionSuperseded
		}
		// Best-effort activity tracking; a failed touch never rejects.
		_ = g.sessions.Touch(ctx, claims.Subject)
	}

	user, err := g.users.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}

	return &domain.Identity{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, nil
}
