package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
	"github.com/bookhaven/bookstore-api/internal/core/token"
)

// AuthService implements registration, login, logout, profile management and
// the password-reset flow on top of the credential store, token issuer,
// blacklist and session registry.
type AuthService struct {
	store     *CredentialStore
	issuer    *token.Issuer
	blacklist ports.TokenBlacklist
	sessions  ports.SessionRegistry
	mailer    ports.Mailer
	log       zerolog.Logger

	frontendURL string
	resetTTL    time.Duration
}

func NewAuthService(
	store *CredentialStore,
	issuer *token.Issuer,
	blacklist ports.TokenBlacklist,
	sessions ports.SessionRegistry,
	mailer ports.Mailer,
	log zerolog.Logger,
	frontendURL string,
	resetTTL time.Duration,
) *AuthService {
	if resetTTL <= 0 {
		resetTTL = time.Hour
	}
	return &AuthService{
		store:       store,
		issuer:      issuer,
		blacklist:   blacklist,
		sessions:    sessions,
		mailer:      mailer,
		log:         log,
		frontendURL: frontendURL,
		resetTTL:    resetTTL,
	}
}

// Register creates a new account and logs it in. The requested role is
// ignored: accounts always start as client, so the payload can never
// escalate privileges.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	user, err := s.store.Create(ctx, in.Name, in.Email, in.Password, domain.RoleClient)
	if err != nil {
		return nil, err
	}
	return s.startSession(ctx, user)
}

// Login verifies credentials and mints a token. Lookup failures and password
// mismatches both surface as ErrInvalidCredentials so the response does not
// reveal which part failed.
func (s *AuthService) Login(ctx context.Context, email, pass string) (*ports.AuthResult, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDeactivated
	}
	if !s.store.VerifyPassword(user, pass) {
		return nil, domain.ErrInvalidCredentials
	}
	return s.startSession(ctx, user)
}

// startSession issues a token and records it as the user's only current
// session, superseding any earlier login. The registry write happens before
// the token is returned so later requests observe the new session.
func (s *AuthService) startSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	signed, _, err := s.issuer.Issue(user)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.CreateSession(ctx, user.ID, signed); err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	return &ports.AuthResult{Token: signed, User: user}, nil
}

// Logout removes the session entry and blacklists the presented token until
// its natural expiry, so it is rejected even though its signature stays valid.
func (s *AuthService) Logout(ctx context.Context, rawToken, userID string) error {
	if err := s.sessions.RemoveSession(ctx, userID); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("remove session failed")
	}

	expiresAt, err := s.issuer.Expiry(rawToken)
	if err != nil {
		return err
	}
	if !expiresAt.After(time.Now()) {
		// Already expired; nothing to blacklist.
		return nil
	}
	return s.blacklist.Revoke(ctx, rawToken, userID, expiresAt, domain.RevokedLogout)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.FindByID(ctx, userID)
}

// UpdateProfile changes name and/or email. A requested email that belongs to
// another account is a conflict.
func (s *AuthService) UpdateProfile(ctx context.Context, in ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.store.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && NormalizeEmail(in.Email) != user.Email {
		existing, err := s.store.FindByEmail(ctx, in.Email)
		if err == nil && existing.ID != user.ID {
			return nil, domain.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		user.Email = NormalizeEmail(in.Email)
	}
	if in.Name != "" {
		user.Name = in.Name
	}

	if err := s.store.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password, requires the new one to
// differ, and revokes the presented token so older sessions cannot continue
// on the stale credential.
func (s *AuthService) ChangePassword(ctx context.Context, in ports.ChangePasswordInput) error {
	user, err := s.store.FindByID(ctx, in.UserID)
	if err != nil {
		return err
	}
	if !s.store.VerifyPassword(user, in.CurrentPassword) {
		return domain.ErrInvalidCredentials
	}
	if in.NewPassword == in.CurrentPassword {
		return domain.ErrSamePassword
	}

	if err := s.store.SetPassword(ctx, user, in.NewPassword); err != nil {
		return err
	}

	if in.RawToken != "" {
		if err := s.sessions.RemoveSession(ctx, user.ID); err != nil {
			s.log.Warn().Err(err).Str("user_id", user.ID).Msg("remove session failed")
		}
		if expiresAt, err := s.issuer.Expiry(in.RawToken); err == nil && expiresAt.After(time.Now()) {
			if err := s.blacklist.Revoke(ctx, in.RawToken, user.ID, expiresAt, domain.RevokedPasswordChange); err != nil {
				s.log.Warn().Err(err).Str("user_id", user.ID).Msg("blacklist token after password change failed")
			}
		}
	}
	return nil
}
