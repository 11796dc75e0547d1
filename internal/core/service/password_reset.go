package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

const resetTokenBytes = 32

// RequestPasswordReset starts the reset flow. It behaves identically whether
// or not the email exists, so callers cannot enumerate accounts. Delivery
// failures are logged, not surfaced, for the same reason.
func (s *AuthService) RequestPasswordReset(ctx context.Context, rawEmail string) error {
	user, err := s.store.FindByEmail(ctx, rawEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}

	user.ResetToken = token
	user.ResetTokenExpiry = time.Now().UTC().Add(s.resetTTL)
	if err := s.store.Update(ctx, user); err != nil {
		return err
	}

	msg, err := passwordResetMessage(user.Email, user.Name, s.resetURL(user.Email, token))
	if err != nil {
		return err
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("password reset email delivery failed")
	}
	return nil
}

// ResetPassword consumes a reset token. The lookup matches email, token and
// an unexpired expiry together; the token is cleared on success so it works
// exactly once.
func (s *AuthService) ResetPassword(ctx context.Context, in ports.ResetPasswordInput) error {
	user, err := s.store.FindByResetToken(ctx, in.Email, in.Token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	if err := s.store.SetPassword(ctx, user, in.NewPassword); err != nil {
		return err
	}

	// Confirmation is best-effort; the reset already succeeded.
	msg, err := passwordResetConfirmation(user.Email, user.Name)
	if err == nil {
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.log.Warn().Err(err).Str("email", user.Email).Msg("reset confirmation email delivery failed")
		}
	}
	return nil
}

func (s *AuthService) resetURL(emailAddr, token string) string {
	return fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		s.frontendURL, token, url.QueryEscape(emailAddr))
}

func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
