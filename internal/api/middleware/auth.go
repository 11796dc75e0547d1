package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/metrics"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
	"github.com/bookhaven/bookstore-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
	CtxName   = "name"
	CtxToken  = "raw_token"
)

// Auth extracts the bearer token, runs it through the gate, and injects the
// resolved identity into the request context. Token sources in priority
// order: Authorization header, "token" cookie, "token" body field.
func Auth(gate ports.AuthGate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractToken(c)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			identity, err := gate.Admit(c.Request().Context(), raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)
			c.Set(CtxName, identity.Name)
			c.Set(CtxToken, raw)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
			return "", domain.ErrMalformedToken
		}
		return parts[1], nil
	}

	if cookie, err := c.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	// FormValue only parses form-encoded bodies; it leaves JSON untouched.
	if token := c.FormValue("token"); token != "" {
		return token, nil
	}

	return "", domain.ErrNoToken
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoToken):
		return "no_token"
	case errors.Is(err, domain.ErrMalformedToken):
		return "bad_format"
	case errors.Is(err, domain.ErrTokenRevoked):
		return "revoked"
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired"
	case errors.Is(err, domain.ErrTokenInvalid):
		return "invalid_signature"
	case errors.Is(err, domain.ErrSessionSuperseded):
		return "session_superseded"
	case errors.Is(err, domain.ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, domain.ErrAccountDeactivated):
		return "deactivated"
	}
	return "error"
}
