package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookhaven/bookstore-api/internal/api/middleware"
	"github.com/bookhaven/bookstore-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing user id means the middleware did not run on this route; that is a
// wiring bug surfaced as 401, never a panic.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	name, _ := c.Get(middleware.CtxName).(string)

	return domain.Identity{UserID: userID, Email: email, Role: role, Name: name}, nil
}

// ctxToken returns the raw bearer token the Auth middleware admitted.
func ctxToken(c echo.Context) string {
	token, _ := c.Get(middleware.CtxToken).(string)
	return token
}
