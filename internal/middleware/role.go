package middleware // middleware provides shared request processing for handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/auth"
)

// RequireMinRole returns a middleware that enforces a minimum privilege
// level on the authenticated user's role claim, using the central role
// hierarchy (viewer < editor < admin < superuser). It assumes JWTAuth has
// already stored the role in the context. Requests whose role is missing,
// unknown or below the threshold are rejected with a 403 carrying a
// specific reason; the device-management routes use this with
// auth.RoleSuperuser on top of their regular permission checks.
func RequireMinRole(threshold string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !auth.HasAtLeastPrivilege(actorRole(c), threshold) {
				return c.JSON(http.StatusForbidden, echo.Map{
					"error":   "forbidden",
					"message": "requires " + threshold + " privileges",
				})
			}
			return next(c)
		}
	}
}
