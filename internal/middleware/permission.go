package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
)

// PermissionStore looks up the grant a user holds on a resource. It is
// implemented by repository.PermissionRepo; tests substitute fakes.
// Implementations return repository.ErrNotFound when no grant row exists.
type PermissionStore interface {
	Get(ctx context.Context, userID uint64, resource string) (model.Permission, error)
}

// RequirePermission returns a middleware that allows the request only if
// the authenticated user holds a grant on the given resource with the
// given action flag set. No grant row, a lookup error, or a false flag
// all deny: the guard fails closed. The 403 body is a deliberately
// generic "forbidden" so the response does not reveal which resource or
// action was checked beyond what the route itself implies.
func RequirePermission(store PermissionStore, resource string, action model.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := actorID(c)
			if uid == 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated", "message": "access token required"})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			grant, err := store.Get(ctx, uid, resource)
			if err != nil || !grant.Allows(action) {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
