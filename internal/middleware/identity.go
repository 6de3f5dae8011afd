package middleware

// identity.go holds small helpers shared across middleware files for
// reading the authenticated identity out of the Echo context. The JWTAuth
// middleware is the only writer of these keys.

import "github.com/labstack/echo/v4"

// actorID returns the authenticated user ID, or 0 when the request has
// not passed JWTAuth (e.g. on public routes).
func actorID(c echo.Context) uint64 {
	if v, ok := c.Get("user_id").(uint64); ok {
		return v
	}
	return 0
}

// actorRole returns the authenticated user's role claim, or "" when
// unauthenticated.
func actorRole(c echo.Context) string {
	if v, ok := c.Get("role").(string); ok {
		return v
	}
	return ""
}
