package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's claims into the request context. The provided
// secret must match the one used when issuing tokens. Handlers behind
// this middleware can read `c.Get("user_id")` (uint64), `c.Get("username")`
// and `c.Get("role")` (string).
//
// Authentication failures always answer 401 with error code
// "unauthenticated" so the client knows to show the login prompt; this is
// deliberately distinct from the device guard's 403.
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// A valid header starts with "Bearer " followed by the JWT.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated", "message": "access token required"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret. Reject tokens signed with a
			// different algorithm.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated", "message": "invalid or expired token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated", "message": "invalid claims"})
			}

			// JWT numbers decode as float64; normalize the subject to uint64
			// so downstream code has a single type to deal with.
			var uid uint64
			if sub, ok := claims["sub"].(float64); ok {
				uid = uint64(sub)
			}
			if uid == 0 {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated", "message": "invalid claims"})
			}
			c.Set("user_id", uid)
			if v, ok := claims["username"].(string); ok {
				c.Set("username", v)
			}
			if v, ok := claims["role"].(string); ok {
				c.Set("role", v)
			}
			return next(c)
		}
	}
}
