package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/languagebaba/site-api/internal/utils"
)

const testSecret = "test-secret"

func jwtRequest(t *testing.T, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	var captured echo.Context
	e := echo.New()
	e.GET("/x", func(c echo.Context) error {
		captured = c
		return c.String(http.StatusOK, "ok")
	}, JWTAuth(testSecret))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w, captured
}

func TestJWTAuthMissingHeader(t *testing.T) {
	w, _ := jwtRequest(t, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthenticated")
}

func TestJWTAuthGarbageToken(t *testing.T) {
	w, _ := jwtRequest(t, "Bearer not.a.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 7, "amit", "admin", 1)
	require.NoError(t, err)

	w, _ := jwtRequest(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "amit", "admin", -1)
	require.NoError(t, err)

	w, _ := jwtRequest(t, "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidTokenSetsIdentity(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 7, "amit", "superuser", 1)
	require.NoError(t, err)

	w, c := jwtRequest(t, "Bearer "+tok.Token)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, uint64(7), c.Get("user_id"))
	assert.Equal(t, "amit", c.Get("username"))
	assert.Equal(t, "superuser", c.Get("role"))
}
