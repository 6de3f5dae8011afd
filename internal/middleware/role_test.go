package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/languagebaba/site-api/internal/auth"
)

func minRoleRequest(t *testing.T, role string, threshold string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/x", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role != "" {
				c.Set("role", role)
			}
			return RequireMinRole(threshold)(next)(c)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRequireMinRole(t *testing.T) {
	assert.Equal(t, http.StatusOK, minRoleRequest(t, auth.RoleSuperuser, auth.RoleSuperuser).Code)
	assert.Equal(t, http.StatusForbidden, minRoleRequest(t, auth.RoleAdmin, auth.RoleSuperuser).Code)
	assert.Equal(t, http.StatusOK, minRoleRequest(t, auth.RoleAdmin, auth.RoleEditor).Code)
	assert.Equal(t, http.StatusForbidden, minRoleRequest(t, "", auth.RoleViewer).Code)
}
