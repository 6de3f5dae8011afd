package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type fakePermStore struct {
	grants map[string]model.Permission // keyed by resource, single user
}

func (f *fakePermStore) Get(_ context.Context, _ uint64, resource string) (model.Permission, error) {
	g, ok := f.grants[resource]
	if !ok {
		return model.Permission{}, repository.ErrNotFound
	}
	return g, nil
}

func permRequest(t *testing.T, store *fakePermStore, resource string, action model.Action, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	mw := RequirePermission(store, resource, action)
	h := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }

	e.GET("/x", h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if authed {
				c.Set("user_id", uint64(7))
			}
			return mw(next)(c)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestRequirePermissionNoIdentity(t *testing.T) {
	store := &fakePermStore{grants: map[string]model.Permission{}}
	w := permRequest(t, store, model.ResourceContent, model.ActionRead, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermissionMissingGrantDeniesEveryAction(t *testing.T) {
	store := &fakePermStore{grants: map[string]model.Permission{}}
	for _, action := range []model.Action{model.ActionRead, model.ActionWrite, model.ActionCreate, model.ActionDelete} {
		w := permRequest(t, store, model.ResourceContent, action, true)
		assert.Equal(t, http.StatusForbidden, w.Code, action)
		assert.JSONEq(t, `{"error":"forbidden"}`, w.Body.String(), action)
	}
}

func TestRequirePermissionPartialGrant(t *testing.T) {
	store := &fakePermStore{grants: map[string]model.Permission{
		model.ResourceBlog: {Resource: model.ResourceBlog, CanRead: true, CanWrite: true},
	}}

	w := permRequest(t, store, model.ResourceBlog, model.ActionRead, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = permRequest(t, store, model.ResourceBlog, model.ActionWrite, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = permRequest(t, store, model.ResourceBlog, model.ActionCreate, true)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = permRequest(t, store, model.ResourceBlog, model.ActionDelete, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

// The denial body never names the resource or action that was checked.
func TestRequirePermissionDenialIsGeneric(t *testing.T) {
	store := &fakePermStore{grants: map[string]model.Permission{}}
	w := permRequest(t, store, model.ResourceSettings, model.ActionDelete, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), model.ResourceSettings)
	assert.NotContains(t, w.Body.String(), "delete")
}
