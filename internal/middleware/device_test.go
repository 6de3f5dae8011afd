package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/queue"
	"github.com/languagebaba/site-api/internal/repository"
)

type fakeDeviceStore struct {
	mu      sync.Mutex
	devices map[string]model.AuthorizedDevice
	touched []string
}

func (f *fakeDeviceStore) GetByFingerprint(_ context.Context, fp string) (model.AuthorizedDevice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.devices[fp]
	if !ok {
		return model.AuthorizedDevice{}, repository.ErrNotFound
	}
	return d, nil
}

func (f *fakeDeviceStore) TouchAccess(_ context.Context, fp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.touched = append(f.touched, fp)
	return nil
}

func (f *fakeDeviceStore) touchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.touched)
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []queue.ActivityEvent
}

func (f *fakeRecorder) Record(e queue.ActivityEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
}

func (f *fakeRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

func runDeviceGuard(t *testing.T, store *fakeDeviceStore, rec *fakeRecorder, fp, remote string, exempt ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.GET("/api/admin/users", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, DeviceGuard(store, rec, exempt...))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	if fp != "" {
		req.Header.Set(FingerprintHeader, fp)
	}
	if remote != "" {
		req.RemoteAddr = remote + ":12345"
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestDeviceGuardMissingFingerprint(t *testing.T) {
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "device_not_authorized")
	assert.Equal(t, 1, rec.count())
}

func TestDeviceGuardUnknownFingerprint(t *testing.T) {
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "abc123", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "device_not_authorized")
	assert.Equal(t, 1, rec.count())
}

func TestDeviceGuardInactiveDevice(t *testing.T) {
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{
		"abc123": {Fingerprint: "abc123", IsActive: false},
	}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "abc123", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeviceGuardAllowsAnyIPWhenUnset(t *testing.T) {
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{
		"abc123": {Fingerprint: "abc123", IsActive: true, IPAddress: nil},
	}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "abc123", "10.9.8.7")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, rec.count())
}

func TestDeviceGuardIPMismatch(t *testing.T) {
	pinned := "192.168.1.50"
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{
		"abc123": {Fingerprint: "abc123", IsActive: true, IPAddress: &pinned},
	}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "abc123", "10.0.0.1")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, 1, rec.count())
}

func TestDeviceGuardIPMatch(t *testing.T) {
	pinned := "192.168.1.50"
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{
		"abc123": {Fingerprint: "abc123", IsActive: true, IPAddress: &pinned},
	}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "abc123", "192.168.1.50")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeviceGuardExemptRoute(t *testing.T) {
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{}}
	rec := &fakeRecorder{}

	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, DeviceGuard(store, rec, "/api/auth/login"))

	// No fingerprint at all: still passes because the route is exempt.
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, rec.count())
}

func TestDeviceGuardTouchesLastAccess(t *testing.T) {
	store := &fakeDeviceStore{devices: map[string]model.AuthorizedDevice{
		"abc123": {Fingerprint: "abc123", IsActive: true},
	}}
	rec := &fakeRecorder{}

	w := runDeviceGuard(t, store, rec, "abc123", "")
	require.Equal(t, http.StatusOK, w.Code)

	// The touch runs in its own goroutine.
	assert.Eventually(t, func() bool { return store.touchCount() == 1 },
		time.Second, 10*time.Millisecond)
}
