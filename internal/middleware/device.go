package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/queue"
)

// FingerprintHeader is the request header carrying the client-computed
// device fingerprint. The value is opaque to the server and used only as
// an allow-list lookup key.
const FingerprintHeader = "X-Device-Fingerprint"

// DeviceStore is the slice of the device repository the guard needs.
// Implementations return repository.ErrNotFound when no device row
// matches the fingerprint.
type DeviceStore interface {
	GetByFingerprint(ctx context.Context, fingerprint string) (model.AuthorizedDevice, error)
	TouchAccess(ctx context.Context, fingerprint string) error
}

// ActivityRecorder receives fire-and-forget audit events. Implemented by
// service.ActivityRecorder.
type ActivityRecorder interface {
	Record(e queue.ActivityEvent)
}

// DeviceGuard returns the allow-list middleware that runs before any
// identity or permission logic. A request is allowed through only when
// its fingerprint matches an active authorized_devices row whose IP
// constraint is unset or equal to the caller IP. The exempt set names
// route paths (login and the identity self-check) that bypass the guard
// entirely so a new device can still authenticate and render the
// "contact administrator" screen with the user's own details.
//
// Denials answer 403 with error code "device_not_authorized", distinct
// from the 401 "unauthenticated" of the JWT guard, and are audited with
// the offending fingerprint and IP. Neither the audit write nor the
// last-access update can fail the request: the first is handed to the
// async recorder, the second runs in its own goroutine with a fresh
// context.
func DeviceGuard(store DeviceStore, rec ActivityRecorder, exempt ...string) echo.MiddlewareFunc {
	skip := make(map[string]bool, len(exempt))
	for _, p := range exempt {
		skip[p] = true
	}

	deny := func(c echo.Context, msg string) error {
		return c.JSON(http.StatusForbidden, echo.Map{
			"error":   "device_not_authorized",
			"message": msg,
		})
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skip[c.Path()] {
				return next(c)
			}

			fp := c.Request().Header.Get(FingerprintHeader)
			ip := c.RealIP()
			if fp == "" {
				audit(rec, c, "Unauthorized device access attempt",
					fmt.Sprintf("Missing device fingerprint from IP: %s", ip))
				return deny(c, "device fingerprint required; contact administrator to authorize this device")
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			dev, err := store.GetByFingerprint(ctx, fp)
			if err != nil || !dev.IsActive || (dev.IPAddress != nil && *dev.IPAddress != ip) {
				audit(rec, c, "Unauthorized device access attempt",
					fmt.Sprintf("Unauthorized device: %s from IP: %s", fp, ip))
				return deny(c, "this device is not authorized to access the admin panel; contact administrator")
			}

			// Best effort: refresh last_access without holding up the request.
			go func() {
				tctx, tcancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer tcancel()
				if err := store.TouchAccess(tctx, fp); err != nil {
					c.Logger().Warnf("device guard: touch access failed for %s: %v", fp, err)
				}
			}()

			return next(c)
		}
	}
}

func audit(rec ActivityRecorder, c echo.Context, action, description string) {
	if rec == nil {
		return
	}
	ip := c.RealIP()
	ua := c.Request().UserAgent()
	rec.Record(queue.ActivityEvent{
		ActivityType: "security",
		Action:       action,
		Description:  description,
		Severity:     model.SeverityWarning,
		IPAddress:    &ip,
		UserAgent:    &ua,
	})
}
