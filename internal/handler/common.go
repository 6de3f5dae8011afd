// Package handler contains the HTTP endpoint implementations. Handlers
// bind JSON, call into repositories with a bounded context, map
// repository errors onto status codes and hand audit events to the
// recorder. They never block on the recorder.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/queue"
	"github.com/languagebaba/site-api/internal/repository"
)

// dbTimeout bounds every repository call made from a handler.
const dbTimeout = 5 * time.Second

func dbCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// userID reads the authenticated user's ID placed by the JWT middleware.
func userID(c echo.Context) (uint64, bool) {
	id, ok := c.Get("user_id").(uint64)
	return id, ok
}

func userRole(c echo.Context) string {
	r, _ := c.Get("role").(string)
	return r
}

func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}

// pagination reads limit/offset query params with sane defaults.
func pagination(c echo.Context, defLimit, maxLimit int) (limit, offset int) {
	limit = defLimit
	if v, err := strconv.Atoi(c.QueryParam("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if v, err := strconv.Atoi(c.QueryParam("offset")); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}

// repoError maps the repository sentinels onto HTTP responses; anything
// unrecognized becomes a 500 with the supplied fallback message.
func repoError(c echo.Context, err error, fallback string) error {
	switch err {
	case repository.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case repository.ErrDuplicate:
		return c.JSON(http.StatusConflict, echo.Map{"error": "already exists"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}

// Recorder is the async audit sink handlers publish to. Satisfied by
// service.ActivityRecorder.
type Recorder interface {
	Record(e queue.ActivityEvent)
}

// record builds an audit event from the request context and hands it to
// the recorder. Nil recorders are tolerated so tests can skip auditing.
func record(rec Recorder, c echo.Context, activityType, action, description, severity string) {
	if rec == nil {
		return
	}
	ev := queue.ActivityEvent{
		ActivityType: activityType,
		Action:       action,
		Description:  description,
		Severity:     severity,
	}
	if id, ok := userID(c); ok {
		ev.ActorID = &id
	}
	if ip := c.RealIP(); ip != "" {
		ev.IPAddress = &ip
	}
	if ua := c.Request().UserAgent(); ua != "" {
		ev.UserAgent = &ua
	}
	rec.Record(ev)
}
