package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/repository"
)

// DashboardHandler serves the admin landing page counters.
type DashboardHandler struct {
	Analytics *repository.AnalyticsRepo
	Activity  *repository.ActivityRepo
}

func NewDashboardHandler(a *repository.AnalyticsRepo, act *repository.ActivityRepo) *DashboardHandler {
	return &DashboardHandler{Analytics: a, Activity: act}
}

// Stats returns row counts per table plus activity volume over the last
// 24 hours.
func (h *DashboardHandler) Stats(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	counts, err := h.Analytics.Counts(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stats failed"})
	}
	recent, err := h.Activity.CountSince(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "stats failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"counts":          counts,
		"recent_activity": recent,
	})
}
