package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type SettingHandler struct {
	Settings *repository.SettingRepo
	Recorder Recorder
}

func NewSettingHandler(r *repository.SettingRepo, rec Recorder) *SettingHandler {
	return &SettingHandler{Settings: r, Recorder: rec}
}

func (h *SettingHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Settings.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list settings failed"})
	}
	return c.JSON(http.StatusOK, items)
}

type settingReq struct {
	Value string `json:"setting_value"`
}

// Put upserts a single key. PUT /api/settings/:key.
func (h *SettingHandler) Put(c echo.Context) error {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "key is required"})
	}
	var req settingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	saved, err := h.Settings.Set(ctx, key, req.Value, actor)
	if err != nil {
		return repoError(c, err, "save setting failed")
	}

	record(h.Recorder, c, "settings", "Setting updated", fmt.Sprintf("updated setting %s", key), model.SeverityInfo)
	return c.JSON(http.StatusOK, saved)
}
