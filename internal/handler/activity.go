package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/repository"
)

type ActivityHandler struct {
	Activity *repository.ActivityRepo
}

func NewActivityHandler(r *repository.ActivityRepo) *ActivityHandler {
	return &ActivityHandler{Activity: r}
}

// List returns the newest audit entries with the acting user joined in.
func (h *ActivityHandler) List(c echo.Context) error {
	limit, offset := pagination(c, 50, 200)
	ctx, cancel := dbCtx(c)
	defer cancel()

	entries, err := h.Activity.List(ctx, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list activity failed"})
	}
	return c.JSON(http.StatusOK, entries)
}
