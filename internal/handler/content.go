package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

// ContentHandler serves the keyed website sections (hero, about,
// footer and so on). Sections are upserted by (type, key) so the admin
// panel never has to know whether a section exists yet.
type ContentHandler struct {
	Content  *repository.ContentRepo
	Recorder Recorder
}

func NewContentHandler(r *repository.ContentRepo, rec Recorder) *ContentHandler {
	return &ContentHandler{Content: r, Recorder: rec}
}

// List returns sections, optionally filtered by ?type=.
func (h *ContentHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Content.ListByType(ctx, strings.TrimSpace(c.QueryParam("type")))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list content failed"})
	}
	return c.JSON(http.StatusOK, items)
}

type contentReq struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Body     string `json:"body"`
	ImageURL string `json:"image_url"`
	Extra    string `json:"extra"`
}

// Upsert writes the section named by the path. PUT /api/content/:type/:key.
func (h *ContentHandler) Upsert(c echo.Context) error {
	contentType := strings.TrimSpace(c.Param("type"))
	contentKey := strings.TrimSpace(c.Param("key"))
	if contentType == "" || contentKey == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "type and key are required"})
	}
	var req contentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	saved, err := h.Content.Upsert(ctx, model.WebsiteContent{
		ContentType: contentType,
		ContentKey:  contentKey,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		Extra:       req.Extra,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	})
	if err != nil {
		return repoError(c, err, "save content failed")
	}

	record(h.Recorder, c, "content", "Content updated",
		fmt.Sprintf("updated section %s/%s", contentType, contentKey), model.SeverityInfo)
	return c.JSON(http.StatusOK, saved)
}
