package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

// SEOHandler reads and writes per-page SEO metadata. Pages are keyed by
// page type plus an optional identifier (e.g. a blog slug) passed as
// the ?identifier= query param.
type SEOHandler struct {
	SEO      *repository.SEORepo
	Recorder Recorder
}

func NewSEOHandler(r *repository.SEORepo, rec Recorder) *SEOHandler {
	return &SEOHandler{SEO: r, Recorder: rec}
}

func pageIdentifier(c echo.Context) *string {
	if v := strings.TrimSpace(c.QueryParam("identifier")); v != "" {
		return &v
	}
	return nil
}

func (h *SEOHandler) Get(c echo.Context) error {
	pageType := strings.TrimSpace(c.Param("pageType"))
	if pageType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pageType is required"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	s, err := h.SEO.Get(ctx, pageType, pageIdentifier(c))
	if err != nil {
		return repoError(c, err, "get seo failed")
	}
	return c.JSON(http.StatusOK, s)
}

type seoReq struct {
	MetaTitle       string `json:"meta_title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	OGTitle         string `json:"og_title"`
	OGDescription   string `json:"og_description"`
	OGImage         string `json:"og_image"`
	CanonicalURL    string `json:"canonical_url"`
}

func (h *SEOHandler) Put(c echo.Context) error {
	pageType := strings.TrimSpace(c.Param("pageType"))
	if pageType == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pageType is required"})
	}
	var req seoReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	saved, err := h.SEO.Upsert(ctx, model.SEOSetting{
		PageType:        pageType,
		PageIdentifier:  pageIdentifier(c),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		MetaKeywords:    req.MetaKeywords,
		OGTitle:         req.OGTitle,
		OGDescription:   req.OGDescription,
		OGImage:         req.OGImage,
		CanonicalURL:    req.CanonicalURL,
		UpdatedBy:       actor,
	})
	if err != nil {
		return repoError(c, err, "save seo failed")
	}

	record(h.Recorder, c, "seo", "SEO updated", fmt.Sprintf("updated seo for page %s", pageType), model.SeverityInfo)
	return c.JSON(http.StatusOK, saved)
}
