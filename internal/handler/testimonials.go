package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type TestimonialHandler struct {
	Testimonials *repository.TestimonialRepo
	Recorder     Recorder
}

func NewTestimonialHandler(r *repository.TestimonialRepo, rec Recorder) *TestimonialHandler {
	return &TestimonialHandler{Testimonials: r, Recorder: rec}
}

type testimonialReq struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Content     string `json:"content"`
	Rating      int    `json:"rating"`
	IsFeatured  bool   `json:"is_featured"`
	OrderIndex  int    `json:"order_index"`
	IsActive    *bool  `json:"is_active"`
}

// PublicList is the unauthenticated marketing endpoint; only active
// testimonials are exposed.
func (h *TestimonialHandler) PublicList(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Testimonials.List(ctx, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list testimonials failed"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TestimonialHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Testimonials.List(ctx, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list testimonials failed"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TestimonialHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	t, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get testimonial failed")
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TestimonialHandler) Create(c echo.Context) error {
	var req testimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Content) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and content are required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		req.Rating = 5
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.Testimonials.Create(ctx, model.Testimonial{
		Name:        strings.TrimSpace(req.Name),
		Designation: req.Designation,
		Content:     req.Content,
		Rating:      req.Rating,
		IsFeatured:  req.IsFeatured,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	})
	if err != nil {
		return repoError(c, err, "create testimonial failed")
	}
	created, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "create testimonial failed")
	}

	record(h.Recorder, c, "content", "Testimonial created", fmt.Sprintf("created testimonial from %s", created.Name), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, created)
}

func (h *TestimonialHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req testimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	existing, err := h.Testimonials.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get testimonial failed")
	}
	if v := strings.TrimSpace(req.Name); v != "" {
		existing.Name = v
	}
	existing.Designation = req.Designation
	if req.Content != "" {
		existing.Content = req.Content
	}
	if req.Rating >= 1 && req.Rating <= 5 {
		existing.Rating = req.Rating
	}
	existing.IsFeatured = req.IsFeatured
	existing.OrderIndex = req.OrderIndex
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedBy = actor

	if err := h.Testimonials.Update(ctx, existing); err != nil {
		return repoError(c, err, "update testimonial failed")
	}

	record(h.Recorder, c, "content", "Testimonial updated", fmt.Sprintf("updated testimonial from %s", existing.Name), model.SeverityInfo)
	return c.JSON(http.StatusOK, existing)
}

func (h *TestimonialHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Testimonials.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete testimonial failed")
	}

	record(h.Recorder, c, "content", "Testimonial deleted", fmt.Sprintf("deleted testimonial #%d", id), model.SeverityWarning)
	return c.NoContent(http.StatusNoContent)
}
