package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type FAQHandler struct {
	FAQs     *repository.FAQRepo
	Recorder Recorder
}

func NewFAQHandler(r *repository.FAQRepo, rec Recorder) *FAQHandler {
	return &FAQHandler{FAQs: r, Recorder: rec}
}

type faqReq struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	OrderIndex int    `json:"order_index"`
	IsActive   *bool  `json:"is_active"`
}

func (h *FAQHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.FAQs.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list faqs failed"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *FAQHandler) Create(c echo.Context) error {
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Question) == "" || strings.TrimSpace(req.Answer) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "question and answer are required"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.FAQs.Create(ctx, model.FAQ{
		Question:   strings.TrimSpace(req.Question),
		Answer:     req.Answer,
		OrderIndex: req.OrderIndex,
		IsActive:   req.IsActive == nil || *req.IsActive,
		CreatedBy:  actor,
		UpdatedBy:  actor,
	})
	if err != nil {
		return repoError(c, err, "create faq failed")
	}
	created, err := h.FAQs.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "create faq failed")
	}

	record(h.Recorder, c, "content", "FAQ created", fmt.Sprintf("created faq %q", created.Question), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, created)
}

func (h *FAQHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	existing, err := h.FAQs.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get faq failed")
	}
	if v := strings.TrimSpace(req.Question); v != "" {
		existing.Question = v
	}
	if req.Answer != "" {
		existing.Answer = req.Answer
	}
	existing.OrderIndex = req.OrderIndex
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedBy = actor

	if err := h.FAQs.Update(ctx, existing); err != nil {
		return repoError(c, err, "update faq failed")
	}

	record(h.Recorder, c, "content", "FAQ updated", fmt.Sprintf("updated faq %q", existing.Question), model.SeverityInfo)
	return c.JSON(http.StatusOK, existing)
}

func (h *FAQHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.FAQs.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete faq failed")
	}

	record(h.Recorder, c, "content", "FAQ deleted", fmt.Sprintf("deleted faq #%d", id), model.SeverityWarning)
	return c.NoContent(http.StatusNoContent)
}
