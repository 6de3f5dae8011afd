package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type BenefitHandler struct {
	Benefits *repository.BenefitRepo
	Recorder Recorder
}

func NewBenefitHandler(r *repository.BenefitRepo, rec Recorder) *BenefitHandler {
	return &BenefitHandler{Benefits: r, Recorder: rec}
}

type benefitReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index"`
	IsActive    *bool  `json:"is_active"`
}

func (h *BenefitHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Benefits.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list benefits failed"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *BenefitHandler) Create(c echo.Context) error {
	var req benefitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.Benefits.Create(ctx, model.Benefit{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Icon:        req.Icon,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	})
	if err != nil {
		return repoError(c, err, "create benefit failed")
	}
	created, err := h.Benefits.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "create benefit failed")
	}

	record(h.Recorder, c, "content", "Benefit created", fmt.Sprintf("created benefit %q", created.Title), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, created)
}

func (h *BenefitHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req benefitReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	existing, err := h.Benefits.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get benefit failed")
	}
	if v := strings.TrimSpace(req.Title); v != "" {
		existing.Title = v
	}
	existing.Description = req.Description
	existing.Icon = req.Icon
	existing.OrderIndex = req.OrderIndex
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedBy = actor

	if err := h.Benefits.Update(ctx, existing); err != nil {
		return repoError(c, err, "update benefit failed")
	}

	record(h.Recorder, c, "content", "Benefit updated", fmt.Sprintf("updated benefit %q", existing.Title), model.SeverityInfo)
	return c.JSON(http.StatusOK, existing)
}

func (h *BenefitHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Benefits.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete benefit failed")
	}

	record(h.Recorder, c, "content", "Benefit deleted", fmt.Sprintf("deleted benefit #%d", id), model.SeverityWarning)
	return c.NoContent(http.StatusNoContent)
}
