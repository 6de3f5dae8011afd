package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

type PricingHandler struct {
	Plans    *repository.PricingRepo
	Recorder Recorder
}

func NewPricingHandler(r *repository.PricingRepo, rec Recorder) *PricingHandler {
	return &PricingHandler{Plans: r, Recorder: rec}
}

type pricingReq struct {
	Title       string          `json:"title"`
	Price       string          `json:"price"`
	Period      string          `json:"period"`
	Description string          `json:"description"`
	Features    json.RawMessage `json:"features"`
	IsPopular   bool            `json:"is_popular"`
	OrderIndex  int             `json:"order_index"`
	IsActive    *bool           `json:"is_active"`
}

// featuresJSON validates the bullet list and returns it serialized. The
// column stores the array verbatim so the storefront can render it
// without another parse step on our side.
func featuresJSON(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "[]", nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return "", err
	}
	out, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (h *PricingHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Plans.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list plans failed"})
	}
	return c.JSON(http.StatusOK, items)
}

func (h *PricingHandler) Create(c echo.Context) error {
	var req pricingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Price) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and price are required"})
	}
	features, err := featuresJSON(req.Features)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "features must be an array of strings"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	id, err := h.Plans.Create(ctx, model.PricingPlan{
		Title:       strings.TrimSpace(req.Title),
		Price:       strings.TrimSpace(req.Price),
		Period:      req.Period,
		Description: req.Description,
		Features:    features,
		IsPopular:   req.IsPopular,
		OrderIndex:  req.OrderIndex,
		IsActive:    req.IsActive == nil || *req.IsActive,
		CreatedBy:   actor,
		UpdatedBy:   actor,
	})
	if err != nil {
		return repoError(c, err, "create plan failed")
	}
	created, err := h.Plans.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "create plan failed")
	}

	record(h.Recorder, c, "pricing", "Plan created", fmt.Sprintf("created pricing plan %q", created.Title), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, created)
}

func (h *PricingHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req pricingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	existing, err := h.Plans.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get plan failed")
	}
	if v := strings.TrimSpace(req.Title); v != "" {
		existing.Title = v
	}
	if v := strings.TrimSpace(req.Price); v != "" {
		existing.Price = v
	}
	existing.Period = req.Period
	existing.Description = req.Description
	if len(req.Features) > 0 {
		features, err := featuresJSON(req.Features)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "features must be an array of strings"})
		}
		existing.Features = features
	}
	existing.IsPopular = req.IsPopular
	existing.OrderIndex = req.OrderIndex
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	existing.UpdatedBy = actor

	if err := h.Plans.Update(ctx, existing); err != nil {
		return repoError(c, err, "update plan failed")
	}

	record(h.Recorder, c, "pricing", "Plan updated", fmt.Sprintf("updated pricing plan %q", existing.Title), model.SeverityInfo)
	return c.JSON(http.StatusOK, existing)
}

func (h *PricingHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Plans.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete plan failed")
	}

	record(h.Recorder, c, "pricing", "Plan deleted", fmt.Sprintf("deleted pricing plan #%d", id), model.SeverityWarning)
	return c.NoContent(http.StatusNoContent)
}
