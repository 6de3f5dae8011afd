package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

// AnalyticsHandler covers visitor tracking, whatsapp click tracking,
// the contact form and the admin analytics summary. The tracking
// endpoints are public and deliberately forgiving: a malformed beacon
// is dropped with a 204 rather than an error the storefront would have
// to handle.
type AnalyticsHandler struct {
	Analytics *repository.AnalyticsRepo
	Recorder  Recorder
}

func NewAnalyticsHandler(r *repository.AnalyticsRepo, rec Recorder) *AnalyticsHandler {
	return &AnalyticsHandler{Analytics: r, Recorder: rec}
}

type visitReq struct {
	SessionID  string `json:"session_id"`
	PagePath   string `json:"page_path"`
	Referrer   string `json:"referrer"`
	DeviceType string `json:"device_type"`
}

func (h *AnalyticsHandler) TrackVisitor(c echo.Context) error {
	var req visitReq
	if err := c.Bind(&req); err != nil || req.SessionID == "" || req.PagePath == "" {
		return c.NoContent(http.StatusNoContent)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	_ = h.Analytics.TrackVisitor(ctx, model.Visitor{
		SessionID:  req.SessionID,
		PagePath:   req.PagePath,
		Referrer:   req.Referrer,
		UserAgent:  c.Request().UserAgent(),
		IPAddress:  c.RealIP(),
		DeviceType: req.DeviceType,
	})
	return c.NoContent(http.StatusNoContent)
}

type whatsappReq struct {
	SessionID      string `json:"session_id"`
	ButtonLocation string `json:"button_location"`
	PagePath       string `json:"page_path"`
}

func (h *AnalyticsHandler) TrackWhatsApp(c echo.Context) error {
	var req whatsappReq
	if err := c.Bind(&req); err != nil || req.SessionID == "" {
		return c.NoContent(http.StatusNoContent)
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	_ = h.Analytics.TrackWhatsApp(ctx, model.WhatsAppInteraction{
		SessionID:      req.SessionID,
		ButtonLocation: req.ButtonLocation,
		PagePath:       req.PagePath,
	})
	return c.NoContent(http.StatusNoContent)
}

type contactReq struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

// SubmitContact stores a contact form submission and raises an audit
// entry so new leads show up in the activity feed.
func (h *AnalyticsHandler) SubmitContact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || (strings.TrimSpace(req.Phone) == "" && strings.TrimSpace(req.Email) == "") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and phone or email are required"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	saved, err := h.Analytics.CreateContact(ctx, model.ContactSubmission{
		Name:    req.Name,
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: req.Message,
		Source:  req.Source,
	})
	if err != nil {
		return repoError(c, err, "save submission failed")
	}

	record(h.Recorder, c, "contact", "Contact submission", "new contact form submission from "+saved.Name, model.SeverityInfo)
	return c.JSON(http.StatusCreated, echo.Map{"id": saved.ID})
}

func (h *AnalyticsHandler) ListContacts(c echo.Context) error {
	limit, offset := pagination(c, 50, 200)
	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Analytics.ListContacts(ctx, limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list submissions failed"})
	}
	return c.JSON(http.StatusOK, items)
}

// Summary returns aggregate traffic numbers for a date range given as
// ?from=YYYY-MM-DD&to=YYYY-MM-DD, defaulting to the last 30 days.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
		}
		from = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
		}
		to = t.AddDate(0, 0, 1) // inclusive end date
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	summary, err := h.Analytics.Summary(ctx, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "analytics failed"})
	}
	return c.JSON(http.StatusOK, summary)
}
