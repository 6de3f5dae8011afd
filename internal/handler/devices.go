package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

// DeviceHandler manages the device allow-list. All routes are gated to
// superusers by the router; these handlers only do the data work.
type DeviceHandler struct {
	Devices  *repository.DeviceRepo
	Recorder Recorder
}

func NewDeviceHandler(d *repository.DeviceRepo, rec Recorder) *DeviceHandler {
	return &DeviceHandler{Devices: d, Recorder: rec}
}

func (h *DeviceHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	devices, err := h.Devices.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list devices failed"})
	}
	return c.JSON(http.StatusOK, devices)
}

type deviceReq struct {
	Fingerprint string  `json:"device_fingerprint"`
	DeviceName  string  `json:"device_name"`
	IPAddress   *string `json:"ip_address"`
	Description string  `json:"description"`
}

// Authorize adds a device to the allow-list, reactivating it if the
// fingerprint was previously revoked. A nil ip_address means the device
// may connect from any address.
func (h *DeviceHandler) Authorize(c echo.Context) error {
	var req deviceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Fingerprint = strings.TrimSpace(req.Fingerprint)
	if req.Fingerprint == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "device_fingerprint is required"})
	}
	if req.IPAddress != nil {
		ip := strings.TrimSpace(*req.IPAddress)
		if ip == "" {
			req.IPAddress = nil
		} else {
			req.IPAddress = &ip
		}
	}

	actor, _ := userID(c)
	ctx, cancel := dbCtx(c)
	defer cancel()

	dev := model.AuthorizedDevice{
		Fingerprint:  req.Fingerprint,
		DeviceName:   strings.TrimSpace(req.DeviceName),
		IPAddress:    req.IPAddress,
		Description:  strings.TrimSpace(req.Description),
		IsActive:     true,
		AuthorizedBy: actor,
	}
	if err := h.Devices.Upsert(ctx, dev); err != nil {
		return repoError(c, err, "authorize device failed")
	}
	saved, err := h.Devices.GetByFingerprint(ctx, req.Fingerprint)
	if err != nil {
		return repoError(c, err, "authorize device failed")
	}

	record(h.Recorder, c, "security", "Device authorized",
		fmt.Sprintf("authorized device %s (%s)", saved.DeviceName, saved.Fingerprint), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, saved)
}

// Revoke deactivates a device. The row stays so the audit trail keeps
// its name and history; re-authorizing the same fingerprint reactivates
// it.
func (h *DeviceHandler) Revoke(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	dev, err := h.Devices.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get device failed")
	}
	if err := h.Devices.Revoke(ctx, id); err != nil {
		return repoError(c, err, "revoke device failed")
	}

	record(h.Recorder, c, "security", "Device revoked",
		fmt.Sprintf("revoked device %s (%s)", dev.DeviceName, dev.Fingerprint), model.SeverityWarning)
	return c.NoContent(http.StatusNoContent)
}
