package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/config"
	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/queue"
	"github.com/languagebaba/site-api/internal/repository"
	"github.com/languagebaba/site-api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Perms    *repository.PermissionRepo
	Recorder Recorder
}

func NewAuthHandler(cfg config.Config, u *repository.UserRepo, p *repository.PermissionRepo, rec Recorder) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u, Perms: p, Recorder: rec}
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Login verifies credentials and issues the bearer token. Disabled
// accounts and bad passwords get the same 401 so the response does not
// reveal which part failed.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	u, err := h.Users.GetByUsername(ctx, req.Username)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if !u.IsActive || !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Username, u.Role, h.Cfg.TokenTTLH)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	// Best effort; a failed stamp must not block the login.
	_ = h.Users.TouchLastLogin(ctx, u.ID)

	if h.Recorder != nil {
		ev := queue.ActivityEvent{
			ActorID:      &u.ID,
			ActivityType: "auth",
			Action:       "User login",
			Description:  u.Username + " logged in",
			Severity:     model.SeveritySuccess,
		}
		if ip := c.RealIP(); ip != "" {
			ev.IPAddress = &ip
		}
		if ua := c.Request().UserAgent(); ua != "" {
			ev.UserAgent = &ua
		}
		h.Recorder.Record(ev)
	}

	return c.JSON(http.StatusOK, loginResp{Token: token.Token, User: u})
}

// Me returns the authenticated user with their permission grants. The
// admin client calls it on startup to decide which panels to render.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, ok := userID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthenticated"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}
	grants, err := h.Perms.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "lookup failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{"user": u, "permissions": grants})
}
