package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/languagebaba/site-api/internal/auth"
	"github.com/languagebaba/site-api/internal/config"
	"github.com/languagebaba/site-api/internal/model"
	"github.com/languagebaba/site-api/internal/repository"
)

// UserHandler implements admin user management. Every mutation runs
// through auth.CheckUserMutation before touching the database.
type UserHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Perms    *repository.PermissionRepo
	Recorder Recorder
}

func NewUserHandler(cfg config.Config, u *repository.UserRepo, p *repository.PermissionRepo, rec Recorder) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: u, Perms: p, Recorder: rec}
}

type userReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive *bool  `json:"is_active"`
}

func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := dbCtx(c)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list users failed"})
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get user failed")
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, email and password are required"})
	}
	if req.Role == "" {
		req.Role = auth.RoleViewer
	}
	if !auth.IsValidRole(req.Role) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
	}
	// Creating a superuser account is itself a superuser-only act.
	if req.Role == auth.RoleSuperuser && userRole(c) != auth.RoleSuperuser {
		return c.JSON(http.StatusForbidden, echo.Map{"error": auth.ErrSuperuserProtected.Error()})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	u := model.User{
		Username: req.Username,
		Email:    req.Email,
		FullName: strings.TrimSpace(req.FullName),
		Role:     req.Role,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	id, err := h.Users.Create(ctx, u, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return repoError(c, err, "create user failed")
	}
	created, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "create user failed")
	}

	record(h.Recorder, c, "users", "User created", fmt.Sprintf("created user %s (%s)", created.Username, created.Role), model.SeveritySuccess)
	return c.JSON(http.StatusCreated, created)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req userReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get user failed")
	}

	var newRole *string
	if req.Role != "" && req.Role != target.Role {
		if !auth.IsValidRole(req.Role) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
		}
		newRole = &req.Role
	}
	actor, _ := userID(c)
	if err := auth.CheckUserMutation(auth.UserMutation{
		ActorID:    actor,
		ActorRole:  userRole(c),
		TargetID:   target.ID,
		TargetRole: target.Role,
		NewRole:    newRole,
		NewActive:  req.IsActive,
	}); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	}
	// Promotion to superuser is superuser-only too.
	if newRole != nil && *newRole == auth.RoleSuperuser && userRole(c) != auth.RoleSuperuser {
		return c.JSON(http.StatusForbidden, echo.Map{"error": auth.ErrSuperuserProtected.Error()})
	}

	if v := strings.ToLower(strings.TrimSpace(req.Username)); v != "" {
		target.Username = v
	}
	if v := strings.ToLower(strings.TrimSpace(req.Email)); v != "" {
		target.Email = v
	}
	if v := strings.TrimSpace(req.FullName); v != "" {
		target.FullName = v
	}
	if newRole != nil {
		target.Role = *newRole
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}

	if err := h.Users.Update(ctx, target, req.Password, h.Cfg.BcryptCost); err != nil {
		return repoError(c, err, "update user failed")
	}
	updated, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "update user failed")
	}

	record(h.Recorder, c, "users", "User updated", fmt.Sprintf("updated user %s", updated.Username), model.SeverityInfo)
	return c.JSON(http.StatusOK, updated)
}

// Toggle flips is_active on a user.
func (h *UserHandler) Toggle(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get user failed")
	}
	next := !target.IsActive
	actor, _ := userID(c)
	if err := auth.CheckUserMutation(auth.UserMutation{
		ActorID:    actor,
		ActorRole:  userRole(c),
		TargetID:   target.ID,
		TargetRole: target.Role,
		NewActive:  &next,
	}); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	}

	if err := h.Users.SetActive(ctx, id, next); err != nil {
		return repoError(c, err, "toggle user failed")
	}

	verb := "deactivated"
	sev := model.SeverityWarning
	if next {
		verb = "activated"
		sev = model.SeveritySuccess
	}
	record(h.Recorder, c, "users", "User "+verb, fmt.Sprintf("%s user %s", verb, target.Username), sev)
	return c.JSON(http.StatusOK, echo.Map{"id": id, "is_active": next})
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get user failed")
	}
	actor, _ := userID(c)
	if err := auth.CheckUserMutation(auth.UserMutation{
		ActorID:    actor,
		ActorRole:  userRole(c),
		TargetID:   target.ID,
		TargetRole: target.Role,
		Delete:     true,
	}); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"error": err.Error()})
	}

	if err := h.Users.Delete(ctx, id); err != nil {
		return repoError(c, err, "delete user failed")
	}

	record(h.Recorder, c, "users", "User deleted", fmt.Sprintf("deleted user %s", target.Username), model.SeverityDanger)
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) GetPermissions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := dbCtx(c)
	defer cancel()

	if _, err := h.Users.GetByID(ctx, id); err != nil {
		return repoError(c, err, "get user failed")
	}
	grants, err := h.Perms.ListByUser(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list permissions failed"})
	}
	return c.JSON(http.StatusOK, grants)
}

type permissionsReq struct {
	Permissions []model.Permission `json:"permissions"`
}

// PutPermissions replaces a user's grants wholesale. The request body
// is the complete new set; omitted resources lose all access.
func (h *UserHandler) PutPermissions(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req permissionsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	target, err := h.Users.GetByID(ctx, id)
	if err != nil {
		return repoError(c, err, "get user failed")
	}
	// Rewriting a superuser's grants is a protected mutation.
	if target.Role == auth.RoleSuperuser && userRole(c) != auth.RoleSuperuser {
		return c.JSON(http.StatusForbidden, echo.Map{"error": auth.ErrSuperuserProtected.Error()})
	}

	if err := h.Perms.ReplaceAll(ctx, id, req.Permissions); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save permissions failed"})
	}
	grants, err := h.Perms.ListByUser(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list permissions failed"})
	}

	record(h.Recorder, c, "users", "Permissions updated", fmt.Sprintf("replaced permissions for %s", target.Username), model.SeverityInfo)
	return c.JSON(http.StatusOK, grants)
}
