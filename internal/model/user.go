package model

import "time"

// User represents an admin-panel account as stored in the `users` table.
// The password hash never leaves the repository layer; handlers define
// separate response types that omit it.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Username     – unique login name.
//  Email        – unique email address.
//  FullName     – display name shown in the admin panel.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of viewer, editor, admin, superuser.
//  IsActive     – whether the account may log in.
//  LastLogin    – timestamp of the most recent successful login (nullable).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FullName     string     `json:"full_name"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	IsActive     bool       `json:"is_active"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Permission mirrors one row of `user_permissions`: the grant a user holds
// on a single resource. At most one row exists per (user, resource) pair;
// the absence of a row denies every action on that resource.
type Permission struct {
	ID        uint64 `json:"id"`
	UserID    uint64 `json:"user_id"`
	Resource  string `json:"resource"`
	CanRead   bool   `json:"can_read"`
	CanWrite  bool   `json:"can_write"`
	CanCreate bool   `json:"can_create"`
	CanDelete bool   `json:"can_delete"`
}

// Action enumerates the operations a permission grant can allow.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

// Allows reports whether the grant permits the given action. Unknown
// actions are denied.
func (p Permission) Allows(a Action) bool {
	switch a {
	case ActionRead:
		return p.CanRead
	case ActionWrite:
		return p.CanWrite
	case ActionCreate:
		return p.CanCreate
	case ActionDelete:
		return p.CanDelete
	}
	return false
}

// Resource names that permission grants are keyed on.
const (
	ResourceContent  = "content"
	ResourceBlog     = "blog"
	ResourcePricing  = "pricing"
	ResourceSEO      = "seo"
	ResourceSettings = "settings"
	ResourceUsers    = "users"
)
