package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type PermissionRepo struct{ DB *sql.DB }

func NewPermissionRepo(db *sql.DB) *PermissionRepo { return &PermissionRepo{DB: db} }

// Get returns the grant a user holds on one resource, or ErrNotFound
// when no row exists. The permission guard relies on the ErrNotFound
// case to fail closed.
func (r *PermissionRepo) Get(ctx context.Context, userID uint64, resource string) (model.Permission, error) {
	var p model.Permission
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,resource,can_read,can_write,can_create,can_delete FROM user_permissions WHERE user_id=? AND resource=? LIMIT 1",
		userID, resource).
		Scan(&p.ID, &p.UserID, &p.Resource, &p.CanRead, &p.CanWrite, &p.CanCreate, &p.CanDelete)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// ListByUser returns every grant a user holds.
func (r *PermissionRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Permission, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,user_id,resource,can_read,can_write,can_create,can_delete FROM user_permissions WHERE user_id=?",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Permission{}
	for rows.Next() {
		var p model.Permission
		if err := rows.Scan(&p.ID, &p.UserID, &p.Resource, &p.CanRead, &p.CanWrite, &p.CanCreate, &p.CanDelete); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ReplaceAll swaps a user's grants wholesale: delete-then-insert inside
// one transaction so a failed write never leaves a user half-granted.
// Grants are never patched row by row.
func (r *PermissionRepo) ReplaceAll(ctx context.Context, userID uint64, grants []model.Permission) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM user_permissions WHERE user_id=?", userID); err != nil {
		return err
	}
	for _, g := range grants {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO user_permissions (user_id,resource,can_read,can_write,can_create,can_delete) VALUES (?,?,?,?,?,?)",
			userID, g.Resource, g.CanRead, g.CanWrite, g.CanCreate, g.CanDelete); err != nil {
			return err
		}
	}
	return tx.Commit()
}
