package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type BenefitRepo struct{ DB *sql.DB }

func NewBenefitRepo(db *sql.DB) *BenefitRepo { return &BenefitRepo{DB: db} }

const benefitColumns = "id,title,description,icon,order_index,is_active,created_by,updated_by,created_at,updated_at"

// List returns all benefits ordered for display.
func (r *BenefitRepo) List(ctx context.Context) ([]model.Benefit, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+benefitColumns+" FROM benefits ORDER BY order_index ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Benefit{}
	for rows.Next() {
		var b model.Benefit
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Icon, &b.OrderIndex, &b.IsActive,
			&b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// GetByID fetches one benefit.
func (r *BenefitRepo) GetByID(ctx context.Context, id uint64) (model.Benefit, error) {
	var b model.Benefit
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+benefitColumns+" FROM benefits WHERE id=? LIMIT 1", id).
		Scan(&b.ID, &b.Title, &b.Description, &b.Icon, &b.OrderIndex, &b.IsActive,
			&b.CreatedBy, &b.UpdatedBy, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return b, ErrNotFound
	}
	return b, err
}

// Create inserts a benefit and returns its ID.
func (r *BenefitRepo) Create(ctx context.Context, b model.Benefit) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO benefits (title,description,icon,order_index,is_active,created_by,updated_by) VALUES (?,?,?,?,?,?,?)",
		b.Title, b.Description, b.Icon, b.OrderIndex, true, b.CreatedBy, b.UpdatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a benefit's editable fields.
func (r *BenefitRepo) Update(ctx context.Context, b model.Benefit) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE benefits SET title=?,description=?,icon=?,order_index=?,is_active=?,updated_by=? WHERE id=?",
		b.Title, b.Description, b.Icon, b.OrderIndex, b.IsActive, b.UpdatedBy, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a benefit.
func (r *BenefitRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM benefits WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
