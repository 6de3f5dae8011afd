package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type FAQRepo struct{ DB *sql.DB }

func NewFAQRepo(db *sql.DB) *FAQRepo { return &FAQRepo{DB: db} }

const faqColumns = "id,question,answer,order_index,is_active,created_by,updated_by,created_at,updated_at"

// List returns all FAQs ordered for display.
func (r *FAQRepo) List(ctx context.Context) ([]model.FAQ, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+faqColumns+" FROM faqs ORDER BY order_index ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.FAQ{}
	for rows.Next() {
		var f model.FAQ
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.IsActive,
			&f.CreatedBy, &f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Create inserts a FAQ and returns its ID.
func (r *FAQRepo) Create(ctx context.Context, f model.FAQ) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO faqs (question,answer,order_index,is_active,created_by,updated_by) VALUES (?,?,?,?,?,?)",
		f.Question, f.Answer, f.OrderIndex, true, f.CreatedBy, f.UpdatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a FAQ's editable fields.
func (r *FAQRepo) Update(ctx context.Context, f model.FAQ) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE faqs SET question=?,answer=?,order_index=?,is_active=?,updated_by=? WHERE id=?",
		f.Question, f.Answer, f.OrderIndex, f.IsActive, f.UpdatedBy, f.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a FAQ.
func (r *FAQRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM faqs WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GetByID fetches one FAQ.
func (r *FAQRepo) GetByID(ctx context.Context, id uint64) (model.FAQ, error) {
	var f model.FAQ
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+faqColumns+" FROM faqs WHERE id=? LIMIT 1", id).
		Scan(&f.ID, &f.Question, &f.Answer, &f.OrderIndex, &f.IsActive,
			&f.CreatedBy, &f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt)
	if err == sql.ErrNoRows {
		return f, ErrNotFound
	}
	return f, err
}
