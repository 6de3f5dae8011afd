package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type TestimonialRepo struct{ DB *sql.DB }

func NewTestimonialRepo(db *sql.DB) *TestimonialRepo { return &TestimonialRepo{DB: db} }

const testimonialColumns = "id,name,designation,content,rating,is_featured,order_index,is_active,created_by,updated_by,created_at,updated_at"

func scanTestimonial(row interface{ Scan(...any) error }) (model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Name, &t.Designation, &t.Content, &t.Rating, &t.IsFeatured,
		&t.OrderIndex, &t.IsActive, &t.CreatedBy, &t.UpdatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return t, ErrNotFound
	}
	return t, err
}

// List returns all testimonials ordered for display. When activeOnly is
// set only active rows are returned; the public endpoint uses that so
// drafts never leak to the marketing site.
func (r *TestimonialRepo) List(ctx context.Context, activeOnly bool) ([]model.Testimonial, error) {
	q := "SELECT " + testimonialColumns + " FROM testimonials"
	if activeOnly {
		q += " WHERE is_active=TRUE"
	}
	q += " ORDER BY order_index ASC"

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Testimonial{}
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetByID fetches one testimonial.
func (r *TestimonialRepo) GetByID(ctx context.Context, id uint64) (model.Testimonial, error) {
	return scanTestimonial(r.DB.QueryRowContext(ctx,
		"SELECT "+testimonialColumns+" FROM testimonials WHERE id=? LIMIT 1", id))
}

// Create inserts a testimonial and returns its ID.
func (r *TestimonialRepo) Create(ctx context.Context, t model.Testimonial) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO testimonials (name,designation,content,rating,is_featured,order_index,is_active,created_by,updated_by) VALUES (?,?,?,?,?,?,?,?,?)",
		t.Name, t.Designation, t.Content, t.Rating, t.IsFeatured, t.OrderIndex, true, t.CreatedBy, t.UpdatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a testimonial's editable fields.
func (r *TestimonialRepo) Update(ctx context.Context, t model.Testimonial) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE testimonials SET name=?,designation=?,content=?,rating=?,is_featured=?,order_index=?,is_active=?,updated_by=? WHERE id=?",
		t.Name, t.Designation, t.Content, t.Rating, t.IsFeatured, t.OrderIndex, t.IsActive, t.UpdatedBy, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a testimonial.
func (r *TestimonialRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM testimonials WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
