package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type PricingRepo struct{ DB *sql.DB }

func NewPricingRepo(db *sql.DB) *PricingRepo { return &PricingRepo{DB: db} }

const pricingColumns = "id,title,price,period,description,features,is_popular,order_index,is_active,created_by,updated_by,created_at,updated_at"

func scanPlan(row interface{ Scan(...any) error }) (model.PricingPlan, error) {
	var p model.PricingPlan
	err := row.Scan(&p.ID, &p.Title, &p.Price, &p.Period, &p.Description, &p.Features,
		&p.IsPopular, &p.OrderIndex, &p.IsActive, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// List returns all pricing plans ordered for display.
func (r *PricingRepo) List(ctx context.Context) ([]model.PricingPlan, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+pricingColumns+" FROM pricing_plans ORDER BY order_index ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.PricingPlan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetByID fetches one plan.
func (r *PricingRepo) GetByID(ctx context.Context, id uint64) (model.PricingPlan, error) {
	return scanPlan(r.DB.QueryRowContext(ctx,
		"SELECT "+pricingColumns+" FROM pricing_plans WHERE id=? LIMIT 1", id))
}

// Create inserts a plan and returns its ID.
func (r *PricingRepo) Create(ctx context.Context, p model.PricingPlan) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO pricing_plans (title,price,period,description,features,is_popular,order_index,is_active,created_by,updated_by) VALUES (?,?,?,?,?,?,?,?,?,?)",
		p.Title, p.Price, p.Period, p.Description, p.Features, p.IsPopular, p.OrderIndex, true, p.CreatedBy, p.UpdatedBy)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a plan's editable fields.
func (r *PricingRepo) Update(ctx context.Context, p model.PricingPlan) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE pricing_plans SET title=?,price=?,period=?,description=?,features=?,is_popular=?,order_index=?,is_active=?,updated_by=? WHERE id=?",
		p.Title, p.Price, p.Period, p.Description, p.Features, p.IsPopular, p.OrderIndex, p.IsActive, p.UpdatedBy, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a plan.
func (r *PricingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM pricing_plans WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
