package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/languagebaba/site-api/internal/model"
)

type ActivityRepo struct{ DB *sql.DB }

func NewActivityRepo(db *sql.DB) *ActivityRepo { return &ActivityRepo{DB: db} }

// Insert writes one log entry. A missing ID is filled with a fresh uuid
// so callers (the broker consumer, the direct fallback path) don't have
// to care.
func (r *ActivityRepo) Insert(ctx context.Context, e model.ActivityLog) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO activity_logs (id,user_id,activity_type,action,description,severity,ip_address,user_agent,created_at)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		e.ID, e.UserID, e.ActivityType, e.Action, e.Description, e.Severity, e.IPAddress, e.UserAgent, e.CreatedAt)
	return err
}

// List returns entries newest first with the acting user joined in.
func (r *ActivityRepo) List(ctx context.Context, limit, offset int) ([]model.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT a.id,a.user_id,a.activity_type,a.action,a.description,a.severity,
		        a.ip_address,a.user_agent,a.created_at,
		        COALESCE(u.username,''), COALESCE(u.full_name,'')
		   FROM activity_logs a
		   LEFT JOIN users u ON u.id = a.user_id
		   ORDER BY a.created_at DESC
		   LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ActivityLog{}
	for rows.Next() {
		var e model.ActivityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.ActivityType, &e.Action, &e.Description,
			&e.Severity, &e.IPAddress, &e.UserAgent, &e.CreatedAt, &e.Username, &e.FullName); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountSince counts entries newer than the cutoff; the dashboard uses a
// 24h window for its "recent activity" figure.
func (r *ActivityRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM activity_logs WHERE created_at >= ?", since).Scan(&n)
	return n, err
}
