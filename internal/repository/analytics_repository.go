package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/languagebaba/site-api/internal/model"
)

// AnalyticsRepo persists the lead-capture tracking tables: visitor
// pageviews, WhatsApp deep-link clicks and contact-form submissions.
type AnalyticsRepo struct{ DB *sql.DB }

func NewAnalyticsRepo(db *sql.DB) *AnalyticsRepo { return &AnalyticsRepo{DB: db} }

// TrackVisitor stores one pageview.
func (r *AnalyticsRepo) TrackVisitor(ctx context.Context, v model.Visitor) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO visitors (session_id,page_path,referrer,user_agent,ip_address,device_type) VALUES (?,?,?,?,?,?)",
		v.SessionID, v.PagePath, v.Referrer, v.UserAgent, v.IPAddress, v.DeviceType)
	return err
}

// TrackWhatsApp stores one WhatsApp button click.
func (r *AnalyticsRepo) TrackWhatsApp(ctx context.Context, w model.WhatsAppInteraction) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO whatsapp_interactions (session_id,button_location,page_path) VALUES (?,?,?)",
		w.SessionID, w.ButtonLocation, w.PagePath)
	return err
}

// CreateContact stores a contact-form submission and returns it with ID
// and timestamp filled.
func (r *AnalyticsRepo) CreateContact(ctx context.Context, cs model.ContactSubmission) (model.ContactSubmission, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contact_submissions (name,phone,email,message,source) VALUES (?,?,?,?,?)",
		cs.Name, cs.Phone, cs.Email, cs.Message, cs.Source)
	if err != nil {
		return cs, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return cs, err
	}
	cs.ID = uint64(id)
	cs.CreatedAt = time.Now().UTC()
	return cs, nil
}

// ListContacts returns submissions newest first.
func (r *AnalyticsRepo) ListContacts(ctx context.Context, limit, offset int) ([]model.ContactSubmission, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,phone,email,message,source,created_at FROM contact_submissions ORDER BY created_at DESC LIMIT ? OFFSET ?",
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ContactSubmission{}
	for rows.Next() {
		var cs model.ContactSubmission
		if err := rows.Scan(&cs.ID, &cs.Name, &cs.Phone, &cs.Email, &cs.Message, &cs.Source, &cs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

// Summary aggregates visitor activity between two instants for the
// analytics dashboard.
func (r *AnalyticsRepo) Summary(ctx context.Context, from, to time.Time) (model.AnalyticsSummary, error) {
	var s model.AnalyticsSummary
	s.PageViews = map[string]int64{}

	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT session_id) FROM visitors WHERE created_at BETWEEN ? AND ?",
		from, to).Scan(&s.TotalVisitors, &s.UniqueSessions)
	if err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM whatsapp_interactions WHERE created_at BETWEEN ? AND ?",
		from, to).Scan(&s.WhatsAppClicks); err != nil {
		return s, err
	}
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM contact_submissions WHERE created_at BETWEEN ? AND ?",
		from, to).Scan(&s.ContactSubmissions); err != nil {
		return s, err
	}

	rows, err := r.DB.QueryContext(ctx,
		"SELECT page_path, COUNT(*) FROM visitors WHERE created_at BETWEEN ? AND ? GROUP BY page_path ORDER BY COUNT(*) DESC LIMIT 20",
		from, to)
	if err != nil {
		return s, err
	}
	defer rows.Close()
	for rows.Next() {
		var path string
		var n int64
		if err := rows.Scan(&path, &n); err != nil {
			return s, err
		}
		s.PageViews[path] = n
	}
	return s, rows.Err()
}

// Counts returns the dashboard entity totals in one call.
func (r *AnalyticsRepo) Counts(ctx context.Context) (map[string]int64, error) {
	out := map[string]int64{}
	for name, table := range map[string]string{
		"total_users":         "users",
		"total_blog_posts":    "blog_posts",
		"total_testimonials":  "testimonials",
		"total_benefits":      "benefits",
		"total_faqs":          "faqs",
		"total_pricing_plans": "pricing_plans",
	} {
		var n int64
		if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, nil
}
