package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

// ContentRepo persists the keyed website_content blocks. Benefits,
// testimonials and FAQs live in their own repositories; this one only
// handles the free-form marketing copy addressed by (type, key).
type ContentRepo struct{ DB *sql.DB }

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{DB: db} }

const contentColumns = "id,content_type,content_key,title,subtitle,body,image_url,extra,created_by,updated_by,created_at,updated_at"

// ListByType returns every block of one content type, or all blocks when
// contentType is empty.
func (r *ContentRepo) ListByType(ctx context.Context, contentType string) ([]model.WebsiteContent, error) {
	q := "SELECT " + contentColumns + " FROM website_content"
	args := []any{}
	if contentType != "" {
		q += " WHERE content_type=?"
		args = append(args, contentType)
	}
	q += " ORDER BY content_type, content_key"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.WebsiteContent{}
	for rows.Next() {
		var w model.WebsiteContent
		if err := rows.Scan(&w.ID, &w.ContentType, &w.ContentKey, &w.Title, &w.Subtitle, &w.Body,
			&w.ImageURL, &w.Extra, &w.CreatedBy, &w.UpdatedBy, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

// Upsert writes a block keyed by (content_type, content_key) and returns
// the stored row.
func (r *ContentRepo) Upsert(ctx context.Context, w model.WebsiteContent) (model.WebsiteContent, error) {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO website_content
		   (content_type,content_key,title,subtitle,body,image_url,extra,created_by,updated_by)
		 VALUES (?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   title=VALUES(title), subtitle=VALUES(subtitle), body=VALUES(body),
		   image_url=VALUES(image_url), extra=VALUES(extra), updated_by=VALUES(updated_by)`,
		w.ContentType, w.ContentKey, w.Title, w.Subtitle, w.Body, w.ImageURL, w.Extra,
		w.CreatedBy, w.UpdatedBy)
	if err != nil {
		return model.WebsiteContent{}, err
	}

	var out model.WebsiteContent
	err = r.DB.QueryRowContext(ctx,
		"SELECT "+contentColumns+" FROM website_content WHERE content_type=? AND content_key=? LIMIT 1",
		w.ContentType, w.ContentKey).
		Scan(&out.ID, &out.ContentType, &out.ContentKey, &out.Title, &out.Subtitle, &out.Body,
			&out.ImageURL, &out.Extra, &out.CreatedBy, &out.UpdatedBy, &out.CreatedAt, &out.UpdatedAt)
	return out, err
}
