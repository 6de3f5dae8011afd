package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type SEORepo struct{ DB *sql.DB }

func NewSEORepo(db *sql.DB) *SEORepo { return &SEORepo{DB: db} }

const seoColumns = "id,page_type,page_identifier,meta_title,meta_description,meta_keywords,og_title,og_description,og_image,canonical_url,updated_by,created_at,updated_at"

// Get fetches the SEO row for a page. pageIdentifier is nil for
// singleton pages (home, pricing) and set for per-instance pages such as
// individual blog posts.
func (r *SEORepo) Get(ctx context.Context, pageType string, pageIdentifier *string) (model.SEOSetting, error) {
	var s model.SEOSetting
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+seoColumns+" FROM seo_settings WHERE page_type=? AND (page_identifier <=> ?) LIMIT 1",
		pageType, pageIdentifier).
		Scan(&s.ID, &s.PageType, &s.PageIdentifier, &s.MetaTitle, &s.MetaDescription, &s.MetaKeywords,
			&s.OGTitle, &s.OGDescription, &s.OGImage, &s.CanonicalURL, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}

// Upsert writes SEO settings keyed by (page_type, page_identifier) and
// returns the stored row.
func (r *SEORepo) Upsert(ctx context.Context, s model.SEOSetting) (model.SEOSetting, error) {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO seo_settings
		   (page_type,page_identifier,meta_title,meta_description,meta_keywords,og_title,og_description,og_image,canonical_url,updated_by)
		 VALUES (?,?,?,?,?,?,?,?,?,?)
		 ON DUPLICATE KEY UPDATE
		   meta_title=VALUES(meta_title), meta_description=VALUES(meta_description),
		   meta_keywords=VALUES(meta_keywords), og_title=VALUES(og_title),
		   og_description=VALUES(og_description), og_image=VALUES(og_image),
		   canonical_url=VALUES(canonical_url), updated_by=VALUES(updated_by)`,
		s.PageType, s.PageIdentifier, s.MetaTitle, s.MetaDescription, s.MetaKeywords,
		s.OGTitle, s.OGDescription, s.OGImage, s.CanonicalURL, s.UpdatedBy)
	if err != nil {
		return model.SEOSetting{}, err
	}
	return r.Get(ctx, s.PageType, s.PageIdentifier)
}
