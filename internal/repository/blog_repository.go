package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type BlogRepo struct{ DB *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{DB: db} }

const blogColumns = "b.id,b.title,b.slug,b.excerpt,b.content,b.featured_image,b.status,b.published_at,b.author_id,b.created_at,b.updated_at"

// List returns posts newest first. An empty status returns every post
// (admin view); the public endpoint always passes "published".
func (r *BlogRepo) List(ctx context.Context, status string, limit, offset int) ([]model.BlogPost, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	q := `SELECT ` + blogColumns + `, COALESCE(u.full_name,'')
	        FROM blog_posts b LEFT JOIN users u ON u.id = b.author_id`
	args := []any{}
	if status != "" {
		q += " WHERE b.status=?"
		args = append(args, status)
	}
	q += " ORDER BY b.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BlogPost{}
	for rows.Next() {
		var p model.BlogPost
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
			&p.Status, &p.PublishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetBySlug fetches one post by its public slug. Only published posts
// are visible through this lookup; drafts stay admin-only even when the
// slug is guessed.
func (r *BlogRepo) GetBySlug(ctx context.Context, slug string) (model.BlogPost, error) {
	var p model.BlogPost
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+blogColumns+`, COALESCE(u.full_name,'')
		   FROM blog_posts b LEFT JOIN users u ON u.id = b.author_id
		  WHERE b.slug=? AND b.status='published' LIMIT 1`, slug).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
			&p.Status, &p.PublishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// GetByID fetches one post regardless of status (admin view).
func (r *BlogRepo) GetByID(ctx context.Context, id uint64) (model.BlogPost, error) {
	var p model.BlogPost
	err := r.DB.QueryRowContext(ctx,
		`SELECT `+blogColumns+`, COALESCE(u.full_name,'')
		   FROM blog_posts b LEFT JOIN users u ON u.id = b.author_id
		  WHERE b.id=? LIMIT 1`, id).
		Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
			&p.Status, &p.PublishedAt, &p.AuthorID, &p.CreatedAt, &p.UpdatedAt, &p.AuthorName)
	if err == sql.ErrNoRows {
		return p, ErrNotFound
	}
	return p, err
}

// Create inserts a post and returns its ID. published_at is stamped when
// the post is born published.
func (r *BlogRepo) Create(ctx context.Context, p model.BlogPost) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO blog_posts (title,slug,excerpt,content,featured_image,status,published_at,author_id)
		 VALUES (?,?,?,?,?,?, CASE WHEN ?='published' THEN NOW() ELSE NULL END, ?)`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, p.Status, p.Status, p.AuthorID)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// Update rewrites a post. The first transition into "published" stamps
// published_at; later edits keep the original publication time.
func (r *BlogRepo) Update(ctx context.Context, p model.BlogPost) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE blog_posts SET title=?,slug=?,excerpt=?,content=?,featured_image=?,status=?,
		        published_at = CASE WHEN ?='published' AND published_at IS NULL THEN NOW() ELSE published_at END
		  WHERE id=?`,
		p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, p.Status, p.Status, p.ID)
	if err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a post.
func (r *BlogRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM blog_posts WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
