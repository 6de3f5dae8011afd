package model

import "time"

// Blog post workflow states.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

// BlogPost mirrors the `blog_posts` table. Public endpoints only ever see
// rows with status "published"; the admin endpoints can list any status.
type BlogPost struct {
	ID            uint64     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage string     `json:"featured_image"`
	Status        string     `json:"status"`
	PublishedAt   *time.Time `json:"published_at"`
	AuthorID      uint64     `json:"author_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Joined author name for list views.
	AuthorName string `json:"author_name,omitempty"`
}
