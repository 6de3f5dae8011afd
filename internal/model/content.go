package model

import "time"

// WebsiteContent is a keyed block of editable marketing copy (hero text,
// section headings, CTA labels). Rows are addressed by (content_type,
// content_key) and written with upsert semantics.
type WebsiteContent struct {
	ID          uint64    `json:"id"`
	ContentType string    `json:"content_type"`
	ContentKey  string    `json:"content_key"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Body        string    `json:"body"`
	ImageURL    string    `json:"image_url"`
	Extra       string    `json:"extra"` // free-form JSON blob for section-specific fields
	CreatedBy   uint64    `json:"created_by"`
	UpdatedBy   uint64    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Benefit is one card in the "why choose us" section.
type Benefit struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   uint64    `json:"created_by"`
	UpdatedBy   uint64    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Testimonial is a student quote shown on the marketing site.
type Testimonial struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Content     string    `json:"content"`
	Rating      int       `json:"rating"`
	IsFeatured  bool      `json:"is_featured"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   uint64    `json:"created_by"`
	UpdatedBy   uint64    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// FAQ is a question/answer pair in the FAQ section.
type FAQ struct {
	ID         uint64    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	OrderIndex int       `json:"order_index"`
	IsActive   bool      `json:"is_active"`
	CreatedBy  uint64    `json:"created_by"`
	UpdatedBy  uint64    `json:"updated_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
