package model

import "time"

// SEOSetting mirrors the `seo_settings` table. One row per page type, or
// per (page_type, page_identifier) when a page has multiple instances
// (e.g. individual blog posts). Written with upsert semantics.
type SEOSetting struct {
	ID              uint64    `json:"id"`
	PageType        string    `json:"page_type"`
	PageIdentifier  *string   `json:"page_identifier"`
	MetaTitle       string    `json:"meta_title"`
	MetaDescription string    `json:"meta_description"`
	MetaKeywords    string    `json:"meta_keywords"`
	OGTitle         string    `json:"og_title"`
	OGDescription   string    `json:"og_description"`
	OGImage         string    `json:"og_image"`
	CanonicalURL    string    `json:"canonical_url"`
	UpdatedBy       uint64    `json:"updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Setting is one key/value row of the `settings` table (site title,
// WhatsApp number, contact email, ...).
type Setting struct {
	ID          uint64    `json:"id"`
	SettingKey  string    `json:"setting_key"`
	Value       string    `json:"setting_value"`
	Description string    `json:"description"`
	UpdatedBy   uint64    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
