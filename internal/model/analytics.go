package model

import "time"

// Visitor is one tracked pageview on the marketing site.
type Visitor struct {
	ID         uint64    `json:"id"`
	SessionID  string    `json:"session_id"`
	PagePath   string    `json:"page_path"`
	Referrer   string    `json:"referrer"`
	UserAgent  string    `json:"user_agent"`
	IPAddress  string    `json:"ip_address"`
	DeviceType string    `json:"device_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// WhatsAppInteraction records a click on one of the WhatsApp deep-link
// buttons, keyed by where on the page the button lives.
type WhatsAppInteraction struct {
	ID             uint64    `json:"id"`
	SessionID      string    `json:"session_id"`
	ButtonLocation string    `json:"button_location"`
	PagePath       string    `json:"page_path"`
	CreatedAt      time.Time `json:"created_at"`
}

// ContactSubmission is one contact-form entry.
type ContactSubmission struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalyticsSummary aggregates visitor activity over a date range for the
// admin dashboard.
type AnalyticsSummary struct {
	TotalVisitors      int64            `json:"total_visitors"`
	UniqueSessions     int64            `json:"unique_sessions"`
	WhatsAppClicks     int64            `json:"whatsapp_clicks"`
	ContactSubmissions int64            `json:"contact_submissions"`
	PageViews          map[string]int64 `json:"page_views"`
}
