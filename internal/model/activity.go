package model

import "time"

// Severity levels for activity log entries.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityDanger  = "danger"
)

// ActivityLog mirrors the `activity_logs` table. Entries are written
// fire-and-forget: a failed write is logged and never surfaced to the
// request that produced it. UserID is nil for unauthenticated actors
// (e.g. rejected device-guard attempts).
type ActivityLog struct {
	ID           string    `json:"id"` // uuid
	UserID       *uint64   `json:"user_id"`
	ActivityType string    `json:"activity_type"`
	Action       string    `json:"action"`
	Description  string    `json:"description"`
	Severity     string    `json:"severity"`
	IPAddress    *string   `json:"ip_address"`
	UserAgent    *string   `json:"user_agent"`
	CreatedAt    time.Time `json:"created_at"`

	// Joined from users for list views; empty when UserID is nil.
	Username string `json:"username,omitempty"`
	FullName string `json:"full_name,omitempty"`
}
