package model

import "time"

// AuthorizedDevice mirrors the `authorized_devices` table. Access to the
// admin API is restricted to devices present in this allow-list. The
// fingerprint is an opaque client-computed string and is unique per row.
// A NULL IPAddress means the device may connect from any IP; otherwise
// the caller IP must match exactly.
type AuthorizedDevice struct {
	ID           uint64     `json:"id"`
	Fingerprint  string     `json:"device_fingerprint"`
	DeviceName   string     `json:"device_name"`
	IPAddress    *string    `json:"ip_address"`
	Description  string     `json:"description"`
	IsActive     bool       `json:"is_active"`
	LastAccess   time.Time  `json:"last_access"`
	AuthorizedBy uint64     `json:"authorized_by"`
	CreatedAt    time.Time  `json:"created_at"`
	AuthorizedByName string `json:"authorized_by_name,omitempty"`
}
