package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type DeviceRepo struct{ DB *sql.DB }

func NewDeviceRepo(db *sql.DB) *DeviceRepo { return &DeviceRepo{DB: db} }

const deviceColumns = "id,device_fingerprint,device_name,ip_address,description,is_active,last_access,authorized_by,created_at"

func scanDevice(row interface{ Scan(...any) error }) (model.AuthorizedDevice, error) {
	var d model.AuthorizedDevice
	err := row.Scan(&d.ID, &d.Fingerprint, &d.DeviceName, &d.IPAddress, &d.Description,
		&d.IsActive, &d.LastAccess, &d.AuthorizedBy, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return d, ErrNotFound
	}
	return d, err
}

// GetByFingerprint fetches the allow-list entry for a fingerprint. The
// fingerprint column is unique, so the device guard sees at most one
// candidate and applies the active/IP checks itself.
func (r *DeviceRepo) GetByFingerprint(ctx context.Context, fp string) (model.AuthorizedDevice, error) {
	return scanDevice(r.DB.QueryRowContext(ctx,
		"SELECT "+deviceColumns+" FROM authorized_devices WHERE device_fingerprint=? LIMIT 1", fp))
}

// GetByID fetches a device row by primary key.
func (r *DeviceRepo) GetByID(ctx context.Context, id uint64) (model.AuthorizedDevice, error) {
	return scanDevice(r.DB.QueryRowContext(ctx,
		"SELECT "+deviceColumns+" FROM authorized_devices WHERE id=? LIMIT 1", id))
}

// List returns every device, most recently seen first, with the
// authorizing admin's name joined in for display.
func (r *DeviceRepo) List(ctx context.Context) ([]model.AuthorizedDevice, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT d.id,d.device_fingerprint,d.device_name,d.ip_address,d.description,
		        d.is_active,d.last_access,d.authorized_by,d.created_at,
		        COALESCE(u.full_name,'')
		   FROM authorized_devices d
		   LEFT JOIN users u ON u.id = d.authorized_by
		   ORDER BY d.last_access DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.AuthorizedDevice{}
	for rows.Next() {
		var d model.AuthorizedDevice
		if err := rows.Scan(&d.ID, &d.Fingerprint, &d.DeviceName, &d.IPAddress, &d.Description,
			&d.IsActive, &d.LastAccess, &d.AuthorizedBy, &d.CreatedAt, &d.AuthorizedByName); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Upsert authorizes a device, keyed by fingerprint. Re-authorizing an
// existing fingerprint reactivates it and refreshes its metadata.
func (r *DeviceRepo) Upsert(ctx context.Context, d model.AuthorizedDevice) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO authorized_devices
		   (device_fingerprint,device_name,ip_address,description,is_active,last_access,authorized_by)
		 VALUES (?,?,?,?,TRUE,NOW(),?)
		 ON DUPLICATE KEY UPDATE
		   device_name=VALUES(device_name), ip_address=VALUES(ip_address),
		   description=VALUES(description), is_active=TRUE,
		   last_access=NOW(), authorized_by=VALUES(authorized_by)`,
		d.Fingerprint, d.DeviceName, d.IPAddress, d.Description, d.AuthorizedBy)
	return err
}

// TouchAccess refreshes last_access for a fingerprint. Called on every
// allowed request from a goroutine; failures are logged by the caller
// and never propagate.
func (r *DeviceRepo) TouchAccess(ctx context.Context, fp string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE authorized_devices SET last_access=NOW() WHERE device_fingerprint=?", fp)
	return err
}

// Revoke deactivates a device without deleting its row, preserving the
// audit trail of when it was last seen.
func (r *DeviceRepo) Revoke(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE authorized_devices SET is_active=FALSE WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
