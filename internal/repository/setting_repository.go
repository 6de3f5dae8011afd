package repository

import (
	"context"
	"database/sql"

	"github.com/languagebaba/site-api/internal/model"
)

type SettingRepo struct{ DB *sql.DB }

func NewSettingRepo(db *sql.DB) *SettingRepo { return &SettingRepo{DB: db} }

// List returns every setting row.
func (r *SettingRepo) List(ctx context.Context) ([]model.Setting, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,setting_key,setting_value,description,updated_by,created_at,updated_at FROM settings ORDER BY setting_key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Setting{}
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.ID, &s.SettingKey, &s.Value, &s.Description, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Set upserts one setting value by key and returns the stored row.
func (r *SettingRepo) Set(ctx context.Context, key, value string, updatedBy uint64) (model.Setting, error) {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO settings (setting_key,setting_value,updated_by) VALUES (?,?,?)
		 ON DUPLICATE KEY UPDATE setting_value=VALUES(setting_value), updated_by=VALUES(updated_by)`,
		key, value, updatedBy)
	if err != nil {
		return model.Setting{}, err
	}
	var s model.Setting
	err = r.DB.QueryRowContext(ctx,
		"SELECT id,setting_key,setting_value,description,updated_by,created_at,updated_at FROM settings WHERE setting_key=? LIMIT 1",
		key).Scan(&s.ID, &s.SettingKey, &s.Value, &s.Description, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return s, ErrNotFound
	}
	return s, err
}
