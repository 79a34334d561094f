package store

import (
	"context"

	"nexus-backend-go/internal/models"
)

type SettingPatch struct {
	Value       Field[string]  `json:"value"`
	Description Field[*string] `json:"description"`
}

func (p SettingPatch) changes() Changes {
	var c Changes
	setField(&c, "value", p.Value)
	setField(&c, "description", p.Description)
	return c
}

// UpsertSetting creates the setting or overwrites value and description of
// the existing row with the same key.
func (s *Store) UpsertSetting(ctx context.Context, setting *models.SiteSetting) (*models.SiteSetting, error) {
	now := s.timestamp()
	setting.ID = newID()
	setting.CreatedAt = now
	setting.UpdatedAt = now
	_, err := s.db.NamedExecContext(ctx, `
INSERT INTO site_settings (id, setting_key, value, description, created_at, updated_at)
VALUES (:id, :setting_key, :value, :description, :created_at, :updated_at)
ON CONFLICT (setting_key) DO UPDATE
SET value = excluded.value, description = excluded.description, updated_at = excluded.updated_at`, setting)
	if err != nil {
		return nil, err
	}
	return s.SettingByKey(ctx, setting.Key)
}

func (s *Store) Setting(ctx context.Context, id string) (*models.SiteSetting, error) {
	return getRow[models.SiteSetting](ctx, s, `SELECT * FROM site_settings WHERE id = ?`, id)
}

func (s *Store) SettingByKey(ctx context.Context, key string) (*models.SiteSetting, error) {
	return getRow[models.SiteSetting](ctx, s, `SELECT * FROM site_settings WHERE setting_key = ?`, key)
}

func (s *Store) ListSettings(ctx context.Context) ([]models.SiteSetting, error) {
	return listRows[models.SiteSetting](ctx, s, `SELECT * FROM site_settings ORDER BY setting_key ASC`)
}

func (s *Store) UpdateSetting(ctx context.Context, id string, patch SettingPatch) (*models.SiteSetting, error) {
	if err := s.update(ctx, "site_settings", id, patch.changes()); err != nil {
		return nil, err
	}
	return s.Setting(ctx, id)
}

func (s *Store) DeleteSetting(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "site_settings", id)
}
