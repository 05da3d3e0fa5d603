package repository

import (
	"context"

	"medcare-admin/internal/domain/entity"
)

type SettingsRepository interface {
	Get(ctx context.Context) (entity.Settings, error)
	SaveGeneral(ctx context.Context, general entity.HospitalSettings) error
	SaveNotifications(ctx context.Context, prefs entity.NotificationPreferences) error
	// ToggleNotification flips one preference and reports false for an unknown key
	ToggleNotification(ctx context.Context, key string) (entity.NotificationPreferences, bool, error)
}
