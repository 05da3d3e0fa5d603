package memory

import (
	"context"
	"sync"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"
)

// settingsRepository keeps the settings for the lifetime of the process only
type settingsRepository struct {
	mu       sync.RWMutex
	settings entity.Settings
}

func NewSettingsRepository(defaults entity.Settings) domainRepo.SettingsRepository {
	return &settingsRepository{settings: defaults}
}

func (r *settingsRepository) Get(ctx context.Context) (entity.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings, ctx.Err()
}

func (r *settingsRepository) SaveGeneral(ctx context.Context, general entity.HospitalSettings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.General = general
	return nil
}

func (r *settingsRepository) SaveNotifications(ctx context.Context, prefs entity.NotificationPreferences) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings.Notifications = prefs
	return nil
}

func (r *settingsRepository) ToggleNotification(ctx context.Context, key string) (entity.NotificationPreferences, bool, error) {
	if err := ctx.Err(); err != nil {
		return entity.NotificationPreferences{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	ok := r.settings.Notifications.Toggle(key)
	return r.settings.Notifications, ok, nil
}
