package usecase

import (
	"context"
	"errors"
	"fmt"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"
	"medcare-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownNotification = errors.New("unknown notification setting")
)

type SettingsUsecase interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	UpdateGeneral(ctx context.Context, req *dto.UpdateGeneralSettingsRequest) (*dto.SettingsResponse, error)
	UpdateNotifications(ctx context.Context, req *dto.UpdateNotificationsRequest) (*dto.SettingsResponse, error)
	ToggleNotification(ctx context.Context, key string) (*dto.NotificationsResponse, error)
}

type settingsUsecase struct {
	log             *logrus.Logger
	settingsRepo    repository.SettingsRepository
	activityService service.ActivityService
}

func NewSettingsUsecase(log *logrus.Logger, settingsRepo repository.SettingsRepository, activityService service.ActivityService) SettingsUsecase {
	return &settingsUsecase{
		log:             log,
		settingsRepo:    settingsRepo,
		activityService: activityService,
	}
}

func (u *settingsUsecase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := u.settingsRepo.Get(ctx)
	if err != nil {
		u.log.Warnf("Failed to get settings: %+v", err)
		return nil, err
	}
	return converter.SettingsToResponse(settings), nil
}

func (u *settingsUsecase) UpdateGeneral(ctx context.Context, req *dto.UpdateGeneralSettingsRequest) (*dto.SettingsResponse, error) {
	if err := u.settingsRepo.SaveGeneral(ctx, converter.GeneralSettingsFromRequest(req)); err != nil {
		u.log.Warnf("Failed to save general settings: %+v", err)
		return nil, err
	}

	u.record(ctx, "General settings updated", fmt.Sprintf("Hospital information for %s was changed", req.HospitalName))
	return u.Get(ctx)
}

func (u *settingsUsecase) UpdateNotifications(ctx context.Context, req *dto.UpdateNotificationsRequest) (*dto.SettingsResponse, error) {
	if err := u.settingsRepo.SaveNotifications(ctx, converter.NotificationsFromRequest(req)); err != nil {
		u.log.Warnf("Failed to save notification settings: %+v", err)
		return nil, err
	}

	u.record(ctx, "Notification settings updated", "Notification preferences were replaced")
	return u.Get(ctx)
}

func (u *settingsUsecase) ToggleNotification(ctx context.Context, key string) (*dto.NotificationsResponse, error) {
	prefs, ok, err := u.settingsRepo.ToggleNotification(ctx, key)
	if err != nil {
		u.log.Warnf("Failed to toggle notification: %+v", err)
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownNotification
	}

	u.record(ctx, "Notification setting toggled", fmt.Sprintf("Notification %q was toggled", key))
	resp := converter.NotificationsToResponse(prefs)
	return &resp, nil
}

// record adds the change to the activity feed. The change itself already
// succeeded so a failure here is only logged.
func (u *settingsUsecase) record(ctx context.Context, title, description string) {
	if err := u.activityService.Record(ctx, entity.ActivitySettingsUpdate, title, description); err != nil {
		u.log.Warnf("Failed to record settings activity: %+v", err)
	}
}
