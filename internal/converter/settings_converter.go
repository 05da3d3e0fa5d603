package converter

import (
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
)

func SettingsToResponse(settings entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		General: dto.GeneralSettingsResponse{
			HospitalName: settings.General.HospitalName,
			Email:        settings.General.Email,
			Phone:        settings.General.Phone,
			Address:      settings.General.Address,
			Website:      settings.General.Website,
		},
		Notifications: NotificationsToResponse(settings.Notifications),
	}
}

func NotificationsToResponse(prefs entity.NotificationPreferences) dto.NotificationsResponse {
	return dto.NotificationsResponse{
		Email:            prefs.Email,
		SMS:              prefs.SMS,
		Push:             prefs.Push,
		System:           prefs.System,
		Appointments:     prefs.Appointments,
		PatientAdmission: prefs.PatientAdmission,
		CriticalAlerts:   prefs.CriticalAlerts,
		Updates:          prefs.Updates,
	}
}

// GeneralSettingsFromRequest converts a validated request into the entity
func GeneralSettingsFromRequest(req *dto.UpdateGeneralSettingsRequest) entity.HospitalSettings {
	return entity.HospitalSettings{
		HospitalName: req.HospitalName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Website:      req.Website,
	}
}

// NotificationsFromRequest converts a validated request into the entity.
// Every field must be set; validation guarantees that.
func NotificationsFromRequest(req *dto.UpdateNotificationsRequest) entity.NotificationPreferences {
	return entity.NotificationPreferences{
		Email:            *req.Email,
		SMS:              *req.SMS,
		Push:             *req.Push,
		System:           *req.System,
		Appointments:     *req.Appointments,
		PatientAdmission: *req.PatientAdmission,
		CriticalAlerts:   *req.CriticalAlerts,
		Updates:          *req.Updates,
	}
}
