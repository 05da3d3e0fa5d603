package dto

// Request DTOs

type UpdateGeneralSettingsRequest struct {
	HospitalName string `json:"hospital_name" validate:"required,min=2"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required,min=10"`
	Address      string `json:"address" validate:"required,min=5"`
	Website      string `json:"website" validate:"required,url"`
}

type UpdateNotificationsRequest struct {
	Email            *bool `json:"email" validate:"required"`
	SMS              *bool `json:"sms" validate:"required"`
	Push             *bool `json:"push" validate:"required"`
	System           *bool `json:"system" validate:"required"`
	Appointments     *bool `json:"appointments" validate:"required"`
	PatientAdmission *bool `json:"patient_admission" validate:"required"`
	CriticalAlerts   *bool `json:"critical_alerts" validate:"required"`
	Updates          *bool `json:"updates" validate:"required"`
}

// Response DTOs

type GeneralSettingsResponse struct {
	HospitalName string `json:"hospital_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Website      string `json:"website"`
}

type NotificationsResponse struct {
	Email            bool `json:"email"`
	SMS              bool `json:"sms"`
	Push             bool `json:"push"`
	System           bool `json:"system"`
	Appointments     bool `json:"appointments"`
	PatientAdmission bool `json:"patient_admission"`
	CriticalAlerts   bool `json:"critical_alerts"`
	Updates          bool `json:"updates"`
}

type SettingsResponse struct {
	General       GeneralSettingsResponse `json:"general"`
	Notifications NotificationsResponse   `json:"notifications"`
}
