package entity

// HospitalSettings holds the general information shown on the settings form
type HospitalSettings struct {
	HospitalName string `json:"hospital_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Website      string `json:"website"`
}

// NotificationPreferences holds the notification channel and alert toggles
type NotificationPreferences struct {
	Email            bool `json:"email"`
	SMS              bool `json:"sms"`
	Push             bool `json:"push"`
	System           bool `json:"system"`
	Appointments     bool `json:"appointments"`
	PatientAdmission bool `json:"patient_admission"`
	CriticalAlerts   bool `json:"critical_alerts"`
	Updates          bool `json:"updates"`
}

// Notification toggle keys
const (
	NotificationEmail            = "email"
	NotificationSMS              = "sms"
	NotificationPush             = "push"
	NotificationSystem           = "system"
	NotificationAppointments     = "appointments"
	NotificationPatientAdmission = "patient_admission"
	NotificationCriticalAlerts   = "critical_alerts"
	NotificationUpdates          = "updates"
)

// Toggle flips the preference identified by key. It returns false for unknown keys.
func (n *NotificationPreferences) Toggle(key string) bool {
	flag := n.field(key)
	if flag == nil {
		return false
	}
	*flag = !*flag
	return true
}

func (n *NotificationPreferences) field(key string) *bool {
	switch key {
	case NotificationEmail:
		return &n.Email
	case NotificationSMS:
		return &n.SMS
	case NotificationPush:
		return &n.Push
	case NotificationSystem:
		return &n.System
	case NotificationAppointments:
		return &n.Appointments
	case NotificationPatientAdmission:
		return &n.PatientAdmission
	case NotificationCriticalAlerts:
		return &n.CriticalAlerts
	case NotificationUpdates:
		return &n.Updates
	}
	return nil
}

// Settings groups everything the settings page renders
type Settings struct {
	General       HospitalSettings
	Notifications NotificationPreferences
}
