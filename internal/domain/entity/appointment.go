package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusInProgress AppointmentStatus = "in-progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every status in display order
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusInProgress,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// Valid checks the status is one of the known literals
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusInProgress, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Label returns the display form, e.g. "in-progress" -> "In Progress"
func (s AppointmentStatus) Label() string {
	return hyphenLabel(string(s))
}

// Appointment represents a scheduled visit.
// PatientID and DoctorName are free text copied from the booking, not foreign keys.
type Appointment struct {
	ID          string            `gorm:"type:varchar(32);primaryKey" json:"id"`
	PatientName string            `gorm:"type:varchar(255);not null" json:"patient_name"`
	PatientID   string            `gorm:"type:varchar(32);index" json:"patient_id"`
	DoctorName  string            `gorm:"type:varchar(255);not null" json:"doctor_name"`
	Department  string            `gorm:"type:varchar(100);not null" json:"department"`
	Date        time.Time         `gorm:"not null;index" json:"date"`
	Time        string            `gorm:"type:varchar(16);not null" json:"time"`
	Status      AppointmentStatus `gorm:"type:varchar(16);not null;default:'scheduled';index" json:"status"`
	Reason      string            `gorm:"type:text" json:"reason"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsUpcoming checks if the appointment still needs the doctor's attention
func (a *Appointment) IsUpcoming() bool {
	return a.Status == AppointmentStatusScheduled || a.Status == AppointmentStatusInProgress
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
