package entity

import "time"

// Activity represents an entry of the hospital's recent activity feed
type Activity struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Action      string    `gorm:"type:varchar(100);not null;index" json:"action"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Activity) TableName() string {
	return "activities"
}

// Common activity actions
const (
	ActivityPatientRegister      = "patient.register"
	ActivityLabResultUpdate      = "lab.result_update"
	ActivityEmergencyAdmission   = "patient.emergency_admission"
	ActivityMedicationAdminister = "medication.administer"
	ActivitySettingsUpdate       = "settings.update"
)
