package entity

// PatientStatus represents the clinical status shown in the patient table
type PatientStatus string

const (
	PatientStatusActive     PatientStatus = "Active"
	PatientStatusCritical   PatientStatus = "Critical"
	PatientStatusRecovering PatientStatus = "Recovering"
)

// Valid checks the status is one of the known literals
func (s PatientStatus) Valid() bool {
	switch s {
	case PatientStatusActive, PatientStatusCritical, PatientStatusRecovering:
		return true
	}
	return false
}

// Patient represents a registered patient record
type Patient struct {
	ID     string        `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name   string        `gorm:"type:varchar(255);not null;index" json:"name"`
	Age    int           `gorm:"not null" json:"age"`
	Gender string        `gorm:"type:varchar(16);not null" json:"gender"`
	Phone  string        `gorm:"type:varchar(20);index" json:"phone"`
	Status PatientStatus `gorm:"type:varchar(16);not null;index" json:"status"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsCritical checks if the patient is in critical condition
func (p *Patient) IsCritical() bool {
	return p.Status == PatientStatusCritical
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)
