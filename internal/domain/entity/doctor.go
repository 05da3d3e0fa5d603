package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DoctorStatus represents the availability of a doctor
type DoctorStatus string

const (
	DoctorStatusAvailable DoctorStatus = "available"
	DoctorStatusInClinic  DoctorStatus = "in-clinic"
	DoctorStatusOnLeave   DoctorStatus = "on-leave"
)

// Valid checks the status is one of the known literals
func (s DoctorStatus) Valid() bool {
	switch s {
	case DoctorStatusAvailable, DoctorStatusInClinic, DoctorStatusOnLeave:
		return true
	}
	return false
}

// Label returns the display form, e.g. "in-clinic" -> "In Clinic"
func (s DoctorStatus) Label() string {
	return hyphenLabel(string(s))
}

// Doctor represents a member of the medical staff directory
type Doctor struct {
	ID             string          `gorm:"type:varchar(32);primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Department     string          `gorm:"type:varchar(100);not null;index" json:"department"`
	Specialization string          `gorm:"type:varchar(100);not null" json:"specialization"`
	Experience     int             `gorm:"not null" json:"experience"`
	Patients       int             `gorm:"not null;default:0" json:"patients"`
	Rating         decimal.Decimal `gorm:"type:decimal(3,1);not null" json:"rating"`
	Email          string          `gorm:"type:varchar(255);not null" json:"email"`
	Phone          string          `gorm:"type:varchar(20)" json:"phone"`
	Status         DoctorStatus    `gorm:"type:varchar(16);not null;index" json:"status"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsAvailable checks if the doctor can take patients right now
func (d *Doctor) IsAvailable() bool {
	return d.Status == DoctorStatusAvailable
}

// Departments returns the distinct departments in order of first occurrence
func Departments(doctors []Doctor) []string {
	seen := make(map[string]struct{}, len(doctors))
	departments := make([]string, 0)
	for _, d := range doctors {
		if _, ok := seen[d.Department]; ok {
			continue
		}
		seen[d.Department] = struct{}{}
		departments = append(departments, d.Department)
	}
	return departments
}

func hyphenLabel(s string) string {
	words := strings.Split(s, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
