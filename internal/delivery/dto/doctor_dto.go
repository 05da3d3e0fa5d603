package dto

import "github.com/shopspring/decimal"

// Request DTOs

type DoctorListQuery struct {
	Search     string `validate:"max=100"`
	Department string `validate:"max=100"`
}

// Response DTOs

type DoctorResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Department     string          `json:"department"`
	Specialization string          `json:"specialization"`
	Experience     int             `json:"experience"`
	Patients       int             `json:"patients"`
	Rating         decimal.Decimal `json:"rating"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	Status         string          `json:"status"`
	StatusLabel    string          `json:"status_label"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DepartmentListResponse struct {
	Departments []string `json:"departments"`
}
