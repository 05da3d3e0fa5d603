package dto

import "github.com/shopspring/decimal"

// Request DTOs

type ReportQuery struct {
	Range string `validate:"omitempty,oneof=week month quarter year"`
}

// Response DTOs

type ReportMetricResponse struct {
	Key    string          `json:"key"`
	Title  string          `json:"title"`
	Value  string          `json:"value"`
	Change decimal.Decimal `json:"change"`
	Trend  string          `json:"trend"`
}

type AdmissionsResponse struct {
	Department string `json:"department"`
	Admitted   int    `json:"admitted"`
	Discharged int    `json:"discharged"`
}

type DemographicResponse struct {
	Name  string          `json:"name"`
	Value int             `json:"value"`
	Share decimal.Decimal `json:"share"`
}

type ReportResponse struct {
	Range           string                 `json:"range"`
	ComparisonLabel string                 `json:"comparison_label"`
	Metrics         []ReportMetricResponse `json:"metrics"`
	Admissions      []AdmissionsResponse   `json:"admissions"`
	Demographics    []DemographicResponse  `json:"demographics"`
	TotalPatients   int                    `json:"total_patients"`
}
