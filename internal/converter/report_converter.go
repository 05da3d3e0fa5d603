package converter

import (
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func ReportMetricsToResponses(metrics []entity.ReportMetric) []dto.ReportMetricResponse {
	responses := make([]dto.ReportMetricResponse, len(metrics))
	for i, m := range metrics {
		responses[i] = dto.ReportMetricResponse{
			Key:    m.Key,
			Title:  m.Title,
			Value:  m.Value,
			Change: m.Change,
			Trend:  string(entity.TrendOf(m.Change)),
		}
	}
	return responses
}

func AdmissionsToResponses(admissions []entity.DepartmentAdmissions) []dto.AdmissionsResponse {
	responses := make([]dto.AdmissionsResponse, len(admissions))
	for i, a := range admissions {
		responses[i] = dto.AdmissionsResponse{
			Department: a.Department,
			Admitted:   a.Admitted,
			Discharged: a.Discharged,
		}
	}
	return responses
}

// DemographicsToResponses attaches each bucket's whole-number percentage of the total.
// It also returns the total so callers can render it.
func DemographicsToResponses(buckets []entity.DemographicBucket) ([]dto.DemographicResponse, int) {
	total := 0
	for _, b := range buckets {
		total += b.Value
	}

	responses := make([]dto.DemographicResponse, len(buckets))
	for i, b := range buckets {
		share := decimal.Zero
		if total > 0 {
			share = decimal.NewFromInt(int64(b.Value)).
				Mul(decimal.NewFromInt(100)).
				Div(decimal.NewFromInt(int64(total))).
				Round(0)
		}
		responses[i] = dto.DemographicResponse{
			Name:  b.Name,
			Value: b.Value,
			Share: share,
		}
	}
	return responses, total
}
