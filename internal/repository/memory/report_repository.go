package memory

import (
	"context"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"
)

// ReportData is the content served by the in-memory report repository
type ReportData struct {
	Metrics      []entity.ReportMetric
	Admissions   []entity.DepartmentAdmissions
	Demographics []entity.DemographicBucket
	Census       *entity.Census
}

type reportRepository struct {
	data ReportData
}

func NewReportRepository(data ReportData) domainRepo.ReportRepository {
	return &reportRepository{data: data}
}

func (r *reportRepository) Metrics(ctx context.Context) ([]entity.ReportMetric, error) {
	return clone(r.data.Metrics), ctx.Err()
}

func (r *reportRepository) Admissions(ctx context.Context) ([]entity.DepartmentAdmissions, error) {
	return clone(r.data.Admissions), ctx.Err()
}

func (r *reportRepository) Demographics(ctx context.Context) ([]entity.DemographicBucket, error) {
	return clone(r.data.Demographics), ctx.Err()
}

func (r *reportRepository) LatestCensus(ctx context.Context) (*entity.Census, error) {
	if r.data.Census == nil {
		return nil, ctx.Err()
	}
	census := *r.data.Census
	return &census, ctx.Err()
}
