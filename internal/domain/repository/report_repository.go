package repository

import (
	"context"

	"medcare-admin/internal/domain/entity"
)

type ReportRepository interface {
	Metrics(ctx context.Context) ([]entity.ReportMetric, error)
	Admissions(ctx context.Context) ([]entity.DepartmentAdmissions, error)
	Demographics(ctx context.Context) ([]entity.DemographicBucket, error)
	// LatestCensus returns nil when no snapshot was recorded
	LatestCensus(ctx context.Context) (*entity.Census, error)
}
