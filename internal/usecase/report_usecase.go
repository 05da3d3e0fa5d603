package usecase

import (
	"context"
	"errors"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"
	"medcare-admin/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidReportRange = errors.New("invalid report range, use week, month, quarter or year")
)

type ReportUsecase interface {
	// Get returns the report for the range, defaulting to month when empty
	Get(ctx context.Context, reportRange string) (*dto.ReportResponse, error)
}

type reportUsecase struct {
	log        *logrus.Logger
	reportRepo repository.ReportRepository
	cache      service.SnapshotCache
}

func NewReportUsecase(log *logrus.Logger, reportRepo repository.ReportRepository, cache service.SnapshotCache) ReportUsecase {
	return &reportUsecase{
		log:        log,
		reportRepo: reportRepo,
		cache:      cache,
	}
}

func (u *reportUsecase) Get(ctx context.Context, reportRange string) (*dto.ReportResponse, error) {
	r := entity.ReportRange(reportRange)
	if r == "" {
		r = entity.ReportRangeMonth
	}
	label := r.ComparisonLabel()
	if label == "" {
		return nil, ErrInvalidReportRange
	}

	key := service.ReportKey(string(r))
	var cached dto.ReportResponse
	found, err := u.cache.Get(ctx, key, &cached)
	if err != nil {
		u.log.Warnf("Failed to read report snapshot: %+v", err)
	}
	if found {
		return &cached, nil
	}

	metrics, err := u.reportRepo.Metrics(ctx)
	if err != nil {
		u.log.Warnf("Failed to find report metrics: %+v", err)
		return nil, err
	}
	admissions, err := u.reportRepo.Admissions(ctx)
	if err != nil {
		u.log.Warnf("Failed to find admissions: %+v", err)
		return nil, err
	}
	buckets, err := u.reportRepo.Demographics(ctx)
	if err != nil {
		u.log.Warnf("Failed to find demographics: %+v", err)
		return nil, err
	}

	demographics, total := converter.DemographicsToResponses(buckets)
	resp := &dto.ReportResponse{
		Range:           string(r),
		ComparisonLabel: label,
		Metrics:         converter.ReportMetricsToResponses(metrics),
		Admissions:      converter.AdmissionsToResponses(admissions),
		Demographics:    demographics,
		TotalPatients:   total,
	}

	if err := u.cache.Set(ctx, key, resp); err != nil {
		u.log.Warnf("Failed to cache report snapshot: %+v", err)
	}

	return resp, nil
}
