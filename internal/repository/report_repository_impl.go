package repository

import (
	"context"
	"errors"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Metrics(ctx context.Context) ([]entity.ReportMetric, error) {
	metrics := []entity.ReportMetric{}
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

func (r *reportRepository) Admissions(ctx context.Context) ([]entity.DepartmentAdmissions, error) {
	admissions := []entity.DepartmentAdmissions{}
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&admissions).Error; err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *reportRepository) Demographics(ctx context.Context) ([]entity.DemographicBucket, error) {
	buckets := []entity.DemographicBucket{}
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&buckets).Error; err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *reportRepository) LatestCensus(ctx context.Context) (*entity.Census, error) {
	var census entity.Census
	err := r.db.WithContext(ctx).Order("recorded_at DESC").First(&census).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &census, nil
}
