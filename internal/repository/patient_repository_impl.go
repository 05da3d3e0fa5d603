package repository

import (
	"context"
	"errors"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) FindAll(ctx context.Context, filter *entity.PatientFilter) ([]entity.Patient, error) {
	patients := []entity.Patient{}
	query := r.db.WithContext(ctx).Model(&entity.Patient{})

	if filter != nil && filter.Query != "" {
		pattern := containsPattern(filter.Query)
		query = query.Where(
			r.db.Where(lowerLike("name"), pattern).
				Or(lowerLike("id"), pattern).
				Or(lowerLike("phone"), pattern),
		)
	}

	if err := query.Order("id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

func (r *patientRepository) CountByStatus(ctx context.Context, status entity.PatientStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Patient{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
