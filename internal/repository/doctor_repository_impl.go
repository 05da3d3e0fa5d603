package repository

import (
	"context"
	"errors"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

// FindAll supports an exact department filter combined with a name or specialization search
func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.DoctorFilter) ([]entity.Doctor, error) {
	doctors := []entity.Doctor{}
	query := r.db.WithContext(ctx).Model(&entity.Doctor{})

	if filter != nil {
		if filter.Department != "" {
			query = query.Where("department = ?", filter.Department)
		}
		if filter.Query != "" {
			pattern := containsPattern(filter.Query)
			query = query.Where(
				r.db.Where(lowerLike("name"), pattern).
					Or(lowerLike("specialization"), pattern),
			)
		}
	}

	if err := query.Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// Departments orders departments by the first doctor listed in each
func (r *doctorRepository) Departments(ctx context.Context) ([]string, error) {
	departments := []string{}
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).
		Select("department").
		Group("department").
		Order("MIN(id) ASC").
		Pluck("department", &departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Count(&total).Error
	return total, err
}

func (r *doctorRepository) CountByStatus(ctx context.Context, status entity.DoctorStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Doctor{}).Where("status = ?", status).Count(&total).Error
	return total, err
}
