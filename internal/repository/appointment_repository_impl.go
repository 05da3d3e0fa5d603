package repository

import (
	"context"
	"errors"
	"time"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindByDay(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	appointments := []entity.Appointment{}
	if filter == nil || filter.Date == nil {
		return appointments, nil
	}

	start, end := filter.DayRange()
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", start, end).
		Order("id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("date >= ? AND date < ?", start, end).
		Count(&total).Error
	return total, err
}
