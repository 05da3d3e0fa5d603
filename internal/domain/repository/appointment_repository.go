package repository

import (
	"context"
	"time"

	"medcare-admin/internal/domain/entity"
)

type AppointmentRepository interface {
	// FindByDay returns the appointments of the filter's day, or none when no day is selected
	FindByDay(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	// CountBetween counts appointments dated in [start, end)
	CountBetween(ctx context.Context, start, end time.Time) (int64, error)
}
