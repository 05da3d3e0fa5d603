package memory

import (
	"context"
	"time"

	"medcare-admin/internal/domain/entity"
	domainRepo "medcare-admin/internal/domain/repository"
)

type appointmentRepository struct {
	appointments []entity.Appointment
}

func NewAppointmentRepository(appointments []entity.Appointment) domainRepo.AppointmentRepository {
	return &appointmentRepository{appointments: clone(appointments)}
}

func (r *appointmentRepository) FindByDay(ctx context.Context, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return entity.FilterAppointments(r.appointments, filter), nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			appointment := r.appointments[i]
			return &appointment, nil
		}
	}
	return nil, nil
}

func (r *appointmentRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return count(r.appointments, func(a *entity.Appointment) bool {
		return !a.Date.Before(start) && a.Date.Before(end)
	}), ctx.Err()
}
