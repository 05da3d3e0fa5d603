package usecase

import (
	"context"
	"errors"
	"time"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
)

type AppointmentUsecase interface {
	// GetSchedule groups the appointments of date by time slot. An empty date selects no day.
	GetSchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error)
	// GetByDate lists the appointments of date without grouping. An empty date selects no day.
	GetByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	// Today returns the current calendar date in the configured location
	Today() string
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	policy          entity.SlotPolicy
	loc             *time.Location
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	policy entity.SlotPolicy,
	loc *time.Location,
) AppointmentUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		policy:          policy,
		loc:             loc,
		now:             time.Now,
	}
}

func (u *appointmentUsecase) GetSchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error) {
	appointments, err := u.findByDay(ctx, date)
	if err != nil {
		return nil, err
	}

	slots := entity.GroupByTimeSlot(appointments, u.policy)
	return &dto.ScheduleResponse{
		Date:   date,
		Policy: string(u.policy),
		Slots:  converter.TimeSlotsToResponses(slots, u.loc),
		Total:  len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	appointments, err := u.findByDay(ctx, date)
	if err != nil {
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Date:         date,
		Appointments: converter.AppointmentsToResponses(appointments, u.loc),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment, u.loc), nil
}

func (u *appointmentUsecase) Today() string {
	return u.now().In(u.loc).Format(dto.DateLayout)
}

func (u *appointmentUsecase) findByDay(ctx context.Context, date string) ([]entity.Appointment, error) {
	filter := &entity.AppointmentFilter{Location: u.loc}
	if date != "" {
		day, err := time.ParseInLocation(dto.DateLayout, date, u.loc)
		if err != nil {
			return nil, ErrInvalidDate
		}
		filter.Date = &day
	}

	appointments, err := u.appointmentRepo.FindByDay(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}
