package usecase

import (
	"context"
	"time"

	"medcare-admin/internal/converter"
	"medcare-admin/internal/delivery/dto"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/domain/repository"
	"medcare-admin/internal/service"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// weeks start on Monday for the "appointments this week" card
var weekConfig = &now.Config{WeekStartDay: time.Monday}

type DashboardUsecase interface {
	Get(ctx context.Context) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	activityRepo    repository.ActivityRepository
	reportRepo      repository.ReportRepository
	cache           service.SnapshotCache
	loc             *time.Location
	now             func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	activityRepo repository.ActivityRepository,
	reportRepo repository.ReportRepository,
	cache service.SnapshotCache,
	loc *time.Location,
) DashboardUsecase {
	if loc == nil {
		loc = time.Local
	}
	return &dashboardUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		activityRepo:    activityRepo,
		reportRepo:      reportRepo,
		cache:           cache,
		loc:             loc,
		now:             time.Now,
	}
}

// Get assembles the dashboard. The independent reads run concurrently and
// the result is cached per calendar day.
func (u *dashboardUsecase) Get(ctx context.Context) (*dto.DashboardResponse, error) {
	current := u.now().In(u.loc)
	key := service.DashboardKey(current)

	var cached dto.DashboardResponse
	found, err := u.cache.Get(ctx, key, &cached)
	if err != nil {
		u.log.Warnf("Failed to read dashboard snapshot: %+v", err)
	}
	if found {
		return &cached, nil
	}

	resp := &dto.DashboardResponse{
		OccupancyRate: decimal.Zero,
		GeneratedAt:   current,
	}
	var (
		today      []entity.Appointment
		activities []entity.Activity
		census     *entity.Census
	)

	weekStart := weekConfig.With(current).BeginningOfWeek()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.TotalPatients, err = u.patientRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.CriticalPatients, err = u.patientRepo.CountByStatus(gctx, entity.PatientStatusCritical)
		return err
	})
	g.Go(func() (err error) {
		resp.TotalDoctors, err = u.doctorRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.AvailableDoctors, err = u.doctorRepo.CountByStatus(gctx, entity.DoctorStatusAvailable)
		return err
	})
	g.Go(func() (err error) {
		resp.AppointmentsThisWeek, err = u.appointmentRepo.CountBetween(gctx, weekStart, weekStart.AddDate(0, 0, 7))
		return err
	})
	g.Go(func() (err error) {
		today, err = u.appointmentRepo.FindByDay(gctx, &entity.AppointmentFilter{Date: &current, Location: u.loc})
		return err
	})
	g.Go(func() (err error) {
		activities, err = u.activityRepo.FindRecent(gctx, DefaultActivityLimit)
		return err
	})
	g.Go(func() (err error) {
		census, err = u.reportRepo.LatestCensus(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to assemble dashboard: %+v", err)
		return nil, err
	}

	if census != nil {
		resp.OccupancyRate = census.OccupancyRate()
	}

	resp.AppointmentsByStatus = make(map[string]int, len(entity.AppointmentStatuses))
	for _, status := range entity.AppointmentStatuses {
		resp.AppointmentsByStatus[string(status)] = 0
	}
	upcoming := make([]entity.Appointment, 0, len(today))
	for i := range today {
		resp.AppointmentsByStatus[string(today[i].Status)]++
		if today[i].IsUpcoming() {
			upcoming = append(upcoming, today[i])
		}
	}
	resp.UpcomingAppointments = converter.AppointmentsToResponses(upcoming, u.loc)
	resp.RecentActivities = converter.ActivitiesToResponses(activities, current)

	if err := u.cache.Set(ctx, key, resp); err != nil {
		u.log.Warnf("Failed to cache dashboard snapshot: %+v", err)
	}

	return resp, nil
}
