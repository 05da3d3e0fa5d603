package bootstrap

import (
	"time"

	domainRepo "medcare-admin/internal/domain/repository"
	"medcare-admin/internal/infrastructure/sampledata"
	"medcare-admin/internal/repository"
	"medcare-admin/internal/repository/memory"

	"gorm.io/gorm"
)

type repositories struct {
	patient     domainRepo.PatientRepository
	doctor      domainRepo.DoctorRepository
	appointment domainRepo.AppointmentRepository
	activity    domainRepo.ActivityRepository
	report      domainRepo.ReportRepository
	settings    domainRepo.SettingsRepository
}

// newMemoryRepositories serves the built-in sample data, with appointments
// and activity timestamps anchored at now.
func newMemoryRepositories(now time.Time) *repositories {
	census := sampledata.Census(now)

	return &repositories{
		patient:     memory.NewPatientRepository(sampledata.Patients()),
		doctor:      memory.NewDoctorRepository(sampledata.Doctors()),
		appointment: memory.NewAppointmentRepository(sampledata.Appointments(now)),
		activity:    memory.NewActivityRepository(sampledata.Activities(now)),
		report: memory.NewReportRepository(memory.ReportData{
			Metrics:      sampledata.ReportMetrics(),
			Admissions:   sampledata.Admissions(),
			Demographics: sampledata.Demographics(),
			Census:       &census,
		}),
		settings: memory.NewSettingsRepository(sampledata.Settings()),
	}
}

// Settings are kept in process memory in both modes.
func newDatabaseRepositories(db *gorm.DB) *repositories {
	return &repositories{
		patient:     repository.NewPatientRepository(db),
		doctor:      repository.NewDoctorRepository(db),
		appointment: repository.NewAppointmentRepository(db),
		activity:    repository.NewActivityRepository(db),
		report:      repository.NewReportRepository(db),
		settings:    memory.NewSettingsRepository(sampledata.Settings()),
	}
}
