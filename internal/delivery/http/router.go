package http

import (
	"net/http"

	"medcare-admin/internal/delivery/http/handler"
	"medcare-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	dashboardHandler   *handler.DashboardHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	reportHandler      *handler.ReportHandler
	settingsHandler    *handler.SettingsHandler
	requestMiddleware  *middleware.RequestMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	dashboardHandler *handler.DashboardHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	reportHandler *handler.ReportHandler,
	settingsHandler *handler.SettingsHandler,
	requestMiddleware *middleware.RequestMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		dashboardHandler:   dashboardHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		reportHandler:      reportHandler,
		settingsHandler:    settingsHandler,
		requestMiddleware:  requestMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Dashboard
	api.HandleFunc("/dashboard", r.dashboardHandler.GetDashboard).Methods(http.MethodGet)
	api.HandleFunc("/activities", r.dashboardHandler.GetActivities).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)

	// Doctors, departments must be registered before {id}
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/departments", r.doctorHandler.GetDepartments).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/appointments/schedule", r.appointmentHandler.GetSchedule).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.GetByID).Methods(http.MethodGet)

	// Reports
	api.HandleFunc("/reports", r.reportHandler.GetReport).Methods(http.MethodGet)

	// Settings
	api.HandleFunc("/settings", r.settingsHandler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings/general", r.settingsHandler.UpdateGeneral).Methods(http.MethodPut)
	api.HandleFunc("/settings/notifications", r.settingsHandler.UpdateNotifications).Methods(http.MethodPut)
	api.HandleFunc("/settings/notifications/{key}/toggle", r.settingsHandler.ToggleNotification).Methods(http.MethodPost)

	r.router.Use(r.requestMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
