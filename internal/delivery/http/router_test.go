package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medcare-admin/internal/delivery/http/handler"
	"medcare-admin/internal/delivery/http/middleware"
	"medcare-admin/internal/domain/entity"
	"medcare-admin/internal/infrastructure/sampledata"
	"medcare-admin/internal/repository/memory"
	"medcare-admin/internal/service"
	"medcare-admin/internal/usecase"
	"medcare-admin/pkg/validator"

	"github.com/sirupsen/logrus"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"total_pages"`
		From       int   `json:"from"`
		To         int   `json:"to"`
		Pages      []int `json:"pages"`
	} `json:"meta"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	now := time.Now()
	census := sampledata.Census(now)
	cache := service.NewNoopSnapshotCache()
	v := validator.NewValidator()

	patientRepo := memory.NewPatientRepository(sampledata.Patients())
	doctorRepo := memory.NewDoctorRepository(sampledata.Doctors())
	appointmentRepo := memory.NewAppointmentRepository(sampledata.Appointments(now))
	activityRepo := memory.NewActivityRepository(sampledata.Activities(now))
	reportRepo := memory.NewReportRepository(memory.ReportData{
		Metrics:      sampledata.ReportMetrics(),
		Admissions:   sampledata.Admissions(),
		Demographics: sampledata.Demographics(),
		Census:       &census,
	})
	settingsRepo := memory.NewSettingsRepository(sampledata.Settings())
	activityService := service.NewActivityService(log, activityRepo, cache)

	router := NewRouter(
		handler.NewDashboardHandler(
			usecase.NewDashboardUsecase(log, patientRepo, doctorRepo, appointmentRepo, activityRepo, reportRepo, cache, time.Local),
			usecase.NewActivityUsecase(log, activityRepo),
		),
		handler.NewPatientHandler(usecase.NewPatientUsecase(log, patientRepo, 7), v),
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(log, doctorRepo), v),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(log, appointmentRepo, entity.SlotPolicyToken, time.Local), v),
		handler.NewReportHandler(usecase.NewReportUsecase(log, reportRepo, cache), v),
		handler.NewSettingsHandler(usecase.NewSettingsUsecase(log, settingsRepo, activityService), v),
		middleware.NewRequestMiddleware(log),
		middleware.NewCORSMiddleware([]string{"*"}),
	)

	srv := httptest.NewServer(router.Setup())
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, srv *httptest.Server, method, path, body string) (int, envelope) {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return resp.StatusCode, env
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/health")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if resp.Header.Get(middleware.RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}
}

func TestPatients_PaginationMeta(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/patients?page=3", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	var patients []map[string]any
	if err := json.Unmarshal(env.Data, &patients); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if len(patients) != 1 || patients[0]["id"] != "PAT-2023-015" {
		t.Errorf("expected PAT-2023-015 alone on page 3, got %v", patients)
	}
	if env.Meta == nil || env.Meta.TotalPages != 3 || env.Meta.From != 15 || env.Meta.To != 15 {
		t.Errorf("unexpected meta %+v", env.Meta)
	}
}

func TestPatients_InvalidPageIsNormalised(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/patients?page=-4", "")
	if code != http.StatusOK || env.Meta.Page != 1 || env.Meta.To != 7 {
		t.Errorf("expected first page, got %d %+v", code, env.Meta)
	}
}

func TestPatients_HugePageIsEmpty(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/patients?page=4611686018427387905", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if string(env.Data) != "[]" {
		t.Errorf("expected an empty page, got %s", env.Data)
	}
	if env.Meta == nil || env.Meta.TotalPages != 3 || env.Meta.From != 0 || env.Meta.To != 0 {
		t.Errorf("unexpected meta %+v", env.Meta)
	}
}

func TestPatients_SearchWithoutResults(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/patients?search=zzz", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if string(env.Data) != "[]" {
		t.Errorf("expected an empty list, got %s", env.Data)
	}
	if env.Meta.Total != 0 || env.Meta.TotalPages != 1 {
		t.Errorf("unexpected meta %+v", env.Meta)
	}
}

func TestPatients_NotFound(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/patients/PAT-0000-000", "")
	if code != http.StatusNotFound || env.Success {
		t.Errorf("expected 404, got %d %+v", code, env)
	}
}

func TestDoctors_FilterAndDepartments(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/doctors?search=surgeon&department=Cardiology", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var list struct {
		Doctors []struct {
			Name string `json:"name"`
		} `json:"doctors"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if list.Total != 1 || list.Doctors[0].Name != "Emily Harris" {
		t.Errorf("expected Emily Harris, got %+v", list)
	}

	code, env = do(t, srv, http.MethodGet, "/api/v1/doctors/departments", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), "General Medicine") {
		t.Errorf("unexpected departments %d %s", code, env.Data)
	}
}

func TestAppointments_ScheduleDefaultsToToday(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/appointments/schedule", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var schedule struct {
		Slots []struct {
			Time string `json:"time"`
		} `json:"slots"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &schedule); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if schedule.Total != 6 || schedule.Slots[0].Time != "9:00" {
		t.Errorf("unexpected schedule %+v", schedule)
	}
}

func TestAppointments_EmptyDateSelectsNothing(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/appointments/schedule?date=", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"slots":[]`) {
		t.Errorf("expected empty slots, got %d %s", code, env.Data)
	}
}

func TestAppointments_InvalidDate(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/appointments?date=14-03-2026", "")
	if code != http.StatusBadRequest || env.Success {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestReports_Range(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/reports?range=quarter", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), "vs. last quarter") {
		t.Errorf("unexpected report %d %s", code, env.Data)
	}

	code, _ = do(t, srv, http.MethodGet, "/api/v1/reports?range=decade", "")
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown range, got %d", code)
	}
}

func TestDashboard(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodGet, "/api/v1/dashboard", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var dashboard struct {
		TotalPatients int64  `json:"total_patients"`
		OccupancyRate string `json:"occupancy_rate"`
	}
	if err := json.Unmarshal(env.Data, &dashboard); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dashboard.TotalPatients != 15 || dashboard.OccupancyRate != "73" {
		t.Errorf("unexpected dashboard %+v", dashboard)
	}
}

func TestSettings_UpdateGeneralValidation(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodPut, "/api/v1/settings/general", `{"hospital_name":"M","email":"x","phone":"1","address":"a","website":"nope"}`)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if !strings.Contains(string(env.Error), "Email must be a valid email address") {
		t.Errorf("expected email message, got %s", env.Error)
	}

	code, _ = do(t, srv, http.MethodPut, "/api/v1/settings/general", `not json`)
	if code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", code)
	}
}

func TestSettings_ToggleShowsInActivityFeed(t *testing.T) {
	srv := newTestServer(t)

	code, env := do(t, srv, http.MethodPost, "/api/v1/settings/notifications/sms/toggle", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), `"sms":true`) {
		t.Fatalf("expected sms enabled, got %d %s", code, env.Data)
	}

	code, env = do(t, srv, http.MethodGet, "/api/v1/activities?limit=1", "")
	if code != http.StatusOK || !strings.Contains(string(env.Data), "Notification setting toggled") {
		t.Errorf("expected the toggle in the activity feed, got %s", env.Data)
	}

	code, _ = do(t, srv, http.MethodPost, "/api/v1/settings/notifications/pager/toggle", "")
	if code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown toggle, got %d", code)
	}
}
