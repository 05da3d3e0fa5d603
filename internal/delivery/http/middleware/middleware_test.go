package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusTeapot)
})

func TestCORSMiddleware_AllowAll(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example")

	NewCORSMiddleware([]string{"*"}).Handle(ok).ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected *, got %q", got)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected the next handler to run, got %d", rec.Code)
	}
}

func TestCORSMiddleware_ListedOrigins(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://admin.medcare.hospital"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://admin.medcare.hospital")
	m.Handle(ok).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.medcare.hospital" {
		t.Errorf("expected listed origin to be echoed, got %q", got)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	m.Handle(ok).ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no allow header for unknown origin, got %q", got)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	rec := httptest.NewRecorder()
	NewCORSMiddleware([]string{"*"}).Handle(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected preflight to short-circuit with 200, got %d", rec.Code)
	}
}

func TestRequestMiddleware_GeneratesID(t *testing.T) {
	log, hook := test.NewNullLogger()

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	NewRequestMiddleware(log).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients/x", nil))

	if seen == "" || rec.Header().Get(RequestIDHeader) != seen {
		t.Errorf("expected generated id in context and header, got %q / %q", seen, rec.Header().Get(RequestIDHeader))
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected an access log entry")
	}
	if entry.Level != logrus.WarnLevel || entry.Data["status"] != http.StatusNotFound {
		t.Errorf("unexpected log entry %v %v", entry.Level, entry.Data)
	}
}

func TestRequestMiddleware_ReusesCallerID(t *testing.T) {
	log, _ := test.NewNullLogger()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	NewRequestMiddleware(log).Handle(ok).ServeHTTP(rec, req)

	if got := rec.Header().Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected caller id to be reused, got %q", got)
	}
}

func TestRequestMiddleware_RecoversPanic(t *testing.T) {
	log, hook := test.NewNullLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var patients []string
		_ = patients[3]
	})

	rec := httptest.NewRecorder()
	NewRequestMiddleware(log).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected a JSON envelope: %v", err)
	}
	if body.Success || body.Message != "Internal server error" {
		t.Errorf("unexpected body %+v", body)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("expected a log entry for the panic")
	}
	if entry.Level != logrus.ErrorLevel || entry.Data["request_id"] == "" || entry.Data["status"] != http.StatusInternalServerError {
		t.Errorf("unexpected log entry %v %v", entry.Level, entry.Data)
	}
	if _, ok := entry.Data["stack"]; !ok {
		t.Error("expected the stack in the log entry")
	}
}

func TestRequestMiddleware_PanicAfterWriteKeepsResponse(t *testing.T) {
	log, hook := test.NewNullLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		panic("late failure")
	})

	rec := httptest.NewRecorder()
	NewRequestMiddleware(log).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected the written status to stand, got %d", rec.Code)
	}
	if entry := hook.LastEntry(); entry == nil || entry.Data["status"] != http.StatusInternalServerError {
		t.Errorf("expected the panic to be logged as a 500")
	}
}
