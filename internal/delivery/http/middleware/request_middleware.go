package middleware

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"time"

	"medcare-admin/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// RequestID returns the request ID stored in the context, if any
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type RequestMiddleware struct {
	log *logrus.Logger
}

func NewRequestMiddleware(log *logrus.Logger) *RequestMiddleware {
	return &RequestMiddleware{log: log}
}

// Handle tags every request with an ID (reusing the caller's X-Request-ID)
// and writes one access log entry when the response is done. A panicking
// handler is answered with a 500 envelope and logged with its stack.
func (m *RequestMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		recovered, stack := m.serve(next, rec, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))

		entry := m.log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"latency":    time.Since(start).String(),
		})
		if recovered != nil {
			entry.WithFields(logrus.Fields{
				"panic": recovered,
				"stack": string(stack),
			}).Error("request panicked")
			return
		}
		switch {
		case rec.status >= http.StatusInternalServerError:
			entry.Error("request failed")
		case rec.status >= http.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request completed")
		}
	})
}

// serve runs next and returns the recovered value and its stack if it panicked.
// http.ErrAbortHandler is re-raised so net/http can abort the response.
func (m *RequestMiddleware) serve(next http.Handler, rec *statusRecorder, r *http.Request) (recovered any, stack []byte) {
	defer func() {
		recovered = recover()
		if recovered == nil {
			return
		}
		stack = debug.Stack()
		if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			panic(recovered)
		}
		if !rec.wroteHeader {
			response.InternalServerError(rec, "")
		} else {
			rec.status = http.StatusInternalServerError
		}
	}()

	next.ServeHTTP(rec, r)
	return nil, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.wroteHeader {
		return
	}
	r.status = status
	r.wroteHeader = true
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	return r.ResponseWriter.Write(b)
}
