package preview

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs every request through logger and counts it in m.
func logRequests(logger *slog.Logger, m *metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)
		duration := time.Since(start)

		m.Request(routeLabel(r.URL.Path), strconv.Itoa(rec.status))

		attrs := []any{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", duration),
		}
		if rec.status >= http.StatusInternalServerError {
			logger.ErrorContext(r.Context(), "request failed", attrs...)
		} else {
			logger.InfoContext(r.Context(), "request completed", attrs...)
		}
	})
}

// routeLabel bounds the route label to the served paths.
func routeLabel(path string) string {
	switch path {
	case servicesPath, healthPath, metricsPath:
		return path
	default:
		return "other"
	}
}
