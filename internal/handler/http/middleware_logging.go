package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// withLogging writes one access log entry per request after the handler
// returns. route is the matched chi pattern, so ids in the path do not
// explode log cardinality.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		status := lw.Status()

		event := logger.FromRequest(r).Info()
		if status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("route", routePattern(r)).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}
