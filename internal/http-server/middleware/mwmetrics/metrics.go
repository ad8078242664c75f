// Package mwmetrics records per-route request counters and latencies.
package mwmetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"exploreWithMe/internal/metrics"
)

// New labels samples with the chi route pattern, so /events/1 and /events/2
// share one series. service names the binary.
func New(service string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			metrics.HTTPRequests.WithLabelValues(service, r.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPDuration.WithLabelValues(service, r.Method, route).Observe(time.Since(start).Seconds())
		}

		return http.HandlerFunc(fn)
	}
}
