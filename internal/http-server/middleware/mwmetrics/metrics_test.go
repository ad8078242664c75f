package mwmetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"exploreWithMe/internal/metrics"
)

func TestNew_LabelsByRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(New("mw-test"))
	router.Get("/events/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/events/1", "/events/2"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	}

	counter := metrics.HTTPRequests.WithLabelValues("mw-test", http.MethodGet, "/events/{id}", "418")
	assert.Equal(t, 2.0, testutil.ToFloat64(counter))
}
