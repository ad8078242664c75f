// Package metrics holds the Prometheus collectors shared by both services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewm_http_requests_total",
		Help: "Number of handled HTTP requests",
	}, []string{"service", "method", "route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ewm_http_request_duration_seconds",
		Help:    "Latency of handled HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"service", "method", "route"})

	ParticipationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewm_participation_requests_total",
		Help: "Participation request status changes by resulting status",
	}, []string{"status"})

	EventTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewm_event_state_transitions_total",
		Help: "Event lifecycle transitions by resulting state",
	}, []string{"state"})

	HitsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ewm_stats_hits_recorded_total",
		Help: "Endpoint hits persisted by the stats server",
	})

	StatsClientErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ewm_stats_client_errors_total",
		Help: "Failed calls from the main service to the stats server",
	}, []string{"operation"})
)
