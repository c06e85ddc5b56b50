package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Domain
	UsersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_created_total",
			Help: "Total create-user calls that succeeded (including idempotent replays)",
		},
	)
	ExercisesCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_created_total",
			Help: "Total exercises recorded",
		},
	)
	ResetsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "resets_total",
			Help: "Total database resets",
		},
	)
)

// handler for the /metrics endpoint
var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(UsersCreated)
	prometheus.MustRegister(ExercisesCreated)
	prometheus.MustRegister(ResetsTotal)
}
