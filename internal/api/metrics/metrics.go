// Package metrics defines and registers all custom Prometheus metrics for the
// exercise tracker API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry at
// import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "exercise_tracker"

// UsersCreatedTotal counts successfully registered users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users registered.",
	},
)

// ExercisesCreatedTotal counts successfully logged exercises.
// Label:
//   - date_source: "client" when the request carried an explicit date,
//     "server" when the creation date defaulted to today.
var ExercisesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exercises_created_total",
		Help:      "Total number of exercises logged, by date source.",
	},
	[]string{"date_source"},
)

// LogRequestsTotal counts log retrievals.
// Label:
//   - filter: shape of the date constraint ("none", "from", "to", "range")
var LogRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "log_requests_total",
		Help:      "Total number of exercise log retrievals, by date filter shape.",
	},
	[]string{"filter"},
)

// LogQueryDuration measures how long a log retrieval takes end-to-end,
// including the user lookup and the filtered exercise query.
var LogQueryDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "log_query_duration_seconds",
		Help:      "Duration of exercise log retrievals.",
		Buckets:   prometheus.DefBuckets,
	},
)
