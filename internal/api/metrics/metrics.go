// Package metrics defines and registers the custom Prometheus metrics of the
// user directory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto. HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "userdirectory"

// UsersCreatedTotal counts users successfully created through POST /api/users.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// UserCreateErrorsTotal counts rejected or failed create requests.
// Label:
//   - reason: "invalid_payload", "validation", "role_not_found", "constraint_violation" or "internal"
var UserCreateErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "user_create_errors_total",
		Help:      "Total number of user create requests that did not produce a user.",
	},
	[]string{"reason"},
)

// UserListSize observes how many users each GET /api/users returned.
var UserListSize = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "user_list_size",
		Help:      "Number of users returned per list request.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
	},
)
