package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes used as the "outcome" label.
const (
	OutcomeInvalid = "invalid"
	OutcomeSent    = "sent"
	OutcomeFailed  = "failed"
	OutcomeBusy    = "busy"
)

var (
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "api_http_requests_total", Help: "HTTP requests"},
		[]string{"method", "path", "status"},
	)
	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "composer_submissions_total", Help: "Submit attempts by outcome"},
		[]string{"outcome"},
	)
	DispatchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "composer_dispatch_duration_seconds",
			Help:    "Time spent waiting on the dispatch endpoint",
			Buckets: prometheus.DefBuckets,
		},
	)
	SubmissionRecipients = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "composer_submission_recipients",
			Help:    "Recipients per dispatched campaign",
			Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
		},
	)
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "composer_notifications_total", Help: "Notifications surfaced to the user"},
		[]string{"severity"},
	)
)

func init() {
	prometheus.MustRegister(
		APIRequestsTotal, APIRequestDuration,
		SubmissionsTotal, DispatchDuration, SubmissionRecipients, NotificationsTotal,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
