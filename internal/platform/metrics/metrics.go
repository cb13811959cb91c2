package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the catalog. All methods are nil-safe
// so services can run without metrics wired (tests, tools).
type Metrics struct {
	PillsCreated    prometheus.Counter
	CoursesCreated  prometheus.Counter
	PillsAttached   prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

// New registers all catalog metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		PillsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pillbox_pills_created_total",
			Help: "Total number of pills created",
		}),
		CoursesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pillbox_courses_created_total",
			Help: "Total number of courses created",
		}),
		PillsAttached: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pillbox_pills_attached_total",
			Help: "Total number of pill-to-course associations (idempotent repeats included)",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pillbox_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route and status class",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route", "status"}),
	}
}

// IncrementPillsCreated records a successful pill creation.
func (m *Metrics) IncrementPillsCreated() {
	if m == nil {
		return
	}
	m.PillsCreated.Inc()
}

// IncrementCoursesCreated records a successful course creation.
func (m *Metrics) IncrementCoursesCreated() {
	if m == nil {
		return
	}
	m.CoursesCreated.Inc()
}

// IncrementPillsAttached records a successful AddPillToCourse call.
func (m *Metrics) IncrementPillsAttached() {
	if m == nil {
		return
	}
	m.PillsAttached.Inc()
}

// ObserveRequest records one HTTP request. Call with time.Now() captured at
// the start of the request.
func (m *Metrics) ObserveRequest(route, status string, start time.Time) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, status).Observe(time.Since(start).Seconds())
}
