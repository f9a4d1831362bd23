package metrics

import (
	"bufio"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	gatherer prometheus.Gatherer

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	HabitToggles        *prometheus.CounterVec
	ChallengesCompleted prometheus.Counter
	GroupMessages       prometheus.Counter
	FeedConnections     prometheus.Gauge
	JobRuns             *prometheus.CounterVec
}

// New registers collectors in reg. A nil reg means a fresh private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		gatherer: reg,
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rehabit_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rehabit_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HabitToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rehabit_habit_toggles_total",
			Help: "Habit completion toggles by outcome",
		}, []string{"outcome"}),
		ChallengesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rehabit_challenges_completed_total",
			Help: "Bonus challenges completed",
		}),
		GroupMessages: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rehabit_group_messages_total",
			Help: "Messages sent to groups by users",
		}),
		FeedConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rehabit_group_feed_connections",
			Help: "Open group websocket feeds",
		}),
		JobRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rehabit_scheduled_job_runs_total",
			Help: "Scheduled job runs by job and status",
		}, []string{"job", "status"}),
	}
	reg.MustRegister(
		m.requestTotal,
		m.requestDuration,
		m.HabitToggles,
		m.ChallengesCompleted,
		m.GroupMessages,
		m.FeedConnections,
		m.JobRuns,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack is needed by websocket upgrades.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer doesn't support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

// Middleware records count and latency per route pattern, so path ids don't blow up label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requestTotal.WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}
