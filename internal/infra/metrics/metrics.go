// Package metrics exposes pipeline counters through Prometheus.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"eventradar/internal/domain/entity"
	"eventradar/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements service.MetricsRecorder on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	importEvents  *prometheus.CounterVec
	notifications *prometheus.CounterVec
	jobRuns       *prometheus.CounterVec
	jobDuration   *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Metrics)(nil)

// New creates the collectors and registers them, together with the Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		importEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventradar_import_events_total",
				Help: "Imported candidate events by source and outcome",
			},
			[]string{"source", "result"},
		),
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventradar_notifications_total",
				Help: "Recipient sends by notification type and outcome",
			},
			[]string{"type", "result"},
		),
		jobRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "eventradar_job_runs_total",
				Help: "Scheduled job runs by job and outcome",
			},
			[]string{"job", "result"},
		),
		jobDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "eventradar_job_duration_seconds",
				Help:    "Scheduled job duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600},
			},
			[]string{"job"},
		),
	}

	m.registry.MustRegister(
		m.importEvents,
		m.notifications,
		m.jobRuns,
		m.jobDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// ImportedEvent counts one candidate event by outcome.
func (m *Metrics) ImportedEvent(source entity.Source, result string) {
	m.importEvents.WithLabelValues(string(source), result).Inc()
}

// Notification counts one recipient send by outcome.
func (m *Metrics) Notification(notificationType entity.NotificationType, result string) {
	m.notifications.WithLabelValues(string(notificationType), result).Inc()
}

// JobRun counts one scheduled job run. Skipped runs carry no duration.
func (m *Metrics) JobRun(job, result string, duration time.Duration) {
	m.jobRuns.WithLabelValues(job, result).Inc()
	if result != service.ResultSkipped {
		m.jobDuration.WithLabelValues(job).Observe(duration.Seconds())
	}
}

// RegisterDB exports connection pool statistics for the event store.
func (m *Metrics) RegisterDB(db *sql.DB) error {
	return m.registry.Register(collectors.NewDBStatsCollector(db, "eventradar"))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
