// Package metrics exposes the prometheus collectors of a service.
package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"gamehub/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "gamehub"

// Record outcomes
const (
	OutcomeHandled      = "handled"
	OutcomeRejected     = "rejected"
	OutcomeDeadLettered = "dead-lettered"
	OutcomeFailed       = "failed"
	OutcomeSent         = "sent"
)

// Collector is a prometheus.Collector over the bus traffic of one service.
// A nil *Collector records nothing.
type Collector struct {
	consumedRecords *prometheus.CounterVec
	handlerDuration *prometheus.HistogramVec
	producedRecords *prometheus.CounterVec
	outboxPending   prometheus.Gauge
	autoPatches     *prometheus.CounterVec
	slowQueries     prometheus.Counter

	registry *prometheus.Registry
}

// NewCollector returns a Collector registered on its own registry, together with the Go runtime collectors.
func NewCollector() *Collector {
	c := &Collector{
		consumedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "consumed_records_total",
				Help:      "Records taken off the bus, by listener and outcome.",
			}, []string{"listener", "outcome"},
		),
		handlerDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "handler_duration_seconds",
				Help:      "Time spent in a listener handler, retries included.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"listener"},
		),
		producedRecords: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "produced_records_total",
				Help:      "Records appended to the bus, by topic and outcome.",
			}, []string{"topic", "outcome"},
		),
		outboxPending: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "outbox_pending",
				Help:      "Staged events not yet forwarded.",
			},
		),
		autoPatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "autopatches_total",
				Help:      "Automatic patches staged, by reason.",
			}, []string{"reason"},
		),
		slowQueries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "slow_queries_total",
				Help:      "Store queries slower than the slow query threshold.",
			},
		),
		registry: prometheus.NewRegistry(),
	}

	c.registry.MustRegister(
		c,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.consumedRecords.Describe(ch)
	c.handlerDuration.Describe(ch)
	c.producedRecords.Describe(ch)
	c.outboxPending.Describe(ch)
	c.autoPatches.Describe(ch)
	c.slowQueries.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.consumedRecords.Collect(ch)
	c.handlerDuration.Collect(ch)
	c.producedRecords.Collect(ch)
	c.outboxPending.Collect(ch)
	c.autoPatches.Collect(ch)
	c.slowQueries.Collect(ch)
}

// Handler serves the registry in the prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

func (c *Collector) RecordConsumed(listener, outcome string, took time.Duration) {
	if c == nil {
		return
	}
	c.consumedRecords.WithLabelValues(listener, outcome).Inc()
	c.handlerDuration.WithLabelValues(listener).Observe(took.Seconds())
}

func (c *Collector) RecordProduced(topic, outcome string) {
	if c == nil {
		return
	}
	c.producedRecords.WithLabelValues(topic, outcome).Inc()
}

func (c *Collector) SetOutboxPending(n int64) {
	if c == nil {
		return
	}
	c.outboxPending.Set(float64(n))
}

// AutoPatchStaged counts an automatic patch once its transaction committed.
func (c *Collector) AutoPatchStaged(reason entity.PatchReason) {
	if c == nil {
		return
	}
	c.autoPatches.WithLabelValues(string(reason)).Inc()
}

func (c *Collector) RecordSlowQuery() {
	if c == nil {
		return
	}
	c.slowQueries.Inc()
}

// WatchDB exports the connection pool statistics of db, labeled with dbName.
func (c *Collector) WatchDB(db *sql.DB, dbName string) error {
	if c == nil {
		return nil
	}

	return c.registry.Register(collectors.NewDBStatsCollector(db, dbName))
}
