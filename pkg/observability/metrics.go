package observability

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/connormcn37/pipe-graph/pkg/domain"
)

// Metrics holds Prometheus collectors for engine activity.
type Metrics struct {
	ticksTotal   prometheus.Counter
	tickDuration prometheus.Histogram

	nodeDuration   *prometheus.HistogramVec // By node name
	nodeRecoveries *prometheus.CounterVec   // By node name
}

// NewMetrics creates engine metrics and registers them with the provided
// registerer. A nil registerer disables collection: the returned nil
// Metrics is safe to record against and yields no-op hooks.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil // Metrics disabled
	}

	m := &Metrics{
		ticksTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pipegraph",
			Name:      "ticks_total",
			Help:      "Total number of completed ticks",
		}),

		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "pipegraph",
			Name:      "tick_duration_seconds",
			Help:      "Wall time of whole ticks in seconds",
			Buckets:   prometheus.DefBuckets,
		}),

		nodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "pipegraph",
			Name:      "node_process_duration_seconds",
			Help:      "Per-node compute duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"node"}),

		nodeRecoveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pipegraph",
			Name:      "node_recoveries_total",
			Help:      "Total number of node panics degraded to void outputs",
		}, []string{"node"}),
	}

	reg.MustRegister(m.ticksTotal, m.tickDuration, m.nodeDuration, m.nodeRecoveries)
	return m
}

// Hooks adapts the collectors onto the engine's lifecycle hook points.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTickEnd: func(_ context.Context, ev *domain.TickEvent) {
			m.RecordTick(ev.Duration)
		},
		OnNodeProcessed: func(_ context.Context, ev *domain.NodeEvent) {
			m.RecordNodeProcessed(nodeLabel(ev), ev.Duration)
		},
		OnNodeRecovered: func(_ context.Context, ev *domain.NodeEvent) {
			m.RecordNodeRecovered(nodeLabel(ev))
		},
	}
}

// RecordTick records one completed tick.
func (m *Metrics) RecordTick(duration time.Duration) {
	if m == nil {
		return
	}

	m.ticksTotal.Inc()
	m.tickDuration.Observe(duration.Seconds())
}

// RecordNodeProcessed records one node compute.
func (m *Metrics) RecordNodeProcessed(node string, duration time.Duration) {
	if m == nil {
		return
	}

	m.nodeDuration.WithLabelValues(node).Observe(duration.Seconds())
}

// RecordNodeRecovered counts a node panic degraded to a void output.
func (m *Metrics) RecordNodeRecovered(node string) {
	if m == nil {
		return
	}

	m.nodeRecoveries.WithLabelValues(node).Inc()
}

// nodeLabel prefers the diagnostic name, falling back to the node id.
// The node set is frozen after the first tick, so label cardinality is
// bounded by the graph size.
func nodeLabel(ev *domain.NodeEvent) string {
	if ev.Name != "" {
		return ev.Name
	}
	return fmt.Sprintf("node-%d", ev.NodeID)
}
