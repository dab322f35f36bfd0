// Package metrics exposes Prometheus instrumentation for gateway
// operations, health probes, and reconciliation runs.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	gatewayOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orion_sentinel",
			Subsystem: "gateway",
			Name:      "operations_total",
			Help:      "Gateway operations by kind and outcome.",
		},
		[]string{"operation", "outcome"},
	)
	gatewayDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orion_sentinel",
			Subsystem: "gateway",
			Name:      "operation_duration_seconds",
			Help:      "Gateway operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	probes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orion_sentinel",
			Subsystem: "health",
			Name:      "probes_total",
			Help:      "Health probes by target, kind, and result.",
		},
		[]string{"target", "kind", "result"},
	)
	probeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "orion_sentinel",
			Subsystem: "health",
			Name:      "probe_duration_seconds",
			Help:      "Health probe duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"target", "kind"},
	)
	reconcileRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "orion_sentinel",
			Subsystem: "reconcile",
			Name:      "runs_total",
			Help:      "Reconciliation runs by result and dry-run flag.",
		},
		[]string{"success", "dry_run"},
	)
	reconcileDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "orion_sentinel",
			Subsystem: "reconcile",
			Name:      "run_duration_seconds",
			Help:      "Reconciliation run duration in seconds.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
		},
	)
	instanceUp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "orion_sentinel",
			Subsystem: "health",
			Name:      "instance_up",
			Help:      "Whether the instance passed its last background health check (1 = up).",
		},
		[]string{"instance", "group"},
	)
	stackStatus = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "orion_sentinel",
			Subsystem: "health",
			Name:      "stack_status",
			Help:      "Aggregate stack status from the last background evaluation (0 = healthy, 1 = degraded, 2 = unhealthy).",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			gatewayOperations,
			gatewayDuration,
			probes,
			probeDuration,
			reconcileRuns,
			reconcileDuration,
			instanceUp,
			stackStatus,
		)
	})
}

func RecordGatewayOperation(operation, outcome string, duration time.Duration) {
	RegisterMetrics()
	gatewayOperations.WithLabelValues(operation, outcome).Inc()
	gatewayDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func RecordProbe(target, kind, result string, duration time.Duration) {
	RegisterMetrics()
	probes.WithLabelValues(target, kind, result).Inc()
	probeDuration.WithLabelValues(target, kind).Observe(duration.Seconds())
}

func RecordReconcileRun(success, dryRun bool, duration time.Duration) {
	RegisterMetrics()
	reconcileRuns.WithLabelValues(strconv.FormatBool(success), strconv.FormatBool(dryRun)).Inc()
	reconcileDuration.Observe(duration.Seconds())
}

func SetInstanceUp(instance, group string, up bool) {
	RegisterMetrics()
	value := 0.0
	if up {
		value = 1.0
	}
	instanceUp.WithLabelValues(instance, group).Set(value)
}

func SetStackStatus(value float64) {
	RegisterMetrics()
	stackStatus.Set(value)
}
