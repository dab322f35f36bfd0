package health

import (
	"context"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/metrics"
)

// Monitor periodically evaluates the registry and publishes the results as
// Prometheus gauges, so scrapes see current instance state even when no one
// polls the health endpoints.
type Monitor struct {
	registry *Registry
	gw       gateway.Gateway
	interval time.Duration
}

func NewMonitor(registry *Registry, gw gateway.Gateway, interval time.Duration) *Monitor {
	return &Monitor{
		registry: registry,
		gw:       gw,
		interval: interval,
	}
}

// Run evaluates immediately and then on every tick until the context is
// cancelled. It always returns nil on cancellation.
func (m *Monitor) Run(ctx context.Context) error {
	log.Infof("Background health monitor running every %s", m.interval)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.publish(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Debugf("Background health monitor stopped")
			return nil
		case <-ticker.C:
			m.publish(ctx)
		}
	}
}

func (m *Monitor) publish(ctx context.Context) {
	result := NewAggregator(m.registry, m.gw).Evaluate(ctx)

	for name, check := range result.Checks {
		metrics.SetInstanceUp(name, check.Group, check.Status == CheckPass)
	}

	metrics.SetStackStatus(statusValue(result.Status))

	if result.Status != StatusHealthy {
		log.Warnf("Stack is %s (failing: %v)", result.Status, result.Errors)
	}
}

func statusValue(status Status) float64 {
	switch status {
	case StatusHealthy:
		return 0
	case StatusDegraded:
		return 1
	default:
		return 2
	}
}
