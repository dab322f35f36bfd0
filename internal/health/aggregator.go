package health

import (
	"context"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

// Status is the aggregate health classification.
type Status string

const (
	// StatusHealthy means every registered check passed.
	StatusHealthy Status = "healthy"
	// StatusDegraded means at least one check failed but every role group
	// still has a passing member.
	StatusDegraded Status = "degraded"
	// StatusUnhealthy means some role group has zero passing members, the
	// same rule that fails readiness.
	StatusUnhealthy Status = "unhealthy"
)

// CheckStatus is the result classification of a single check.
type CheckStatus string

const (
	CheckPass CheckStatus = "pass"
	CheckFail CheckStatus = "fail"
)

// CheckResult is one check's evaluation. A fresh value is produced per
// probe and never mutated afterwards.
type CheckResult struct {
	Status    CheckStatus `json:"status"`
	Group     string      `json:"group"`
	Endpoint  string      `json:"endpoint,omitempty"`
	LatencyMS int64       `json:"latency_ms"`
	Message   string      `json:"message,omitempty"`
}

// AggregateHealth is the outcome of one full registry evaluation.
type AggregateHealth struct {
	Status    Status                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Checks    map[string]CheckResult `json:"checks"`
	// Errors lists the names of failing checks in registry order.
	Errors []string `json:"errors"`
}

// ReadinessVerdict is the quorum decision served by the readiness probe.
type ReadinessVerdict struct {
	Ready     bool      `json:"ready"`
	Timestamp time.Time `json:"timestamp"`
}

// Aggregator evaluates the registry against live instances. Construct one
// per request; it carries no evaluation state of its own.
type Aggregator struct {
	registry *Registry
	gw       gateway.Gateway
}

func NewAggregator(registry *Registry, gw gateway.Gateway) *Aggregator {
	return &Aggregator{registry: registry, gw: gw}
}

// Evaluate probes every registered check and classifies the aggregate.
// Checks run sequentially in registry order so the errors list is
// deterministic; one check's failure never prevents the others.
func (a *Aggregator) Evaluate(ctx context.Context) AggregateHealth {
	checks := make(map[string]CheckResult, len(a.registry.Checks()))
	var failing []string
	groupHasPass := make(map[string]bool)

	for _, def := range a.registry.Checks() {
		result := a.probe(ctx, def)

		checkResult := CheckResult{
			Status:    CheckFail,
			Group:     def.Group,
			Endpoint:  result.Endpoint,
			LatencyMS: result.Latency.Milliseconds(),
			Message:   result.Message,
		}
		if result.Passed {
			checkResult.Status = CheckPass
			groupHasPass[def.Group] = true
		} else {
			failing = append(failing, def.Name)
			log.Debugf("Health check %s failed: %s", def.Name, result.Message)
		}

		checks[def.Name] = checkResult
	}

	status := StatusHealthy
	switch {
	case len(failing) == 0:
		status = StatusHealthy
	case !a.quorumMet(groupHasPass):
		status = StatusUnhealthy
	default:
		status = StatusDegraded
	}

	return AggregateHealth{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Errors:    failing,
	}
}

// DeriveReadiness applies the quorum rule to an evaluation: ready iff every
// role group has at least one passing member. It recomputes from the check
// results rather than reading the aggregate status.
func (a *Aggregator) DeriveReadiness(health AggregateHealth) ReadinessVerdict {
	groupHasPass := make(map[string]bool)
	for _, result := range health.Checks {
		if result.Status == CheckPass {
			groupHasPass[result.Group] = true
		}
	}

	return ReadinessVerdict{
		Ready:     a.quorumMet(groupHasPass),
		Timestamp: time.Now(),
	}
}

func (a *Aggregator) quorumMet(groupHasPass map[string]bool) bool {
	for _, group := range a.registry.Groups() {
		if !groupHasPass[group] {
			return false
		}
	}
	return true
}

func (a *Aggregator) probe(ctx context.Context, def CheckDefinition) gateway.ProbeResult {
	if def.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, def.Timeout)
		defer cancel()
	}

	return a.gw.Probe(ctx, gateway.ProbeSpec{Kind: def.Kind, Domain: def.Domain}, def.Target)
}
