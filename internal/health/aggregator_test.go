package health

import (
	"context"
	"testing"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/mocks"
)

func testRegistry() *Registry {
	def := func(name, group string, port uint16) CheckDefinition {
		return CheckDefinition{
			Name:   name,
			Group:  group,
			Kind:   gateway.ProbeDNS,
			Domain: "example.com",
			Target: gateway.Target{Name: name, Host: "192.168.8.251", DNSPort: port},
		}
	}

	return &Registry{
		checks: []CheckDefinition{
			def("pihole_primary", "pihole", 53),
			def("pihole_secondary", "pihole", 53),
			def("unbound_primary", "unbound", 5335),
			def("unbound_secondary", "unbound", 5335),
		},
		groups: []string{"pihole", "unbound"},
	}
}

func TestBuildRegistry_FromConfig(t *testing.T) {
	cfg := &config.Config{
		General: &config.GeneralConfig{CheckDomain: "example.com"},
		Gateway: &config.GatewayConfig{ProbeTimeoutSec: 5},
		Instances: []*config.InstanceConfig{
			{Name: "pihole_primary", Group: "pihole", Host: "192.168.8.251", DNSPort: 53},
			{Name: "unbound_primary", Group: "unbound", Host: "192.168.8.251", DNSPort: 5335},
			{Name: "pihole_secondary", Group: "pihole", Host: "192.168.8.252", DNSPort: 53},
		},
	}

	registry := BuildRegistry(cfg)

	checks := registry.Checks()
	if len(checks) != 3 {
		t.Fatalf("Expected 3 checks, got %d", len(checks))
	}
	if checks[0].Name != "pihole_primary" || checks[1].Name != "unbound_primary" || checks[2].Name != "pihole_secondary" {
		t.Errorf("Expected checks in declaration order, got %v", []string{checks[0].Name, checks[1].Name, checks[2].Name})
	}
	if checks[0].Domain != "example.com" {
		t.Errorf("Expected check domain from config, got %q", checks[0].Domain)
	}
	if checks[0].Timeout != 5*time.Second {
		t.Errorf("Expected 5s check timeout, got %s", checks[0].Timeout)
	}

	groups := registry.Groups()
	if len(groups) != 2 || groups[0] != "pihole" || groups[1] != "unbound" {
		t.Errorf("Expected groups [pihole unbound], got %v", groups)
	}
}

func TestAggregator_Evaluate_AllPass(t *testing.T) {
	gw := mocks.NewMockGateway()
	agg := NewAggregator(testRegistry(), gw)

	health := agg.Evaluate(context.Background())

	if health.Status != StatusHealthy {
		t.Errorf("Expected healthy status, got %s", health.Status)
	}
	if len(health.Errors) != 0 {
		t.Errorf("Expected no errors, got %v", health.Errors)
	}
	if len(health.Checks) != 4 {
		t.Fatalf("Expected 4 checks, got %d", len(health.Checks))
	}
	for name, result := range health.Checks {
		if result.Status != CheckPass {
			t.Errorf("Check %s = %s, want pass", name, result.Status)
		}
	}
	if health.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestAggregator_Evaluate_DegradedWhenQuorumHolds(t *testing.T) {
	gw := mocks.NewMockGatewayWithFailingProbes("pihole_secondary")
	agg := NewAggregator(testRegistry(), gw)

	health := agg.Evaluate(context.Background())

	if health.Status != StatusDegraded {
		t.Errorf("Expected degraded status, got %s", health.Status)
	}
	if len(health.Errors) != 1 || health.Errors[0] != "pihole_secondary" {
		t.Errorf("Expected errors [pihole_secondary], got %v", health.Errors)
	}
	if health.Checks["pihole_secondary"].Message != "connection refused" {
		t.Errorf("Expected failure message in check result, got %q", health.Checks["pihole_secondary"].Message)
	}

	verdict := agg.DeriveReadiness(health)
	if !verdict.Ready {
		t.Error("Expected stack to stay ready while each group has a passing member")
	}
}

func TestAggregator_Evaluate_UnhealthyWhenGroupDown(t *testing.T) {
	gw := mocks.NewMockGatewayWithFailingProbes("pihole_secondary", "unbound_primary", "unbound_secondary")
	agg := NewAggregator(testRegistry(), gw)

	health := agg.Evaluate(context.Background())

	if health.Status != StatusUnhealthy {
		t.Errorf("Expected unhealthy status when a group has no passing member, got %s", health.Status)
	}

	verdict := agg.DeriveReadiness(health)
	if verdict.Ready {
		t.Error("Expected stack to be not ready when the unbound group is down")
	}
}

func TestAggregator_Evaluate_ErrorsInRegistryOrder(t *testing.T) {
	gw := mocks.NewMockGatewayWithFailingProbes("unbound_secondary", "pihole_primary")
	agg := NewAggregator(testRegistry(), gw)

	health := agg.Evaluate(context.Background())

	if len(health.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %v", health.Errors)
	}
	if health.Errors[0] != "pihole_primary" || health.Errors[1] != "unbound_secondary" {
		t.Errorf("Expected errors in registry order, got %v", health.Errors)
	}
}

func TestAggregator_Evaluate_AllChecksRunDespiteFailures(t *testing.T) {
	gw := mocks.NewMockGatewayWithFailingProbes("pihole_primary")
	agg := NewAggregator(testRegistry(), gw)

	agg.Evaluate(context.Background())

	if len(gw.ProbedTargets) != 4 {
		t.Errorf("Expected all 4 checks to be probed, got %v", gw.ProbedTargets)
	}
}

func TestAggregator_Evaluate_FreshPerEvaluation(t *testing.T) {
	gw := mocks.NewMockGatewayWithFailingProbes("unbound_primary", "unbound_secondary")
	agg := NewAggregator(testRegistry(), gw)

	before := agg.Evaluate(context.Background())
	if before.Status != StatusUnhealthy {
		t.Fatalf("Expected unhealthy before recovery, got %s", before.Status)
	}

	gw.FailProbes = nil

	after := agg.Evaluate(context.Background())
	if after.Status != StatusHealthy {
		t.Errorf("Expected healthy after recovery, got %s", after.Status)
	}
}

func TestAggregator_DeriveReadiness_IgnoresAggregateStatus(t *testing.T) {
	agg := NewAggregator(testRegistry(), mocks.NewMockGateway())

	health := AggregateHealth{
		// Status deliberately contradicts the checks; readiness must be
		// recomputed from them.
		Status: StatusUnhealthy,
		Checks: map[string]CheckResult{
			"pihole_primary":    {Status: CheckPass, Group: "pihole"},
			"pihole_secondary":  {Status: CheckFail, Group: "pihole"},
			"unbound_primary":   {Status: CheckPass, Group: "unbound"},
			"unbound_secondary": {Status: CheckFail, Group: "unbound"},
		},
	}

	verdict := agg.DeriveReadiness(health)
	if !verdict.Ready {
		t.Error("Expected readiness to be derived from check results, not the status field")
	}
}
