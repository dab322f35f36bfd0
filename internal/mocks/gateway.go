// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production
// builds since it's not imported in any production code.
package mocks

import (
	"context"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
)

// MockGateway is a mock implementation of the gateway.Gateway interface.
//
// It allows tests to provide custom behavior for each method through function
// fields. If a function field is nil, a stateful default is used that mirrors
// the real gateway contract: items applied once come back as already present
// on later calls, dry-run mode returns simulated outcomes, and probes pass
// unless the target is listed in FailProbes.
//
// Example usage:
//
//	mock := mocks.NewMockGateway()
//	mock.FailItems = map[string]string{"https://lists.example.com/ads.txt": "exit status 1"}
//	outcome := mock.Apply(ctx, op, target)
type MockGateway struct {
	// ApplyFunc is called by Apply if not nil
	ApplyFunc func(ctx context.Context, op gateway.Operation, target gateway.Target) gateway.Outcome

	// ProbeFunc is called by Probe if not nil
	ProbeFunc func(ctx context.Context, spec gateway.ProbeSpec, target gateway.Target) gateway.ProbeResult

	// DryRunFunc is called by DryRun if not nil
	DryRunFunc func() bool

	// DryRunMode is returned by DryRun when DryRunFunc is nil. The default
	// Apply then returns simulated outcomes, like the real gateway.
	DryRunMode bool

	// FailItems maps operation items to failure reasons for the default Apply.
	FailItems map[string]string

	// FailRebuild makes the default Apply fail rebuild operations with the
	// timeout message the real gateway produces.
	FailRebuild bool

	// FailProbes lists target names whose default Probe fails with a
	// connection-refused result.
	FailProbes map[string]bool

	// Track calls for verification in tests
	ApplyCalls    int
	ProbeCalls    int
	Applied       []gateway.Operation
	Probes        []gateway.ProbeSpec
	ProbedTargets []string

	seen map[string]bool
}

// Apply records the operation and classifies it.
//
// If ApplyFunc is set, it calls that function. Otherwise it simulates an
// idempotent target: the first application of an item is added, repeats are
// already present, and items listed in FailItems fail with their reason.
func (m *MockGateway) Apply(ctx context.Context, op gateway.Operation, target gateway.Target) gateway.Outcome {
	m.ApplyCalls++
	m.Applied = append(m.Applied, op)

	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, op, target)
	}

	if m.DryRun() {
		return gateway.Simulated()
	}

	if op.Kind == gateway.OpRebuild {
		if m.FailRebuild {
			return gateway.Failed("timed out after 5m0s")
		}
		return gateway.Added()
	}

	if reason, ok := m.FailItems[op.Item]; ok {
		return gateway.Failed(reason)
	}

	key := string(op.Kind) + "/" + op.Item
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	if m.seen[key] {
		return gateway.AlreadyPresent()
	}
	m.seen[key] = true
	return gateway.Added()
}

// Probe records the probe and returns its result.
//
// If ProbeFunc is set, it calls that function. Otherwise targets listed in
// FailProbes fail with a connection-refused result and everything else
// passes with a fast NOERROR answer.
func (m *MockGateway) Probe(ctx context.Context, spec gateway.ProbeSpec, target gateway.Target) gateway.ProbeResult {
	m.ProbeCalls++
	m.Probes = append(m.Probes, spec)
	m.ProbedTargets = append(m.ProbedTargets, target.Name)

	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx, spec, target)
	}

	if m.FailProbes[target.Name] {
		return gateway.ProbeResult{
			Endpoint: target.Host,
			Message:  "connection refused",
		}
	}

	return gateway.ProbeResult{
		Passed:   true,
		Endpoint: target.Host,
		Latency:  2 * time.Millisecond,
		Message:  "NOERROR, 1 answer(s)",
	}
}

// DryRun reports whether the mock is in dry-run mode.
//
// If DryRunFunc is set, it calls that function. Otherwise it returns
// DryRunMode.
func (m *MockGateway) DryRun() bool {
	if m.DryRunFunc != nil {
		return m.DryRunFunc()
	}
	return m.DryRunMode
}

// NewMockGateway creates a new mock gateway with default behavior.
//
// This is a convenience constructor that returns a mock with sensible
// defaults. You can override individual methods by setting the function
// fields.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// NewMockGatewayWithFailingProbes creates a mock gateway whose probes fail
// for the named targets.
//
// This is a convenience constructor for tests that need to control which
// instances appear down.
func NewMockGatewayWithFailingProbes(names ...string) *MockGateway {
	failing := make(map[string]bool, len(names))
	for _, name := range names {
		failing[name] = true
	}
	return &MockGateway{FailProbes: failing}
}
