package health

import (
	"context"
	"testing"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/mocks"
)

func TestMonitor_EvaluatesImmediatelyAndStopsOnCancel(t *testing.T) {
	probed := make(chan string, 16)
	gw := mocks.NewMockGateway()
	gw.ProbeFunc = func(_ context.Context, _ gateway.ProbeSpec, target gateway.Target) gateway.ProbeResult {
		probed <- target.Name
		return gateway.ProbeResult{Passed: true}
	}

	registry := testRegistry()
	monitor := NewMonitor(registry, gw, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- monitor.Run(ctx)
	}()

	// The first evaluation happens before the first tick.
	for range registry.Checks() {
		select {
		case <-probed:
		case <-time.After(5 * time.Second):
			t.Fatal("Timed out waiting for the initial evaluation")
		}
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil on cancellation, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Monitor did not stop after cancellation")
	}
}

func TestStatusValue(t *testing.T) {
	cases := []struct {
		status Status
		want   float64
	}{
		{StatusHealthy, 0},
		{StatusDegraded, 1},
		{StatusUnhealthy, 2},
	}
	for _, tc := range cases {
		if got := statusValue(tc.status); got != tc.want {
			t.Errorf("statusValue(%s) = %v, want %v", tc.status, got, tc.want)
		}
	}
}
