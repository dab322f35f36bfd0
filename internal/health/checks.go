package health

import (
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
)

// CheckDefinition is one registered health check. Definitions are built
// from configuration at startup and never change afterwards.
type CheckDefinition struct {
	// Name is the check's key in responses, the instance name.
	Name string
	// Group is the role group used by the readiness quorum.
	Group string
	// Kind selects the probe mechanism.
	Kind gateway.ProbeKind
	// Domain is the name resolved by DNS probes.
	Domain string
	// Timeout bounds one evaluation of this check.
	Timeout time.Duration

	Target gateway.Target
}

// Registry is the fixed, ordered set of checks for the process lifetime.
// Evaluation state lives in per-request values, never here.
type Registry struct {
	checks []CheckDefinition
	groups []string
}

// BuildRegistry derives one DNS check per configured instance, in
// declaration order. Group order follows the first occurrence of each
// group in the instance list.
func BuildRegistry(cfg *config.Config) *Registry {
	timeout := time.Duration(cfg.Gateway.ProbeTimeoutSec) * time.Second

	checks := make([]CheckDefinition, 0, len(cfg.Instances))
	for _, inst := range cfg.Instances {
		checks = append(checks, CheckDefinition{
			Name:    inst.Name,
			Group:   inst.Group,
			Kind:    gateway.ProbeDNS,
			Domain:  cfg.General.CheckDomain,
			Timeout: timeout,
			Target:  gateway.TargetFromInstance(inst),
		})
	}

	return &Registry{
		checks: checks,
		groups: cfg.Groups(),
	}
}

// Checks returns the definitions in registry order.
func (r *Registry) Checks() []CheckDefinition {
	return r.checks
}

// Groups returns the role groups in declaration order. Readiness requires
// at least one passing member in every group.
func (r *Registry) Groups() []string {
	return r.groups
}
