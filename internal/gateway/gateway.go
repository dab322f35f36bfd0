package gateway

import (
	"context"
	"strings"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
)

// OutcomeKind is the classification of one gateway operation.
type OutcomeKind string

const (
	// OutcomeAdded means the item was newly applied to the target.
	OutcomeAdded OutcomeKind = "added"
	// OutcomeAlreadyPresent means the target already had the item. Counts as
	// success: repeated reconciliation runs must converge to zero net additions.
	OutcomeAlreadyPresent OutcomeKind = "already_present"
	// OutcomeSkipped means the item was never attempted (disabled entry,
	// missing URL).
	OutcomeSkipped OutcomeKind = "skipped"
	// OutcomeFailed means the operation failed or timed out.
	OutcomeFailed OutcomeKind = "failed"
)

// Outcome is the result of one Apply call. The gateway always returns an
// Outcome; errors never propagate past this boundary.
type Outcome struct {
	Kind OutcomeKind
	// Reason is set for failed and skipped outcomes.
	Reason string
	// Simulated marks dry-run outcomes that performed no external call.
	Simulated bool
}

// Success reports whether the outcome counts as pipeline success.
// Added and AlreadyPresent are both success; only Failed counts as failure.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeAdded || o.Kind == OutcomeAlreadyPresent
}

func Added() Outcome {
	return Outcome{Kind: OutcomeAdded}
}

func AlreadyPresent() Outcome {
	return Outcome{Kind: OutcomeAlreadyPresent}
}

func Skipped(reason string) Outcome {
	return Outcome{Kind: OutcomeSkipped, Reason: reason}
}

func Failed(reason string) Outcome {
	return Outcome{Kind: OutcomeFailed, Reason: reason}
}

// Simulated returns the synthetic Added-shaped outcome used in dry-run mode.
func Simulated() Outcome {
	return Outcome{Kind: OutcomeAdded, Simulated: true}
}

// OperationKind names the mutating operations the stack supports.
type OperationKind string

const (
	OpBlocklist OperationKind = "blocklist"
	OpWhitelist OperationKind = "whitelist"
	OpRegex     OperationKind = "regex"
	OpRebuild   OperationKind = "rebuild"
)

// Operation describes one mutating call against a target. Item carries the
// blocklist URL, whitelist domain, or regex pattern; it is empty for rebuild.
type Operation struct {
	Kind OperationKind
	Item string
}

// Target identifies one instance the gateway talks to.
type Target struct {
	Name      string
	Container string
	APIURL    string
	Host      string
	DNSPort   uint16
}

// TargetFromInstance builds a gateway target from an instance declaration.
func TargetFromInstance(inst *config.InstanceConfig) Target {
	return Target{
		Name:      inst.Name,
		Container: inst.Container,
		APIURL:    inst.APIURL,
		Host:      inst.Host,
		DNSPort:   inst.DNSPort,
	}
}

// Gateway is the single I/O seam between the reconciliation and health
// engines and the live instances. Apply and Probe are bounded by per-class
// timeouts and always return a value, never an unhandled fault. DryRun
// reports whether Apply suppresses external calls and returns simulated
// outcomes instead.
type Gateway interface {
	Apply(ctx context.Context, op Operation, target Target) Outcome
	Probe(ctx context.Context, spec ProbeSpec, target Target) ProbeResult
	DryRun() bool
}

// Classifier maps a finished command (its error and captured output) to an
// Outcome. It is a named, swappable function so the idempotency heuristic
// can be tested and replaced in isolation.
type Classifier func(runErr error, stdout, stderr string) Outcome

// alreadyMarkers are the output fragments Pi-hole prints when an item is
// already configured, matched case-insensitively.
var alreadyMarkers = []string{"already exists", "already"}

// ClassifyPiholeOutput is the default classifier for pihole CLI output.
// The already-present check runs before the exit code check: pihole exits 0
// for duplicate entries, and those must not be counted as new additions.
func ClassifyPiholeOutput(runErr error, stdout, stderr string) Outcome {
	combined := strings.ToLower(stdout + "\n" + stderr)
	for _, marker := range alreadyMarkers {
		if strings.Contains(combined, marker) {
			return AlreadyPresent()
		}
	}

	if runErr == nil {
		return Added()
	}

	reason := runErr.Error()
	if trimmed := strings.TrimSpace(stderr); trimmed != "" {
		reason = reason + ": " + trimmed
	}
	return Failed(reason)
}
