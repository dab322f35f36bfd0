package reconcile

import (
	"fmt"
	"io"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
)

// ItemResult records the outcome of one profile item in declaration order.
type ItemResult struct {
	Name    string          `json:"name"`
	Item    string          `json:"item"`
	Outcome gateway.Outcome `json:"outcome"`
}

// StageReport tallies one pipeline stage. Attempted counts items actually
// sent to the gateway, so attempted = added + already_present + failed;
// skipped items are counted separately.
type StageReport struct {
	Stage          string       `json:"stage"`
	Attempted      int          `json:"attempted"`
	Added          int          `json:"added"`
	AlreadyPresent int          `json:"already_present"`
	Skipped        int          `json:"skipped"`
	Failed         int          `json:"failed"`
	Items          []ItemResult `json:"items,omitempty"`
}

func newStageReport(stage string) StageReport {
	return StageReport{Stage: stage}
}

func (s *StageReport) record(name, item string, outcome gateway.Outcome) {
	s.Items = append(s.Items, ItemResult{Name: name, Item: item, Outcome: outcome})

	switch outcome.Kind {
	case gateway.OutcomeSkipped:
		s.Skipped++
	case gateway.OutcomeAdded:
		s.Attempted++
		s.Added++
	case gateway.OutcomeAlreadyPresent:
		s.Attempted++
		s.AlreadyPresent++
	case gateway.OutcomeFailed:
		s.Attempted++
		s.Failed++
	}
}

// FailedItems returns the items that failed, in declaration order.
func (s *StageReport) FailedItems() []ItemResult {
	var failed []ItemResult
	for _, item := range s.Items {
		if item.Outcome.Kind == gateway.OutcomeFailed {
			failed = append(failed, item)
		}
	}
	return failed
}

// Report is the terminal artifact of one reconciliation run.
//
// OverallSuccess turns false only when connectivity verification failed in
// live mode or the rebuild failed or timed out. Individual item failures
// are recorded in the stage reports but never flip it.
type Report struct {
	Profile    string    `json:"profile"`
	Target     string    `json:"target"`
	DryRun     bool      `json:"dry_run"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Connectivity is nil in dry-run mode where verification is skipped.
	Connectivity *gateway.ProbeResult `json:"connectivity,omitempty"`
	Aborted      bool                 `json:"aborted"`

	Blocklists StageReport `json:"blocklists"`
	Whitelist  StageReport `json:"whitelist"`
	Regex      StageReport `json:"regex"`

	// Rebuild is nil when the run aborted before reaching the commit point.
	Rebuild *gateway.Outcome `json:"rebuild,omitempty"`

	OverallSuccess bool `json:"overall_success"`
}

// Duration returns the wall-clock time of the run.
func (r *Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// Stages returns the mutating stage reports in pipeline order.
func (r *Report) Stages() []*StageReport {
	return []*StageReport{&r.Blocklists, &r.Whitelist, &r.Regex}
}

const reportSeparator = "============================================================"

// WriteText renders the report for terminal output.
func (r *Report) WriteText(w io.Writer) {
	fmt.Fprintln(w, reportSeparator)
	fmt.Fprintf(w, "Profile:      %s\n", r.Profile)
	fmt.Fprintf(w, "Target:       %s\n", r.Target)
	if r.DryRun {
		fmt.Fprintf(w, "Mode:         dry-run (no changes were made)\n")
	} else {
		fmt.Fprintf(w, "Mode:         live\n")
	}

	if r.Connectivity != nil {
		if r.Connectivity.Passed {
			fmt.Fprintf(w, "Connectivity: ok (%s, %s)\n", r.Connectivity.Message, r.Connectivity.Latency.Round(time.Millisecond))
		} else {
			fmt.Fprintf(w, "Connectivity: FAILED (%s)\n", r.Connectivity.Message)
		}
	}

	if r.Aborted {
		fmt.Fprintln(w, "Run aborted before any changes were applied.")
	} else {
		for _, stage := range r.Stages() {
			fmt.Fprintf(w, "%-13s %d attempted, %d added, %d already present, %d skipped, %d failed\n",
				stage.Stage+":", stage.Attempted, stage.Added, stage.AlreadyPresent, stage.Skipped, stage.Failed)
		}
		fmt.Fprintf(w, "Rebuild:      %s\n", r.rebuildSummary())

		if failed := r.allFailedItems(); len(failed) > 0 {
			fmt.Fprintln(w, "Failed items:")
			for _, item := range failed {
				fmt.Fprintf(w, "  - %s: %s\n", item.Name, item.Outcome.Reason)
			}
		}
	}

	fmt.Fprintf(w, "Duration:     %s\n", r.Duration().Round(time.Millisecond))
	if r.OverallSuccess {
		fmt.Fprintln(w, "Result:       SUCCESS")
	} else {
		fmt.Fprintln(w, "Result:       FAILED")
	}
	fmt.Fprintln(w, reportSeparator)
}

func (r *Report) rebuildSummary() string {
	switch {
	case r.Rebuild == nil:
		return "not reached"
	case r.Rebuild.Simulated:
		return "would run (dry-run)"
	case r.Rebuild.Success():
		return "completed"
	default:
		return "FAILED (" + r.Rebuild.Reason + ")"
	}
}

func (r *Report) allFailedItems() []ItemResult {
	var failed []ItemResult
	for _, stage := range r.Stages() {
		failed = append(failed, stage.FailedItems()...)
	}
	return failed
}
