// Package reconcile converges a filter instance onto a declarative
// filtering profile.
//
// A run walks fixed stages: verify the target's admin API is reachable
// (skipped in dry-run), apply blocklists, whitelist domains, and regex
// patterns with per-item failure isolation, then rebuild the filter index
// exactly once as the commit point. Running the same profile twice is safe:
// items the target already has are classified as already present, so a
// second run reports zero additions.
package reconcile
