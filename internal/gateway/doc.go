// Package gateway is the single I/O seam between the reconciliation and
// health engines and the live DNS stack instances.
//
// Mutations are templated external commands (by default docker exec into the
// Pi-hole container) bounded by per-operation-class timeouts: short for
// single-entry additions, long for the gravity rebuild. Probes are read-only
// DNS queries or admin API fetches.
//
// Every call returns a typed Outcome or ProbeResult; transport errors and
// timeouts are folded into those values and never escape the boundary. The
// idempotency heuristic that maps "already exists" output to AlreadyPresent
// lives in a swappable Classifier function.
package gateway
