// Package health evaluates the DNS stack's instances and aggregates them
// into a single classification.
//
// The check registry is fixed at startup from configuration. Every
// evaluation probes all checks fresh; nothing is cached between requests.
// Readiness follows a quorum rule: each role group (pihole, unbound) needs
// at least one passing member. The aggregate status is unhealthy exactly
// when that quorum fails, degraded when checks fail but quorum holds, and
// healthy when everything passes.
package health
