package reconcile

import (
	"context"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/metrics"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/profile"
)

// Pipeline drives one reconciliation run against a single target. Construct
// a fresh pipeline per run; it keeps no state between runs.
type Pipeline struct {
	gw     gateway.Gateway
	target gateway.Target
}

func NewPipeline(gw gateway.Gateway, target gateway.Target) *Pipeline {
	return &Pipeline{gw: gw, target: target}
}

// Run applies the profile stage by stage and returns the report. Stages run
// in a fixed order: connectivity verification (live mode only), blocklists,
// whitelist, regex patterns, then a single index rebuild as the commit
// point. Item failures inside a stage are recorded and the stage continues;
// only a connectivity failure or a rebuild failure makes the run fail.
func (p *Pipeline) Run(ctx context.Context, spec *profile.ProfileSpec) *Report {
	dryRun := p.gw.DryRun()

	report := &Report{
		Profile:    spec.Name,
		Target:     p.target.Name,
		DryRun:     dryRun,
		StartedAt:  time.Now(),
		Blocklists: newStageReport("blocklists"),
		Whitelist:  newStageReport("whitelist"),
		Regex:      newStageReport("regex"),
	}

	if dryRun {
		log.Infof("Applying profile %q to %s (dry-run)", spec.Name, p.target.Name)
	} else {
		log.Infof("Applying profile %q to %s", spec.Name, p.target.Name)

		probe := p.gw.Probe(ctx, gateway.ProbeSpec{Kind: gateway.ProbeHTTP}, p.target)
		report.Connectivity = &probe
		if !probe.Passed {
			log.Errorf("Cannot reach %s admin API: %s", p.target.Name, probe.Message)
			report.Aborted = true
			return p.finish(report, false)
		}
		log.Debugf("Admin API of %s reachable (%s)", p.target.Name, probe.Message)
	}

	p.applyBlocklists(ctx, spec, &report.Blocklists)
	p.applyWhitelist(ctx, spec, &report.Whitelist)
	p.applyRegexPatterns(ctx, spec, &report.Regex)

	log.Infof("Rebuilding filter index on %s (this may take a few minutes)", p.target.Name)
	rebuild := p.gw.Apply(ctx, gateway.Operation{Kind: gateway.OpRebuild}, p.target)
	report.Rebuild = &rebuild
	if !rebuild.Success() {
		log.Errorf("Index rebuild failed: %s", rebuild.Reason)
		return p.finish(report, false)
	}

	return p.finish(report, true)
}

func (p *Pipeline) finish(report *Report, success bool) *Report {
	report.FinishedAt = time.Now()
	report.OverallSuccess = success
	metrics.RecordReconcileRun(success, report.DryRun, report.Duration())
	return report
}

func (p *Pipeline) applyBlocklists(ctx context.Context, spec *profile.ProfileSpec, stage *StageReport) {
	if len(spec.Blocklists) == 0 {
		log.Debugf("No blocklists defined in profile %q", spec.Name)
		return
	}

	log.Infof("Applying %d blocklists...", len(spec.Blocklists))
	for _, entry := range spec.Blocklists {
		name := entry.Name
		if name == "" {
			name = entry.URL
		}

		switch {
		case !entry.IsEnabled():
			log.Debugf("Skipping disabled blocklist %q", name)
			stage.record(name, entry.URL, gateway.Skipped("disabled"))
		case entry.URL == "":
			log.Warnf("Blocklist %q has no URL, skipping", name)
			stage.record(name, "", gateway.Skipped("no url"))
		default:
			outcome := p.gw.Apply(ctx, gateway.Operation{Kind: gateway.OpBlocklist, Item: entry.URL}, p.target)
			p.logOutcome("blocklist", name, outcome)
			stage.record(name, entry.URL, outcome)
		}
	}
}

func (p *Pipeline) applyWhitelist(ctx context.Context, spec *profile.ProfileSpec, stage *StageReport) {
	if len(spec.Whitelist) == 0 {
		log.Debugf("No whitelist defined in profile %q", spec.Name)
		return
	}

	log.Infof("Applying whitelist (%d categories, %d domains)...", len(spec.Whitelist), spec.WhitelistDomainCount())
	for _, category := range spec.Whitelist {
		for _, domain := range category.Domains {
			outcome := p.gw.Apply(ctx, gateway.Operation{Kind: gateway.OpWhitelist, Item: domain}, p.target)
			p.logOutcome("whitelist entry", domain, outcome)
			stage.record(domain, domain, outcome)
		}
	}
}

func (p *Pipeline) applyRegexPatterns(ctx context.Context, spec *profile.ProfileSpec, stage *StageReport) {
	if len(spec.RegexPatterns) == 0 {
		log.Debugf("No regex patterns defined in profile %q", spec.Name)
		return
	}

	log.Infof("Applying %d regex patterns...", len(spec.RegexPatterns))
	for _, rule := range spec.RegexPatterns {
		name := rule.Description
		if name == "" {
			name = rule.Pattern
		}

		switch {
		case !rule.IsEnabled():
			log.Debugf("Skipping disabled regex %q", name)
			stage.record(name, rule.Pattern, gateway.Skipped("disabled"))
		case rule.Pattern == "":
			log.Warnf("Regex rule %q has no pattern, skipping", name)
			stage.record(name, "", gateway.Skipped("no pattern"))
		default:
			outcome := p.gw.Apply(ctx, gateway.Operation{Kind: gateway.OpRegex, Item: rule.Pattern}, p.target)
			p.logOutcome("regex", name, outcome)
			stage.record(name, rule.Pattern, outcome)
		}
	}
}

func (p *Pipeline) logOutcome(kind, name string, outcome gateway.Outcome) {
	switch outcome.Kind {
	case gateway.OutcomeFailed:
		log.Warnf("Failed to apply %s %q: %s", kind, name, outcome.Reason)
	case gateway.OutcomeAlreadyPresent:
		log.Debugf("%s %q already present", kind, name)
	default:
		log.Debugf("Applied %s %q", kind, name)
	}
}
