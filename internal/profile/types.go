package profile

// ProfileSpec is the in-memory form of a profile document. It is loaded once
// per reconciliation run and never mutated afterwards.
type ProfileSpec struct {
	// Name identifies the profile (e.g. "standard").
	Name string `yaml:"name" json:"name" validate:"required"`
	// Description is a human-readable summary.
	Description string `yaml:"description" json:"description"`
	// Category classifies the profile (e.g. "balanced", "strict").
	Category string `yaml:"category" json:"category" validate:"required"`
	// Warnings are operator-facing caveats printed before applying.
	Warnings []string `yaml:"warnings" json:"warnings,omitempty"`
	// Blocklists are gravity list subscriptions. A missing key means zero lists.
	Blocklists []BlocklistEntry `yaml:"blocklists" json:"blocklists,omitempty" validate:"dive"`
	// Whitelist groups allowed domains by category. A missing key means zero categories.
	Whitelist []WhitelistCategory `yaml:"whitelist" json:"whitelist,omitempty" validate:"dive"`
	// RegexPatterns are regex blocking rules. A missing key means zero rules.
	RegexPatterns []RegexRule `yaml:"regex_patterns" json:"regex_patterns,omitempty" validate:"dive"`
}

// BlocklistEntry is one gravity blocklist subscription.
type BlocklistEntry struct {
	Name        string `yaml:"name" json:"name"`
	URL         string `yaml:"url" json:"url" validate:"omitempty,url"`
	Description string `yaml:"description" json:"description,omitempty"`
	// Enabled defaults to true when absent from the document.
	Enabled *bool `yaml:"enabled" json:"enabled,omitempty"`
}

// IsEnabled reports whether the entry should be applied. Entries without an
// explicit enabled key are enabled.
func (e *BlocklistEntry) IsEnabled() bool {
	return e.Enabled == nil || *e.Enabled
}

// WhitelistCategory groups whitelisted domains under a shared reason.
// A category with zero domains is valid and applies nothing.
type WhitelistCategory struct {
	Name    string   `yaml:"name" json:"name"`
	Reason  string   `yaml:"reason" json:"reason,omitempty"`
	Domains []string `yaml:"domains" json:"domains,omitempty"`
}

// RegexRule is one regex blocking rule.
type RegexRule struct {
	Description string `yaml:"description" json:"description,omitempty"`
	Pattern     string `yaml:"pattern" json:"pattern"`
	// Enabled defaults to true when absent from the document.
	Enabled *bool `yaml:"enabled" json:"enabled,omitempty"`
}

// IsEnabled reports whether the rule should be applied.
func (r *RegexRule) IsEnabled() bool {
	return r.Enabled == nil || *r.Enabled
}

// EnabledBlocklists returns the blocklist entries that reconciliation will
// attempt, in declaration order. Entries that are disabled or have no URL
// are excluded (they are reported as skipped, never as failed).
func (p *ProfileSpec) EnabledBlocklists() []BlocklistEntry {
	var enabled []BlocklistEntry
	for _, entry := range p.Blocklists {
		if entry.IsEnabled() && entry.URL != "" {
			enabled = append(enabled, entry)
		}
	}
	return enabled
}

// EnabledRegexPatterns returns the regex rules that reconciliation will
// attempt, in declaration order.
func (p *ProfileSpec) EnabledRegexPatterns() []RegexRule {
	var enabled []RegexRule
	for _, rule := range p.RegexPatterns {
		if rule.IsEnabled() && rule.Pattern != "" {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

// WhitelistDomainCount returns the total number of domains across all
// categories, counting duplicates (each occurrence is applied independently).
func (p *ProfileSpec) WhitelistDomainCount() int {
	count := 0
	for _, category := range p.Whitelist {
		count += len(category.Domains)
	}
	return count
}
