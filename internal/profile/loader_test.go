package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProfile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile fixture: %v", err)
	}
	return path
}

const validProfileYAML = `name: standard
description: Balanced protection for everyday use
category: balanced
warnings:
  - Some marketing domains will be blocked
blocklists:
  - name: stevenblack
    url: https://raw.githubusercontent.com/StevenBlack/hosts/master/hosts
    enabled: true
  - name: disabled-list
    url: https://example.com/list.txt
    enabled: false
  - name: no-url-list
whitelist:
  - name: streaming
    reason: Keep video platforms working
    domains:
      - netflix.com
      - nflxvideo.net
  - name: empty-category
    reason: Nothing here yet
    domains: []
regex_patterns:
  - description: Block ad subdomains
    pattern: "^ad[sx]?[0-9]*\\."
  - description: Disabled rule
    pattern: "^tracker[0-9]+\\."
    enabled: false
`

func TestLoadProfile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "standard.yaml", validProfileYAML)

	spec, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if spec.Name != "standard" {
		t.Errorf("Expected name 'standard', got %q", spec.Name)
	}
	if spec.Category != "balanced" {
		t.Errorf("Expected category 'balanced', got %q", spec.Category)
	}
	if len(spec.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got %d", len(spec.Warnings))
	}
	if len(spec.Blocklists) != 3 {
		t.Fatalf("Expected 3 blocklists, got %d", len(spec.Blocklists))
	}
}

func TestLoadProfile_EnabledDefaultsToTrue(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "standard.yaml", validProfileYAML)

	spec, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !spec.Blocklists[0].IsEnabled() {
		t.Error("Expected explicit enabled: true to be enabled")
	}
	if spec.Blocklists[1].IsEnabled() {
		t.Error("Expected enabled: false to be disabled")
	}
	if !spec.Blocklists[2].IsEnabled() {
		t.Error("Expected absent enabled key to default to enabled")
	}
}

func TestLoadProfile_EnabledBlocklistsExcludesDisabledAndURLLess(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "standard.yaml", validProfileYAML)

	spec, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	enabled := spec.EnabledBlocklists()
	if len(enabled) != 1 {
		t.Fatalf("Expected 1 applicable blocklist, got %d", len(enabled))
	}
	if enabled[0].Name != "stevenblack" {
		t.Errorf("Expected stevenblack, got %q", enabled[0].Name)
	}
}

func TestLoadProfile_MissingFile(t *testing.T) {
	_, err := LoadProfile("/non/existent/profile.yaml")
	if err == nil {
		t.Fatal("Expected error for missing profile")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found message, got: %v", err)
	}
}

func TestLoadProfile_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "broken.yaml", "name: [unclosed")

	_, err := LoadProfile(path)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadProfile_MissingSectionsMeanZeroItems(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "minimal.yaml", "name: minimal\ncategory: test\n")

	spec, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected minimal profile to load, got: %v", err)
	}

	if len(spec.Blocklists) != 0 || len(spec.Whitelist) != 0 || len(spec.RegexPatterns) != 0 {
		t.Error("Expected absent sections to yield zero items")
	}
	if spec.WhitelistDomainCount() != 0 {
		t.Errorf("Expected zero whitelist domains, got %d", spec.WhitelistDomainCount())
	}
}

func TestLoadProfile_RequiredFields(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "nameless.yaml", "description: no name or category\n")

	_, err := LoadProfile(path)
	if err == nil {
		t.Fatal("Expected validation error for missing name and category")
	}
	if !strings.Contains(err.Error(), "name") || !strings.Contains(err.Error(), "category") {
		t.Errorf("Expected both missing fields reported, got: %v", err)
	}
}

func TestLoadProfile_BadBlocklistURL(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "badurl.yaml", `name: badurl
category: test
blocklists:
  - name: broken
    url: "not a url"
`)

	_, err := LoadProfile(path)
	if err == nil {
		t.Error("Expected validation error for malformed blocklist URL")
	}
}

func TestLoadProfile_EnabledRegexMustCompile(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "badregex.yaml", `name: badregex
category: test
regex_patterns:
  - description: broken rule
    pattern: "([unclosed"
`)

	_, err := LoadProfile(path)
	if err == nil {
		t.Fatal("Expected validation error for non-compiling enabled regex")
	}
	if !strings.Contains(err.Error(), "does not compile") {
		t.Errorf("Expected compile error message, got: %v", err)
	}
}

func TestLoadProfile_DisabledRegexMayBeBroken(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "disabledregex.yaml", `name: disabledregex
category: test
regex_patterns:
  - description: retired rule
    pattern: "([unclosed"
    enabled: false
`)

	if _, err := LoadProfile(path); err != nil {
		t.Errorf("Expected disabled regex to be ignored by validation, got: %v", err)
	}
}

func TestWhitelistDomainCount_CountsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := writeProfile(t, dir, "dup.yaml", `name: dup
category: test
whitelist:
  - name: a
    domains: [example.com, example.com]
  - name: b
    domains: [other.org]
`)

	spec, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := spec.WhitelistDomainCount(); got != 3 {
		t.Errorf("Expected 3 domains counting duplicates, got %d", got)
	}
}

func TestResolveProfilePath(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "standard.yaml", validProfileYAML)

	tests := []struct {
		name     string
		arg      string
		expected string
	}{
		{"bare name", "standard", filepath.Join(dir, "standard.yaml")},
		{"name without file falls back to yml", "custom", filepath.Join(dir, "custom.yml")},
		{"explicit path", filepath.Join(dir, "standard.yaml"), filepath.Join(dir, "standard.yaml")},
		{"yaml extension", "other.yaml", "other.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveProfilePath(dir, tt.arg); got != tt.expected {
				t.Errorf("ResolveProfilePath(%q) = %q, want %q", tt.arg, got, tt.expected)
			}
		})
	}
}
