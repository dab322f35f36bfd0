package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestListProfiles(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "standard.yaml", validProfileYAML)
	writeProfile(t, dir, "family.yaml", `name: family
description: Family-safe filtering
category: strict
warnings:
  - Blocks adult content aggressively
blocklists:
  - name: porn-top1m
    url: https://example.com/porn-top1m.txt
`)
	writeProfile(t, dir, "notes.txt", "not a profile")

	infos, err := ListProfiles(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(infos) != 2 {
		t.Fatalf("Expected 2 catalog entries, got %d", len(infos))
	}

	// Sorted by file name: family.yaml before standard.yaml
	if infos[0].Name != "family" || infos[1].Name != "standard" {
		t.Errorf("Expected [family standard], got [%s %s]", infos[0].Name, infos[1].Name)
	}

	if infos[0].Blocklists != 1 {
		t.Errorf("Expected 1 blocklist in family profile, got %d", infos[0].Blocklists)
	}
	if len(infos[0].Warnings) != 1 {
		t.Errorf("Expected 1 warning in family profile, got %d", len(infos[0].Warnings))
	}
}

func TestListProfiles_BrokenDocumentIsReportedNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "good.yaml", validProfileYAML)
	writeProfile(t, dir, "broken.yaml", "name: [unclosed")

	infos, err := ListProfiles(dir)
	if err != nil {
		t.Fatalf("Expected listing to survive a broken document, got: %v", err)
	}

	if len(infos) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(infos))
	}

	if infos[0].File != "broken.yaml" || infos[0].Error == "" {
		t.Errorf("Expected broken.yaml reported with error, got %+v", infos[0])
	}
	if infos[1].File != "good.yaml" || infos[1].Error != "" {
		t.Errorf("Expected good.yaml reported clean, got %+v", infos[1])
	}
}

func TestListProfiles_MissingDirectory(t *testing.T) {
	if _, err := ListProfiles(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Expected error for missing profile directory")
	}
}

func TestListProfiles_IgnoresSubdirectories(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "only.yaml", validProfileYAML)
	if err := os.MkdirAll(filepath.Join(dir, "archive.yaml"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	infos, err := ListProfiles(dir)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(infos) != 1 {
		t.Errorf("Expected directories to be skipped, got %d entries", len(infos))
	}
}
