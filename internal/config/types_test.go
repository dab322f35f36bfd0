package config

import (
	"path/filepath"
	"testing"
)

func TestGroups_DeclarationOrder(t *testing.T) {
	config := validTestConfig()

	groups := config.Groups()
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	if groups[0] != "pihole" || groups[1] != "unbound" {
		t.Errorf("Expected groups in declaration order [pihole unbound], got %v", groups)
	}
}

func TestInstancesByGroup(t *testing.T) {
	config := validTestConfig()

	pihole := config.InstancesByGroup("pihole")
	if len(pihole) != 2 {
		t.Fatalf("Expected 2 pihole instances, got %d", len(pihole))
	}
	if pihole[0].Name != "pihole_primary" || pihole[1].Name != "pihole_secondary" {
		t.Errorf("Expected declaration order within group, got %s, %s", pihole[0].Name, pihole[1].Name)
	}

	if got := config.InstancesByGroup("nonexistent"); len(got) != 0 {
		t.Errorf("Expected no instances for unknown group, got %d", len(got))
	}
}

func TestReconcileTarget(t *testing.T) {
	config := validTestConfig()

	target, err := config.ReconcileTarget()
	if err != nil {
		t.Fatalf("Expected reconciliation target, got error: %v", err)
	}
	if target.Name != "pihole_primary" {
		t.Errorf("Expected pihole_primary as target, got %s", target.Name)
	}
}

func TestReconcileTarget_Missing(t *testing.T) {
	config := validTestConfig()
	config.Instances[0].Container = ""

	if _, err := config.ReconcileTarget(); err == nil {
		t.Error("Expected error when no instance qualifies as target")
	}
}

func TestGetAbsProfileDir(t *testing.T) {
	config := &Config{
		General:            &GeneralConfig{ProfileDir: "profiles"},
		_absConfigFilePath: "/etc/orion-sentinel/orion-sentinel.conf",
	}

	expected := filepath.Join("/etc/orion-sentinel", "profiles")
	if got := config.GetAbsProfileDir(); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	config.General.ProfileDir = "/var/lib/orion-sentinel/profiles"
	if got := config.GetAbsProfileDir(); got != "/var/lib/orion-sentinel/profiles" {
		t.Errorf("Expected absolute dir to pass through, got %s", got)
	}
}

func TestGetAbsEnvFile(t *testing.T) {
	config := &Config{
		General:            &GeneralConfig{EnvFile: ""},
		_absConfigFilePath: "/etc/orion-sentinel/orion-sentinel.conf",
	}

	if got := config.GetAbsEnvFile(); got != "" {
		t.Errorf("Expected empty env file path, got %s", got)
	}

	config.General.EnvFile = "../stack/.env"
	expected := filepath.Join("/etc/stack", ".env")
	if got := config.GetAbsEnvFile(); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}
