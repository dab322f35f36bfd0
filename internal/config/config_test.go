package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[general
	profile_dir = "profiles"`

	err := os.WriteFile(configFile, []byte(invalidTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_UnknownFields(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "unknown.toml")

	unknownTOML := `[general]
profile_dir = "profiles"
no_such_option = true`

	err := os.WriteFile(configFile, []byte(unknownTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	_, err = LoadConfig(configFile)
	if err == nil {
		t.Error("Expected error for unknown config fields")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "valid.toml")

	validTOML := `[general]
profile_dir = "profiles"
listen = ":8787"

[[instance]]
name = "pihole_primary"
group = "pihole"
host = "192.168.8.251"
container = "pihole_primary"
api_url = "http://192.168.8.251/admin/api.php"
primary = true

[[instance]]
name = "unbound_primary"
group = "unbound"
host = "192.168.8.251"
dns_port = 5335
primary = true`

	err := os.WriteFile(configFile, []byte(validTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if config == nil {
		t.Fatal("Expected config to be non-nil")
	}

	if config.General == nil {
		t.Fatal("Expected config.General to be non-nil")
	} else if config.General.ProfileDir != "profiles" {
		t.Errorf("Expected profile_dir to be 'profiles', got %s", config.General.ProfileDir)
	}

	if len(config.Instances) != 2 {
		t.Fatalf("Expected 2 instances, got %d", len(config.Instances))
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "minimal.toml")

	minimalTOML := `[[instance]]
name = "pihole_primary"
group = "pihole"
host = "192.168.8.251"
container = "pihole_primary"
api_url = "http://192.168.8.251/admin/api.php"
primary = true`

	err := os.WriteFile(configFile, []byte(minimalTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for minimal config: %v", err)
	}

	if config.General.Listen != DefaultListen {
		t.Errorf("Expected default listen %q, got %q", DefaultListen, config.General.Listen)
	}
	if config.General.CheckDomain != DefaultCheckDomain {
		t.Errorf("Expected default check domain %q, got %q", DefaultCheckDomain, config.General.CheckDomain)
	}
	if config.Gateway == nil {
		t.Fatal("Expected gateway section to be defaulted")
	}
	if config.Gateway.BlocklistCmd != DefaultBlocklistCmd {
		t.Errorf("Expected default blocklist command, got %q", config.Gateway.BlocklistCmd)
	}
	if config.Gateway.RebuildTimeoutSec != DefaultRebuildTimeoutSec {
		t.Errorf("Expected default rebuild timeout %d, got %d", DefaultRebuildTimeoutSec, config.Gateway.RebuildTimeoutSec)
	}
	if config.Instances[0].DNSPort != DefaultDNSPort {
		t.Errorf("Expected default DNS port %d, got %d", DefaultDNSPort, config.Instances[0].DNSPort)
	}
}

func TestLoadConfig_RelativePath(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.toml")

	validTOML := `[general]
profile_dir = "profiles"`

	err := os.WriteFile(configFile, []byte(validTOML), 0644)
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)

	os.Chdir(tmpDir)

	_, err = LoadConfig("config.toml")
	if err != nil {
		t.Errorf("Expected no error for relative path: %v", err)
	}
}

func TestSerializeConfig(t *testing.T) {
	config := &Config{
		General: &GeneralConfig{
			ProfileDir: "profiles",
		},
	}

	buf, err := config.SerializeConfig()
	if err != nil {
		t.Fatalf("Failed to serialize config: %v", err)
	}

	if buf == nil {
		t.Error("Expected buffer to be non-nil")
	}

	content := buf.String()
	if content == "" {
		t.Error("Expected serialized content to be non-empty")
	}
}

func TestExampleConfig(t *testing.T) {
	configFile := filepath.Join("../../orion-sentinel.example.conf")

	config, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if config == nil {
		t.Fatal("Expected config to be non-nil")
	}

	if err := config.ValidateConfig(); err != nil {
		t.Errorf("Expected example config to validate: %v", err)
	}
}
