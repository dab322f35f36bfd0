package config

import (
	"fmt"
	"path/filepath"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/utils"
)

type Config struct {
	// ConfigVersion is the configuration file version.
	ConfigVersion uint8 `toml:"config_version" json:"config_version"`
	// General holds general configuration.
	General *GeneralConfig `toml:"general"`
	// Instances describes the DNS stack members in registry order. Health checks
	// are evaluated and reported in the order instances are declared here.
	Instances []*InstanceConfig `toml:"instance,omitempty"`
	// Gateway configures how operations are executed against instances.
	Gateway *GatewayConfig `toml:"gateway"`

	_absConfigFilePath string
}

type GeneralConfig struct {
	// ProfileDir is the directory containing profile YAML documents (default: "profiles").
	ProfileDir string `toml:"profile_dir" json:"profile_dir" validate:"required"`
	// EnvFile is the path to the stack .env file managed by the 'env' command (optional).
	EnvFile string `toml:"env_file" json:"env_file"`
	// Listen is the health API listen address (default: ":8787").
	Listen string `toml:"listen" json:"listen" validate:"listen_addr"`
	// CheckDomain is the domain resolved by DNS health probes (default: "example.com").
	CheckDomain string `toml:"check_domain" json:"check_domain" validate:"omitempty,fqdn"`
}

type InstanceConfig struct {
	// Name identifies the instance in health output (e.g. "pihole_primary").
	Name string `toml:"name" json:"name" validate:"required,instance_name"`
	// Group is the redundancy role group this instance belongs to (e.g. "pihole", "unbound").
	// Readiness requires at least one passing instance in every declared group.
	Group string `toml:"group" json:"group" validate:"required,instance_name"`
	// Host is the instance address.
	Host string `toml:"host" json:"host" validate:"required,host_or_ip"`
	// DNSPort is the port probed by DNS health checks (default: 53).
	DNSPort uint16 `toml:"dns_port" json:"dns_port" validate:"min=0"`
	// Container is the docker container name for instances managed via docker exec (optional).
	Container string `toml:"container" json:"container,omitempty"`
	// APIURL is the admin API base used for connectivity verification (optional, e.g. "http://192.168.8.251/admin/api.php").
	APIURL string `toml:"api_url" json:"api_url,omitempty" validate:"omitempty,url"`
	// Primary marks the preferred instance of a group. The primary instance that
	// also has a container and API URL is the reconciliation target.
	Primary bool `toml:"primary" json:"primary"`
}

type GatewayConfig struct {
	// BlocklistCmd is the command template for adding a blocklist (placeholders: {container}, {url}).
	BlocklistCmd string `toml:"blocklist_cmd" json:"blocklist_cmd" validate:"cmd_template=url"`
	// WhitelistCmd is the command template for whitelisting a domain (placeholders: {container}, {domain}).
	WhitelistCmd string `toml:"whitelist_cmd" json:"whitelist_cmd" validate:"cmd_template=domain"`
	// RegexCmd is the command template for adding a regex rule (placeholders: {container}, {pattern}).
	RegexCmd string `toml:"regex_cmd" json:"regex_cmd" validate:"cmd_template=pattern"`
	// RebuildCmd is the command template for the gravity rebuild (placeholder: {container}).
	RebuildCmd string `toml:"rebuild_cmd" json:"rebuild_cmd" validate:"cmd_template"`
	// MutateTimeoutSec bounds single-entry mutations in seconds (default: 10).
	MutateTimeoutSec int `toml:"mutate_timeout_sec" json:"mutate_timeout_sec" validate:"min=0"`
	// ProbeTimeoutSec bounds health and connectivity probes in seconds (default: 5).
	ProbeTimeoutSec int `toml:"probe_timeout_sec" json:"probe_timeout_sec" validate:"min=0"`
	// RebuildTimeoutSec bounds the gravity rebuild in seconds (default: 300).
	RebuildTimeoutSec int `toml:"rebuild_timeout_sec" json:"rebuild_timeout_sec" validate:"min=0"`
}

func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsProfileDir resolves the profile directory relative to the config file.
func (c *Config) GetAbsProfileDir() string {
	return utils.ResolvePath(c.General.ProfileDir, c.GetConfigDir())
}

// GetAbsEnvFile resolves the stack .env path relative to the config file.
// Returns an empty string if no env file is configured.
func (c *Config) GetAbsEnvFile() string {
	if c.General.EnvFile == "" {
		return ""
	}
	return utils.ResolvePath(c.General.EnvFile, c.GetConfigDir())
}

// Groups returns the distinct role groups in declaration order.
func (c *Config) Groups() []string {
	var groups []string
	seen := make(map[string]bool)
	for _, inst := range c.Instances {
		if !seen[inst.Group] {
			seen[inst.Group] = true
			groups = append(groups, inst.Group)
		}
	}
	return groups
}

// InstancesByGroup returns the instances of one role group in declaration order.
func (c *Config) InstancesByGroup(group string) []*InstanceConfig {
	var instances []*InstanceConfig
	for _, inst := range c.Instances {
		if inst.Group == group {
			instances = append(instances, inst)
		}
	}
	return instances
}

// ReconcileTarget returns the instance profiles are applied to: the primary
// instance that exposes both a container and an admin API URL. Validation
// guarantees exactly one such instance exists.
func (c *Config) ReconcileTarget() (*InstanceConfig, error) {
	for _, inst := range c.Instances {
		if inst.Primary && inst.Container != "" && inst.APIURL != "" {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("no reconciliation target: mark one instance primary with container and api_url set")
}
