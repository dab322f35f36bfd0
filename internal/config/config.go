package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pelletier/go-toml/v2"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

var (
	instanceNameRegexp = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

const (
	// Placeholders available in gateway command templates.
	TmplContainer = "container"
	TmplURL       = "url"
	TmplDomain    = "domain"
	TmplPattern   = "pattern"
)

const (
	DefaultListen            = ":8787"
	DefaultCheckDomain       = "example.com"
	DefaultDNSPort           = 53
	DefaultMutateTimeoutSec  = 10
	DefaultProbeTimeoutSec   = 5
	DefaultRebuildTimeoutSec = 300

	DefaultBlocklistCmd = "docker exec {container} pihole -a -b {url}"
	DefaultWhitelistCmd = "docker exec {container} pihole -w {domain}"
	DefaultRegexCmd     = "docker exec {container} pihole regex {pattern}"
	DefaultRebuildCmd   = "docker exec {container} pihole -g"
)

func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		if path, err := filepath.Abs(configFile); err != nil {
			return nil, fmt.Errorf("failed to get absolute path: %v", err)
		} else {
			configFile = path
		}
	}

	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Errorf("Configuration file not found: %s", configFile)
		return nil, fmt.Errorf("configuration file not found: %s", configFile)
	}

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	decoder := toml.NewDecoder(bytes.NewReader(content))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, fmt.Errorf("failed to parse config file")
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			log.Errorf("Unknown fields in config file:\n%s", serr.String())
			return nil, fmt.Errorf("config file contains unknown fields")
		}
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	config._absConfigFilePath = configFile
	config.applyDefaults()

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Profile directory: %s", config.GetAbsProfileDir())

	return &config, nil
}

// applyDefaults fills unset optional fields before validation runs.
func (c *Config) applyDefaults() {
	if c.General == nil {
		c.General = &GeneralConfig{}
	}
	if c.General.ProfileDir == "" {
		c.General.ProfileDir = "profiles"
	}
	if c.General.Listen == "" {
		c.General.Listen = DefaultListen
	}
	if c.General.CheckDomain == "" {
		c.General.CheckDomain = DefaultCheckDomain
	}

	if c.Gateway == nil {
		c.Gateway = &GatewayConfig{}
	}
	if c.Gateway.BlocklistCmd == "" {
		c.Gateway.BlocklistCmd = DefaultBlocklistCmd
	}
	if c.Gateway.WhitelistCmd == "" {
		c.Gateway.WhitelistCmd = DefaultWhitelistCmd
	}
	if c.Gateway.RegexCmd == "" {
		c.Gateway.RegexCmd = DefaultRegexCmd
	}
	if c.Gateway.RebuildCmd == "" {
		c.Gateway.RebuildCmd = DefaultRebuildCmd
	}
	if c.Gateway.MutateTimeoutSec == 0 {
		c.Gateway.MutateTimeoutSec = DefaultMutateTimeoutSec
	}
	if c.Gateway.ProbeTimeoutSec == 0 {
		c.Gateway.ProbeTimeoutSec = DefaultProbeTimeoutSec
	}
	if c.Gateway.RebuildTimeoutSec == 0 {
		c.Gateway.RebuildTimeoutSec = DefaultRebuildTimeoutSec
	}

	for _, inst := range c.Instances {
		if inst.DNSPort == 0 {
			inst.DNSPort = DefaultDNSPort
		}
	}
}

func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	return &buf, nil
}
