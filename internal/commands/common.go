package commands

import (
	"fmt"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

// AppContext carries global flags and build metadata into subcommands.
type AppContext struct {
	ConfigPath string
	Verbose    bool

	Version   string
	Commit    string
	BuildDate string
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	if buf, err := cfg.SerializeConfig(); err == nil {
		log.Debugf("Effective configuration:\n%s", buf.String())
	}

	return cfg, nil
}
