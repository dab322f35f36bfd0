// Package config handles configuration file parsing and validation for orion-sentinel.
//
// This package reads TOML configuration files and provides strongly-typed
// structures for accessing configuration data. Defaults are applied before
// validation so a minimal config only needs to declare its instances.
//
// # Configuration Structure
//
// The configuration file defines:
//   - General settings (profile directory, health API listen address, check domain)
//   - DNS stack instances with their role groups, hosts, and probe ports
//   - Gateway command templates and per-operation-class timeouts
//
// # Example Usage
//
// Loading and validating a configuration file:
//
//	cfg, err := config.LoadConfig("/etc/orion-sentinel/orion-sentinel.conf")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
//
// Accessing configuration:
//
//	for _, inst := range cfg.Instances {
//	    fmt.Printf("Instance: %s, group: %s, host: %s:%d\n",
//	        inst.Name, inst.Group, inst.Host, inst.DNSPort)
//	}
//
// Instance declaration order is significant: health checks run and report
// in that order.
package config
