// Package utils provides general-purpose utility functions for orion-sentinel.
//
// # Example Usage
//
// Path resolution:
//
//	absPath := utils.ResolvePath("profiles/standard.yaml", "/etc/orion-sentinel")
//	// Returns: /etc/orion-sentinel/profiles/standard.yaml
//
// Safe closing in defers:
//
//	defer utils.CloseOrWarn(resp.Body)
package utils
