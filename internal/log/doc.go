// Package log provides simple leveled logging for orion-sentinel.
//
// This package implements a lightweight logging system with colored output
// and support for different log levels: DEBUG, INFO, WARN, and ERROR.
// It provides global logging functions that can be used throughout the application.
//
// # Log Levels
//
//   - DEBUG: Detailed diagnostic information (only shown in verbose mode)
//   - INFO: General informational messages
//   - WARN: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures and exceptions
//
// # Example Usage
//
// Basic logging:
//
//	log.Infof("Starting reconciliation for profile %q", name)
//	log.Warnf("Blocklist %q has no URL, skipping", entry.Name)
//	log.Errorf("Gravity rebuild failed: %v", err)
//
// Enabling verbose mode for debug output:
//
//	log.SetVerbose(true)
//	log.Debugf("Gateway command: %s", cmd)
//
// Fatal errors that exit the application:
//
//	if err != nil {
//	    log.Fatalf("Cannot load config: %v", err) // Exits with code 1
//	}
//
// Output control:
//
//	log.SetForceStdErr(true) // Keep stdout clean for report output
package log
