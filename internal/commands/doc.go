// Package commands implements CLI command handlers for orion-sentinel.
//
// This package provides the command-line interface layer for the application,
// implementing subcommands like apply, profiles, check, server, and env.
// Each command implements the Runner interface and delegates business logic to
// the reconcile, health, and gateway packages.
//
// # Command Structure
//
// All commands follow a consistent pattern:
//   - Init(): Parse arguments and validate configuration
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - apply: Reconcile a filtering profile against the stack
//   - profiles: List the profiles available in the profile directory
//   - check: Evaluate stack health once and print the verdict
//   - server: Run the HTTP health and API server
//   - env: Show or update the stack .env file
//
// # Example Usage
//
// Creating and running a command:
//
//	cmd := commands.CreateApplyCommand()
//	ctx := &commands.AppContext{
//	    ConfigPath: "/etc/orion-sentinel/orion-sentinel.conf",
//	    Verbose:    true,
//	}
//	if err := cmd.Init(args, ctx); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cmd.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// Commands are thin wrappers that orchestrate package-level operations,
// keeping CLI concerns separate from business logic.
package commands
