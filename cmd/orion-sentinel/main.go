package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/commands"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
	}

	var showVersion bool

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/etc/orion-sentinel/orion-sentinel.conf", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Orion Sentinel HA DNS Operator\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  apply                   Apply a filtering profile to the DNS stack\n")
		fmt.Fprintf(os.Stderr, "  profiles                List available filtering profiles\n")
		fmt.Fprintf(os.Stderr, "  check                   Evaluate stack health once and print the verdict\n")
		fmt.Fprintf(os.Stderr, "  server                  Run the HTTP health and API server\n")
		fmt.Fprintf(os.Stderr, "  env                     Show or update the stack .env file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("orion-sentinel %s (Commit: %s, Date: %s)\n", version, commit, date)
		os.Exit(0)
	}

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	// Ensure cfg file exists
	if _, err := os.Stat(ctx.ConfigPath); errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Configuration file not found: %s", ctx.ConfigPath)
	}

	cmds := []commands.Runner{
		commands.CreateApplyCommand(),
		commands.CreateProfilesCommand(),
		commands.CreateCheckCommand(),
		commands.CreateServerCommand(),
		commands.CreateEnvCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
