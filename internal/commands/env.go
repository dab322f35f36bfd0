package commands

import (
	"flag"
	"fmt"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/env"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
)

func CreateEnvCommand() *EnvCommand {
	gc := &EnvCommand{
		fs: flag.NewFlagSet("env", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.File, "file", "", "Path to the stack .env file (default: env_file from config)")

	return gc
}

// EnvCommand shows or updates the docker-compose environment of the stack.
// Usage: env [-file path]           show managed keys (secrets redacted)
//        env [-file path] set K V   update one key in place
type EnvCommand struct {
	fs    *flag.FlagSet
	store *env.Store
	args  []string

	File string
}

func (g *EnvCommand) Name() string {
	return g.fs.Name()
}

func (g *EnvCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	path := g.File
	if path == "" {
		cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
		if err != nil {
			return err
		}
		path = cfg.GetAbsEnvFile()
	}
	if path == "" {
		return fmt.Errorf("no env file configured: set general.env_file or pass -file")
	}

	g.store = env.NewStore(path)
	g.args = g.fs.Args()

	return nil
}

func (g *EnvCommand) Run() error {
	if len(g.args) == 0 {
		return g.show()
	}

	switch g.args[0] {
	case "set":
		if len(g.args) != 3 {
			return fmt.Errorf("usage: env set KEY VALUE")
		}
		return g.set(g.args[1], g.args[2])
	default:
		return fmt.Errorf("unknown env subcommand %q (expected: set)", g.args[0])
	}
}

func (g *EnvCommand) show() error {
	values, err := g.store.Read()
	if err != nil {
		return err
	}

	fmt.Printf("Stack environment (%s):\n", g.store.Path())
	for _, key := range env.ManagedKeys {
		value, ok := values[key]
		if !ok {
			fmt.Printf("  %-20s (not set)\n", key)
			continue
		}
		fmt.Printf("  %-20s %s\n", key, env.Redact(key, value))
	}

	return nil
}

func (g *EnvCommand) set(key, value string) error {
	if err := g.store.Set(map[string]string{key: value}); err != nil {
		return err
	}

	log.Infof("Updated %s in %s", key, g.store.Path())
	if key == env.KeyPiholePassword || key == env.KeyWebPassword {
		log.Infof("Both password keys were updated; restart the pihole containers to pick it up")
	}
	return nil
}
