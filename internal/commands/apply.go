package commands

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/profile"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/reconcile"
)

func CreateApplyCommand() *ApplyCommand {
	gc := &ApplyCommand{
		fs: flag.NewFlagSet("apply", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Profile, "profile", "", "Profile name (standard, family, paranoid) or path to a profile YAML file")
	gc.fs.BoolVar(&gc.DryRun, "dry-run", false, "Report what would change without applying anything")

	return gc
}

type ApplyCommand struct {
	fs   *flag.FlagSet
	cfg  *config.Config
	spec *profile.ProfileSpec

	Profile string
	DryRun  bool
}

func (g *ApplyCommand) Name() string {
	return g.fs.Name()
}

func (g *ApplyCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.Profile == "" {
		return fmt.Errorf("missing required -profile flag")
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	path := profile.ResolveProfilePath(cfg.GetAbsProfileDir(), g.Profile)
	spec, err := profile.LoadProfile(path)
	if err != nil {
		return err
	}
	g.spec = spec

	return nil
}

func (g *ApplyCommand) Run() error {
	// The report goes to stdout; keep log lines off it so the output can
	// be piped.
	log.SetForceStdErr(true)

	instance, err := g.cfg.ReconcileTarget()
	if err != nil {
		return err
	}
	target := gateway.TargetFromInstance(instance)

	for _, warning := range g.spec.Warnings {
		log.Warnf("Profile warning: %s", warning)
	}

	log.Infof("Profile %q: %d blocklists, %d whitelist domains, %d regex patterns to apply",
		g.spec.Name, len(g.spec.EnabledBlocklists()), g.spec.WhitelistDomainCount(), len(g.spec.EnabledRegexPatterns()))

	gw := gateway.NewExecGateway(g.cfg.Gateway, g.DryRun)
	report := reconcile.NewPipeline(gw, target).Run(context.Background(), g.spec)

	report.WriteText(os.Stdout)

	if !report.OverallSuccess {
		return fmt.Errorf("profile %q was not applied", g.spec.Name)
	}
	return nil
}
