package commands

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/gateway"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/health"
)

func CreateCheckCommand() *CheckCommand {
	return &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}
}

// CheckCommand runs one health evaluation and reports it as text. The exit
// code follows the readiness verdict so the command works in scripts and
// cron probes.
type CheckCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
	if err != nil {
		return err
	}
	g.cfg = cfg

	return nil
}

func (g *CheckCommand) Run() error {
	registry := health.BuildRegistry(g.cfg)
	gw := gateway.NewExecGateway(g.cfg.Gateway, false)

	agg := health.NewAggregator(registry, gw)
	result := agg.Evaluate(context.Background())
	verdict := agg.DeriveReadiness(result)

	for _, def := range registry.Checks() {
		check := result.Checks[def.Name]

		marker := "PASS"
		if check.Status != health.CheckPass {
			marker = "FAIL"
		}

		detail := check.Message
		if check.Status == health.CheckPass {
			detail = fmt.Sprintf("%s, %s", check.Message, time.Duration(check.LatencyMS)*time.Millisecond)
		}
		fmt.Printf("  [%s] %-20s %s\n", marker, def.Name, detail)
	}

	fmt.Printf("\nStatus: %s\n", result.Status)
	fmt.Printf("Ready:  %t\n", verdict.Ready)

	if !verdict.Ready {
		return fmt.Errorf("stack is not ready")
	}
	return nil
}
