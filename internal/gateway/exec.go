package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/valyala/fasttemplate"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/config"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/metrics"
)

const (
	templateStartTag = "{"
	templateEndTag   = "}"
)

// CommandRunner executes one external command and returns its captured
// output. The default runner shells out; tests substitute their own.
type CommandRunner func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

// RunCommand is the default CommandRunner.
func RunCommand(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// ExecGateway applies operations by executing templated commands (docker
// exec against the filter container) and probes instances over DNS and HTTP.
type ExecGateway struct {
	templates map[OperationKind]string

	mutateTimeout  time.Duration
	probeTimeout   time.Duration
	rebuildTimeout time.Duration

	// Runner and Classify are exposed for substitution in tests.
	Runner   CommandRunner
	Classify Classifier

	dryRun     bool
	httpClient *http.Client
	dnsClient  *dns.Client
}

var _ Gateway = (*ExecGateway)(nil)

// NewExecGateway builds a gateway from the gateway config section.
func NewExecGateway(cfg *config.GatewayConfig, dryRun bool) *ExecGateway {
	probeTimeout := time.Duration(cfg.ProbeTimeoutSec) * time.Second

	return &ExecGateway{
		templates: map[OperationKind]string{
			OpBlocklist: cfg.BlocklistCmd,
			OpWhitelist: cfg.WhitelistCmd,
			OpRegex:     cfg.RegexCmd,
			OpRebuild:   cfg.RebuildCmd,
		},
		mutateTimeout:  time.Duration(cfg.MutateTimeoutSec) * time.Second,
		probeTimeout:   probeTimeout,
		rebuildTimeout: time.Duration(cfg.RebuildTimeoutSec) * time.Second,
		Runner:         RunCommand,
		Classify:       ClassifyPiholeOutput,
		dryRun:         dryRun,
		httpClient:     &http.Client{Timeout: probeTimeout},
		dnsClient: &dns.Client{
			Net:     "udp",
			Timeout: probeTimeout,
		},
	}
}

// DryRun reports whether the gateway suppresses mutating calls.
func (g *ExecGateway) DryRun() bool {
	return g.dryRun
}

// Apply executes one mutating operation against the target. In dry-run mode
// no external call happens and a synthetic simulated outcome is returned.
func (g *ExecGateway) Apply(ctx context.Context, op Operation, target Target) Outcome {
	if g.dryRun {
		if op.Item == "" {
			log.Infof("[dry-run] Would run %s on %s", op.Kind, target.Name)
		} else {
			log.Infof("[dry-run] Would apply %s %q to %s", op.Kind, op.Item, target.Name)
		}
		return Simulated()
	}

	argv, err := g.renderCommand(op, target)
	if err != nil {
		return Failed(err.Error())
	}

	timeout := g.mutateTimeout
	if op.Kind == OpRebuild {
		timeout = g.rebuildTimeout
	}

	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.Debugf("Gateway command for %s: %s", target.Name, strings.Join(argv, " "))

	started := time.Now()
	stdout, stderr, runErr := g.Runner(opCtx, argv[0], argv[1:]...)
	elapsed := time.Since(started)

	if opCtx.Err() == context.DeadlineExceeded {
		outcome := Failed(fmt.Sprintf("timed out after %s", timeout))
		metrics.RecordGatewayOperation(string(op.Kind), string(outcome.Kind), elapsed)
		return outcome
	}

	outcome := g.Classify(runErr, stdout, stderr)
	metrics.RecordGatewayOperation(string(op.Kind), string(outcome.Kind), elapsed)
	return outcome
}

// renderCommand expands the operation's template into an argv. Substitution
// happens per token so items containing spaces (regex patterns) stay a
// single argument.
func (g *ExecGateway) renderCommand(op Operation, target Target) ([]string, error) {
	tmpl, ok := g.templates[op.Kind]
	if !ok || tmpl == "" {
		return nil, fmt.Errorf("no command template for operation %q", op.Kind)
	}

	values := map[string]interface{}{
		config.TmplContainer: target.Container,
		config.TmplURL:       op.Item,
		config.TmplDomain:    op.Item,
		config.TmplPattern:   op.Item,
	}

	tokens := strings.Fields(tmpl)
	argv := make([]string, 0, len(tokens))
	for _, token := range tokens {
		argv = append(argv, fasttemplate.ExecuteString(token, templateStartTag, templateEndTag, values))
	}

	if len(argv) == 0 {
		return nil, fmt.Errorf("empty command template for operation %q", op.Kind)
	}
	return argv, nil
}
