package gateway

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/miekg/dns"

	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/log"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/metrics"
	"github.com/orionsentinel/Orion-sentinel-ha-dns/internal/utils"
)

// ProbeKind names the supported probe mechanisms.
type ProbeKind string

const (
	// ProbeDNS sends an A query to the instance's DNS port.
	ProbeDNS ProbeKind = "dns"
	// ProbeHTTP fetches the instance's admin API URL and expects HTTP 200.
	ProbeHTTP ProbeKind = "http"
)

// ProbeSpec describes one probe. Domain is the name resolved by DNS probes.
type ProbeSpec struct {
	Kind   ProbeKind
	Domain string
}

// ProbeResult is the raw result of one probe invocation. A fresh value is
// created per call and never cached.
type ProbeResult struct {
	Passed   bool
	Latency  time.Duration
	Endpoint string
	Message  string
}

// Probe runs one check against the target. Probes are read-only and run
// even when the gateway is in dry-run mode.
func (g *ExecGateway) Probe(ctx context.Context, spec ProbeSpec, target Target) ProbeResult {
	probeCtx, cancel := context.WithTimeout(ctx, g.probeTimeout)
	defer cancel()

	var result ProbeResult
	switch spec.Kind {
	case ProbeHTTP:
		result = g.probeHTTP(probeCtx, target)
	default:
		result = g.probeDNS(probeCtx, spec, target)
	}

	outcome := "fail"
	if result.Passed {
		outcome = "pass"
	}
	metrics.RecordProbe(target.Name, string(spec.Kind), outcome, result.Latency)

	return result
}

// probeDNS sends a single recursive A query. Any well-formed response means
// the resolver is alive; NXDOMAIN for the check domain still counts as a
// pass because the server answered.
func (g *ExecGateway) probeDNS(ctx context.Context, spec ProbeSpec, target Target) ProbeResult {
	endpoint := net.JoinHostPort(target.Host, strconv.Itoa(int(target.DNSPort)))

	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(spec.Domain), dns.TypeA)
	req.RecursionDesired = true

	started := time.Now()
	resp, _, err := g.dnsClient.ExchangeContext(ctx, req, endpoint)
	latency := time.Since(started)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			log.Debugf("DNS probe timeout for %s (%s)", target.Name, endpoint)
			return ProbeResult{
				Endpoint: endpoint,
				Latency:  latency,
				Message:  fmt.Sprintf("timed out after %s", g.probeTimeout),
			}
		}
		log.Debugf("DNS probe error for %s (%s): %v", target.Name, endpoint, err)
		return ProbeResult{
			Endpoint: endpoint,
			Latency:  latency,
			Message:  err.Error(),
		}
	}

	return ProbeResult{
		Passed:   true,
		Endpoint: endpoint,
		Latency:  latency,
		Message:  fmt.Sprintf("%s, %d answer(s)", dns.RcodeToString[resp.Rcode], len(resp.Answer)),
	}
}

// probeHTTP fetches the admin API base URL, mirroring the connectivity
// verification the reconciliation pipeline requires before mutating.
func (g *ExecGateway) probeHTTP(ctx context.Context, target Target) ProbeResult {
	if target.APIURL == "" {
		return ProbeResult{Message: fmt.Sprintf("instance %s has no api_url", target.Name)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.APIURL, nil)
	if err != nil {
		return ProbeResult{Endpoint: target.APIURL, Message: err.Error()}
	}

	started := time.Now()
	resp, err := g.httpClient.Do(req)
	latency := time.Since(started)

	if err != nil {
		log.Debugf("HTTP probe error for %s (%s): %v", target.Name, target.APIURL, err)
		return ProbeResult{
			Endpoint: target.APIURL,
			Latency:  latency,
			Message:  err.Error(),
		}
	}
	defer utils.CloseOrWarn(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return ProbeResult{
			Endpoint: target.APIURL,
			Latency:  latency,
			Message:  fmt.Sprintf("unexpected status code %d", resp.StatusCode),
		}
	}

	return ProbeResult{
		Passed:   true,
		Endpoint: target.APIURL,
		Latency:  latency,
		Message:  "HTTP 200",
	}
}
