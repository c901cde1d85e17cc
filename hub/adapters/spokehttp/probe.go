// Package spokehttp talks to spoke agents over their HTTP API.
package spokehttp

import (
	"context"
	"io"
	"net/http"

	"lgsmfleet/helpers"
	"lgsmfleet/hub/domain"
	"lgsmfleet/hub/interfaces"
)

// maxStatusBody caps how much of a /status answer is kept for proxying.
const maxStatusBody = 4 << 20

// statusProbe implements interfaces.SpokeProbe with GET <spoke>/status.
type statusProbe struct {
	client *http.Client
}

// NewStatusProbe creates a SpokeProbe. The per-call timeout comes from ctx.
// Panics on nil client.
func NewStatusProbe(client *http.Client) interfaces.SpokeProbe {
	return &statusProbe{
		client: helpers.NilPanic(client, "spokehttp.probe.go: http client is required"),
	}
}

// Status performs GET http://ip:port/status with the spoke's X-API-KEY.
//
// Returns: the status code and body for any HTTP answer, including non-2xx;
// an error only when the request could not complete (refused, timeout, reset).
func (p *statusProbe) Status(ctx context.Context, s domain.Spoke) (domain.ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL()+"/status", nil)
	if err != nil {
		return domain.ProbeResult{}, err
	}
	req.Header.Set("X-API-KEY", s.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return domain.ProbeResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxStatusBody))
	if err != nil {
		return domain.ProbeResult{}, err
	}
	return domain.ProbeResult{StatusCode: resp.StatusCode, Body: body}, nil
}
