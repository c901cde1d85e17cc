package scenario

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
)

func init() {
	Register("hub_registry", runHubRegistry)
}

type spokeBody struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key"`
}

// runHubRegistry registers the configured agent with the hub, reads its status through
// the proxy and removes it again.
func runHubRegistry(ctx context.Context, cfg *Config) error {
	if cfg.HubURL == "" {
		return ErrHubNotConfigured
	}
	u, err := url.Parse(cfg.SpokeURL)
	if err != nil {
		return fmt.Errorf("parse spoke url: %w", err)
	}
	host, portStr, err := net.SplitHostPort(u.Host)
	if err != nil {
		return fmt.Errorf("spoke url needs an explicit port: %w", err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("spoke url port: %w", err)
	}

	if err := Expect(ctx, "add spoke without key", http.MethodPost, cfg.HubURL+"/spokes", "", spokeBody{}, nil, http.StatusUnauthorized, "unauthorized"); err != nil {
		return err
	}
	if err := Expect(ctx, "add spoke without name", http.MethodPost, cfg.HubURL+"/spokes", cfg.HubAPIKey,
		spokeBody{IP: host, Port: port, APIKey: cfg.SpokeAPIKey}, nil, http.StatusBadRequest, "bad_parameter"); err != nil {
		return err
	}

	var added spokeBody
	if err := Expect(ctx, "add spoke", http.MethodPost, cfg.HubURL+"/spokes", cfg.HubAPIKey,
		spokeBody{Name: "integration-spoke", IP: host, Port: port, APIKey: cfg.SpokeAPIKey}, &added, http.StatusCreated, ""); err != nil {
		return err
	}
	if added.ID == 0 || added.IP != host || added.Port != port {
		return fmt.Errorf("add spoke: unexpected answer %+v", added)
	}
	fmt.Printf("registered spoke id=%d\n", added.ID)
	spokeURL := fmt.Sprintf("%s/spokes/%d", cfg.HubURL, added.ID)

	var listed []spokeBody
	if err := Expect(ctx, "list spokes", http.MethodGet, cfg.HubURL+"/spokes", cfg.HubAPIKey, nil, &listed, http.StatusOK, ""); err != nil {
		return err
	}
	found := false
	for _, s := range listed {
		found = found || s.ID == added.ID
	}
	if !found {
		return fmt.Errorf("list spokes: id %d missing", added.ID)
	}

	var status statusBody
	if err := Expect(ctx, "proxy status", http.MethodGet, fmt.Sprintf("%s/proxy/status/%d", cfg.HubURL, added.ID), cfg.HubAPIKey, nil, &status, http.StatusOK, ""); err != nil {
		return err
	}
	if status.Status != "online" && status.Status != "error" {
		return fmt.Errorf("proxy status: status=%q, want the agent's own answer", status.Status)
	}
	fmt.Printf("proxy status: %s\n", status.Status)

	if err := Expect(ctx, "delete spoke", http.MethodDelete, spokeURL, cfg.HubAPIKey, nil, nil, http.StatusNoContent, ""); err != nil {
		return err
	}
	return Expect(ctx, "get deleted spoke", http.MethodGet, spokeURL, cfg.HubAPIKey, nil, nil, http.StatusNotFound, "entity_not_found")
}
