package scenario

import (
	"context"
	"fmt"
	"net/http"
)

func init() {
	Register("hub_settings", runHubSettings)
}

const settingsProbeKey = "integration_probe"

// runHubSettings writes a setting and reads it back.
func runHubSettings(ctx context.Context, cfg *Config) error {
	if cfg.HubURL == "" {
		return ErrHubNotConfigured
	}
	if err := Expect(ctx, "settings without key", http.MethodGet, cfg.HubURL+"/settings", "", nil, nil, http.StatusUnauthorized, "unauthorized"); err != nil {
		return err
	}
	if err := Expect(ctx, "update settings", http.MethodPost, cfg.HubURL+"/settings", cfg.HubAPIKey,
		map[string]string{settingsProbeKey: "ok"}, nil, http.StatusOK, ""); err != nil {
		return err
	}

	all := map[string]string{}
	if err := Expect(ctx, "get settings", http.MethodGet, cfg.HubURL+"/settings", cfg.HubAPIKey, nil, &all, http.StatusOK, ""); err != nil {
		return err
	}
	if all[settingsProbeKey] != "ok" {
		return fmt.Errorf("get settings: %s=%q, want ok", settingsProbeKey, all[settingsProbeKey])
	}
	fmt.Printf("settings: %d key(s)\n", len(all))
	return nil
}
