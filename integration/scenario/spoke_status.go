package scenario

import (
	"context"
	"fmt"
	"net/http"
)

func init() {
	Register("spoke_status", runSpokeStatus)
}

type statusBody struct {
	Status   string            `json:"status"`
	Sessions *[]map[string]any `json:"sessions"`
	Message  string            `json:"message"`
}

type telemetryBody struct {
	CPUUsage  float64 `json:"cpu_usage"`
	RAMUsage  float64 `json:"ram_usage"`
	DiskUsage float64 `json:"disk_usage"`
}

// runSpokeStatus checks that status and telemetry answer with well-formed bodies.
func runSpokeStatus(ctx context.Context, cfg *Config) error {
	var status statusBody
	if err := Expect(ctx, "status", http.MethodGet, cfg.SpokeURL+"/status", cfg.SpokeAPIKey, nil, &status, http.StatusOK, ""); err != nil {
		return err
	}
	switch status.Status {
	case "online":
		if status.Sessions == nil {
			return fmt.Errorf("status: online answer has no sessions array")
		}
		fmt.Printf("status: online, %d instance(s)\n", len(*status.Sessions))
	case "error":
		if status.Message == "" {
			return fmt.Errorf("status: error answer has no message")
		}
		fmt.Printf("status: error (%s)\n", status.Message)
	default:
		return fmt.Errorf("status: status=%q, want online or error", status.Status)
	}

	var tel telemetryBody
	if err := Expect(ctx, "telemetry", http.MethodGet, cfg.SpokeURL+"/telemetry", cfg.SpokeAPIKey, nil, &tel, http.StatusOK, ""); err != nil {
		return err
	}
	for name, v := range map[string]float64{"cpu_usage": tel.CPUUsage, "ram_usage": tel.RAMUsage, "disk_usage": tel.DiskUsage} {
		if v < 0 || v > 100 {
			return fmt.Errorf("telemetry: %s=%v outside 0..100", name, v)
		}
	}
	fmt.Printf("telemetry: cpu=%.1f ram=%.1f disk=%.1f\n", tel.CPUUsage, tel.RAMUsage, tel.DiskUsage)
	return nil
}
