package handlers

import (
	"strings"

	"lgsmfleet/spoke/domain"
)

func toStatusResponse(report domain.StatusReport) StatusResponse {
	sessions := make([]Instance, 0, len(report.Instances))
	for _, i := range report.Instances {
		sessions = append(sessions, Instance{
			User:     i.User,
			Script:   i.Script,
			Session:  i.Session,
			Status:   string(i.Status),
			IsZombie: i.IsZombie,
		})
	}
	out := StatusResponse{Status: "online", Sessions: &sessions}
	for _, d := range report.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, Diagnostic(d))
	}
	return out
}

func toTelemetryResponse(t domain.Telemetry) TelemetryResponse {
	return TelemetryResponse{CPUUsage: t.CPUUsage, RAMUsage: t.RAMUsage, DiskUsage: t.DiskUsage}
}

func toCommandResponse(r domain.CommandResult) CommandResponse {
	return CommandResponse{Message: r.Message, User: r.User, Script: r.Script, Action: r.Action}
}

func toLogsResponse(t domain.LogTail) LogsResponse {
	logs := strings.Join(t.Lines, "\n")
	if logs != "" {
		logs += "\n"
	}
	return LogsResponse{Script: t.Script, User: t.User, Path: t.Path, Logs: logs}
}
