package handlers

// StatusResponse is the body of GET /status. Status is "online" or "error".
type StatusResponse struct {
	Status      string       `json:"status"`
	Sessions    *[]Instance  `json:"sessions,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
	Message     string       `json:"message,omitempty"`
}

// Instance is one reconciled game-server instance.
type Instance struct {
	User     string `json:"user"`
	Script   string `json:"script"`
	Session  string `json:"session,omitempty"`
	Status   string `json:"status"`
	IsZombie bool   `json:"is_zombie"`
}

// Diagnostic is a recovered discovery failure.
type Diagnostic struct {
	Component string `json:"component"`
	User      string `json:"user,omitempty"`
	Subject   string `json:"subject,omitempty"`
	Message   string `json:"message"`
}

// TelemetryResponse is the body of GET /telemetry.
type TelemetryResponse struct {
	CPUUsage  float64 `json:"cpu_usage"`
	RAMUsage  float64 `json:"ram_usage"`
	DiskUsage float64 `json:"disk_usage"`
}

// CommandResponse acknowledges POST /command/{script}/{action}.
type CommandResponse struct {
	Message string `json:"message"`
	User    string `json:"user,omitempty"`
	Script  string `json:"script,omitempty"`
	Action  string `json:"action,omitempty"`
}

// LogsResponse is the body of GET /logs/{script}.
type LogsResponse struct {
	Script string `json:"script"`
	User   string `json:"user,omitempty"`
	Path   string `json:"path,omitempty"`
	Logs   string `json:"logs"`
}

// RunCommandParams defines parameters for RunCommand.
type RunCommandParams struct {
	User *string `form:"user,omitempty" json:"user,omitempty"`
}

// GetLogsParams defines parameters for GetLogs.
type GetLogsParams struct {
	User  *string `form:"user,omitempty" json:"user,omitempty"`
	Lines *int    `form:"lines,omitempty" json:"lines,omitempty"`
}

// StreamLogsParams defines parameters for StreamLogs.
type StreamLogsParams struct {
	User  *string `form:"user,omitempty" json:"user,omitempty"`
	Lines *int    `form:"lines,omitempty" json:"lines,omitempty"`
}
