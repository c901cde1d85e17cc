package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AlertKind string

const (
	// AlertOffline means the spoke could not be reached at all.
	AlertOffline AlertKind = "offline"
	// AlertDegraded means the spoke answered with a non-2xx status.
	AlertDegraded AlertKind = "degraded"
)

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// AlertEvent is one failed poll. It is handed to an alert sink and never stored.
type AlertEvent struct {
	ID         uuid.UUID
	Kind       AlertKind
	SpokeID    int64
	SpokeName  string
	SpokeIP    string
	Severity   Severity
	Message    string
	StatusCode int
	Cause      string
	Time       time.Time
}

// NewOfflineAlert builds the alert for an unreachable spoke.
func NewOfflineAlert(id uuid.UUID, s Spoke, cause error, now time.Time) AlertEvent {
	ev := AlertEvent{
		ID:        id,
		Kind:      AlertOffline,
		SpokeID:   s.ID,
		SpokeName: s.Name,
		SpokeIP:   s.IP,
		Severity:  SeverityCritical,
		Message:   fmt.Sprintf("🚨 Spoke CRITICAL: %s (%s) is OFFLINE", s.Name, s.IP),
		Time:      now,
	}
	if cause != nil {
		ev.Cause = cause.Error()
	}
	return ev
}

// NewDegradedAlert builds the alert for a spoke that answered with a non-2xx status.
func NewDegradedAlert(id uuid.UUID, s Spoke, statusCode int, now time.Time) AlertEvent {
	return AlertEvent{
		ID:         id,
		Kind:       AlertDegraded,
		SpokeID:    s.ID,
		SpokeName:  s.Name,
		SpokeIP:    s.IP,
		Severity:   SeverityWarning,
		Message:    fmt.Sprintf("⚠️ Spoke Alert: %s (%s) is unresponsive (HTTP %d)", s.Name, s.IP, statusCode),
		StatusCode: statusCode,
		Time:       now,
	}
}
