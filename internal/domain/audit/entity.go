package audit

import "time"

// Severity levels recorded by the audit logger.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// KnownSeverity reports whether s is a defined severity level.
func KnownSeverity(s Severity) bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return true
	}
	return false
}

// Entry is one audit-log record. This engine only reads entries;
// persistence is owned by the audit-logging collaborator.
type Entry struct {
	ID               string
	EmployeeID       string
	Action           string
	Category         string
	Severity         Severity
	SecurityRelevant bool
	OccurredAt       time.Time
}
