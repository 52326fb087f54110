package audit

import (
	"context"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
)

// Filter narrows an audit-log listing. Empty fields mean unrestricted;
// a non-nil empty EmployeeIDs slice matches nothing.
type Filter struct {
	DateRange   attendance.DateRange
	EmployeeIDs []string
	Category    string
	Severity    Severity
}

// AuditLogRepository reads audit entries. Read-only by contract.
type AuditLogRepository interface {
	ListEntries(ctx context.Context, filter Filter) ([]Entry, error)
}
