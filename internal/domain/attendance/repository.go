package attendance

import "context"

// ScanLogRepository reads raw punch events from the legacy relational
// store. Results carry no ordering guarantee; the normalizer sorts.
// Employees with zero rows in the range simply contribute no events.
type ScanLogRepository interface {
	// ListPunchEvents retrieves all punch events for the given employees
	// within the inclusive date range.
	ListPunchEvents(ctx context.Context, employeeIDs []string, dateRange DateRange) ([]PunchEvent, error)
}

// DailyAttendanceRepository reads pre-computed attendance documents from
// the primary document store. Documents already carry the DailyAttendance
// shape; no normalization is required on this path.
type DailyAttendanceRepository interface {
	// ListDaily retrieves attendance documents for the given employees
	// within the inclusive date range.
	ListDaily(ctx context.Context, employeeIDs []string, dateRange DateRange) ([]DailyAttendance, error)
}
