package report

import "context"

// ReportService defines the report generation operations. Every method
// resolves the requester's scope from context claims exactly once, then
// threads it explicitly through query building and aggregation.
type ReportService interface {
	// GenerateAttendanceReport produces the flat grouped attendance table.
	GenerateAttendanceReport(ctx context.Context, req AttendanceReportRequest) (AttendanceGroupedTable, error)

	// GenerateAttendanceMatrix produces the employee x date grid.
	GenerateAttendanceMatrix(ctx context.Context, req MatrixReportRequest) (MatrixTable, error)

	// GenerateAuditReport produces the grouped audit-entry table.
	GenerateAuditReport(ctx context.Context, req AuditReportRequest) (AuditGroupedTable, error)

	// GenerateMealReport produces the grouped meal-log table.
	GenerateMealReport(ctx context.Context, req MealReportRequest) (MealGroupedTable, error)
}
