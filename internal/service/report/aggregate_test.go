package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/audit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/meal"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/report"
)

var testDirectory = NewDirectory([]employee.Employee{
	{ID: "emp-1", FullName: "Alice Tan", DivisionID: "div-ops", DivisionName: "Operations", SectionID: "sec-a", SectionName: "Section A", Active: true},
	{ID: "emp-2", FullName: "Budi Santoso", DivisionID: "div-ops", DivisionName: "Operations", SectionID: "sec-b", SectionName: "Section B", Active: true},
	{ID: "emp-3", FullName: "Citra Dewi", DivisionID: "div-fin", DivisionName: "Finance", SectionID: "sec-c", SectionName: "Section C", Active: true},
})

func day(employeeID, date string, status attendance.Status, working, overtime float64, late int) attendance.DailyAttendance {
	return attendance.DailyAttendance{
		EmployeeID:    employeeID,
		Date:          date,
		Status:        status,
		LateMinutes:   late,
		WorkingHours:  working,
		OvertimeHours: overtime,
	}
}

func TestAggregateAttendance_ByUser(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []attendance.DailyAttendance{
		day("emp-1", "2026-02-02", attendance.StatusPresent, 8, 0, 5),
		day("emp-1", "2026-02-03", attendance.StatusPresent, 9, 1, 0),
		day("emp-1", "2026-02-04", attendance.StatusAbsent, 0, 0, 0),
		day("emp-1", "2026-02-05", attendance.StatusIncomplete, 0, 0, 12),
		day("emp-2", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
	}

	rows := svc.AggregateAttendance(records, report.GroupByUser, testDirectory)

	require.Len(t, rows, 2)

	alice := rows[0]
	assert.Equal(t, "emp-1", alice.GroupKey)
	assert.Equal(t, "Alice Tan", alice.GroupLabel)
	assert.Equal(t, 4, alice.TotalDays)
	assert.Equal(t, 2, alice.PresentDays)
	assert.Equal(t, 1, alice.AbsentDays)
	assert.Equal(t, 1, alice.IncompleteDays)
	assert.Equal(t, 2, alice.LateDays)
	assert.Equal(t, 17.0, alice.TotalWorkingHours)
	assert.Equal(t, 1.0, alice.TotalOvertimeHours)
	assert.Equal(t, 50.0, alice.AttendanceRate)
	assert.Equal(t, 4.25, alice.AverageWorkingHours)

	budi := rows[1]
	assert.Equal(t, "Budi Santoso", budi.GroupLabel)
	assert.Equal(t, 1, budi.TotalDays)
	assert.Equal(t, 100.0, budi.AttendanceRate)
}

func TestAggregateAttendance_ByDivision(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []attendance.DailyAttendance{
		day("emp-1", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
		day("emp-2", "2026-02-02", attendance.StatusAbsent, 0, 0, 0),
		day("emp-3", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
	}

	rows := svc.AggregateAttendance(records, report.GroupByDivision, testDirectory)

	require.Len(t, rows, 2)
	// Sorted by label: Finance before Operations.
	assert.Equal(t, "Finance", rows[0].GroupLabel)
	assert.Equal(t, 1, rows[0].TotalDays)
	assert.Equal(t, "Operations", rows[1].GroupLabel)
	assert.Equal(t, 2, rows[1].TotalDays)
	assert.Equal(t, 50.0, rows[1].AttendanceRate)
}

// An employee missing from the directory is bucketed under its raw id,
// never dropped: row totals must still sum to the record count.
func TestAggregateAttendance_UnknownEmployeeKept(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []attendance.DailyAttendance{
		day("emp-1", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
		day("emp-ghost", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
	}

	rows := svc.AggregateAttendance(records, report.GroupByUser, testDirectory)

	require.Len(t, rows, 2)
	total := 0
	for _, r := range rows {
		total += r.TotalDays
	}
	assert.Equal(t, len(records), total)

	byDivision := svc.AggregateAttendance(records, report.GroupByDivision, testDirectory)
	require.Len(t, byDivision, 2)
	assert.Equal(t, "Operations", byDivision[0].GroupLabel)
	assert.Equal(t, "Unassigned", byDivision[1].GroupLabel)
}

func TestAggregateAttendance_ByDate(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []attendance.DailyAttendance{
		day("emp-1", "2026-02-03", attendance.StatusPresent, 8, 0, 0),
		day("emp-2", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
		day("emp-1", "2026-02-02", attendance.StatusAbsent, 0, 0, 0),
	}

	rows := svc.AggregateAttendance(records, report.GroupByDate, testDirectory)

	require.Len(t, rows, 2)
	assert.Equal(t, "2026-02-02", rows[0].GroupKey)
	assert.Equal(t, 2, rows[0].TotalDays)
	assert.Equal(t, "2026-02-03", rows[1].GroupKey)
}

// Full-precision accumulation, rounding only at presentation: three days
// of 7h40m must total 23.0, not 22.98 from per-day rounding.
func TestAggregateAttendance_RoundsAtPresentationOnly(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []attendance.DailyAttendance{
		day("emp-1", "2026-02-02", attendance.StatusPresent, 23.0/3, 0, 0),
		day("emp-1", "2026-02-03", attendance.StatusPresent, 23.0/3, 0, 0),
		day("emp-1", "2026-02-04", attendance.StatusPresent, 23.0/3, 0, 0),
	}

	rows := svc.AggregateAttendance(records, report.GroupByUser, testDirectory)

	require.Len(t, rows, 1)
	assert.Equal(t, 23.0, rows[0].TotalWorkingHours)
}

func TestSummarizeAttendance_Empty(t *testing.T) {
	svc := &ReportServiceImpl{}

	stats := svc.SummarizeAttendance(nil)

	assert.Equal(t, 0, stats.TotalDays)
	assert.Equal(t, 0.0, stats.AttendanceRate)
	assert.Equal(t, 0.0, stats.AverageWorkingHours)
}

func TestSummarizeAttendance_RateBounds(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []attendance.DailyAttendance{
		day("emp-1", "2026-02-02", attendance.StatusPresent, 8, 0, 0),
		day("emp-1", "2026-02-03", attendance.StatusIncomplete, 0, 0, 0),
		day("emp-1", "2026-02-04", attendance.StatusAbsent, 0, 0, 0),
	}

	stats := svc.SummarizeAttendance(records)

	assert.Equal(t, 3, stats.TotalDays)
	assert.InDelta(t, 33.33, stats.AttendanceRate, 0.001)
	assert.GreaterOrEqual(t, stats.AttendanceRate, 0.0)
	assert.LessOrEqual(t, stats.AttendanceRate, 100.0)
}

func auditEntry(id, employeeID, action, category string, severity audit.Severity, security bool, occurredAt string) audit.Entry {
	ts, _ := time.Parse(time.RFC3339, occurredAt)
	return audit.Entry{
		ID:               id,
		EmployeeID:       employeeID,
		Action:           action,
		Category:         category,
		Severity:         severity,
		SecurityRelevant: security,
		OccurredAt:       ts,
	}
}

func TestAggregateAudit_BySeverity(t *testing.T) {
	svc := &ReportServiceImpl{}
	entries := []audit.Entry{
		auditEntry("a1", "emp-1", "login", "auth", audit.SeverityInfo, false, "2026-02-02T08:00:00Z"),
		auditEntry("a2", "emp-2", "login_failed", "auth", audit.SeverityWarning, true, "2026-02-02T09:00:00Z"),
		auditEntry("a3", "emp-1", "login_failed", "auth", audit.SeverityWarning, true, "2026-02-03T09:30:00Z"),
		auditEntry("a4", "emp-1", "export", "data", audit.SeverityCritical, true, "2026-02-04T10:00:00Z"),
	}

	rows := svc.AggregateAudit(entries, report.GroupBySeverity, testDirectory)

	require.Len(t, rows, 3)
	// Sorted by label: critical, info, warning.
	assert.Equal(t, "critical", rows[0].GroupKey)
	assert.Equal(t, "info", rows[1].GroupKey)

	warning := rows[2]
	assert.Equal(t, "warning", warning.GroupKey)
	assert.Equal(t, 2, warning.Count)
	assert.Equal(t, 2, warning.UniqueUsers)
	assert.Equal(t, 2, warning.SecurityRelevantCount)
	assert.Equal(t, 100.0, warning.SecurityRelevantRate)
	assert.Equal(t, "2026-02-02T09:00:00Z", warning.OldestOccurrence)
	assert.Equal(t, "2026-02-03T09:30:00Z", warning.LatestOccurrence)
}

func TestAggregateAudit_ByUser_UsesDirectoryLabels(t *testing.T) {
	svc := &ReportServiceImpl{}
	entries := []audit.Entry{
		auditEntry("a1", "emp-1", "login", "auth", audit.SeverityInfo, false, "2026-02-02T08:00:00Z"),
		auditEntry("a2", "emp-1", "logout", "auth", audit.SeverityInfo, false, "2026-02-02T17:00:00Z"),
	}

	rows := svc.AggregateAudit(entries, report.GroupByUser, testDirectory)

	require.Len(t, rows, 1)
	assert.Equal(t, "Alice Tan", rows[0].GroupLabel)
	assert.Equal(t, 2, rows[0].Count)
	assert.Equal(t, 1, rows[0].UniqueUsers)
}

func TestSummarizeAudit(t *testing.T) {
	svc := &ReportServiceImpl{}
	entries := []audit.Entry{
		auditEntry("a1", "emp-1", "login", "auth", audit.SeverityInfo, false, "2026-02-02T08:00:00Z"),
		auditEntry("a2", "emp-2", "export", "data", audit.SeverityCritical, true, "2026-02-02T09:00:00Z"),
	}

	summary := svc.SummarizeAudit(entries)

	assert.Equal(t, 2, summary.TotalEntries)
	assert.Equal(t, 2, summary.UniqueUsers)
	assert.Equal(t, 1, summary.SecurityRelevantCount)
	assert.Equal(t, 50.0, summary.SecurityRelevantRate)

	empty := svc.SummarizeAudit(nil)
	assert.Equal(t, 0.0, empty.SecurityRelevantRate)
}

func TestAggregateMeal_ByMealType(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []meal.Record{
		{ID: "m1", EmployeeID: "emp-1", Date: "2026-02-02", Type: meal.MealLunch, Location: "hq-canteen"},
		{ID: "m2", EmployeeID: "emp-2", Date: "2026-02-02", Type: meal.MealLunch, Location: "hq-canteen"},
		{ID: "m3", EmployeeID: "emp-1", Date: "2026-02-02", Type: meal.MealBreakfast, Location: "hq-canteen"},
		{ID: "m4", EmployeeID: "emp-1", Date: "2026-02-03", Type: meal.MealLunch, Location: "annex"},
	}

	rows := svc.AggregateMeal(records, report.GroupByMealType, testDirectory)

	require.Len(t, rows, 2)
	assert.Equal(t, "breakfast", rows[0].GroupKey)
	assert.Equal(t, 1, rows[0].Count)

	lunch := rows[1]
	assert.Equal(t, "lunch", lunch.GroupKey)
	assert.Equal(t, 3, lunch.Count)
	assert.Equal(t, 2, lunch.UniqueEmployees)
}

func TestSummarizeMeal(t *testing.T) {
	svc := &ReportServiceImpl{}
	records := []meal.Record{
		{ID: "m1", EmployeeID: "emp-1", Date: "2026-02-02", Type: meal.MealLunch, Location: "hq-canteen"},
		{ID: "m2", EmployeeID: "emp-1", Date: "2026-02-03", Type: meal.MealLunch, Location: "hq-canteen"},
	}

	summary := svc.SummarizeMeal(records)

	assert.Equal(t, 2, summary.TotalRecords)
	assert.Equal(t, 1, summary.UniqueEmployees)
}
