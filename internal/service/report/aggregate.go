package report

import (
	"math"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/audit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/meal"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/report"
)

// Directory indexes employees by id for group labeling and
// division/section lookups during aggregation.
type Directory map[string]employee.Employee

func NewDirectory(employees []employee.Employee) Directory {
	dir := make(Directory, len(employees))
	for _, e := range employees {
		dir[e.ID] = e
	}
	return dir
}

// round2 rounds to two decimal places. Applied at presentation time only;
// accumulation always runs at full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// groupKey resolves the (key, label) pair of one attendance record for a
// grouping dimension. Records whose employee is missing from the
// directory are bucketed under the raw id rather than dropped.
func (s *ReportServiceImpl) attendanceGroupKey(rec attendance.DailyAttendance, groupBy report.GroupBy, dir Directory) (string, string) {
	switch groupBy {
	case report.GroupByDivision:
		if e, ok := dir[rec.EmployeeID]; ok && e.DivisionID != "" {
			return e.DivisionID, e.DivisionName
		}
		return "", "Unassigned"
	case report.GroupBySection:
		if e, ok := dir[rec.EmployeeID]; ok && e.SectionID != "" {
			return e.SectionID, e.SectionName
		}
		return "", "Unassigned"
	case report.GroupByDate:
		return rec.Date, rec.Date
	default: // user
		if e, ok := dir[rec.EmployeeID]; ok {
			return e.ID, e.FullName
		}
		return rec.EmployeeID, rec.EmployeeID
	}
}

type attendanceAccumulator struct {
	label          string
	totalDays      int
	presentDays    int
	absentDays     int
	incompleteDays int
	lateDays       int
	workingHours   float64
	overtimeHours  float64
}

func (a *attendanceAccumulator) add(rec attendance.DailyAttendance) {
	a.totalDays++
	switch rec.Status {
	case attendance.StatusPresent:
		a.presentDays++
	case attendance.StatusAbsent:
		a.absentDays++
	case attendance.StatusIncomplete:
		a.incompleteDays++
	}
	if rec.LateMinutes > 0 {
		a.lateDays++
	}
	// Incomplete records carry zero hours, so summing unconditionally
	// keeps them in attendance totals without polluting hour totals.
	a.workingHours += rec.WorkingHours
	a.overtimeHours += rec.OvertimeHours
}

func (a *attendanceAccumulator) stats() report.AttendanceStats {
	s := report.AttendanceStats{
		TotalDays:          a.totalDays,
		PresentDays:        a.presentDays,
		AbsentDays:         a.absentDays,
		IncompleteDays:     a.incompleteDays,
		LateDays:           a.lateDays,
		TotalWorkingHours:  round2(a.workingHours),
		TotalOvertimeHours: round2(a.overtimeHours),
	}
	if a.totalDays > 0 {
		s.AttendanceRate = round2(float64(a.presentDays) / float64(a.totalDays) * 100)
		s.AverageWorkingHours = round2(a.workingHours / float64(a.totalDays))
	}
	return s
}

// AggregateAttendance rolls up normalized attendance records along one
// grouping dimension. Rows are sorted ascending by the group's natural
// key with the group key as a stable tie-break, so repeated identical
// queries produce identical output.
func (s *ReportServiceImpl) AggregateAttendance(records []attendance.DailyAttendance, groupBy report.GroupBy, dir Directory) []report.AttendanceGroupRow {
	groups := make(map[string]*attendanceAccumulator)
	for _, rec := range records {
		key, label := s.attendanceGroupKey(rec, groupBy, dir)
		acc, ok := groups[key]
		if !ok {
			acc = &attendanceAccumulator{label: label}
			groups[key] = acc
		}
		acc.add(rec)
	}

	rows := make([]report.AttendanceGroupRow, 0, len(groups))
	for key, acc := range groups {
		rows = append(rows, report.AttendanceGroupRow{
			GroupKey:        key,
			GroupLabel:      acc.label,
			AttendanceStats: acc.stats(),
		})
	}
	sortRows(rows, func(r report.AttendanceGroupRow) (string, string) { return r.GroupLabel, r.GroupKey })
	return rows
}

// SummarizeAttendance computes the whole-set rollup used by summary
// blocks (grouping dimension none).
func (s *ReportServiceImpl) SummarizeAttendance(records []attendance.DailyAttendance) report.AttendanceStats {
	var acc attendanceAccumulator
	for _, rec := range records {
		acc.add(rec)
	}
	return acc.stats()
}

// ========================================
// AUDIT PATH
// ========================================

type auditAccumulator struct {
	label     string
	count     int
	users     map[string]struct{}
	security  int
	oldest    time.Time
	latest    time.Time
	seenFirst bool
}

func (a *auditAccumulator) add(e audit.Entry) {
	a.count++
	if a.users == nil {
		a.users = make(map[string]struct{})
	}
	a.users[e.EmployeeID] = struct{}{}
	if e.SecurityRelevant {
		a.security++
	}
	if !a.seenFirst || e.OccurredAt.Before(a.oldest) {
		a.oldest = e.OccurredAt
	}
	if !a.seenFirst || e.OccurredAt.After(a.latest) {
		a.latest = e.OccurredAt
	}
	a.seenFirst = true
}

func (s *ReportServiceImpl) auditGroupKey(e audit.Entry, groupBy report.GroupBy, dir Directory) (string, string) {
	switch groupBy {
	case report.GroupByCategory:
		return e.Category, e.Category
	case report.GroupBySeverity:
		return string(e.Severity), string(e.Severity)
	case report.GroupByAction:
		return e.Action, e.Action
	case report.GroupByDate:
		d := e.OccurredAt.Format("2006-01-02")
		return d, d
	default: // user
		if emp, ok := dir[e.EmployeeID]; ok {
			return emp.ID, emp.FullName
		}
		return e.EmployeeID, e.EmployeeID
	}
}

// AggregateAudit mirrors the attendance rollup shape for audit entries.
func (s *ReportServiceImpl) AggregateAudit(entries []audit.Entry, groupBy report.GroupBy, dir Directory) []report.AuditGroupRow {
	groups := make(map[string]*auditAccumulator)
	for _, e := range entries {
		key, label := s.auditGroupKey(e, groupBy, dir)
		acc, ok := groups[key]
		if !ok {
			acc = &auditAccumulator{label: label}
			groups[key] = acc
		}
		acc.add(e)
	}

	rows := make([]report.AuditGroupRow, 0, len(groups))
	for key, acc := range groups {
		row := report.AuditGroupRow{
			GroupKey:              key,
			GroupLabel:            acc.label,
			Count:                 acc.count,
			UniqueUsers:           len(acc.users),
			SecurityRelevantCount: acc.security,
			OldestOccurrence:      acc.oldest.Format(time.RFC3339),
			LatestOccurrence:      acc.latest.Format(time.RFC3339),
		}
		if acc.count > 0 {
			row.SecurityRelevantRate = round2(float64(acc.security) / float64(acc.count) * 100)
		}
		rows = append(rows, row)
	}
	sortRows(rows, func(r report.AuditGroupRow) (string, string) { return r.GroupLabel, r.GroupKey })
	return rows
}

func (s *ReportServiceImpl) SummarizeAudit(entries []audit.Entry) report.AuditSummary {
	users := make(map[string]struct{})
	security := 0
	for _, e := range entries {
		users[e.EmployeeID] = struct{}{}
		if e.SecurityRelevant {
			security++
		}
	}
	summary := report.AuditSummary{
		TotalEntries:          len(entries),
		UniqueUsers:           len(users),
		SecurityRelevantCount: security,
	}
	if len(entries) > 0 {
		summary.SecurityRelevantRate = round2(float64(security) / float64(len(entries)) * 100)
	}
	return summary
}

// ========================================
// MEAL PATH
// ========================================

func (s *ReportServiceImpl) mealGroupKey(rec meal.Record, groupBy report.GroupBy, dir Directory) (string, string) {
	switch groupBy {
	case report.GroupByMealType:
		return string(rec.Type), string(rec.Type)
	case report.GroupByLocation:
		return rec.Location, rec.Location
	case report.GroupByDate:
		return rec.Date, rec.Date
	default: // user
		if emp, ok := dir[rec.EmployeeID]; ok {
			return emp.ID, emp.FullName
		}
		return rec.EmployeeID, rec.EmployeeID
	}
}

// AggregateMeal rolls up meal-log records along one grouping dimension.
func (s *ReportServiceImpl) AggregateMeal(records []meal.Record, groupBy report.GroupBy, dir Directory) []report.MealGroupRow {
	type mealAccumulator struct {
		label string
		count int
		users map[string]struct{}
	}
	groups := make(map[string]*mealAccumulator)
	for _, rec := range records {
		key, label := s.mealGroupKey(rec, groupBy, dir)
		acc, ok := groups[key]
		if !ok {
			acc = &mealAccumulator{label: label, users: make(map[string]struct{})}
			groups[key] = acc
		}
		acc.count++
		acc.users[rec.EmployeeID] = struct{}{}
	}

	rows := make([]report.MealGroupRow, 0, len(groups))
	for key, acc := range groups {
		rows = append(rows, report.MealGroupRow{
			GroupKey:        key,
			GroupLabel:      acc.label,
			Count:           acc.count,
			UniqueEmployees: len(acc.users),
		})
	}
	sortRows(rows, func(r report.MealGroupRow) (string, string) { return r.GroupLabel, r.GroupKey })
	return rows
}

func (s *ReportServiceImpl) SummarizeMeal(records []meal.Record) report.MealSummary {
	users := make(map[string]struct{})
	for _, rec := range records {
		users[rec.EmployeeID] = struct{}{}
	}
	return report.MealSummary{
		TotalRecords:    len(records),
		UniqueEmployees: len(users),
	}
}

// sortRows orders group rows ascending by natural key (label) with the
// group key as secondary tie-break.
func sortRows[T any](rows []T, keys func(T) (string, string)) {
	sort.Slice(rows, func(i, j int) bool {
		li, ki := keys(rows[i])
		lj, kj := keys(rows[j])
		if li != lj {
			return li < lj
		}
		return ki < kj
	})
}
