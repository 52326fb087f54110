package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/audit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/meal"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-engine-go/internal/service/normalizer"
	"github.com/go-chi/jwtauth/v5"
)

type ReportServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	dailyRepo    attendance.DailyAttendanceRepository
	scanRepo     attendance.ScanLogRepository
	auditRepo    audit.AuditLogRepository
	mealRepo     meal.MealLogRepository
	schedule     attendance.ScheduleConfig
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	dailyRepo attendance.DailyAttendanceRepository,
	scanRepo attendance.ScanLogRepository,
	auditRepo audit.AuditLogRepository,
	mealRepo meal.MealLogRepository,
	schedule attendance.ScheduleConfig,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		dailyRepo:    dailyRepo,
		scanRepo:     scanRepo,
		auditRepo:    auditRepo,
		mealRepo:     mealRepo,
		schedule:     schedule,
	}
}

// resolveScope builds the requester's scope predicate from JWT claims,
// exactly once per request. A denied scope is logged as an audit signal
// but still yields an empty, valid report downstream: callers cannot
// distinguish "denied" from "no data" via the report shape itself.
func (s *ReportServiceImpl) resolveScope(ctx context.Context) (user.ScopePredicate, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.ScopePredicate{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	requester := user.RequesterFromClaims(claims)
	scope := user.ResolveScope(requester)
	if scope.Deny {
		slog.Warn("report scope denied, returning empty report",
			"user_id", requester.UserID,
			"role", string(requester.Role),
		)
	}
	return scope, nil
}

// matchesFilters applies the user-supplied employee constraints. These
// only ever narrow the role scope: the employee list was already
// restricted by the scope predicate before this runs.
func matchesFilters(e employee.Employee, f report.Filters) bool {
	if f.DivisionID != "" && e.DivisionID != f.DivisionID {
		return false
	}
	if f.SectionID != "" && e.SectionID != f.SectionID {
		return false
	}
	if len(f.EmployeeIDs) > 0 {
		found := false
		for _, id := range f.EmployeeIDs {
			if id == e.ID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// scopedEmployees resolves the candidate employee set for a query: the
// directory listing restricted by the scope predicate, intersected with
// the request's explicit filters.
func (s *ReportServiceImpl) scopedEmployees(ctx context.Context, q report.Query) ([]employee.Employee, error) {
	if q.Scope.Deny {
		return nil, nil
	}

	listed, err := s.employeeRepo.List(ctx, q.Scope.DirectoryFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	employees := make([]employee.Employee, 0, len(listed))
	for _, e := range listed {
		if q.Scope.Allows(e) && matchesFilters(e, q.Filters) {
			employees = append(employees, e)
		}
	}
	return employees, nil
}

func employeeIDs(employees []employee.Employee) []string {
	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	return ids
}

// fetchDailyGrouped returns the attendance records for the grouped
// report path: only employee-days that actually appear in the backing
// store. Both sources unify at the DailyAttendance shape here.
func (s *ReportServiceImpl) fetchDailyGrouped(ctx context.Context, q report.Query, ids []string) ([]attendance.DailyAttendance, error) {
	var records []attendance.DailyAttendance

	switch q.Source {
	case report.SourceScans:
		events, err := s.scanRepo.ListPunchEvents(ctx, ids, q.DateRange)
		if err != nil {
			return nil, fmt.Errorf("failed to list punch events: %w", err)
		}
		grouped := make(map[attendance.DayKey][]attendance.PunchEvent)
		for _, ev := range events {
			key := attendance.DayKey{EmployeeID: ev.EmployeeID, Date: ev.Date}
			grouped[key] = append(grouped[key], ev)
		}
		records = make([]attendance.DailyAttendance, 0, len(grouped))
		for key, evs := range grouped {
			records = append(records, normalizer.Normalize(evs, key.EmployeeID, key.Date, s.schedule))
		}

	default:
		var err error
		records, err = s.dailyRepo.ListDaily(ctx, ids, q.DateRange)
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance documents: %w", err)
		}
	}

	if q.Filters.Status == "" {
		return records, nil
	}
	filtered := records[:0]
	for _, rec := range records {
		if rec.Status == q.Filters.Status {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// fetchDailyMatrix returns the total employee x date mapping for the
// matrix path: exactly one entry per (employee, date) pair, absent-filled.
func (s *ReportServiceImpl) fetchDailyMatrix(ctx context.Context, q report.Query, ids []string) (map[attendance.DayKey]attendance.DailyAttendance, error) {
	if q.Source == report.SourceScans {
		events, err := s.scanRepo.ListPunchEvents(ctx, ids, q.DateRange)
		if err != nil {
			return nil, fmt.Errorf("failed to list punch events: %w", err)
		}
		return normalizer.NormalizeRange(events, ids, q.DateRange, s.schedule), nil
	}

	docs, err := s.dailyRepo.ListDaily(ctx, ids, q.DateRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance documents: %w", err)
	}
	cells := make(map[attendance.DayKey]attendance.DailyAttendance, len(ids)*q.DateRange.Days())
	for _, doc := range docs {
		cells[attendance.DayKey{EmployeeID: doc.EmployeeID, Date: doc.Date}] = doc
	}
	for _, id := range ids {
		for _, date := range q.DateRange.Dates() {
			key := attendance.DayKey{EmployeeID: id, Date: date}
			if _, ok := cells[key]; !ok {
				cells[key] = attendance.DailyAttendance{
					EmployeeID: id,
					Date:       date,
					Status:     attendance.StatusAbsent,
				}
			}
		}
	}
	return cells, nil
}

// GenerateAttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceReport(ctx context.Context, req report.AttendanceReportRequest) (report.AttendanceGroupedTable, error) {
	scope, err := s.resolveScope(ctx)
	if err != nil {
		return report.AttendanceGroupedTable{}, err
	}

	q, err := BuildAttendanceQuery(req, scope)
	if err != nil {
		return report.AttendanceGroupedTable{}, err
	}

	employees, err := s.scopedEmployees(ctx, q)
	if err != nil {
		return report.AttendanceGroupedTable{}, err
	}

	var records []attendance.DailyAttendance
	if len(employees) > 0 {
		records, err = s.fetchDailyGrouped(ctx, q, employeeIDs(employees))
		if err != nil {
			return report.AttendanceGroupedTable{}, err
		}
	}

	dir := NewDirectory(employees)
	return report.AttendanceGroupedTable{
		GroupBy:        string(q.GroupBy),
		StartDate:      q.DateRange.Start,
		EndDate:        q.DateRange.End,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		TotalEmployees: len(employees),
		Rows:           s.AggregateAttendance(records, q.GroupBy, dir),
		Summary:        s.SummarizeAttendance(records),
	}, nil
}

// GenerateAttendanceMatrix implements report.ReportService.
func (s *ReportServiceImpl) GenerateAttendanceMatrix(ctx context.Context, req report.MatrixReportRequest) (report.MatrixTable, error) {
	scope, err := s.resolveScope(ctx)
	if err != nil {
		return report.MatrixTable{}, err
	}

	q, err := BuildMatrixQuery(req, scope)
	if err != nil {
		return report.MatrixTable{}, err
	}

	employees, err := s.scopedEmployees(ctx, q)
	if err != nil {
		return report.MatrixTable{}, err
	}

	cells := map[attendance.DayKey]attendance.DailyAttendance{}
	if len(employees) > 0 {
		cells, err = s.fetchDailyMatrix(ctx, q, employeeIDs(employees))
		if err != nil {
			return report.MatrixTable{}, err
		}
	}

	table := s.AssembleMatrix(employees, q.DateRange, cells)
	table.GeneratedAt = time.Now().Format(time.RFC3339)
	return table, nil
}

// GenerateAuditReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateAuditReport(ctx context.Context, req report.AuditReportRequest) (report.AuditGroupedTable, error) {
	scope, err := s.resolveScope(ctx)
	if err != nil {
		return report.AuditGroupedTable{}, err
	}

	q, err := BuildAuditQuery(req, scope)
	if err != nil {
		return report.AuditGroupedTable{}, err
	}

	employees, err := s.scopedEmployees(ctx, q)
	if err != nil {
		return report.AuditGroupedTable{}, err
	}

	var entries []audit.Entry
	if len(employees) > 0 {
		entries, err = s.auditRepo.ListEntries(ctx, audit.Filter{
			DateRange:   q.DateRange,
			EmployeeIDs: employeeIDs(employees),
			Category:    q.Filters.Category,
			Severity:    q.Filters.Severity,
		})
		if err != nil {
			return report.AuditGroupedTable{}, fmt.Errorf("failed to list audit entries: %w", err)
		}
	}

	dir := NewDirectory(employees)
	return report.AuditGroupedTable{
		GroupBy:     string(q.GroupBy),
		StartDate:   q.DateRange.Start,
		EndDate:     q.DateRange.End,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        s.AggregateAudit(entries, q.GroupBy, dir),
		Summary:     s.SummarizeAudit(entries),
	}, nil
}

// GenerateMealReport implements report.ReportService.
func (s *ReportServiceImpl) GenerateMealReport(ctx context.Context, req report.MealReportRequest) (report.MealGroupedTable, error) {
	scope, err := s.resolveScope(ctx)
	if err != nil {
		return report.MealGroupedTable{}, err
	}

	q, err := BuildMealQuery(req, scope)
	if err != nil {
		return report.MealGroupedTable{}, err
	}

	employees, err := s.scopedEmployees(ctx, q)
	if err != nil {
		return report.MealGroupedTable{}, err
	}

	var records []meal.Record
	if len(employees) > 0 {
		records, err = s.mealRepo.ListRecords(ctx, meal.Filter{
			DateRange:   q.DateRange,
			EmployeeIDs: employeeIDs(employees),
			Type:        q.Filters.MealType,
			Location:    q.Filters.Location,
		})
		if err != nil {
			return report.MealGroupedTable{}, fmt.Errorf("failed to list meal records: %w", err)
		}
	}

	dir := NewDirectory(employees)
	return report.MealGroupedTable{
		GroupBy:     string(q.GroupBy),
		StartDate:   q.DateRange.Start,
		EndDate:     q.DateRange.End,
		GeneratedAt: time.Now().Format(time.RFC3339),
		Rows:        s.AggregateMeal(records, q.GroupBy, dir),
		Summary:     s.SummarizeMeal(records),
	}, nil
}
