package report

import (
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/audit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/meal"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/user"
)

// The query builders validate a raw request and combine it with the
// requester's role scope into an immutable report.Query. Validation always
// runs before any data access; a failed request never partially executes.
// User filters are carried alongside the scope predicate and intersected
// at evaluation time, so a request can narrow but never widen access.

func BuildAttendanceQuery(req report.AttendanceReportRequest, scope user.ScopePredicate) (report.Query, error) {
	if err := req.Validate(); err != nil {
		return report.Query{}, err
	}

	return report.Query{
		Kind:      report.KindAttendance,
		DateRange: attendance.DateRange{Start: req.StartDate, End: req.EndDate},
		GroupBy:   report.GroupBy(req.GroupBy),
		Source:    sourceOrDefault(req.Source),
		Scope:     scope,
		Filters: report.Filters{
			DivisionID:  req.DivisionID,
			SectionID:   req.SectionID,
			EmployeeIDs: req.EmployeeIDs,
			Status:      attendance.Status(req.Status),
		},
	}, nil
}

func BuildMatrixQuery(req report.MatrixReportRequest, scope user.ScopePredicate) (report.Query, error) {
	if err := req.Validate(); err != nil {
		return report.Query{}, err
	}

	return report.Query{
		Kind:      report.KindAttendance,
		DateRange: attendance.DateRange{Start: req.StartDate, End: req.EndDate},
		GroupBy:   report.GroupByNone,
		Source:    sourceOrDefault(req.Source),
		Scope:     scope,
		Filters: report.Filters{
			DivisionID:  req.DivisionID,
			SectionID:   req.SectionID,
			EmployeeIDs: req.EmployeeIDs,
		},
	}, nil
}

func BuildAuditQuery(req report.AuditReportRequest, scope user.ScopePredicate) (report.Query, error) {
	if err := req.Validate(); err != nil {
		return report.Query{}, err
	}

	return report.Query{
		Kind:      report.KindAudit,
		DateRange: attendance.DateRange{Start: req.StartDate, End: req.EndDate},
		GroupBy:   report.GroupBy(req.GroupBy),
		Scope:     scope,
		Filters: report.Filters{
			EmployeeIDs: req.EmployeeIDs,
			Category:    req.Category,
			Severity:    audit.Severity(req.Severity),
		},
	}, nil
}

func BuildMealQuery(req report.MealReportRequest, scope user.ScopePredicate) (report.Query, error) {
	if err := req.Validate(); err != nil {
		return report.Query{}, err
	}

	return report.Query{
		Kind:      report.KindMeal,
		DateRange: attendance.DateRange{Start: req.StartDate, End: req.EndDate},
		GroupBy:   report.GroupBy(req.GroupBy),
		Scope:     scope,
		Filters: report.Filters{
			DivisionID:  req.DivisionID,
			SectionID:   req.SectionID,
			EmployeeIDs: req.EmployeeIDs,
			MealType:    meal.MealType(req.MealType),
			Location:    req.Location,
		},
	}, nil
}

func sourceOrDefault(raw string) report.Source {
	if raw == "" {
		return report.SourceDocuments
	}
	return report.Source(raw)
}
