package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/audit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/meal"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/validator"
)

// validateDateRange checks format, ordering and the per-kind span ceiling.
// Shared by every report request.
func validateDateRange(kind Kind, startStr, endStr string, errs validator.ValidationErrors) validator.ValidationErrors {
	if validator.IsEmpty(startStr) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if validator.IsEmpty(endStr) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}
	if startStr == "" || endStr == "" {
		return errs
	}

	start, startOK := validator.IsValidDate(startStr)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(endStr)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if !startOK || !endOK {
		return errs
	}

	if start.After(end) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
		return errs
	}

	maxDays := MaxRangeDays(kind)
	if days := int(end.Sub(start)/(24*time.Hour)) + 1; days > maxDays {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: fmt.Sprintf("date range must not exceed %d days", maxDays),
		})
	}
	return errs
}

func validateGroupBy(kind Kind, raw string, errs validator.ValidationErrors) validator.ValidationErrors {
	if !GroupByAllowed(kind, GroupBy(raw)) {
		allowed := make([]string, 0, len(AllowedGroupBys(kind)))
		for _, g := range AllowedGroupBys(kind) {
			allowed = append(allowed, string(g))
		}
		errs = append(errs, validator.ValidationError{
			Field:   "group_by",
			Message: "group_by must be one of: " + strings.Join(allowed, ", "),
		})
	}
	return errs
}

func validateSource(raw string, errs validator.ValidationErrors) validator.ValidationErrors {
	switch Source(raw) {
	case "", SourceDocuments, SourceScans:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "source",
			Message: "source must be one of: documents, scans",
		})
	}
	return errs
}

// ========================================
// ATTENDANCE REPORT (flat grouped table)
// ========================================

type AttendanceReportRequest struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	GroupBy     string   `json:"group_by"`
	DivisionID  string   `json:"division_id,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
	Status      string   `json:"status,omitempty"`
	Source      string   `json:"source,omitempty"`
}

func (r *AttendanceReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDateRange(KindAttendance, r.StartDate, r.EndDate, errs)
	errs = validateGroupBy(KindAttendance, r.GroupBy, errs)
	errs = validateSource(r.Source, errs)

	if r.Status != "" {
		switch attendance.Status(r.Status) {
		case attendance.StatusPresent, attendance.StatusAbsent, attendance.StatusIncomplete:
		default:
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, absent, incomplete",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// ATTENDANCE MATRIX (employee x date grid)
// ========================================

type MatrixReportRequest struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	DivisionID  string   `json:"division_id,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
	Source      string   `json:"source,omitempty"`
}

func (r *MatrixReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDateRange(KindAttendance, r.StartDate, r.EndDate, errs)
	errs = validateSource(r.Source, errs)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// AUDIT REPORT
// ========================================

type AuditReportRequest struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	GroupBy     string   `json:"group_by"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
	Category    string   `json:"category,omitempty"`
	Severity    string   `json:"severity,omitempty"`
}

func (r *AuditReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDateRange(KindAudit, r.StartDate, r.EndDate, errs)
	errs = validateGroupBy(KindAudit, r.GroupBy, errs)

	if r.Severity != "" && !audit.KnownSeverity(audit.Severity(r.Severity)) {
		errs = append(errs, validator.ValidationError{
			Field:   "severity",
			Message: "severity must be one of: info, warning, critical",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// MEAL REPORT
// ========================================

type MealReportRequest struct {
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	GroupBy     string   `json:"group_by"`
	DivisionID  string   `json:"division_id,omitempty"`
	SectionID   string   `json:"section_id,omitempty"`
	EmployeeIDs []string `json:"employee_ids,omitempty"`
	MealType    string   `json:"meal_type,omitempty"`
	Location    string   `json:"location,omitempty"`
}

func (r *MealReportRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validateDateRange(KindMeal, r.StartDate, r.EndDate, errs)
	errs = validateGroupBy(KindMeal, r.GroupBy, errs)

	if r.MealType != "" && !meal.KnownMealType(meal.MealType(r.MealType)) {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_type",
			Message: "meal_type must be one of: breakfast, lunch, dinner",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// QUERY (validated, immutable)
// ========================================

// Filters are the user-supplied constraints carried by a Query. They are
// intersected with the role scope, never substituted for it.
type Filters struct {
	DivisionID  string
	SectionID   string
	EmployeeIDs []string
	Status      attendance.Status
	Category    string
	Severity    audit.Severity
	MealType    meal.MealType
	Location    string
}

// Query is a validated report description. It is immutable and fully
// determines the rollup; no hidden state is consulted after it is built.
type Query struct {
	Kind      Kind
	DateRange attendance.DateRange
	GroupBy   GroupBy
	Source    Source
	Scope     user.ScopePredicate
	Filters   Filters
}
