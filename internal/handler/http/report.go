package http

import (
	"net/http"
	"strings"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-engine-go/internal/handler/http/response"
)

type ReportHandler interface {
	// Attendance Reports
	GetAttendanceReport(w http.ResponseWriter, r *http.Request)
	GetAttendanceMatrix(w http.ResponseWriter, r *http.Request)

	// Audit Report
	GetAuditReport(w http.ResponseWriter, r *http.Request)

	// Meal Report
	GetMealReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// employeeIDsParam splits a comma-separated employee_ids query parameter.
// Absent parameter yields nil (unrestricted); an explicit empty value
// yields an empty slice, which matches nothing.
func employeeIDsParam(r *http.Request) []string {
	if !r.URL.Query().Has("employee_ids") {
		return nil
	}
	raw := r.URL.Query().Get("employee_ids")
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

func groupByParam(r *http.Request) string {
	if groupBy := r.URL.Query().Get("group_by"); groupBy != "" {
		return groupBy
	}
	return string(report.GroupByUser)
}

// GetAttendanceReport handles GET /reports/attendance
func (h *reportHandlerImpl) GetAttendanceReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	req := report.AttendanceReportRequest{
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		GroupBy:     groupByParam(r),
		DivisionID:  q.Get("division_id"),
		SectionID:   q.Get("section_id"),
		EmployeeIDs: employeeIDsParam(r),
		Status:      q.Get("status"),
		Source:      q.Get("source"),
	}

	result, err := h.reportService.GenerateAttendanceReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendanceMatrix handles GET /reports/attendance/matrix
func (h *reportHandlerImpl) GetAttendanceMatrix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	req := report.MatrixReportRequest{
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		DivisionID:  q.Get("division_id"),
		SectionID:   q.Get("section_id"),
		EmployeeIDs: employeeIDsParam(r),
		Source:      q.Get("source"),
	}

	result, err := h.reportService.GenerateAttendanceMatrix(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAuditReport handles GET /reports/audit
func (h *reportHandlerImpl) GetAuditReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	req := report.AuditReportRequest{
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		GroupBy:     groupByParam(r),
		EmployeeIDs: employeeIDsParam(r),
		Category:    q.Get("category"),
		Severity:    q.Get("severity"),
	}

	result, err := h.reportService.GenerateAuditReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMealReport handles GET /reports/meal
func (h *reportHandlerImpl) GetMealReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	req := report.MealReportRequest{
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
		GroupBy:     groupByParam(r),
		DivisionID:  q.Get("division_id"),
		SectionID:   q.Get("section_id"),
		EmployeeIDs: employeeIDsParam(r),
		MealType:    q.Get("meal_type"),
		Location:    q.Get("location"),
	}

	result, err := h.reportService.GenerateMealReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
