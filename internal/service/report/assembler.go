package report

import (
	"sort"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/report"
)

// matrixCell converts one DailyAttendance into its presentation cell.
// This is the only place attendance hours get presentation rounding.
func matrixCell(rec attendance.DailyAttendance) report.MatrixCell {
	cell := report.MatrixCell{
		Status:        string(rec.Status),
		LateMinutes:   rec.LateMinutes,
		WorkingHours:  round2(rec.WorkingHours),
		OvertimeHours: round2(rec.OvertimeHours),
	}
	if rec.CheckIn != nil {
		in := rec.CheckIn.String()
		cell.CheckIn = &in
	}
	if rec.CheckOut != nil {
		out := rec.CheckOut.String()
		cell.CheckOut = &out
	}
	return cell
}

// AssembleMatrix shapes normalized attendance into the employee x date
// grid. It performs indexing only; all business logic lives in the
// normalizer and the rollup engine.
//
// The date axis covers every calendar date in the range. The employee
// axis is ordered by full name with employee id as the stable tie-break.
func (s *ReportServiceImpl) AssembleMatrix(employees []employee.Employee, dateRange attendance.DateRange, cells map[attendance.DayKey]attendance.DailyAttendance) report.MatrixTable {
	ordered := make([]employee.Employee, len(employees))
	copy(ordered, employees)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].FullName != ordered[j].FullName {
			return ordered[i].FullName < ordered[j].FullName
		}
		return ordered[i].ID < ordered[j].ID
	})

	dates := dateRange.Dates()
	rows := make([]report.MatrixEmployeeRow, 0, len(ordered))
	all := make([]attendance.DailyAttendance, 0, len(ordered)*len(dates))

	for _, emp := range ordered {
		row := report.MatrixEmployeeRow{
			EmployeeID:   emp.ID,
			EmployeeName: emp.FullName,
			Cells:        make([]report.MatrixCell, 0, len(dates)),
		}
		for _, date := range dates {
			rec, ok := cells[attendance.DayKey{EmployeeID: emp.ID, Date: date}]
			if !ok {
				// The normalizer's total-function contract fills every
				// cell; an absent record here means the document store
				// had a gap.
				rec = attendance.DailyAttendance{
					EmployeeID: emp.ID,
					Date:       date,
					Status:     attendance.StatusAbsent,
				}
			}
			row.Cells = append(row.Cells, matrixCell(rec))
			all = append(all, rec)
		}
		rows = append(rows, row)
	}

	return report.MatrixTable{
		StartDate: dateRange.Start,
		EndDate:   dateRange.End,
		Dates:     dates,
		Employees: rows,
		Summary: report.MatrixSummary{
			TotalEmployees:  len(rows),
			TotalDates:      len(dates),
			AttendanceStats: s.SummarizeAttendance(all),
		},
	}
}
