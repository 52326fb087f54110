package report

// ========================================
// ATTENDANCE RESULT SHAPES
// ========================================

// AttendanceStats is the statistics block shared by group rows and
// summary blocks. Hour sums are accumulated at full precision and
// rounded to two decimals only when the block is built.
type AttendanceStats struct {
	TotalDays           int     `json:"total_days"`
	PresentDays         int     `json:"present_days"`
	AbsentDays          int     `json:"absent_days"`
	IncompleteDays      int     `json:"incomplete_days"`
	LateDays            int     `json:"late_days"`
	TotalWorkingHours   float64 `json:"total_working_hours"`
	TotalOvertimeHours  float64 `json:"total_overtime_hours"`
	AttendanceRate      float64 `json:"attendance_rate"`
	AverageWorkingHours float64 `json:"average_working_hours"`
}

// AttendanceGroupRow is one row of a flat grouped attendance table.
type AttendanceGroupRow struct {
	GroupKey   string `json:"group_key"`
	GroupLabel string `json:"group_label"`

	AttendanceStats
}

// AttendanceGroupedTable is the flat grouped presentation: one row per
// group, plus a whole-set summary and a date range echo.
type AttendanceGroupedTable struct {
	GroupBy     string `json:"group_by"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	TotalEmployees int                  `json:"total_employees"`
	Rows           []AttendanceGroupRow `json:"rows"`
	Summary        AttendanceStats      `json:"summary"`
}

// MatrixCell is the per-employee-per-date cell of a matrix table.
// Times and hours are presentation-rounded.
type MatrixCell struct {
	Status        string  `json:"status"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	LateMinutes   int     `json:"late_minutes"`
	WorkingHours  float64 `json:"working_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
}

// MatrixEmployeeRow holds one employee's cells, positionally aligned with
// the table's date axis.
type MatrixEmployeeRow struct {
	EmployeeID   string       `json:"employee_id"`
	EmployeeName string       `json:"employee_name"`
	Cells        []MatrixCell `json:"cells"`
}

// MatrixSummary is the matrix-wide rollup block.
type MatrixSummary struct {
	TotalEmployees int `json:"total_employees"`
	TotalDates     int `json:"total_dates"`

	AttendanceStats
}

// MatrixTable is the employee x date presentation. The date axis is total
// over the requested range: dates with no events surface as absent cells.
type MatrixTable struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	Dates     []string            `json:"dates"`
	Employees []MatrixEmployeeRow `json:"employees"`
	Summary   MatrixSummary       `json:"summary"`
}

// ========================================
// AUDIT RESULT SHAPES
// ========================================

// AuditGroupRow mirrors the attendance row shape for audit entries.
type AuditGroupRow struct {
	GroupKey   string `json:"group_key"`
	GroupLabel string `json:"group_label"`

	Count                 int     `json:"count"`
	UniqueUsers           int     `json:"unique_users"`
	SecurityRelevantCount int     `json:"security_relevant_count"`
	SecurityRelevantRate  float64 `json:"security_relevant_rate"`
	OldestOccurrence      string  `json:"oldest_occurrence"`
	LatestOccurrence      string  `json:"latest_occurrence"`
}

// AuditSummary is the whole-set audit rollup.
type AuditSummary struct {
	TotalEntries          int     `json:"total_entries"`
	UniqueUsers           int     `json:"unique_users"`
	SecurityRelevantCount int     `json:"security_relevant_count"`
	SecurityRelevantRate  float64 `json:"security_relevant_rate"`
}

type AuditGroupedTable struct {
	GroupBy     string `json:"group_by"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	Rows    []AuditGroupRow `json:"rows"`
	Summary AuditSummary    `json:"summary"`
}

// ========================================
// MEAL RESULT SHAPES
// ========================================

type MealGroupRow struct {
	GroupKey   string `json:"group_key"`
	GroupLabel string `json:"group_label"`

	Count           int `json:"count"`
	UniqueEmployees int `json:"unique_employees"`
}

type MealSummary struct {
	TotalRecords    int `json:"total_records"`
	UniqueEmployees int `json:"unique_employees"`
}

type MealGroupedTable struct {
	GroupBy     string `json:"group_by"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GeneratedAt string `json:"generated_at"`

	Rows    []MealGroupRow `json:"rows"`
	Summary MealSummary    `json:"summary"`
}
