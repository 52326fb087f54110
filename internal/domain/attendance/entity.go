package attendance

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ScanType is the direction of a raw biometric punch.
type ScanType string

const (
	ScanIn  ScanType = "IN"
	ScanOut ScanType = "OUT"
)

// Status is the reconciled outcome for one employee on one calendar date.
type Status string

const (
	StatusPresent    Status = "present"
	StatusAbsent     Status = "absent"
	StatusIncomplete Status = "incomplete"
)

// TimeOfDay is minutes since midnight. Scan devices report whole minutes,
// so this is the finest granularity the engine works with.
type TimeOfDay int

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// Hours converts the offset to fractional hours.
func (t TimeOfDay) Hours() float64 {
	return float64(t) / 60.0
}

// ParseTimeOfDay parses "15:04" or "15:04:05"; seconds are discarded.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// TimeOfDayFrom extracts the minute-of-day offset from a timestamp.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// PunchEvent is a single raw scan from the legacy relational store.
// Multiple events per employee per date are normal (re-scans, false
// triggers) and carry no ordering guarantee.
type PunchEvent struct {
	EmployeeID string
	Date       string // YYYY-MM-DD work day
	Time       TimeOfDay
	Scan       ScanType
}

// DayKey identifies one employee-day cell.
type DayKey struct {
	EmployeeID string
	Date       string
}

// DailyAttendance is the reconciled record for one employee-day. One
// record exists per DayKey; it is derived fresh on every query and never
// persisted by this engine.
type DailyAttendance struct {
	EmployeeID    string
	Date          string
	CheckIn       *TimeOfDay
	CheckOut      *TimeOfDay
	Status        Status
	LateMinutes   int
	WorkingHours  float64
	OvertimeHours float64
}

// ScheduleConfig supplies the scheduled start and standard day length used
// to derive lateness and overtime.
type ScheduleConfig struct {
	ScheduledStart   TimeOfDay
	StandardDayHours float64
}

// DefaultSchedule applies when no schedule configuration is supplied:
// work starts at 09:00 and a standard day is 8 hours.
var DefaultSchedule = ScheduleConfig{
	ScheduledStart:   9 * 60,
	StandardDayHours: 8,
}

// DateRange is an inclusive calendar-date span.
type DateRange struct {
	Start string // YYYY-MM-DD
	End   string // YYYY-MM-DD
}

// Days returns the number of calendar days in the range, inclusive.
func (r DateRange) Days() int {
	start, err := time.Parse("2006-01-02", r.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", r.End)
	if err != nil {
		return 0
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// Dates returns every calendar date in the range, ascending.
func (r DateRange) Dates() []string {
	n := r.Days()
	dates := make([]string, 0, n)
	start, _ := time.Parse("2006-01-02", r.Start)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}
