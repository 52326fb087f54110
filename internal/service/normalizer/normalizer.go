// Package normalizer reconstructs per-employee-per-day attendance records
// from raw, unordered biometric punch events.
package normalizer

import (
	"log/slog"
	"sort"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
)

// Normalize reduces all punch events sharing one employee-day key to a
// single DailyAttendance record. It is a pure function of its inputs:
// events may arrive in any order and may contain duplicates, the output
// is identical for any permutation of the same multiset.
//
// Events with an unrecognized scan type are skipped and logged; one
// malformed event never suppresses a day's data. A zero ScheduleConfig
// falls back to attendance.DefaultSchedule (09:00 start, 8h day).
func Normalize(events []attendance.PunchEvent, employeeID string, date string, cfg attendance.ScheduleConfig) attendance.DailyAttendance {
	if cfg == (attendance.ScheduleConfig{}) {
		cfg = attendance.DefaultSchedule
	}

	// Stable sort by time-of-day: duplicate timestamps keep their original
	// sequence order, so identical input always yields identical output.
	sorted := make([]attendance.PunchEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})

	var checkIn, checkOut *attendance.TimeOfDay
	for _, ev := range sorted {
		switch ev.Scan {
		case attendance.ScanIn:
			if checkIn == nil {
				t := ev.Time
				checkIn = &t
			}
		case attendance.ScanOut:
			t := ev.Time
			checkOut = &t
		default:
			slog.Debug("skipping punch event with unrecognized scan type",
				"employee_id", ev.EmployeeID,
				"date", ev.Date,
				"scan_type", string(ev.Scan),
			)
		}
	}

	rec := attendance.DailyAttendance{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}

	switch {
	case checkIn == nil && checkOut == nil:
		rec.Status = attendance.StatusAbsent

	case checkIn == nil || checkOut == nil:
		// Missing counterpart scan: counted in attendance totals but
		// excluded from hours aggregation, never silently dropped.
		rec.Status = attendance.StatusIncomplete
		if checkIn != nil {
			rec.LateMinutes = lateMinutes(*checkIn, cfg)
		}

	case *checkOut <= *checkIn:
		// Clock anomaly: checkout at or before checkin. Never negative
		// hours.
		rec.Status = attendance.StatusIncomplete
		rec.LateMinutes = lateMinutes(*checkIn, cfg)

	default:
		rec.Status = attendance.StatusPresent
		rec.LateMinutes = lateMinutes(*checkIn, cfg)
		rec.WorkingHours = float64(*checkOut-*checkIn) / 60.0
		if overtime := rec.WorkingHours - cfg.StandardDayHours; overtime > 0 {
			rec.OvertimeHours = overtime
		}
	}

	return rec
}

func lateMinutes(checkIn attendance.TimeOfDay, cfg attendance.ScheduleConfig) int {
	if late := int(checkIn - cfg.ScheduledStart); late > 0 {
		return late
	}
	return 0
}

// NormalizeRange reduces a flat event list to exactly one DailyAttendance
// per (employee, date) pair in the cartesian product of employeeIDs and
// the date range, absent-filling days with no events. The matrix
// assembler indexes by position and relies on this total-function
// guarantee.
//
// Events outside the employee set or date range are ignored.
func NormalizeRange(events []attendance.PunchEvent, employeeIDs []string, dateRange attendance.DateRange, cfg attendance.ScheduleConfig) map[attendance.DayKey]attendance.DailyAttendance {
	inScope := make(map[string]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		inScope[id] = true
	}

	dates := dateRange.Dates()
	inRange := make(map[string]bool, len(dates))
	for _, d := range dates {
		inRange[d] = true
	}

	grouped := make(map[attendance.DayKey][]attendance.PunchEvent)
	for _, ev := range events {
		if !inScope[ev.EmployeeID] || !inRange[ev.Date] {
			continue
		}
		key := attendance.DayKey{EmployeeID: ev.EmployeeID, Date: ev.Date}
		grouped[key] = append(grouped[key], ev)
	}

	out := make(map[attendance.DayKey]attendance.DailyAttendance, len(employeeIDs)*len(dates))
	for _, id := range employeeIDs {
		for _, d := range dates {
			key := attendance.DayKey{EmployeeID: id, Date: d}
			out[key] = Normalize(grouped[key], id, d, cfg)
		}
	}
	return out
}
