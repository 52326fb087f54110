package normalizer

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
)

func tod(t *testing.T, s string) attendance.TimeOfDay {
	t.Helper()
	v, err := attendance.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func event(t *testing.T, employeeID, date, clock string, scan attendance.ScanType) attendance.PunchEvent {
	t.Helper()
	return attendance.PunchEvent{
		EmployeeID: employeeID,
		Date:       date,
		Time:       tod(t, clock),
		Scan:       scan,
	}
}

// A typical day: one check-in plus multiple checkout scans. First IN and
// last OUT win.
func TestNormalize_PresentDay(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "09:05", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "17:30", attendance.ScanOut),
		event(t, "emp-1", "2026-02-02", "17:10", attendance.ScanOut),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	require.NotNil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, "09:05", rec.CheckIn.String())
	assert.Equal(t, "17:30", rec.CheckOut.String())
	assert.Equal(t, 5, rec.LateMinutes)
	assert.InDelta(t, 8.4167, rec.WorkingHours, 0.001)
	assert.InDelta(t, 0.4167, rec.OvertimeHours, 0.001)
}

func TestNormalize_NoEvents_Absent(t *testing.T) {
	rec := Normalize(nil, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusAbsent, rec.Status)
	assert.Nil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0.0, rec.WorkingHours)
	assert.Equal(t, 0.0, rec.OvertimeHours)
}

func TestNormalize_OnlyCheckIn_Incomplete(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "09:20", attendance.ScanIn),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusIncomplete, rec.Status)
	require.NotNil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
	assert.Equal(t, 20, rec.LateMinutes)
	assert.Equal(t, 0.0, rec.WorkingHours)
	assert.Equal(t, 0.0, rec.OvertimeHours)
}

func TestNormalize_OnlyCheckOut_Incomplete(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "17:00", attendance.ScanOut),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusIncomplete, rec.Status)
	assert.Nil(t, rec.CheckIn)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.Equal(t, 0.0, rec.WorkingHours)
}

// Checkout at or before checkin is a clock anomaly, never negative hours.
func TestNormalize_CheckOutBeforeCheckIn_Incomplete(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "10:00", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "08:00", attendance.ScanOut),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusIncomplete, rec.Status)
	assert.Equal(t, 60, rec.LateMinutes)
	assert.Equal(t, 0.0, rec.WorkingHours)
	assert.Equal(t, 0.0, rec.OvertimeHours)
}

func TestNormalize_EarlyCheckIn_NotLate(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "08:45", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "17:00", attendance.ScanOut),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, 0, rec.LateMinutes)
	assert.InDelta(t, 8.25, rec.WorkingHours, 0.001)
	assert.InDelta(t, 0.25, rec.OvertimeHours, 0.001)
}

func TestNormalize_UnknownScanType_Skipped(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "09:00", attendance.ScanIn),
		{EmployeeID: "emp-1", Date: "2026-02-02", Time: tod(t, "12:00"), Scan: "BREAK"},
		event(t, "emp-1", "2026-02-02", "17:00", attendance.ScanOut),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, attendance.StatusPresent, rec.Status)
	assert.Equal(t, "09:00", rec.CheckIn.String())
	assert.Equal(t, "17:00", rec.CheckOut.String())
	assert.Equal(t, 8.0, rec.WorkingHours)
	assert.Equal(t, 0.0, rec.OvertimeHours)
}

func TestNormalize_ZeroConfig_UsesDefaultSchedule(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "09:15", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "17:15", attendance.ScanOut),
	}

	rec := Normalize(events, "emp-1", "2026-02-02", attendance.ScheduleConfig{})

	assert.Equal(t, 15, rec.LateMinutes)
	assert.Equal(t, 8.0, rec.WorkingHours)
}

// Every permutation of the same event multiset must produce the same
// record.
func TestNormalize_PermutationInvariant(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "09:05", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "09:30", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "12:00", attendance.ScanOut),
		event(t, "emp-1", "2026-02-02", "13:00", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "17:30", attendance.ScanOut),
	}
	want := Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := make([]attendance.PunchEvent, len(events))
		copy(shuffled, events)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := Normalize(shuffled, "emp-1", "2026-02-02", attendance.DefaultSchedule)
		assert.Equal(t, want, got)
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "17:30", attendance.ScanOut),
		event(t, "emp-1", "2026-02-02", "09:05", attendance.ScanIn),
	}

	Normalize(events, "emp-1", "2026-02-02", attendance.DefaultSchedule)

	assert.Equal(t, "17:30", events[0].Time.String())
	assert.Equal(t, "09:05", events[1].Time.String())
}

// NormalizeRange is total over employees x dates: days without events
// come back absent, events outside the scope are ignored.
func TestNormalizeRange_Totality(t *testing.T) {
	dateRange := attendance.DateRange{Start: "2026-02-02", End: "2026-02-04"}
	events := []attendance.PunchEvent{
		event(t, "emp-1", "2026-02-02", "09:00", attendance.ScanIn),
		event(t, "emp-1", "2026-02-02", "17:00", attendance.ScanOut),
		event(t, "emp-2", "2026-02-03", "08:55", attendance.ScanIn),
		// Out of range
		event(t, "emp-1", "2026-02-10", "09:00", attendance.ScanIn),
		// Unknown employee
		event(t, "emp-9", "2026-02-02", "09:00", attendance.ScanIn),
	}

	out := NormalizeRange(events, []string{"emp-1", "emp-2"}, dateRange, attendance.DefaultSchedule)

	require.Len(t, out, 6)

	present := out[attendance.DayKey{EmployeeID: "emp-1", Date: "2026-02-02"}]
	assert.Equal(t, attendance.StatusPresent, present.Status)

	incomplete := out[attendance.DayKey{EmployeeID: "emp-2", Date: "2026-02-03"}]
	assert.Equal(t, attendance.StatusIncomplete, incomplete.Status)

	absent := out[attendance.DayKey{EmployeeID: "emp-2", Date: "2026-02-04"}]
	assert.Equal(t, attendance.StatusAbsent, absent.Status)

	_, leaked := out[attendance.DayKey{EmployeeID: "emp-9", Date: "2026-02-02"}]
	assert.False(t, leaked)
	_, outOfRange := out[attendance.DayKey{EmployeeID: "emp-1", Date: "2026-02-10"}]
	assert.False(t, outOfRange)
}
