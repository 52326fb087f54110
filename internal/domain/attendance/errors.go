package attendance

import "errors"

// Attendance domain errors
var (
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
