package meal

import (
	"context"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
)

// Filter narrows a meal-log listing. Empty fields mean unrestricted;
// a non-nil empty EmployeeIDs slice matches nothing.
type Filter struct {
	DateRange   attendance.DateRange
	EmployeeIDs []string
	Type        MealType
	Location    string
}

// MealLogRepository reads canteen meal records.
type MealLogRepository interface {
	ListRecords(ctx context.Context, filter Filter) ([]Record, error)
}
