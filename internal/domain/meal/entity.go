package meal

// MealType values recorded by the canteen scanners.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// KnownMealType reports whether m is a defined meal type.
func KnownMealType(m MealType) bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Record is one canteen meal log row.
type Record struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD
	Type       MealType
	Location   string
}
