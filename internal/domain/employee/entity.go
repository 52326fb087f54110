package employee

// Employee is a directory row from the org provider: enough identity to
// scope report visibility and label group rows.
type Employee struct {
	ID           string
	FullName     string
	DivisionID   string
	DivisionName string
	SectionID    string
	SectionName  string
	Active       bool
}
