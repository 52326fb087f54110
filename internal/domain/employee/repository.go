package employee

import "context"

// DirectoryFilter narrows a directory listing. Empty fields mean
// unrestricted; a non-nil empty EmployeeIDs slice matches nothing.
type DirectoryFilter struct {
	DivisionID  string
	SectionID   string
	EmployeeIDs []string
}

// EmployeeRepository reads the employee directory owned by the external
// identity/org provider.
type EmployeeRepository interface {
	// List retrieves active employees matching the filter, ordered by
	// full name then id.
	List(ctx context.Context, filter DirectoryFilter) ([]Employee, error)
}
