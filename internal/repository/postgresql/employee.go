package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) List(ctx context.Context, filter employee.DirectoryFilter) ([]employee.Employee, error) {
	baseWhere := "e.active = true"
	args := []interface{}{}
	argIdx := 1

	if filter.DivisionID != "" {
		baseWhere += fmt.Sprintf(" AND e.division_id = $%d", argIdx)
		args = append(args, filter.DivisionID)
		argIdx++
	}
	if filter.SectionID != "" {
		baseWhere += fmt.Sprintf(" AND e.section_id = $%d", argIdx)
		args = append(args, filter.SectionID)
		argIdx++
	}
	if filter.EmployeeIDs != nil {
		baseWhere += fmt.Sprintf(" AND e.id = ANY($%d)", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}

	query := `
		SELECT e.id, e.full_name, e.division_id, COALESCE(d.name, ''),
			e.section_id, COALESCE(s.name, ''), e.active
		FROM employees e
		LEFT JOIN divisions d ON e.division_id = d.id
		LEFT JOIN sections s ON e.section_id = s.id
		WHERE ` + baseWhere + `
		ORDER BY e.full_name ASC, e.id ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var divisionID, sectionID *string
		if err := rows.Scan(&emp.ID, &emp.FullName, &divisionID, &emp.DivisionName, &sectionID, &emp.SectionName, &emp.Active); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		if divisionID != nil {
			emp.DivisionID = *divisionID
		}
		if sectionID != nil {
			emp.SectionID = *sectionID
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}

	return employees, nil
}
