package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/meal"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type mealLogRepository struct {
	db *database.DB
}

func NewMealLogRepository(db *database.DB) meal.MealLogRepository {
	return &mealLogRepository{db: db}
}

func (r *mealLogRepository) ListRecords(ctx context.Context, filter meal.Filter) ([]meal.Record, error) {
	baseWhere := "meal_date >= $1 AND meal_date <= $2"
	args := []interface{}{filter.DateRange.Start, filter.DateRange.End}
	argIdx := 3

	if filter.EmployeeIDs != nil {
		baseWhere += fmt.Sprintf(" AND employee_id = ANY($%d)", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}
	if filter.Type != "" {
		baseWhere += fmt.Sprintf(" AND meal_type = $%d", argIdx)
		args = append(args, string(filter.Type))
		argIdx++
	}
	if filter.Location != "" {
		baseWhere += fmt.Sprintf(" AND location = $%d", argIdx)
		args = append(args, filter.Location)
		argIdx++
	}

	query := `
		SELECT id, employee_id, meal_date, meal_type, location
		FROM meal_logs
		WHERE ` + baseWhere + `
		ORDER BY meal_date ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query meal logs: %w", err)
	}
	defer rows.Close()

	var records []meal.Record
	for rows.Next() {
		var rec meal.Record
		var mealDate time.Time
		var mealType string
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &mealDate, &mealType, &rec.Location); err != nil {
			return nil, fmt.Errorf("failed to scan meal record: %w", err)
		}
		rec.Date = mealDate.Format("2006-01-02")
		rec.Type = meal.MealType(mealType)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read meal logs: %w", err)
	}

	return records, nil
}
