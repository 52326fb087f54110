package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type scanLogRepository struct {
	db *database.DB
}

func NewScanLogRepository(db *database.DB) attendance.ScanLogRepository {
	return &scanLogRepository{db: db}
}

// ListPunchEvents implements attendance.ScanLogRepository. Rows come back
// in device-insertion order, which carries no chronological guarantee;
// the normalizer sorts.
func (r *scanLogRepository) ListPunchEvents(ctx context.Context, employeeIDs []string, dateRange attendance.DateRange) ([]attendance.PunchEvent, error) {
	query := `
		SELECT employee_id, scanned_at, scan_type
		FROM scan_logs
		WHERE employee_id = ANY($1)
		  AND scanned_at >= $2::date
		  AND scanned_at < $3::date + INTERVAL '1 day'
	`

	rows, err := r.db.Query(ctx, query, employeeIDs, dateRange.Start, dateRange.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan logs: %w", err)
	}
	defer rows.Close()

	var events []attendance.PunchEvent
	for rows.Next() {
		var (
			employeeID string
			scannedAt  time.Time
			scanType   string
		)
		if err := rows.Scan(&employeeID, &scannedAt, &scanType); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, attendance.PunchEvent{
			EmployeeID: employeeID,
			Date:       scannedAt.Format("2006-01-02"),
			Time:       attendance.TimeOfDayFrom(scannedAt),
			Scan:       attendance.ScanType(scanType),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scan logs: %w", err)
	}

	return events, nil
}
