package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-engine-go/internal/domain/audit"
	"github.com/cmlabs-hris/attendance-engine-go/internal/pkg/database"
)

type auditLogRepository struct {
	db *database.DB
}

func NewAuditLogRepository(db *database.DB) audit.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) ListEntries(ctx context.Context, filter audit.Filter) ([]audit.Entry, error) {
	baseWhere := "occurred_at >= $1::date AND occurred_at < $2::date + INTERVAL '1 day'"
	args := []interface{}{filter.DateRange.Start, filter.DateRange.End}
	argIdx := 3

	if filter.EmployeeIDs != nil {
		baseWhere += fmt.Sprintf(" AND employee_id = ANY($%d)", argIdx)
		args = append(args, filter.EmployeeIDs)
		argIdx++
	}
	if filter.Category != "" {
		baseWhere += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, filter.Category)
		argIdx++
	}
	if filter.Severity != "" {
		baseWhere += fmt.Sprintf(" AND severity = $%d", argIdx)
		args = append(args, string(filter.Severity))
		argIdx++
	}

	query := `
		SELECT id, employee_id, action, category, severity, security_relevant, occurred_at
		FROM audit_logs
		WHERE ` + baseWhere + `
		ORDER BY occurred_at ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit logs: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var severity string
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Action, &e.Category, &severity, &e.SecurityRelevant, &e.OccurredAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		e.Severity = audit.Severity(severity)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read audit logs: %w", err)
	}

	return entries, nil
}
