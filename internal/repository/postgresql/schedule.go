package postgresql

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/schedule"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.Repository {
	return &scheduleRepositoryImpl{db: db}
}

// blockOrder is the canonical in-day ordering: all-day blocks first, then by
// start, end and insertion id as the stable tie-break.
const blockOrder = `
	CASE WHEN b.start_min IS NULL THEN 0 ELSE 1 END,
	b.start_min, b.end_min, b.id`

const blockEntryColumns = `
	b.id, b.employee_id, e.display_name,
	COALESCE(o.department_id, e.department_id),
	b.schedule_date,
	b.type_id, t.code, t.label, t.color_hex,
	b.start_min, b.end_min,
	b.customer_name, b.activity, b.note`

func scanBlockEntries(rows pgx.Rows) ([]schedule.Entry, error) {
	defer rows.Close()

	var entries []schedule.Entry
	for rows.Next() {
		var (
			entry            schedule.Entry
			startMin, endMin *int32
		)
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.EmployeeName,
			&entry.DepartmentID,
			&entry.Date,
			&entry.TypeID, &entry.TypeCode, &entry.TypeLabel, &entry.ColorHex,
			&startMin, &endMin,
			&entry.CustomerName, &entry.Activity, &entry.Note,
		)
		if err != nil {
			return nil, err
		}
		if startMin != nil {
			t := schedule.TimeOfDay(*startMin)
			entry.Start = &t
		}
		if endMin != nil {
			t := schedule.TimeOfDay(*endMin)
			entry.End = &t
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *scheduleRepositoryImpl) DayBlocks(ctx context.Context, employeeID int64, date time.Time) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + blockEntryColumns + `
		FROM schedule_blocks b
		JOIN employees e ON e.id = b.employee_id
		LEFT JOIN employee_overrides o ON o.employee_id = e.id
		JOIN availability_types t ON t.id = b.type_id
		WHERE b.employee_id = $1 AND b.schedule_date = $2
		ORDER BY ` + blockOrder

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, err
	}
	return scanBlockEntries(rows)
}

func (r *scheduleRepositoryImpl) Entries(ctx context.Context, from, to time.Time, scope access.Scope) ([]schedule.Entry, error) {
	q := GetQuerier(ctx, r.db)

	args := []any{from, to}
	conds, args := scopeConditions(scope, args)
	conds = append(conds, "b.schedule_date >= $1", "b.schedule_date < $2")

	query := `
		SELECT ` + blockEntryColumns + `
		FROM schedule_blocks b
		JOIN employees e ON e.id = b.employee_id
		LEFT JOIN employee_overrides o ON o.employee_id = e.id
		JOIN availability_types t ON t.id = b.type_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY e.display_name, b.schedule_date, ` + blockOrder

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return scanBlockEntries(rows)
}

func (r *scheduleRepositoryImpl) ReplaceDay(ctx context.Context, employeeID int64, date time.Time, blocks []schedule.NewBlock, updatedBy int64) error {
	// Delete-then-insert in one transaction so a concurrent reader never
	// sees a partially-cleared day.
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		_, err := q.Exec(ctx,
			`DELETE FROM schedule_blocks WHERE employee_id = $1 AND schedule_date = $2`,
			employeeID, date,
		)
		if err != nil {
			return err
		}

		const insertQuery = `
			INSERT INTO schedule_blocks (
				employee_id, schedule_date, type_id, start_min, end_min,
				customer_name, activity, note, updated_by, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		`
		for _, b := range blocks {
			var startMin, endMin *int32
			if b.Start != nil {
				v := int32(b.Start.Minutes())
				startMin = &v
			}
			if b.End != nil {
				v := int32(b.End.Minutes())
				endMin = &v
			}
			_, err := q.Exec(ctx, insertQuery,
				employeeID, date, b.TypeID, startMin, endMin,
				trimmedOrNil(b.CustomerName), trimmedOrNil(b.Activity), trimmedOrNil(b.Note),
				updatedBy,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *scheduleRepositoryImpl) DeleteDay(ctx context.Context, employeeID int64, date time.Time) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx,
		`DELETE FROM schedule_blocks WHERE employee_id = $1 AND schedule_date = $2`,
		employeeID, date,
	)
	return err
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
