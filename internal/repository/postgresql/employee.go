package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `e.id, e.ad_object_id, e.sam_account_name, e.display_name, e.email,
	e.department_id, e.manager_id, e.is_active, e.is_admin, e.is_approver,
	e.password_hash, e.last_synced_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.ADObjectID,
		&e.SamAccountName,
		&e.DisplayName,
		&e.Email,
		&e.DepartmentID,
		&e.ManagerID,
		&e.IsActive,
		&e.IsAdmin,
		&e.IsApprover,
		&e.PasswordHash,
		&e.LastSyncedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, err
	}
	return e, nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

func (r *employeeRepositoryImpl) GetBySam(ctx context.Context, sam string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE lower(e.sam_account_name) = lower($1)`
	return scanEmployee(q.QueryRow(ctx, query, sam))
}

func (r *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE lower(e.email) = lower($1)`
	return scanEmployee(q.QueryRow(ctx, query, email))
}

func (r *employeeRepositoryImpl) GetByADObjectID(ctx context.Context, adObjectID uuid.UUID) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.ad_object_id = $1`
	return scanEmployee(q.QueryRow(ctx, query, adObjectID))
}

func (r *employeeRepositoryImpl) Upsert(ctx context.Context, emp employee.Employee) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			ad_object_id, sam_account_name, display_name, email,
			department_id, manager_id, is_active, last_synced_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW(), NOW())
		ON CONFLICT (ad_object_id) DO UPDATE SET
			sam_account_name = EXCLUDED.sam_account_name,
			display_name = EXCLUDED.display_name,
			email = EXCLUDED.email,
			department_id = EXCLUDED.department_id,
			manager_id = EXCLUDED.manager_id,
			is_active = EXCLUDED.is_active,
			last_synced_at = NOW(),
			updated_at = NOW()
		RETURNING id
	`

	var id int64
	err := q.QueryRow(ctx, query,
		emp.ADObjectID, emp.SamAccountName, emp.DisplayName, emp.Email,
		emp.DepartmentID, emp.ManagerID, emp.IsActive,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert employee: %w", err)
	}
	return id, nil
}

func (r *employeeRepositoryImpl) Search(ctx context.Context, query string, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query = strings.TrimSpace(query)
	var (
		rows pgx.Rows
		err  error
	)
	if query == "" {
		sql := `SELECT ` + employeeColumns + `
			FROM employees e
			WHERE e.is_active
			ORDER BY e.display_name
			LIMIT $1`
		rows, err = q.Query(ctx, sql, limit)
	} else {
		// Exact display-name prefix matches rank before substring hits.
		like := "%" + escapeLike(query) + "%"
		prefix := escapeLike(query) + "%"
		sql := `SELECT ` + employeeColumns + `
			FROM employees e
			WHERE e.is_active
			  AND (e.display_name ILIKE $1 OR e.sam_account_name ILIKE $1 OR e.email ILIKE $1)
			ORDER BY (e.display_name ILIKE $2) DESC, e.display_name
			LIMIT $3`
		rows, err = q.Query(ctx, sql, like, prefix, limit)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

func (r *employeeRepositoryImpl) ListInScope(ctx context.Context, scope access.Scope) ([]employee.Member, error) {
	q := GetQuerier(ctx, r.db)

	conds, args := scopeConditions(scope, nil)
	query := `
		SELECT e.id, e.display_name, COALESCE(o.department_id, e.department_id)
		FROM employees e
		LEFT JOIN employee_overrides o ON o.employee_id = e.id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY e.display_name, e.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []employee.Member
	for rows.Next() {
		var m employee.Member
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.DepartmentID); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
