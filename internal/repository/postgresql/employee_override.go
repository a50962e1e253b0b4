package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/employee"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type employeeOverrideRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeOverrideRepository(db *database.DB) employee.OverrideRepository {
	return &employeeOverrideRepositoryImpl{db: db}
}

func (r *employeeOverrideRepositoryImpl) Get(ctx context.Context, employeeID int64) (*employee.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, department_id, manager_id, is_approver, is_admin, is_hidden
		FROM employee_overrides
		WHERE employee_id = $1
	`
	var o employee.Override
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&o.EmployeeID, &o.DepartmentID, &o.ManagerID, &o.IsApprover, &o.IsAdmin, &o.IsHidden,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *employeeOverrideRepositoryImpl) GetAll(ctx context.Context) ([]employee.Override, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, department_id, manager_id, is_approver, is_admin, is_hidden
		FROM employee_overrides
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []employee.Override
	for rows.Next() {
		var o employee.Override
		if err := rows.Scan(&o.EmployeeID, &o.DepartmentID, &o.ManagerID, &o.IsApprover, &o.IsAdmin, &o.IsHidden); err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

func (r *employeeOverrideRepositoryImpl) Upsert(ctx context.Context, ovr employee.Override) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_overrides (employee_id, department_id, manager_id, is_approver, is_admin, is_hidden)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id) DO UPDATE SET
			department_id = EXCLUDED.department_id,
			manager_id = EXCLUDED.manager_id,
			is_approver = EXCLUDED.is_approver,
			is_admin = EXCLUDED.is_admin,
			is_hidden = EXCLUDED.is_hidden
	`
	_, err := q.Exec(ctx, query,
		ovr.EmployeeID, ovr.DepartmentID, ovr.ManagerID, ovr.IsApprover, ovr.IsAdmin, ovr.IsHidden,
	)
	return err
}

func (r *employeeOverrideRepositoryImpl) Clear(ctx context.Context, employeeID int64) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx, `DELETE FROM employee_overrides WHERE employee_id = $1`, employeeID)
	return err
}
