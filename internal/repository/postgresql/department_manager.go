package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type departmentManagerRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentManagerRepository(db *database.DB) department.ManagerRepository {
	return &departmentManagerRepositoryImpl{db: db}
}

func (r *departmentManagerRepositoryImpl) ManagerOf(ctx context.Context, departmentID int64) (*int64, error) {
	q := GetQuerier(ctx, r.db)

	var managerID int64
	err := q.QueryRow(ctx,
		`SELECT manager_employee_id FROM department_managers WHERE department_id = $1`,
		departmentID,
	).Scan(&managerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &managerID, nil
}

func (r *departmentManagerRepositoryImpl) ManagedDepartmentIDs(ctx context.Context, employeeID int64) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT department_id FROM department_managers WHERE manager_employee_id = $1`,
		employeeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *departmentManagerRepositoryImpl) Upsert(ctx context.Context, departmentID, managerEmployeeID int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO department_managers (department_id, manager_employee_id)
		VALUES ($1, $2)
		ON CONFLICT (department_id) DO UPDATE SET manager_employee_id = EXCLUDED.manager_employee_id
	`
	_, err := q.Exec(ctx, query, departmentID, managerEmployeeID)
	return err
}
