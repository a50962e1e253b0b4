package postgresql

import (
	"context"
	"slices"

	"github.com/availboard/availboard-backend-go/internal/domain/department"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type departmentAccessRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentAccessRepository(db *database.DB) department.AccessRepository {
	return &departmentAccessRepositoryImpl{db: db}
}

func (r *departmentAccessRepositoryImpl) ViewableDepartmentIDs(ctx context.Context, employeeID int64, ownDepartmentID *int64) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department_id FROM employee_department_access
		WHERE employee_id = $1 AND can_view
	`
	rows, err := q.Query(ctx, query, employeeID)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// The own department is always viewable
	if ownDepartmentID != nil && !slices.Contains(ids, *ownDepartmentID) {
		ids = append(ids, *ownDepartmentID)
	}
	return ids, nil
}

func (r *departmentAccessRepositoryImpl) ApprovableDepartmentIDs(ctx context.Context, employeeID int64) ([]int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department_id FROM employee_department_access
		WHERE employee_id = $1 AND can_approve
	`
	rows, err := q.Query(ctx, query, employeeID)
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

func (r *departmentAccessRepositoryImpl) GetByEmployee(ctx context.Context, employeeID int64) ([]department.AccessGrant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, department_id, can_view, can_approve, granted_at, granted_by
		FROM employee_department_access
		WHERE employee_id = $1
	`
	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []department.AccessGrant
	for rows.Next() {
		var g department.AccessGrant
		if err := rows.Scan(&g.ID, &g.EmployeeID, &g.DepartmentID, &g.CanView, &g.CanApprove, &g.GrantedAt, &g.GrantedByID); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (r *departmentAccessRepositoryImpl) Grant(ctx context.Context, employeeID, departmentID int64, canView, canApprove bool, grantedBy *int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_department_access (employee_id, department_id, can_view, can_approve, granted_at, granted_by)
		VALUES ($1, $2, $3, $4, NOW(), $5)
		ON CONFLICT (employee_id, department_id) DO UPDATE SET
			can_view = EXCLUDED.can_view,
			can_approve = EXCLUDED.can_approve,
			granted_at = NOW(),
			granted_by = EXCLUDED.granted_by
	`
	_, err := q.Exec(ctx, query, employeeID, departmentID, canView, canApprove, grantedBy)
	return err
}

func (r *departmentAccessRepositoryImpl) Revoke(ctx context.Context, employeeID, departmentID int64) error {
	q := GetQuerier(ctx, r.db)
	_, err := q.Exec(ctx,
		`DELETE FROM employee_department_access WHERE employee_id = $1 AND department_id = $2`,
		employeeID, departmentID,
	)
	return err
}
