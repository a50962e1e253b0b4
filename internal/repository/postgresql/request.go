package postgresql

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/availboard/availboard-backend-go/internal/domain/access"
	"github.com/availboard/availboard-backend-go/internal/domain/request"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.Repository {
	return &requestRepositoryImpl{db: db}
}

func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO availability_requests (
			employee_id, type_id, start_at, end_at, status, note, approver_id, submitted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`
	var id int64
	err := q.QueryRow(ctx, query,
		req.EmployeeID, req.TypeID, req.Start, req.End, req.Status, req.Note, req.ApproverID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id int64) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type_id, start_at, end_at, status, note,
			   approver_id, submitted_at, decision_at, decision_note
		FROM availability_requests
		WHERE id = $1
	`
	var req request.Request
	err := q.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.EmployeeID, &req.TypeID, &req.Start, &req.End, &req.Status, &req.Note,
		&req.ApproverID, &req.SubmittedAt, &req.DecisionAt, &req.DecisionNote,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return request.Request{}, request.ErrRequestNotFound
	}
	if err != nil {
		return request.Request{}, err
	}
	return req, nil
}

const requestRowColumns = `
	r.id, r.employee_id, e.display_name,
	r.type_id, t.code, t.label, t.color_hex,
	r.start_at, r.end_at, r.status, r.note,
	r.approver_id, a.display_name,
	r.submitted_at, r.decision_at, r.decision_note`

const requestRowJoins = `
	FROM availability_requests r
	JOIN employees e ON e.id = r.employee_id
	JOIN availability_types t ON t.id = r.type_id
	LEFT JOIN employees a ON a.id = r.approver_id`

func scanRequestRows(rows pgx.Rows) ([]request.Row, error) {
	defer rows.Close()

	var result []request.Row
	for rows.Next() {
		var row request.Row
		err := rows.Scan(
			&row.RequestID, &row.EmployeeID, &row.EmployeeName,
			&row.TypeID, &row.TypeCode, &row.TypeLabel, &row.TypeColorHex,
			&row.Start, &row.End, &row.Status, &row.Note,
			&row.ApproverID, &row.ApproverName,
			&row.SubmittedAt, &row.DecisionAt, &row.DecisionNote,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *requestRepositoryImpl) GetMine(ctx context.Context, employeeID int64) ([]request.Row, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + requestRowColumns + requestRowJoins + `
		WHERE r.employee_id = $1
		ORDER BY r.submitted_at DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	return scanRequestRows(rows)
}

func (r *requestRepositoryImpl) GetPending(ctx context.Context) ([]request.Row, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + requestRowColumns + requestRowJoins + `
		WHERE r.status = 'Pending'
		ORDER BY r.submitted_at ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return scanRequestRows(rows)
}

func (r *requestRepositoryImpl) GetPendingForDepartments(ctx context.Context, departmentIDs []int64) ([]request.Row, error) {
	if len(departmentIDs) == 0 {
		return nil, nil
	}
	q := GetQuerier(ctx, r.db)

	query := `SELECT` + requestRowColumns + `
		FROM availability_requests r
		JOIN employees e ON e.id = r.employee_id
		LEFT JOIN employee_overrides o ON o.employee_id = e.id
		JOIN availability_types t ON t.id = r.type_id
		LEFT JOIN employees a ON a.id = r.approver_id
		WHERE r.status = 'Pending'
		  AND COALESCE(o.department_id, e.department_id) = ANY($1)
		ORDER BY r.submitted_at ASC`

	rows, err := q.Query(ctx, query, departmentIDs)
	if err != nil {
		return nil, err
	}
	return scanRequestRows(rows)
}

func (r *requestRepositoryImpl) Decide(ctx context.Context, id, approverID int64, approve bool, note *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	status := request.StatusRejected
	if approve {
		status = request.StatusApproved
	}

	// Only pending rows transition; decided rows are terminal.
	tag, err := q.Exec(ctx, `
		UPDATE availability_requests
		SET status = $1, approver_id = $2, decision_at = NOW(), decision_note = $3
		WHERE id = $4 AND status = 'Pending'
	`, status, approverID, note, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *requestRepositoryImpl) ApprovedEntries(ctx context.Context, start, end time.Time, scope access.Scope) ([]request.Entry, error) {
	q := GetQuerier(ctx, r.db)

	args := []any{start, end}
	conds, args := scopeConditions(scope, args)
	conds = append(conds,
		"r.status = 'Approved'",
		"r.start_at < $2",
		"r.end_at > $1",
	)

	query := `
		SELECT r.id, r.employee_id, e.display_name,
			   COALESCE(o.department_id, e.department_id),
			   r.type_id, t.code, t.label, t.color_hex,
			   r.start_at, r.end_at, r.note
		FROM availability_requests r
		JOIN employees e ON e.id = r.employee_id
		LEFT JOIN employee_overrides o ON o.employee_id = e.id
		JOIN availability_types t ON t.id = r.type_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY e.display_name, r.start_at, r.id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []request.Entry
	for rows.Next() {
		var entry request.Entry
		err := rows.Scan(
			&entry.ID, &entry.EmployeeID, &entry.EmployeeName,
			&entry.DepartmentID,
			&entry.TypeID, &entry.TypeCode, &entry.TypeLabel, &entry.ColorHex,
			&entry.Start, &entry.End, &entry.Note,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
