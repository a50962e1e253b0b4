package postgresql

import (
	"context"

	"github.com/availboard/availboard-backend-go/internal/domain/notification"
	"github.com/availboard/availboard-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Add(ctx context.Context, toEmployeeID int64, title, body string, url *string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO notifications (to_employee_id, title, body, url, is_read, created_at)
		VALUES ($1, $2, $3, $4, false, NOW())
	`, toEmployeeID, title, body, url)
	return err
}

func (r *notificationRepositoryImpl) UnreadCount(ctx context.Context, toEmployeeID int64) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(1) FROM notifications WHERE to_employee_id = $1 AND NOT is_read`,
		toEmployeeID,
	).Scan(&count)
	return count, err
}

func (r *notificationRepositoryImpl) Latest(ctx context.Context, toEmployeeID int64, limit int) ([]notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, to_employee_id, title, body, url, is_read, created_at
		FROM notifications
		WHERE to_employee_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, toEmployeeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.ToEmployeeID, &n.Title, &n.Body, &n.URL, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepositoryImpl) MarkRead(ctx context.Context, notificationID, toEmployeeID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND to_employee_id = $2`,
		notificationID, toEmployeeID,
	)
	return err
}
