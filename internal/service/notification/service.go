package notification

import (
	"context"
	"log/slog"

	"github.com/availboard/availboard-backend-go/internal/domain/notification"
)

const latestLimit = 20

type NotificationServiceImpl struct {
	repo   notification.Repository
	logger *slog.Logger
}

func NewNotificationService(repo notification.Repository, logger *slog.Logger) notification.Service {
	return &NotificationServiceImpl{repo: repo, logger: logger}
}

// Notify stores an in-app message. A storage failure is logged and dropped;
// notifications never fail the operation that produced them.
func (s *NotificationServiceImpl) Notify(ctx context.Context, toEmployeeID int64, title, body string, url *string) {
	if err := s.repo.Add(ctx, toEmployeeID, title, body, url); err != nil {
		s.logger.ErrorContext(ctx, "failed to store notification",
			"to_employee_id", toEmployeeID, "title", title, "error", err)
	}
}

func (s *NotificationServiceImpl) UnreadCount(ctx context.Context, employeeID int64) (int, error) {
	return s.repo.UnreadCount(ctx, employeeID)
}

func (s *NotificationServiceImpl) Latest(ctx context.Context, employeeID int64) ([]notification.Notification, error) {
	items, err := s.repo.Latest(ctx, employeeID, latestLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []notification.Notification{}
	}
	return items, nil
}

func (s *NotificationServiceImpl) MarkRead(ctx context.Context, employeeID, notificationID int64) error {
	return s.repo.MarkRead(ctx, notificationID, employeeID)
}
