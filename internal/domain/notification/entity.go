package notification

import (
	"context"
	"time"
)

// Notification is a stored in-app message. Delivery beyond the store (email,
// push) is out of scope; this is the queryable inbox the UI badges read.
type Notification struct {
	ID           int64     `json:"notification_id"`
	ToEmployeeID int64     `json:"-"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	URL          *string   `json:"url,omitempty"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// UnreadCountResponse is the badge-count API shape.
type UnreadCountResponse struct {
	Count int `json:"count"`
}

// Repository - interface for the notifications table
type Repository interface {
	Add(ctx context.Context, toEmployeeID int64, title, body string, url *string) error
	UnreadCount(ctx context.Context, toEmployeeID int64) (int, error)
	Latest(ctx context.Context, toEmployeeID int64, limit int) ([]Notification, error)
	MarkRead(ctx context.Context, notificationID, toEmployeeID int64) error
}

// Service is the thin notification facade used by the request lifecycle.
type Service interface {
	Notify(ctx context.Context, toEmployeeID int64, title, body string, url *string)
	UnreadCount(ctx context.Context, employeeID int64) (int, error)
	Latest(ctx context.Context, employeeID int64) ([]Notification, error)
	MarkRead(ctx context.Context, employeeID, notificationID int64) error
}
