package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// NotificationRepository is the persistence port for Notification.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	GetByID(ctx context.Context, id string) (*entity.Notification, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
