package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// NotificationUseCase per-user messages emitted by the lifecycle engine.
// Implements the Notifier ports of the rfq and order packages.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase builds the use case.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Notify stores a notification for a user.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, kind, title, body string) error {
	n := &entity.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	return uc.repo.Create(ctx, n)
}

// List returns the caller's notifications, newest first.
func (uc *NotificationUseCase) List(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.NotificationListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByUser(ctx, caller.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		items = append(items, dto.NotificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			Title:     n.Title,
			Body:      n.Body,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// MarkRead marks one of the caller's notifications as read.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, caller dto.Caller, id string) error {
	n, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	if n.UserID != caller.UserID {
		return domain.ErrForbidden
	}
	return uc.repo.MarkRead(ctx, id)
}
