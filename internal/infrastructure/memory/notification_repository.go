package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo in-memory adapter for Notification.
type NotificationRepo struct {
	store *Store
}

// NewNotificationRepository binds the adapter to a store.
func NewNotificationRepository(store *Store) *NotificationRepo {
	return &NotificationRepo{store: store}
}

// Create stores a notification.
func (r *NotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *n
	r.store.notifications[n.ID] = &c
	return nil
}

// GetByID returns a notification by ID, (nil, nil) when absent.
func (r *NotificationRepo) GetByID(_ context.Context, id string) (*entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	n, ok := r.store.notifications[id]
	if !ok {
		return nil, nil
	}
	c := *n
	return &c, nil
}

// ListByUser returns a user's notifications, newest first.
func (r *NotificationRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Notification
	for _, n := range r.store.notifications {
		if n.UserID == userID {
			c := *n
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

// MarkRead flags a notification as read.
func (r *NotificationRepo) MarkRead(_ context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	n, ok := r.store.notifications[id]
	if !ok {
		return domain.ErrNotFound
	}
	n.Read = true
	return nil
}
