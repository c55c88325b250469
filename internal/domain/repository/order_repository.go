package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// OrderRepository is the persistence port for Order and its append-only
// production updates.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	AddUpdate(ctx context.Context, update *entity.OrderUpdate) error
	ListUpdates(ctx context.Context, orderID string) ([]*entity.OrderUpdate, error)
}
