package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// SKURepository is the persistence port for the SKU catalogue. Write access
// exists only for the seeder.
type SKURepository interface {
	Create(ctx context.Context, sku *entity.SKU) error
	GetByID(ctx context.Context, id string) (*entity.SKU, error)
	List(ctx context.Context, industry string, limit, offset int) ([]*entity.SKU, error)
}
