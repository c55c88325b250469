package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// QuoteRepository is the persistence port for Quote.
type QuoteRepository interface {
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id string) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	ListByRFQ(ctx context.Context, rfqID string) ([]*entity.Quote, error)
	ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.Quote, error)
}
