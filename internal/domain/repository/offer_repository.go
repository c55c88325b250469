package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// OfferRepository is the persistence port for CuratedOffer.
type OfferRepository interface {
	Create(ctx context.Context, offer *entity.CuratedOffer) error
	GetByID(ctx context.Context, id string) (*entity.CuratedOffer, error)
	Update(ctx context.Context, offer *entity.CuratedOffer) error
	ListByRFQ(ctx context.Context, rfqID string) ([]*entity.CuratedOffer, error)
	// ListPublishedByBuyer returns published offers on RFQs owned by the buyer.
	ListPublishedByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.CuratedOffer, error)
}
