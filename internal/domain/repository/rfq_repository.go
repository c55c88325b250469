package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// RFQRepository is the persistence port for RFQ.
type RFQRepository interface {
	Create(ctx context.Context, rfq *entity.RFQ) error
	GetByID(ctx context.Context, id string) (*entity.RFQ, error)
	Update(ctx context.Context, rfq *entity.RFQ) error
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.RFQ, error)
	// ListInvitedSupplier returns RFQs the supplier holds any invite for,
	// regardless of invite status.
	ListInvitedSupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.RFQ, error)
	ListAll(ctx context.Context, limit, offset int) ([]*entity.RFQ, error)
}
