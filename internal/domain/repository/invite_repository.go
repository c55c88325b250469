package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// InviteRepository is the persistence port for SupplierInvite.
type InviteRepository interface {
	Create(ctx context.Context, invite *entity.SupplierInvite) error
	GetByID(ctx context.Context, id string) (*entity.SupplierInvite, error)
	GetByRFQAndSupplier(ctx context.Context, rfqID, supplierID string) (*entity.SupplierInvite, error)
	Update(ctx context.Context, invite *entity.SupplierInvite) error
	ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierInvite, error)
	ListByRFQ(ctx context.Context, rfqID string) ([]*entity.SupplierInvite, error)
}
