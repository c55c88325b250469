package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// SupplierProfileRepository is the persistence port for SupplierProfile.
// One profile per company.
type SupplierProfileRepository interface {
	Create(ctx context.Context, profile *entity.SupplierProfile) error
	GetByID(ctx context.Context, id string) (*entity.SupplierProfile, error)
	GetByCompanyID(ctx context.Context, companyID string) (*entity.SupplierProfile, error)
	Update(ctx context.Context, profile *entity.SupplierProfile) error
}
