package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// CompanyRepository is the persistence port for Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
}
