package repository

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// DocumentRepository is the persistence port for Document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	GetByID(ctx context.Context, id string) (*entity.Document, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Document, error)
}
