package usecase

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// SKUUseCase read access to the process catalogue. Public reference data.
type SKUUseCase struct {
	repo repository.SKURepository
}

// NewSKUUseCase builds the use case.
func NewSKUUseCase(repo repository.SKURepository) *SKUUseCase {
	return &SKUUseCase{repo: repo}
}

// List returns catalogue entries, optionally filtered by industry.
func (uc *SKUUseCase) List(ctx context.Context, industry string, page dto.PageRequest) (*dto.SKUListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, industry, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SKUResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSKUResponse(s))
	}
	return &dto.SKUListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// GetByID returns one catalogue entry, nil when absent.
func (uc *SKUUseCase) GetByID(ctx context.Context, id string) (*dto.SKUResponse, error) {
	sku, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sku == nil {
		return nil, nil
	}
	return toSKUResponse(sku), nil
}

func toSKUResponse(s *entity.SKU) *dto.SKUResponse {
	if s == nil {
		return nil
	}
	return &dto.SKUResponse{
		ID:          s.ID,
		Industry:    s.Industry,
		ProcessName: s.ProcessName,
		Description: s.Description,
	}
}
