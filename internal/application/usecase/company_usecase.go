package usecase

import (
	"context"
	"time"

	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// CompanyUseCase business rules for companies. Companies are created during
// registration; afterwards members only read and update their own.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase builds the use case with its persistence port.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// GetMine returns the caller's company.
func (uc *CompanyUseCase) GetMine(ctx context.Context, caller dto.Caller) (*dto.CompanyResponse, error) {
	if caller.CompanyID == "" {
		return nil, domain.ErrNotFound
	}
	company, err := uc.repo.GetByID(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// UpdateMine applies a partial update to the caller's company.
func (uc *CompanyUseCase) UpdateMine(ctx context.Context, caller dto.Caller, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if caller.CompanyID == "" {
		return nil, domain.ErrNotFound
	}
	company, err := uc.repo.GetByID(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		company.Name = *in.Name
	}
	if in.RegistrationNo != nil {
		company.RegistrationNo = *in.RegistrationNo
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.City != nil {
		company.City = *in.City
	}
	if in.Country != nil {
		company.Country = *in.Country
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		RegistrationNo: c.RegistrationNo,
		TaxID:          c.TaxID,
		Address:        c.Address,
		City:           c.City,
		Country:        c.Country,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
