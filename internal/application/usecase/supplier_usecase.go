package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// SupplierUseCase supplier profile management. Suppliers maintain their own
// capability profile; the trust tier is admin-only.
type SupplierUseCase struct {
	profileRepo repository.SupplierProfileRepository
}

// NewSupplierUseCase builds the use case.
func NewSupplierUseCase(profileRepo repository.SupplierProfileRepository) *SupplierUseCase {
	return &SupplierUseCase{profileRepo: profileRepo}
}

// GetProfile returns the caller's supplier profile.
func (uc *SupplierUseCase) GetProfile(ctx context.Context, caller dto.Caller) (*dto.SupplierProfileResponse, error) {
	if caller.CompanyID == "" {
		return nil, domain.ErrNotFound
	}
	profile, err := uc.profileRepo.GetByCompanyID(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// UpsertProfile creates or updates the caller's supplier profile. The
// verified status is untouched: a fresh profile starts unverified and only
// Verify moves it.
func (uc *SupplierUseCase) UpsertProfile(ctx context.Context, caller dto.Caller, in dto.UpsertSupplierProfileRequest) (*dto.SupplierProfileResponse, error) {
	if caller.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Capabilities) == 0 || in.MOQ < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	profile, err := uc.profileRepo.GetByCompanyID(ctx, caller.CompanyID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.SupplierProfile{
			ID:             uuid.New().String(),
			CompanyID:      caller.CompanyID,
			Capabilities:   in.Capabilities,
			Certifications: in.Certifications,
			MOQ:            in.MOQ,
			VerifiedStatus: entity.VerifiedUnverified,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return toProfileResponse(profile), nil
	}
	profile.Capabilities = in.Capabilities
	profile.Certifications = in.Certifications
	profile.MOQ = in.MOQ
	profile.UpdatedAt = now
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// Verify sets a supplier's trust tier. Admin only.
func (uc *SupplierUseCase) Verify(ctx context.Context, profileID string, in dto.VerifySupplierRequest) (*dto.SupplierProfileResponse, error) {
	if !entity.ValidVerifiedStatus(in.Status) {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	profile.VerifiedStatus = in.Status
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(p *entity.SupplierProfile) *dto.SupplierProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.SupplierProfileResponse{
		ID:             p.ID,
		CompanyID:      p.CompanyID,
		Capabilities:   p.Capabilities,
		Certifications: p.Certifications,
		MOQ:            p.MOQ,
		VerifiedStatus: p.VerifiedStatus,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
