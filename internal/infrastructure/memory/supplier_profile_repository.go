package memory

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.SupplierProfileRepository = (*SupplierProfileRepo)(nil)

// SupplierProfileRepo in-memory adapter for the SupplierProfileRepository
// port.
type SupplierProfileRepo struct {
	store *Store
}

// NewSupplierProfileRepository binds the adapter to a store.
func NewSupplierProfileRepository(store *Store) *SupplierProfileRepo {
	return &SupplierProfileRepo{store: store}
}

// Create stores a new profile, enforcing one per company.
func (r *SupplierProfileRepo) Create(_ context.Context, profile *entity.SupplierProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.profiles {
		if p.CompanyID == profile.CompanyID {
			return domain.ErrDuplicate
		}
	}
	r.store.profiles[profile.ID] = cloneProfile(profile)
	return nil
}

// GetByID returns a profile by ID, (nil, nil) when absent.
func (r *SupplierProfileRepo) GetByID(_ context.Context, id string) (*entity.SupplierProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	p, ok := r.store.profiles[id]
	if !ok {
		return nil, nil
	}
	return cloneProfile(p), nil
}

// GetByCompanyID returns the profile of a company, (nil, nil) when absent.
func (r *SupplierProfileRepo) GetByCompanyID(_ context.Context, companyID string) (*entity.SupplierProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, p := range r.store.profiles {
		if p.CompanyID == companyID {
			return cloneProfile(p), nil
		}
	}
	return nil, nil
}

// Update overwrites a stored profile.
func (r *SupplierProfileRepo) Update(_ context.Context, profile *entity.SupplierProfile) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.profiles[profile.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.profiles[profile.ID] = cloneProfile(profile)
	return nil
}

func cloneProfile(in *entity.SupplierProfile) *entity.SupplierProfile {
	c := *in
	c.Capabilities = cloneStrings(in.Capabilities)
	c.Certifications = cloneStrings(in.Certifications)
	return &c
}
