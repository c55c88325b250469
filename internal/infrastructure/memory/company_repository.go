package memory

import (
	"context"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo in-memory adapter for the CompanyRepository port.
type CompanyRepo struct {
	store *Store
}

// NewCompanyRepository binds the adapter to a store.
func NewCompanyRepository(store *Store) *CompanyRepo {
	return &CompanyRepo{store: store}
}

// Create stores a new company.
func (r *CompanyRepo) Create(_ context.Context, company *entity.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *company
	r.store.companies[company.ID] = &c
	return nil
}

// GetByID returns a company by ID, (nil, nil) when absent.
func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	co, ok := r.store.companies[id]
	if !ok {
		return nil, nil
	}
	c := *co
	return &c, nil
}

// Update overwrites a stored company.
func (r *CompanyRepo) Update(_ context.Context, company *entity.Company) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.companies[company.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *company
	r.store.companies[company.ID] = &c
	return nil
}
