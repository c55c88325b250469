package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo in-memory adapter for the SKU catalogue.
type SKURepo struct {
	store *Store
}

// NewSKURepository binds the adapter to a store.
func NewSKURepository(store *Store) *SKURepo {
	return &SKURepo{store: store}
}

// Create stores a catalogue entry, enforcing industry/process uniqueness.
func (r *SKURepo) Create(_ context.Context, sku *entity.SKU) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, s := range r.store.skus {
		if s.Industry == sku.Industry && s.ProcessName == sku.ProcessName {
			return domain.ErrDuplicate
		}
	}
	c := *sku
	r.store.skus[sku.ID] = &c
	return nil
}

// GetByID returns a SKU by ID, (nil, nil) when absent.
func (r *SKURepo) GetByID(_ context.Context, id string) (*entity.SKU, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	s, ok := r.store.skus[id]
	if !ok {
		return nil, nil
	}
	c := *s
	return &c, nil
}

// List returns SKUs, optionally filtered by industry.
func (r *SKURepo) List(_ context.Context, industry string, limit, offset int) ([]*entity.SKU, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.SKU
	for _, s := range r.store.skus {
		if industry != "" && s.Industry != industry {
			continue
		}
		c := *s
		all = append(all, &c)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Industry != all[j].Industry {
			return all[i].Industry < all[j].Industry
		}
		return all[i].ProcessName < all[j].ProcessName
	})
	return paginate(all, limit, offset), nil
}
