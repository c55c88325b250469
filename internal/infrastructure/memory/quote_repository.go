package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo in-memory adapter for the QuoteRepository port.
type QuoteRepo struct {
	store *Store
}

// NewQuoteRepository binds the adapter to a store.
func NewQuoteRepository(store *Store) *QuoteRepo {
	return &QuoteRepo{store: store}
}

// Create stores a new quote, enforcing one quote per invite.
func (r *QuoteRepo) Create(_ context.Context, quote *entity.Quote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, q := range r.store.quotes {
		if q.InviteID == quote.InviteID {
			return domain.ErrDuplicate
		}
	}
	c := *quote
	r.store.quotes[quote.ID] = &c
	return nil
}

// GetByID returns a quote by ID, (nil, nil) when absent.
func (r *QuoteRepo) GetByID(_ context.Context, id string) (*entity.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	q, ok := r.store.quotes[id]
	if !ok {
		return nil, nil
	}
	c := *q
	return &c, nil
}

// Update overwrites a stored quote.
func (r *QuoteRepo) Update(_ context.Context, quote *entity.Quote) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.quotes[quote.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *quote
	r.store.quotes[quote.ID] = &c
	return nil
}

// ListByRFQ returns every quote on an RFQ in creation order.
func (r *QuoteRepo) ListByRFQ(_ context.Context, rfqID string) ([]*entity.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Quote
	for _, q := range r.store.quotes {
		if q.RFQID == rfqID {
			c := *q
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

// ListBySupplier returns the supplier's quotes, newest first.
func (r *QuoteRepo) ListBySupplier(_ context.Context, supplierID string, limit, offset int) ([]*entity.Quote, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Quote
	for _, q := range r.store.quotes {
		if q.SupplierID == supplierID {
			c := *q
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}
