package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.RFQRepository = (*RFQRepo)(nil)

// RFQRepo in-memory adapter for the RFQRepository port.
type RFQRepo struct {
	store *Store
}

// NewRFQRepository binds the adapter to a store.
func NewRFQRepository(store *Store) *RFQRepo {
	return &RFQRepo{store: store}
}

// Create stores a new RFQ.
func (r *RFQRepo) Create(_ context.Context, rfq *entity.RFQ) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.rfqs[rfq.ID] = cloneRFQ(rfq)
	return nil
}

// GetByID returns an RFQ by ID, (nil, nil) when absent.
func (r *RFQRepo) GetByID(_ context.Context, id string) (*entity.RFQ, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	rfq, ok := r.store.rfqs[id]
	if !ok {
		return nil, nil
	}
	return cloneRFQ(rfq), nil
}

// Update overwrites a stored RFQ.
func (r *RFQRepo) Update(_ context.Context, rfq *entity.RFQ) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.rfqs[rfq.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.rfqs[rfq.ID] = cloneRFQ(rfq)
	return nil
}

// ListByBuyer returns the buyer's RFQs, newest first.
func (r *RFQRepo) ListByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.RFQ, error) {
	return r.filter(func(rfq *entity.RFQ) bool { return rfq.BuyerID == buyerID }, limit, offset)
}

// ListInvitedSupplier returns RFQs the supplier holds any invite for.
func (r *RFQRepo) ListInvitedSupplier(_ context.Context, supplierID string, limit, offset int) ([]*entity.RFQ, error) {
	r.store.mu.RLock()
	invited := make(map[string]bool)
	for _, inv := range r.store.invites {
		if inv.SupplierID == supplierID {
			invited[inv.RFQID] = true
		}
	}
	r.store.mu.RUnlock()
	return r.filter(func(rfq *entity.RFQ) bool { return invited[rfq.ID] }, limit, offset)
}

// ListAll returns every RFQ, newest first.
func (r *RFQRepo) ListAll(_ context.Context, limit, offset int) ([]*entity.RFQ, error) {
	return r.filter(func(*entity.RFQ) bool { return true }, limit, offset)
}

func (r *RFQRepo) filter(keep func(*entity.RFQ) bool, limit, offset int) ([]*entity.RFQ, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.RFQ
	for _, rfq := range r.store.rfqs {
		if keep(rfq) {
			all = append(all, cloneRFQ(rfq))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

func cloneRFQ(in *entity.RFQ) *entity.RFQ {
	c := *in
	c.Details.Items = append([]entity.RFQItem(nil), in.Details.Items...)
	c.Details.DocumentIDs = cloneStrings(in.Details.DocumentIDs)
	return &c
}
