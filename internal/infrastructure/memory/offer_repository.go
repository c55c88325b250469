package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo in-memory adapter for the OfferRepository port.
type OfferRepo struct {
	store *Store
}

// NewOfferRepository binds the adapter to a store.
func NewOfferRepository(store *Store) *OfferRepo {
	return &OfferRepo{store: store}
}

// Create stores a new curated offer.
func (r *OfferRepo) Create(_ context.Context, offer *entity.CuratedOffer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.offers[offer.ID] = cloneOffer(offer)
	return nil
}

// GetByID returns an offer by ID, (nil, nil) when absent.
func (r *OfferRepo) GetByID(_ context.Context, id string) (*entity.CuratedOffer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	o, ok := r.store.offers[id]
	if !ok {
		return nil, nil
	}
	return cloneOffer(o), nil
}

// Update overwrites a stored offer.
func (r *OfferRepo) Update(_ context.Context, offer *entity.CuratedOffer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.offers[offer.ID]; !ok {
		return domain.ErrNotFound
	}
	r.store.offers[offer.ID] = cloneOffer(offer)
	return nil
}

// ListByRFQ returns every offer on an RFQ in creation order, drafts included.
func (r *OfferRepo) ListByRFQ(_ context.Context, rfqID string) ([]*entity.CuratedOffer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.CuratedOffer
	for _, o := range r.store.offers {
		if o.RFQID == rfqID {
			all = append(all, cloneOffer(o))
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}

// ListPublishedByBuyer returns published offers on RFQs owned by the buyer,
// most recently published first.
func (r *OfferRepo) ListPublishedByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.CuratedOffer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.CuratedOffer
	for _, o := range r.store.offers {
		if o.PublishedAt == nil {
			continue
		}
		rfq, ok := r.store.rfqs[o.RFQID]
		if !ok || rfq.BuyerID != buyerID {
			continue
		}
		all = append(all, cloneOffer(o))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].PublishedAt.After(*all[j].PublishedAt) })
	return paginate(all, limit, offset), nil
}

func cloneOffer(in *entity.CuratedOffer) *entity.CuratedOffer {
	c := *in
	c.QuoteIDs = cloneStrings(in.QuoteIDs)
	if in.PublishedAt != nil {
		t := *in.PublishedAt
		c.PublishedAt = &t
	}
	return &c
}
