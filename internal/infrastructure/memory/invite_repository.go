package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo in-memory adapter for the InviteRepository port.
type InviteRepo struct {
	store *Store
}

// NewInviteRepository binds the adapter to a store.
func NewInviteRepository(store *Store) *InviteRepo {
	return &InviteRepo{store: store}
}

// Create stores a new invite, enforcing one invite per supplier per RFQ.
func (r *InviteRepo) Create(_ context.Context, invite *entity.SupplierInvite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, inv := range r.store.invites {
		if inv.RFQID == invite.RFQID && inv.SupplierID == invite.SupplierID {
			return domain.ErrDuplicate
		}
	}
	c := *invite
	r.store.invites[invite.ID] = &c
	return nil
}

// GetByID returns an invite by ID, (nil, nil) when absent.
func (r *InviteRepo) GetByID(_ context.Context, id string) (*entity.SupplierInvite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	inv, ok := r.store.invites[id]
	if !ok {
		return nil, nil
	}
	c := *inv
	return &c, nil
}

// GetByRFQAndSupplier returns the invite binding one supplier to one RFQ.
func (r *InviteRepo) GetByRFQAndSupplier(_ context.Context, rfqID, supplierID string) (*entity.SupplierInvite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, inv := range r.store.invites {
		if inv.RFQID == rfqID && inv.SupplierID == supplierID {
			c := *inv
			return &c, nil
		}
	}
	return nil, nil
}

// Update overwrites a stored invite.
func (r *InviteRepo) Update(_ context.Context, invite *entity.SupplierInvite) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.invites[invite.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *invite
	r.store.invites[invite.ID] = &c
	return nil
}

// ListBySupplier returns the supplier's invites, newest first.
func (r *InviteRepo) ListBySupplier(_ context.Context, supplierID string, limit, offset int) ([]*entity.SupplierInvite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.SupplierInvite
	for _, inv := range r.store.invites {
		if inv.SupplierID == supplierID {
			c := *inv
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}

// ListByRFQ returns every invite on an RFQ in creation order.
func (r *InviteRepo) ListByRFQ(_ context.Context, rfqID string) ([]*entity.SupplierInvite, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.SupplierInvite
	for _, inv := range r.store.invites {
		if inv.RFQID == rfqID {
			c := *inv
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	return all, nil
}
