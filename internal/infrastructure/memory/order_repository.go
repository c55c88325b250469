package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo in-memory adapter for the OrderRepository port.
type OrderRepo struct {
	store *Store
}

// NewOrderRepository binds the adapter to a store.
func NewOrderRepository(store *Store) *OrderRepo {
	return &OrderRepo{store: store}
}

// Create stores a new order.
func (r *OrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *order
	r.store.orders[order.ID] = &c
	return nil
}

// GetByID returns an order by ID, (nil, nil) when absent.
func (r *OrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	o, ok := r.store.orders[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}

// Update overwrites a stored order.
func (r *OrderRepo) Update(_ context.Context, order *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.orders[order.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *order
	r.store.orders[order.ID] = &c
	return nil
}

// ListByBuyer returns the buyer's orders, newest first.
func (r *OrderRepo) ListByBuyer(_ context.Context, buyerID string, limit, offset int) ([]*entity.Order, error) {
	return r.filter(func(o *entity.Order) bool { return o.BuyerID == buyerID }, limit, offset)
}

// ListAll returns every order, newest first.
func (r *OrderRepo) ListAll(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	return r.filter(func(*entity.Order) bool { return true }, limit, offset)
}

// AddUpdate appends one production update to the order's trail.
func (r *OrderRepo) AddUpdate(_ context.Context, update *entity.OrderUpdate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *update
	r.store.orderUpdates[update.OrderID] = append(r.store.orderUpdates[update.OrderID], &c)
	return nil
}

// ListUpdates returns an order's production updates in insertion order.
func (r *OrderRepo) ListUpdates(_ context.Context, orderID string) ([]*entity.OrderUpdate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	trail := r.store.orderUpdates[orderID]
	out := make([]*entity.OrderUpdate, 0, len(trail))
	for _, u := range trail {
		c := *u
		out = append(out, &c)
	}
	return out, nil
}

func (r *OrderRepo) filter(keep func(*entity.Order) bool, limit, offset int) ([]*entity.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Order
	for _, o := range r.store.orders {
		if keep(o) {
			c := *o
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}
