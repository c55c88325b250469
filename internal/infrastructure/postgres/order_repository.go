package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo PostgreSQL adapter for the OrderRepository port. Production
// updates live in order_updates and are insert-only.
type OrderRepo struct {
	db querier
}

// NewOrderRepository binds the adapter to a pool or transaction.
func NewOrderRepository(db querier) *OrderRepo {
	return &OrderRepo{db: db}
}

const orderColumns = `id, rfq_id, offer_id, buyer_id, status, total_amount, advance_payment, created_at, updated_at`

// Create persists a new order.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, rfq_id, offer_id, buyer_id, status, total_amount, advance_payment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.RFQID, order.OfferID, order.BuyerID, order.Status,
		order.TotalAmount, order.AdvancePayment, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// GetByID fetches an order by ID, (nil, nil) when absent.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// Update persists order mutations.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET status = $2, total_amount = $3, advance_payment = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.Status, order.TotalAmount, order.AdvancePayment, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// ListByBuyer returns the buyer's orders, newest first.
func (r *OrderRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE buyer_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		buyerID, limit, offset)
}

// ListAll returns every order, newest first.
func (r *OrderRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	return r.list(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

// AddUpdate appends one production update. Rows are never mutated.
func (r *OrderRepo) AddUpdate(ctx context.Context, update *entity.OrderUpdate) error {
	query := `
		INSERT INTO order_updates (id, order_id, stage, detail, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		update.ID, update.OrderID, update.Stage, update.Detail,
		update.CreatedBy, update.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order update: %w", err)
	}
	return nil
}

// ListUpdates returns an order's production updates in insertion order.
func (r *OrderRepo) ListUpdates(ctx context.Context, orderID string) ([]*entity.OrderUpdate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, stage, detail, created_by, created_at
		 FROM order_updates WHERE order_id = $1 ORDER BY created_at`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order updates: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderUpdate
	for rows.Next() {
		var u entity.OrderUpdate
		if err := rows.Scan(&u.ID, &u.OrderID, &u.Stage, &u.Detail, &u.CreatedBy, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order update: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(&o.ID, &o.RFQID, &o.OfferID, &o.BuyerID, &o.Status,
		&o.TotalAmount, &o.AdvancePayment, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
