package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.RFQRepository = (*RFQRepo)(nil)

// RFQRepo PostgreSQL adapter for the RFQRepository port. Details is a
// JSONB column marshalled through encoding/json.
type RFQRepo struct {
	db querier
}

// NewRFQRepository binds the adapter to a pool or transaction.
func NewRFQRepository(db querier) *RFQRepo {
	return &RFQRepo{db: db}
}

const rfqColumns = `id, buyer_id, title, status, details, created_at, updated_at`

// Create persists a new RFQ.
func (r *RFQRepo) Create(ctx context.Context, rfq *entity.RFQ) error {
	details, err := json.Marshal(rfq.Details)
	if err != nil {
		return fmt.Errorf("marshal rfq details: %w", err)
	}
	query := `
		INSERT INTO rfqs (id, buyer_id, title, status, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.Exec(ctx, query,
		rfq.ID, rfq.BuyerID, rfq.Title, rfq.Status, details, rfq.CreatedAt, rfq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert rfq: %w", err)
	}
	return nil
}

// GetByID fetches an RFQ by ID, (nil, nil) when absent.
func (r *RFQRepo) GetByID(ctx context.Context, id string) (*entity.RFQ, error) {
	row := r.db.QueryRow(ctx, `SELECT `+rfqColumns+` FROM rfqs WHERE id = $1`, id)
	rfq, err := scanRFQ(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rfq: %w", err)
	}
	return rfq, nil
}

// Update persists RFQ mutations.
func (r *RFQRepo) Update(ctx context.Context, rfq *entity.RFQ) error {
	details, err := json.Marshal(rfq.Details)
	if err != nil {
		return fmt.Errorf("marshal rfq details: %w", err)
	}
	query := `
		UPDATE rfqs SET title = $2, status = $3, details = $4, updated_at = $5
		WHERE id = $1`
	_, err = r.db.Exec(ctx, query, rfq.ID, rfq.Title, rfq.Status, details, rfq.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update rfq: %w", err)
	}
	return nil
}

// ListByBuyer returns the buyer's RFQs, newest first.
func (r *RFQRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.RFQ, error) {
	return r.list(ctx,
		`SELECT `+rfqColumns+` FROM rfqs WHERE buyer_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		buyerID, limit, offset)
}

// ListInvitedSupplier returns RFQs the supplier holds any invite for.
func (r *RFQRepo) ListInvitedSupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.RFQ, error) {
	return r.list(ctx,
		`SELECT r.id, r.buyer_id, r.title, r.status, r.details, r.created_at, r.updated_at
		 FROM rfqs r
		 JOIN supplier_invites i ON i.rfq_id = r.id
		 WHERE i.supplier_id = $1
		 ORDER BY r.created_at DESC LIMIT $2 OFFSET $3`,
		supplierID, limit, offset)
}

// ListAll returns every RFQ, newest first.
func (r *RFQRepo) ListAll(ctx context.Context, limit, offset int) ([]*entity.RFQ, error) {
	return r.list(ctx,
		`SELECT `+rfqColumns+` FROM rfqs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (r *RFQRepo) list(ctx context.Context, query string, args ...any) ([]*entity.RFQ, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list rfqs: %w", err)
	}
	defer rows.Close()
	var list []*entity.RFQ
	for rows.Next() {
		rfq, err := scanRFQ(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rfq: %w", err)
		}
		list = append(list, rfq)
	}
	return list, rows.Err()
}

func scanRFQ(row pgx.Row) (*entity.RFQ, error) {
	var rfq entity.RFQ
	var details []byte
	err := row.Scan(&rfq.ID, &rfq.BuyerID, &rfq.Title, &rfq.Status, &details,
		&rfq.CreatedAt, &rfq.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &rfq.Details); err != nil {
			return nil, fmt.Errorf("unmarshal rfq details: %w", err)
		}
	}
	return &rfq, nil
}
