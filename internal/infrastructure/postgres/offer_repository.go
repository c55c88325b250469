package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

// OfferRepo PostgreSQL adapter for the OfferRepository port. QuoteIDs is a
// text[] column; published_at NULL means draft.
type OfferRepo struct {
	db querier
}

// NewOfferRepository binds the adapter to a pool or transaction.
func NewOfferRepository(db querier) *OfferRepo {
	return &OfferRepo{db: db}
}

const offerColumns = `id, rfq_id, quote_ids, title, unit_price, quantity, lead_time_days, warranty_months, advance_percent, payment_link, notes, published_at, created_by, created_at, updated_at`

// Create persists a new curated offer.
func (r *OfferRepo) Create(ctx context.Context, offer *entity.CuratedOffer) error {
	query := `
		INSERT INTO curated_offers (id, rfq_id, quote_ids, title, unit_price, quantity, lead_time_days, warranty_months, advance_percent, payment_link, notes, published_at, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.db.Exec(ctx, query,
		offer.ID, offer.RFQID, offer.QuoteIDs, offer.Title,
		offer.UnitPrice, offer.Quantity, offer.LeadTimeDays, offer.WarrantyMonths,
		offer.AdvancePercent, offer.PaymentLink, offer.Notes,
		offer.PublishedAt, offer.CreatedBy, offer.CreatedAt, offer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID fetches an offer by ID, (nil, nil) when absent.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*entity.CuratedOffer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM curated_offers WHERE id = $1`, id)
	o, err := scanOffer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	return o, nil
}

// Update persists offer mutations.
func (r *OfferRepo) Update(ctx context.Context, offer *entity.CuratedOffer) error {
	query := `
		UPDATE curated_offers SET quote_ids = $2, title = $3, unit_price = $4,
			quantity = $5, lead_time_days = $6, warranty_months = $7,
			advance_percent = $8, payment_link = $9, notes = $10,
			published_at = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		offer.ID, offer.QuoteIDs, offer.Title, offer.UnitPrice,
		offer.Quantity, offer.LeadTimeDays, offer.WarrantyMonths,
		offer.AdvancePercent, offer.PaymentLink, offer.Notes,
		offer.PublishedAt, offer.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	return nil
}

// ListByRFQ returns every offer on an RFQ, drafts included.
func (r *OfferRepo) ListByRFQ(ctx context.Context, rfqID string) ([]*entity.CuratedOffer, error) {
	return r.list(ctx,
		`SELECT `+offerColumns+` FROM curated_offers WHERE rfq_id = $1 ORDER BY created_at`,
		rfqID)
}

// ListPublishedByBuyer returns published offers on RFQs owned by the buyer.
func (r *OfferRepo) ListPublishedByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]*entity.CuratedOffer, error) {
	return r.list(ctx,
		`SELECT o.id, o.rfq_id, o.quote_ids, o.title, o.unit_price, o.quantity, o.lead_time_days, o.warranty_months, o.advance_percent, o.payment_link, o.notes, o.published_at, o.created_by, o.created_at, o.updated_at
		 FROM curated_offers o
		 JOIN rfqs r ON r.id = o.rfq_id
		 WHERE r.buyer_id = $1 AND o.published_at IS NOT NULL
		 ORDER BY o.published_at DESC LIMIT $2 OFFSET $3`,
		buyerID, limit, offset)
}

func (r *OfferRepo) list(ctx context.Context, query string, args ...any) ([]*entity.CuratedOffer, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.CuratedOffer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOffer(row pgx.Row) (*entity.CuratedOffer, error) {
	var o entity.CuratedOffer
	err := row.Scan(&o.ID, &o.RFQID, &o.QuoteIDs, &o.Title,
		&o.UnitPrice, &o.Quantity, &o.LeadTimeDays, &o.WarrantyMonths,
		&o.AdvancePercent, &o.PaymentLink, &o.Notes,
		&o.PublishedAt, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
