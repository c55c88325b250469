package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.QuoteRepository = (*QuoteRepo)(nil)

// QuoteRepo PostgreSQL adapter for the QuoteRepository port.
type QuoteRepo struct {
	db querier
}

// NewQuoteRepository binds the adapter to a pool or transaction.
func NewQuoteRepository(db querier) *QuoteRepo {
	return &QuoteRepo{db: db}
}

const quoteColumns = `id, rfq_id, invite_id, supplier_id, unit_price, quantity, lead_time_days, terms, notes, status, created_at, updated_at`

// Create persists a new quote. One quote per invite.
func (r *QuoteRepo) Create(ctx context.Context, quote *entity.Quote) error {
	query := `
		INSERT INTO quotes (id, rfq_id, invite_id, supplier_id, unit_price, quantity, lead_time_days, terms, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		quote.ID, quote.RFQID, quote.InviteID, quote.SupplierID,
		quote.UnitPrice, quote.Quantity, quote.LeadTimeDays,
		quote.Terms, quote.Notes, quote.Status, quote.CreatedAt, quote.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// GetByID fetches a quote by ID, (nil, nil) when absent.
func (r *QuoteRepo) GetByID(ctx context.Context, id string) (*entity.Quote, error) {
	row := r.db.QueryRow(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	q, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote: %w", err)
	}
	return q, nil
}

// Update persists quote mutations.
func (r *QuoteRepo) Update(ctx context.Context, quote *entity.Quote) error {
	query := `
		UPDATE quotes SET unit_price = $2, quantity = $3, lead_time_days = $4,
			terms = $5, notes = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		quote.ID, quote.UnitPrice, quote.Quantity, quote.LeadTimeDays,
		quote.Terms, quote.Notes, quote.Status, quote.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update quote: %w", err)
	}
	return nil
}

// ListByRFQ returns every quote on an RFQ.
func (r *QuoteRepo) ListByRFQ(ctx context.Context, rfqID string) ([]*entity.Quote, error) {
	return r.list(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE rfq_id = $1 ORDER BY created_at`, rfqID)
}

// ListBySupplier returns the supplier's quotes, newest first.
func (r *QuoteRepo) ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.Quote, error) {
	return r.list(ctx,
		`SELECT `+quoteColumns+` FROM quotes WHERE supplier_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		supplierID, limit, offset)
}

func (r *QuoteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Quote, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

func scanQuote(row pgx.Row) (*entity.Quote, error) {
	var q entity.Quote
	err := row.Scan(&q.ID, &q.RFQID, &q.InviteID, &q.SupplierID,
		&q.UnitPrice, &q.Quantity, &q.LeadTimeDays,
		&q.Terms, &q.Notes, &q.Status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}
