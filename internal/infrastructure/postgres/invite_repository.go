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

var _ repository.InviteRepository = (*InviteRepo)(nil)

// InviteRepo PostgreSQL adapter for the InviteRepository port.
type InviteRepo struct {
	db querier
}

// NewInviteRepository binds the adapter to a pool or transaction.
func NewInviteRepository(db querier) *InviteRepo {
	return &InviteRepo{db: db}
}

const inviteColumns = `id, rfq_id, supplier_id, status, response_deadline, created_by, created_at, updated_at`

// Create persists a new invite. The (rfq_id, supplier_id) pair is unique.
func (r *InviteRepo) Create(ctx context.Context, invite *entity.SupplierInvite) error {
	query := `
		INSERT INTO supplier_invites (id, rfq_id, supplier_id, status, response_deadline, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		invite.ID, invite.RFQID, invite.SupplierID, invite.Status,
		invite.ResponseDeadline, invite.CreatedBy, invite.CreatedAt, invite.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invite: %w", err)
	}
	return nil
}

// GetByID fetches an invite by ID, (nil, nil) when absent.
func (r *InviteRepo) GetByID(ctx context.Context, id string) (*entity.SupplierInvite, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM supplier_invites WHERE id = $1`, id))
}

// GetByRFQAndSupplier fetches the invite binding one supplier to one RFQ.
func (r *InviteRepo) GetByRFQAndSupplier(ctx context.Context, rfqID, supplierID string) (*entity.SupplierInvite, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+inviteColumns+` FROM supplier_invites WHERE rfq_id = $1 AND supplier_id = $2`,
		rfqID, supplierID))
}

// Update persists invite mutations.
func (r *InviteRepo) Update(ctx context.Context, invite *entity.SupplierInvite) error {
	query := `
		UPDATE supplier_invites SET status = $2, response_deadline = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		invite.ID, invite.Status, invite.ResponseDeadline, invite.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invite: %w", err)
	}
	return nil
}

// ListBySupplier returns the supplier's invites, newest first.
func (r *InviteRepo) ListBySupplier(ctx context.Context, supplierID string, limit, offset int) ([]*entity.SupplierInvite, error) {
	return r.list(ctx,
		`SELECT `+inviteColumns+` FROM supplier_invites WHERE supplier_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		supplierID, limit, offset)
}

// ListByRFQ returns every invite on an RFQ.
func (r *InviteRepo) ListByRFQ(ctx context.Context, rfqID string) ([]*entity.SupplierInvite, error) {
	return r.list(ctx,
		`SELECT `+inviteColumns+` FROM supplier_invites WHERE rfq_id = $1 ORDER BY created_at`,
		rfqID)
}

func (r *InviteRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SupplierInvite, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierInvite
	for rows.Next() {
		inv, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func (r *InviteRepo) scanOne(row pgx.Row) (*entity.SupplierInvite, error) {
	inv, err := scanInvite(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invite: %w", err)
	}
	return inv, nil
}

func scanInvite(row pgx.Row) (*entity.SupplierInvite, error) {
	var inv entity.SupplierInvite
	err := row.Scan(&inv.ID, &inv.RFQID, &inv.SupplierID, &inv.Status,
		&inv.ResponseDeadline, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
