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

var _ repository.SupplierProfileRepository = (*SupplierProfileRepo)(nil)

// SupplierProfileRepo PostgreSQL adapter for the SupplierProfileRepository
// port. Capabilities and certifications are text[] columns.
type SupplierProfileRepo struct {
	db querier
}

// NewSupplierProfileRepository binds the adapter to a pool or transaction.
func NewSupplierProfileRepository(db querier) *SupplierProfileRepo {
	return &SupplierProfileRepo{db: db}
}

const profileColumns = `id, company_id, capabilities, certifications, moq, verified_status, created_at, updated_at`

// Create persists a new profile. company_id is unique.
func (r *SupplierProfileRepo) Create(ctx context.Context, profile *entity.SupplierProfile) error {
	query := `
		INSERT INTO supplier_profiles (id, company_id, capabilities, certifications, moq, verified_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.CompanyID, profile.Capabilities, profile.Certifications,
		profile.MOQ, profile.VerifiedStatus, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert supplier profile: %w", err)
	}
	return nil
}

// GetByID fetches a profile by ID, (nil, nil) when absent.
func (r *SupplierProfileRepo) GetByID(ctx context.Context, id string) (*entity.SupplierProfile, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM supplier_profiles WHERE id = $1`, id))
}

// GetByCompanyID fetches the profile of a company, (nil, nil) when absent.
func (r *SupplierProfileRepo) GetByCompanyID(ctx context.Context, companyID string) (*entity.SupplierProfile, error) {
	return r.scanOne(r.db.QueryRow(ctx,
		`SELECT `+profileColumns+` FROM supplier_profiles WHERE company_id = $1`, companyID))
}

// Update persists profile mutations.
func (r *SupplierProfileRepo) Update(ctx context.Context, profile *entity.SupplierProfile) error {
	query := `
		UPDATE supplier_profiles SET capabilities = $2, certifications = $3,
			moq = $4, verified_status = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		profile.ID, profile.Capabilities, profile.Certifications,
		profile.MOQ, profile.VerifiedStatus, profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update supplier profile: %w", err)
	}
	return nil
}

func (r *SupplierProfileRepo) scanOne(row pgx.Row) (*entity.SupplierProfile, error) {
	var p entity.SupplierProfile
	err := row.Scan(&p.ID, &p.CompanyID, &p.Capabilities, &p.Certifications,
		&p.MOQ, &p.VerifiedStatus, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier profile: %w", err)
	}
	return &p, nil
}
