package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo PostgreSQL adapter for the CompanyRepository port.
type CompanyRepo struct {
	db querier
}

// NewCompanyRepository binds the adapter to a pool or transaction.
func NewCompanyRepository(db querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

const companyColumns = `id, name, registration_no, tax_id, address, city, country, status, created_at, updated_at`

// Create persists a new company.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, registration_no, tax_id, address, city, country, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.RegistrationNo, company.TaxID,
		company.Address, company.City, company.Country, company.Status,
		company.CreatedAt, company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID fetches a company by ID, (nil, nil) when absent.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	var c entity.Company
	err := r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.RegistrationNo, &c.TaxID, &c.Address,
			&c.City, &c.Country, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update persists company mutations.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, registration_no = $3, tax_id = $4,
			address = $5, city = $6, country = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.RegistrationNo, company.TaxID,
		company.Address, company.City, company.Country, company.Status,
		company.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}
