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

var _ repository.SKURepository = (*SKURepo)(nil)

// SKURepo PostgreSQL adapter for the SKU catalogue.
type SKURepo struct {
	db querier
}

// NewSKURepository binds the adapter to a pool or transaction.
func NewSKURepository(db querier) *SKURepo {
	return &SKURepo{db: db}
}

// Create inserts a catalogue entry. Used by the seeder only.
func (r *SKURepo) Create(ctx context.Context, sku *entity.SKU) error {
	query := `
		INSERT INTO skus (id, industry, process_name, description)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, query, sku.ID, sku.Industry, sku.ProcessName, sku.Description)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sku: %w", err)
	}
	return nil
}

// GetByID fetches a SKU by ID, (nil, nil) when absent.
func (r *SKURepo) GetByID(ctx context.Context, id string) (*entity.SKU, error) {
	var s entity.SKU
	err := r.db.QueryRow(ctx,
		`SELECT id, industry, process_name, description FROM skus WHERE id = $1`, id).
		Scan(&s.ID, &s.Industry, &s.ProcessName, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sku: %w", err)
	}
	return &s, nil
}

// List returns SKUs, optionally filtered by industry.
func (r *SKURepo) List(ctx context.Context, industry string, limit, offset int) ([]*entity.SKU, error) {
	query := `
		SELECT id, industry, process_name, description FROM skus
		WHERE ($1 = '' OR industry = $1)
		ORDER BY industry, process_name LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, industry, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list skus: %w", err)
	}
	defer rows.Close()
	var list []*entity.SKU
	for rows.Next() {
		var s entity.SKU
		if err := rows.Scan(&s.ID, &s.Industry, &s.ProcessName, &s.Description); err != nil {
			return nil, fmt.Errorf("scan sku: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
