package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo PostgreSQL adapter for Document metadata.
type DocumentRepo struct {
	db querier
}

// NewDocumentRepository binds the adapter to a pool or transaction.
func NewDocumentRepository(db querier) *DocumentRepo {
	return &DocumentRepo{db: db}
}

const documentColumns = `id, company_id, uploaded_by, kind, file_name, content_type, size_bytes, storage_ref, created_at`

// Create persists document metadata.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, company_id, uploaded_by, kind, file_name, content_type, size_bytes, storage_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		doc.ID, doc.CompanyID, doc.UploadedBy, doc.Kind, doc.FileName,
		doc.ContentType, doc.SizeBytes, doc.StorageRef, doc.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID fetches document metadata by ID, (nil, nil) when absent.
func (r *DocumentRepo) GetByID(ctx context.Context, id string) (*entity.Document, error) {
	var d entity.Document
	err := r.db.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE id = $1`, id).
		Scan(&d.ID, &d.CompanyID, &d.UploadedBy, &d.Kind, &d.FileName,
			&d.ContentType, &d.SizeBytes, &d.StorageRef, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return &d, nil
}

// ListByCompany returns a company's documents, newest first.
func (r *DocumentRepo) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Document, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+documentColumns+` FROM documents WHERE company_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.UploadedBy, &d.Kind, &d.FileName,
			&d.ContentType, &d.SizeBytes, &d.StorageRef, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
