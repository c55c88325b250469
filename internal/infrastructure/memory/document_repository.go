package memory

import (
	"context"
	"sort"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo in-memory adapter for Document metadata.
type DocumentRepo struct {
	store *Store
}

// NewDocumentRepository binds the adapter to a store.
func NewDocumentRepository(store *Store) *DocumentRepo {
	return &DocumentRepo{store: store}
}

// Create stores document metadata.
func (r *DocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *doc
	r.store.documents[doc.ID] = &c
	return nil
}

// GetByID returns document metadata by ID, (nil, nil) when absent.
func (r *DocumentRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	d, ok := r.store.documents[id]
	if !ok {
		return nil, nil
	}
	c := *d
	return &c, nil
}

// ListByCompany returns a company's documents, newest first.
func (r *DocumentRepo) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Document, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var all []*entity.Document
	for _, d := range r.store.documents {
		if d.CompanyID == companyID {
			c := *d
			all = append(all, &c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, limit, offset), nil
}
