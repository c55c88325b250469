package usecase

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// DocumentUseCase file uploads. Content arrives base64-embedded in JSON and
// is validated against the per-kind cap using the DECODED length; the
// client-reported size is never trusted.
type DocumentUseCase struct {
	repo repository.DocumentRepository
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(repo repository.DocumentRepository) *DocumentUseCase {
	return &DocumentUseCase{repo: repo}
}

// Upload decodes and validates the payload, then stores the metadata under
// an opaque storage reference tied to the caller's company.
func (uc *DocumentUseCase) Upload(ctx context.Context, caller dto.Caller, in dto.UploadDocumentRequest) (*dto.DocumentResponse, error) {
	if caller.CompanyID == "" {
		return nil, domain.ErrInvalidInput
	}
	maxSize := entity.MaxDocumentSize(in.Kind)
	if maxSize == 0 || in.FileName == "" || in.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	// Tolerate data-URL prefixes from browser FileReader output.
	content := in.Content
	if idx := strings.Index(content, ";base64,"); idx >= 0 {
		content = content[idx+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(content)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if len(raw) > maxSize {
		return nil, domain.ErrFileTooLarge
	}

	doc := &entity.Document{
		ID:          uuid.New().String(),
		CompanyID:   caller.CompanyID,
		UploadedBy:  caller.UserID,
		Kind:        in.Kind,
		FileName:    in.FileName,
		ContentType: in.ContentType,
		SizeBytes:   len(raw),
		StorageRef:  "doc://" + uuid.New().String(),
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return toDocumentResponse(doc), nil
}

// List returns the caller company's documents.
func (uc *DocumentUseCase) List(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.DocumentListResponse, error) {
	if caller.CompanyID == "" {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(ctx, caller.CompanyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DocumentResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *toDocumentResponse(d))
	}
	return &dto.DocumentListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toDocumentResponse(d *entity.Document) *dto.DocumentResponse {
	if d == nil {
		return nil
	}
	return &dto.DocumentResponse{
		ID:          d.ID,
		CompanyID:   d.CompanyID,
		UploadedBy:  d.UploadedBy,
		Kind:        d.Kind,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		StorageRef:  d.StorageRef,
		CreatedAt:   d.CreatedAt,
	}
}
