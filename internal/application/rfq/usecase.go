package rfq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/domain/repository"
)

// UseCase is the RFQ lifecycle engine: every status transition of an RFQ,
// its invites, quotes and curated offers goes through here, guarded by the
// caller's role and ownership.
type UseCase struct {
	rfqRepo     repository.RFQRepository
	inviteRepo  repository.InviteRepository
	quoteRepo   repository.QuoteRepository
	offerRepo   repository.OfferRepository
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	profileRepo repository.SupplierProfileRepository
	notifier    Notifier
	tx          TxRunner
}

// NewUseCase builds the lifecycle engine.
func NewUseCase(
	rfqRepo repository.RFQRepository,
	inviteRepo repository.InviteRepository,
	quoteRepo repository.QuoteRepository,
	offerRepo repository.OfferRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	profileRepo repository.SupplierProfileRepository,
	notifier Notifier,
	tx TxRunner,
) *UseCase {
	return &UseCase{
		rfqRepo:     rfqRepo,
		inviteRepo:  inviteRepo,
		quoteRepo:   quoteRepo,
		offerRepo:   offerRepo,
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		notifier:    notifier,
		tx:          tx,
	}
}

// Create creates an RFQ owned by the caller. CreateRFQRequest carries no
// buyer field: ownership is not client-settable.
func (uc *UseCase) Create(ctx context.Context, caller dto.Caller, in dto.CreateRFQRequest) (*dto.RFQResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	status := entity.RFQStatusDraft
	if in.Submit {
		status = entity.RFQStatusSubmitted
	}
	now := time.Now()
	rfq := &entity.RFQ{
		ID:        uuid.New().String(),
		BuyerID:   caller.UserID,
		Title:     in.Title,
		Status:    status,
		Details:   in.Details,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.rfqRepo.Create(ctx, rfq); err != nil {
		return nil, err
	}
	return toRFQResponse(rfq), nil
}

// Submit moves a draft RFQ to submitted. Owner only.
func (uc *UseCase) Submit(ctx context.Context, caller dto.Caller, rfqID string) (*dto.RFQResponse, error) {
	rfq, err := uc.ownedRFQ(ctx, caller, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq.Status != entity.RFQStatusDraft {
		return nil, domain.ErrInvalidTransition
	}
	rfq.Status = entity.RFQStatusSubmitted
	rfq.UpdatedAt = time.Now()
	if err := uc.rfqRepo.Update(ctx, rfq); err != nil {
		return nil, err
	}
	return toRFQResponse(rfq), nil
}

// MarkUnderReview moves a submitted RFQ to under_review. Admin only (the
// handler gates the role; the guard here is on the transition).
func (uc *UseCase) MarkUnderReview(ctx context.Context, rfqID string) (*dto.RFQResponse, error) {
	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	if rfq.Status != entity.RFQStatusSubmitted {
		return nil, domain.ErrInvalidTransition
	}
	rfq.Status = entity.RFQStatusUnderReview
	rfq.UpdatedAt = time.Now()
	if err := uc.rfqRepo.Update(ctx, rfq); err != nil {
		return nil, err
	}
	return toRFQResponse(rfq), nil
}

// Cancel terminates a non-terminal RFQ. Allowed for admin or the owning
// buyer.
func (uc *UseCase) Cancel(ctx context.Context, caller dto.Caller, rfqID string) (*dto.RFQResponse, error) {
	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	if caller.Role != entity.RoleAdmin && rfq.BuyerID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	if entity.RFQTerminal(rfq.Status) {
		return nil, domain.ErrInvalidTransition
	}
	rfq.Status = entity.RFQStatusCancelled
	rfq.UpdatedAt = time.Now()
	if err := uc.rfqRepo.Update(ctx, rfq); err != nil {
		return nil, err
	}
	return toRFQResponse(rfq), nil
}

// OverrideStatus force-sets an RFQ status. Admin escape hatch; the target
// still has to be a known status.
func (uc *UseCase) OverrideStatus(ctx context.Context, rfqID, status string) (*dto.RFQResponse, error) {
	if !entity.ValidRFQStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	rfq.Status = status
	rfq.UpdatedAt = time.Now()
	if err := uc.rfqRepo.Update(ctx, rfq); err != nil {
		return nil, err
	}
	return toRFQResponse(rfq), nil
}

// Get returns one RFQ, role-scoped: the owning buyer, an invited supplier
// or an admin.
func (uc *UseCase) Get(ctx context.Context, caller dto.Caller, rfqID string) (*dto.RFQResponse, error) {
	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	switch caller.Role {
	case entity.RoleAdmin:
	case entity.RoleBuyer:
		if rfq.BuyerID != caller.UserID {
			return nil, domain.ErrForbidden
		}
	case entity.RoleSupplier:
		invite, err := uc.inviteRepo.GetByRFQAndSupplier(ctx, rfqID, caller.UserID)
		if err != nil {
			return nil, err
		}
		if invite == nil {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}
	return toRFQResponse(rfq), nil
}

// List returns the caller's slice of RFQs: buyers see their own, suppliers
// the ones they hold an invite for, admins everything.
func (uc *UseCase) List(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.RFQListResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.RFQ
		err  error
	)
	switch caller.Role {
	case entity.RoleBuyer:
		list, err = uc.rfqRepo.ListByBuyer(ctx, caller.UserID, page.Limit, page.Offset)
	case entity.RoleSupplier:
		list, err = uc.rfqRepo.ListInvitedSupplier(ctx, caller.UserID, page.Limit, page.Offset)
	case entity.RoleAdmin:
		list, err = uc.rfqRepo.ListAll(ctx, page.Limit, page.Offset)
	default:
		return nil, domain.ErrForbidden
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.RFQResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toRFQResponse(r))
	}
	return &dto.RFQListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ownedRFQ loads an RFQ and checks the caller owns it.
func (uc *UseCase) ownedRFQ(ctx context.Context, caller dto.Caller, rfqID string) (*entity.RFQ, error) {
	rfq, err := uc.rfqRepo.GetByID(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	if rfq.BuyerID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	return rfq, nil
}
