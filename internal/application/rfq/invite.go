package rfq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// InviteSuppliers creates one invite per supplier on an RFQ and moves the
// RFQ to invited. Each supplier must have the supplier role and a company
// with a supplier profile; an existing invite for the pair is a conflict.
func (uc *UseCase) InviteSuppliers(ctx context.Context, caller dto.Caller, in dto.InviteSuppliersRequest) ([]dto.InviteResponse, error) {
	rfq, err := uc.rfqRepo.GetByID(ctx, in.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	switch rfq.Status {
	case entity.RFQStatusSubmitted, entity.RFQStatusUnderReview, entity.RFQStatusInvited:
	default:
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	out := make([]dto.InviteResponse, 0, len(in.SupplierIDs))
	for _, supplierID := range in.SupplierIDs {
		supplier, err := uc.userRepo.GetByID(ctx, supplierID)
		if err != nil {
			return nil, err
		}
		if supplier == nil {
			return nil, domain.ErrNotFound
		}
		if supplier.Role != entity.RoleSupplier || supplier.CompanyID == "" {
			return nil, domain.ErrInvalidInput
		}
		profile, err := uc.profileRepo.GetByCompanyID(ctx, supplier.CompanyID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.inviteRepo.GetByRFQAndSupplier(ctx, rfq.ID, supplierID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}

		invite := &entity.SupplierInvite{
			ID:               uuid.New().String(),
			RFQID:            rfq.ID,
			SupplierID:       supplierID,
			Status:           entity.InviteStatusInvited,
			ResponseDeadline: now.Add(entity.InviteResponseWindow),
			CreatedBy:        caller.UserID,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := uc.inviteRepo.Create(ctx, invite); err != nil {
			return nil, err
		}
		_ = uc.notifier.Notify(ctx, supplierID, entity.NotificationInvite,
			"New RFQ invitation", "You have been invited to quote on: "+rfq.Title)
		out = append(out, *toInviteResponse(invite))
	}

	if rfq.Status != entity.RFQStatusInvited {
		rfq.Status = entity.RFQStatusInvited
		rfq.UpdatedAt = now
		if err := uc.rfqRepo.Update(ctx, rfq); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ListInvites returns the caller supplier's own invites.
func (uc *UseCase) ListInvites(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.InviteListResponse, error) {
	page.DefaultPage()
	list, err := uc.inviteRepo.ListBySupplier(ctx, caller.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InviteResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInviteResponse(inv))
	}
	return &dto.InviteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListInvitesByRFQ returns all invites on one RFQ (admin view).
func (uc *UseCase) ListInvitesByRFQ(ctx context.Context, rfqID string) ([]dto.InviteResponse, error) {
	list, err := uc.inviteRepo.ListByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InviteResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInviteResponse(inv))
	}
	return items, nil
}

// DeclineInvite marks the caller supplier's open invite as declined.
func (uc *UseCase) DeclineInvite(ctx context.Context, caller dto.Caller, inviteID string) (*dto.InviteResponse, error) {
	invite, err := uc.inviteRepo.GetByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, domain.ErrNotFound
	}
	if invite.SupplierID != caller.UserID {
		return nil, domain.ErrForbidden
	}
	if invite.Status != entity.InviteStatusInvited {
		return nil, domain.ErrInviteNotOpen
	}
	invite.Status = entity.InviteStatusDeclined
	invite.UpdatedAt = time.Now()
	if err := uc.inviteRepo.Update(ctx, invite); err != nil {
		return nil, err
	}
	return toInviteResponse(invite), nil
}
