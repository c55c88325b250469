package rfq

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SubmitQuote creates a quote for the caller supplier. The whole operation
// runs in one transaction: the invite lookup, the quote insert, the invite
// flip to responded and the RFQ move to quoted cannot race with an invite
// expiry or a concurrent submission.
//
// Guards: an invite must exist for (rfq, caller) and still be in status
// invited with its response deadline in the future.
func (uc *UseCase) SubmitQuote(ctx context.Context, caller dto.Caller, in dto.SubmitQuoteRequest) (*dto.QuoteResponse, error) {
	if in.Quantity <= 0 || in.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	var quote *entity.Quote
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		invite, err := r.Invites.GetByRFQAndSupplier(ctx, in.RFQID, caller.UserID)
		if err != nil {
			return err
		}
		if invite == nil {
			return domain.ErrForbidden
		}
		if invite.Status != entity.InviteStatusInvited {
			return domain.ErrInviteNotOpen
		}
		now := time.Now()
		if now.After(invite.ResponseDeadline) {
			return domain.ErrInviteNotOpen
		}
		rfq, err := r.RFQs.GetByID(ctx, in.RFQID)
		if err != nil {
			return err
		}
		if rfq == nil {
			return domain.ErrNotFound
		}

		quote = &entity.Quote{
			ID:           uuid.New().String(),
			RFQID:        in.RFQID,
			InviteID:     invite.ID,
			SupplierID:   caller.UserID,
			UnitPrice:    in.UnitPrice,
			Quantity:     in.Quantity,
			LeadTimeDays: in.LeadTimeDays,
			Terms:        in.Terms,
			Notes:        in.Notes,
			Status:       entity.QuoteStatusSubmitted,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := r.Quotes.Create(ctx, quote); err != nil {
			return err
		}

		invite.Status = entity.InviteStatusResponded
		invite.UpdatedAt = now
		if err := r.Invites.Update(ctx, invite); err != nil {
			return err
		}

		if rfq.Status == entity.RFQStatusInvited {
			rfq.Status = entity.RFQStatusQuoted
			rfq.UpdatedAt = now
			if err := r.RFQs.Update(ctx, rfq); err != nil {
				return err
			}
		}

		_ = uc.notifier.Notify(ctx, invite.CreatedBy, entity.NotificationQuoteSubmitted,
			"Quote received", "A supplier submitted a quote on RFQ "+rfq.Title)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(quote), nil
}

// ListQuotes returns the caller supplier's own quotes.
func (uc *UseCase) ListQuotes(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.QuoteListResponse, error) {
	page.DefaultPage()
	list, err := uc.quoteRepo.ListBySupplier(ctx, caller.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q))
	}
	return &dto.QuoteListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListQuotesByRFQ returns all quotes on one RFQ (admin view).
func (uc *UseCase) ListQuotesByRFQ(ctx context.Context, rfqID string) ([]dto.QuoteResponse, error) {
	list, err := uc.quoteRepo.ListByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuoteResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuoteResponse(q))
	}
	return items, nil
}
