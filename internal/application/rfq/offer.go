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

// ComposeOffer creates a draft curated offer on a quoted RFQ. Every quote
// referenced must belong to that RFQ. The offer is invisible to the buyer
// until published.
func (uc *UseCase) ComposeOffer(ctx context.Context, caller dto.Caller, in dto.ComposeOfferRequest) (*dto.OfferResponse, error) {
	if in.Quantity <= 0 || in.UnitPrice.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	if in.AdvancePercent.LessThan(decimal.Zero) || in.AdvancePercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, domain.ErrInvalidInput
	}
	rfq, err := uc.rfqRepo.GetByID(ctx, in.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}
	switch rfq.Status {
	case entity.RFQStatusQuoted, entity.RFQStatusOffersPublished:
	default:
		return nil, domain.ErrInvalidTransition
	}
	for _, quoteID := range in.QuoteIDs {
		quote, err := uc.quoteRepo.GetByID(ctx, quoteID)
		if err != nil {
			return nil, err
		}
		if quote == nil {
			return nil, domain.ErrNotFound
		}
		if quote.RFQID != rfq.ID {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	offer := &entity.CuratedOffer{
		ID:             uuid.New().String(),
		RFQID:          rfq.ID,
		QuoteIDs:       in.QuoteIDs,
		Title:          in.Title,
		UnitPrice:      in.UnitPrice,
		Quantity:       in.Quantity,
		LeadTimeDays:   in.LeadTimeDays,
		WarrantyMonths: in.WarrantyMonths,
		AdvancePercent: in.AdvancePercent,
		PaymentLink:    in.PaymentLink,
		Notes:          in.Notes,
		CreatedBy:      caller.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.offerRepo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// PublishOffer makes a draft offer visible to the buyer and moves the RFQ
// to offers_published. Publishing an already published offer is an explicit
// conflict, not a silent no-op.
func (uc *UseCase) PublishOffer(ctx context.Context, offerID string) (*dto.OfferResponse, error) {
	offer, err := uc.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	if offer.Published() {
		return nil, domain.ErrAlreadyPublished
	}
	rfq, err := uc.rfqRepo.GetByID(ctx, offer.RFQID)
	if err != nil {
		return nil, err
	}
	if rfq == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	offer.PublishedAt = &now
	offer.UpdatedAt = now
	if err := uc.offerRepo.Update(ctx, offer); err != nil {
		return nil, err
	}
	if rfq.Status != entity.RFQStatusOffersPublished {
		rfq.Status = entity.RFQStatusOffersPublished
		rfq.UpdatedAt = now
		if err := uc.rfqRepo.Update(ctx, rfq); err != nil {
			return nil, err
		}
	}
	_ = uc.notifier.Notify(ctx, rfq.BuyerID, entity.NotificationOfferPublished,
		"Offer ready", "A curated offer is ready on your RFQ: "+rfq.Title)
	return toOfferResponse(offer), nil
}

// AcceptOffer is the buyer accepting a published offer: the RFQ moves to
// accepted, an order is created with amounts derived from the offer (never
// from client input), and the offer's quotes are settled. Runs in one
// transaction.
func (uc *UseCase) AcceptOffer(ctx context.Context, caller dto.Caller, offerID string) (*dto.OrderResponse, error) {
	var order *entity.Order
	err := uc.tx.Run(ctx, func(r TxRepos) error {
		offer, err := r.Offers.GetByID(ctx, offerID)
		if err != nil {
			return err
		}
		if offer == nil {
			return domain.ErrNotFound
		}
		if !offer.Published() {
			return domain.ErrNotPublished
		}
		rfq, err := r.RFQs.GetByID(ctx, offer.RFQID)
		if err != nil {
			return err
		}
		if rfq == nil {
			return domain.ErrNotFound
		}
		if rfq.BuyerID != caller.UserID {
			return domain.ErrForbidden
		}
		if rfq.Status != entity.RFQStatusOffersPublished {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		rfq.Status = entity.RFQStatusAccepted
		rfq.UpdatedAt = now
		if err := r.RFQs.Update(ctx, rfq); err != nil {
			return err
		}

		order = &entity.Order{
			ID:             uuid.New().String(),
			RFQID:          rfq.ID,
			OfferID:        offer.ID,
			BuyerID:        rfq.BuyerID,
			Status:         entity.OrderStatusCreated,
			TotalAmount:    offer.Total(),
			AdvancePayment: offer.Advance(),
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := r.Orders.Create(ctx, order); err != nil {
			return err
		}

		// Settle quotes: the ones behind this offer win, siblings lose.
		accepted := make(map[string]bool, len(offer.QuoteIDs))
		for _, id := range offer.QuoteIDs {
			accepted[id] = true
		}
		quotes, err := r.Quotes.ListByRFQ(ctx, rfq.ID)
		if err != nil {
			return err
		}
		for _, q := range quotes {
			status := entity.QuoteStatusRejected
			if accepted[q.ID] {
				status = entity.QuoteStatusAccepted
			}
			if q.Status == status {
				continue
			}
			q.Status = status
			q.UpdatedAt = now
			if err := r.Quotes.Update(ctx, q); err != nil {
				return err
			}
		}

		_ = uc.notifier.Notify(ctx, offer.CreatedBy, entity.NotificationOrderStatus,
			"Offer accepted", "The buyer accepted the offer on RFQ "+rfq.Title)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, nil), nil
}

// ListOffers returns published offers on the caller buyer's RFQs.
func (uc *UseCase) ListOffers(ctx context.Context, caller dto.Caller, page dto.PageRequest) (*dto.OfferListResponse, error) {
	page.DefaultPage()
	list, err := uc.offerRepo.ListPublishedByBuyer(ctx, caller.UserID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfferResponse(o))
	}
	return &dto.OfferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListOffersByRFQ returns every offer on one RFQ, drafts included (admin
// view).
func (uc *UseCase) ListOffersByRFQ(ctx context.Context, rfqID string) ([]dto.OfferResponse, error) {
	list, err := uc.offerRepo.ListByRFQ(ctx, rfqID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfferResponse(o))
	}
	return items, nil
}
