package rfq

import (
	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

func toRFQResponse(r *entity.RFQ) *dto.RFQResponse {
	if r == nil {
		return nil
	}
	return &dto.RFQResponse{
		ID:        r.ID,
		BuyerID:   r.BuyerID,
		Title:     r.Title,
		Status:    r.Status,
		Details:   r.Details,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toInviteResponse(i *entity.SupplierInvite) *dto.InviteResponse {
	if i == nil {
		return nil
	}
	return &dto.InviteResponse{
		ID:               i.ID,
		RFQID:            i.RFQID,
		SupplierID:       i.SupplierID,
		Status:           i.Status,
		ResponseDeadline: i.ResponseDeadline,
		CreatedAt:        i.CreatedAt,
	}
}

func toQuoteResponse(q *entity.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	return &dto.QuoteResponse{
		ID:           q.ID,
		RFQID:        q.RFQID,
		InviteID:     q.InviteID,
		SupplierID:   q.SupplierID,
		UnitPrice:    q.UnitPrice,
		Quantity:     q.Quantity,
		LeadTimeDays: q.LeadTimeDays,
		Terms:        q.Terms,
		Notes:        q.Notes,
		Status:       q.Status,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
}

func toOfferResponse(o *entity.CuratedOffer) *dto.OfferResponse {
	if o == nil {
		return nil
	}
	return &dto.OfferResponse{
		ID:             o.ID,
		RFQID:          o.RFQID,
		QuoteIDs:       o.QuoteIDs,
		Title:          o.Title,
		UnitPrice:      o.UnitPrice,
		Quantity:       o.Quantity,
		Total:          o.Total(),
		LeadTimeDays:   o.LeadTimeDays,
		WarrantyMonths: o.WarrantyMonths,
		AdvancePercent: o.AdvancePercent,
		PaymentLink:    o.PaymentLink,
		Notes:          o.Notes,
		PublishedAt:    o.PublishedAt,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func toOrderResponse(o *entity.Order, updates []*entity.OrderUpdate) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	resp := &dto.OrderResponse{
		ID:             o.ID,
		RFQID:          o.RFQID,
		OfferID:        o.OfferID,
		BuyerID:        o.BuyerID,
		Status:         o.Status,
		TotalAmount:    o.TotalAmount,
		AdvancePayment: o.AdvancePayment,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	for _, u := range updates {
		resp.Updates = append(resp.Updates, dto.OrderUpdateResponse{
			ID:        u.ID,
			Stage:     u.Stage,
			Detail:    u.Detail,
			CreatedBy: u.CreatedBy,
			CreatedAt: u.CreatedAt,
		})
	}
	return resp
}
