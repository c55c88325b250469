package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComposeOfferRequest admin input synthesizing quotes into a buyer-facing
// offer. The offer starts as a draft; publishing is a separate action.
type ComposeOfferRequest struct {
	RFQID          string          `json:"rfq_id" validate:"required,uuid"`
	QuoteIDs       []string        `json:"quote_ids" validate:"required,min=1"`
	Title          string          `json:"title" validate:"required,min=1,max=300"`
	UnitPrice      decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity       int             `json:"quantity" validate:"required,min=1"`
	LeadTimeDays   int             `json:"lead_time_days" validate:"min=0"`
	WarrantyMonths int             `json:"warranty_months" validate:"min=0"`
	AdvancePercent decimal.Decimal `json:"advance_percent"`
	PaymentLink    string          `json:"payment_link"`
	Notes          string          `json:"notes"`
}

// OfferResponse curated offer output. Total is always unit price times
// quantity.
type OfferResponse struct {
	ID             string          `json:"id"`
	RFQID          string          `json:"rfq_id"`
	QuoteIDs       []string        `json:"quote_ids"`
	Title          string          `json:"title"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Quantity       int             `json:"quantity"`
	Total          decimal.Decimal `json:"total"`
	LeadTimeDays   int             `json:"lead_time_days"`
	WarrantyMonths int             `json:"warranty_months"`
	AdvancePercent decimal.Decimal `json:"advance_percent"`
	PaymentLink    string          `json:"payment_link,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	PublishedAt    *time.Time      `json:"published_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OfferListResponse paginated offer list.
type OfferListResponse struct {
	Items []OfferResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
