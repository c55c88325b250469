package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitQuoteRequest supplier input for a quote. The supplier identity is
// taken from the caller; the invite is resolved from (rfq, caller).
type SubmitQuoteRequest struct {
	RFQID        string          `json:"rfq_id" validate:"required,uuid"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"required"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	LeadTimeDays int             `json:"lead_time_days" validate:"min=0"`
	Terms        string          `json:"terms"`
	Notes        string          `json:"notes"`
}

// QuoteResponse quote output.
type QuoteResponse struct {
	ID           string          `json:"id"`
	RFQID        string          `json:"rfq_id"`
	InviteID     string          `json:"invite_id"`
	SupplierID   string          `json:"supplier_id"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	LeadTimeDays int             `json:"lead_time_days"`
	Terms        string          `json:"terms,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// QuoteListResponse paginated quote list.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
