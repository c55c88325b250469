package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordAdvanceRequest admin input recording the buyer's deposit.
type RecordAdvanceRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// AddOrderUpdateRequest admin input appending a production update.
type AddOrderUpdateRequest struct {
	Stage  string `json:"stage" validate:"required,oneof=production quality_check"`
	Detail string `json:"detail" validate:"required,min=1"`
}

// OrderUpdateResponse one audit-trail entry.
type OrderUpdateResponse struct {
	ID        string    `json:"id"`
	Stage     string    `json:"stage"`
	Detail    string    `json:"detail"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse order output with its production trail.
type OrderResponse struct {
	ID             string                `json:"id"`
	RFQID          string                `json:"rfq_id"`
	OfferID        string                `json:"offer_id"`
	BuyerID        string                `json:"buyer_id"`
	Status         string                `json:"status"`
	TotalAmount    decimal.Decimal       `json:"total_amount"`
	AdvancePayment decimal.Decimal       `json:"advance_payment"`
	Updates        []OrderUpdateResponse `json:"updates,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// OrderListResponse paginated order list.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// RecalculateResponse result of an order total recalculation. The operation
// is idempotent; both amounts are reported.
type RecalculateResponse struct {
	OrderID       string          `json:"order_id"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	NewTotal      decimal.Decimal `json:"new_total"`
}
