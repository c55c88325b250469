package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Delivered and cancelled are terminal.
const (
	OrderStatusCreated      = "created"
	OrderStatusDepositPaid  = "deposit_paid"
	OrderStatusConfirmed    = "confirmed"
	OrderStatusProduction   = "production"
	OrderStatusQualityCheck = "quality_check"
	OrderStatusShipped      = "shipped"
	OrderStatusDelivered    = "delivered"
	OrderStatusCancelled    = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusCreated, OrderStatusDepositPaid, OrderStatusConfirmed,
		OrderStatusProduction, OrderStatusQualityCheck, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderTerminal reports whether a status admits no further transitions.
func OrderTerminal(s string) bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderUpdate is one entry in the order's append-only production audit
// trail. Entries are never mutated after creation.
type OrderUpdate struct {
	ID        string
	OrderID   string
	Stage     string // production, quality_check, ...
	Detail    string
	CreatedBy string // admin user id
	CreatedAt time.Time
}

// Order is created when a buyer accepts a published curated offer.
// TotalAmount is derived from the offer's unit price and quantity.
type Order struct {
	ID             string
	RFQID          string
	OfferID        string
	BuyerID        string
	Status         string
	TotalAmount    decimal.Decimal
	AdvancePayment decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
