package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CuratedOffer is an admin-authored synthesis of one or more quotes into a
// buyer-facing offer. PublishedAt nil = draft, set = visible to the buyer.
type CuratedOffer struct {
	ID             string
	RFQID          string
	QuoteIDs       []string
	Title          string
	UnitPrice      decimal.Decimal
	Quantity       int
	LeadTimeDays   int
	WarrantyMonths int
	AdvancePercent decimal.Decimal // share of the total due as deposit, 0-100
	PaymentLink    string          // external payment URL, optional
	Notes          string
	PublishedAt    *time.Time
	CreatedBy      string // admin user id
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Published reports whether the offer is visible to the buyer.
func (o *CuratedOffer) Published() bool {
	return o.PublishedAt != nil
}

// Total is the buyer-facing amount, always derived from unit price and
// quantity, never taken from client input.
func (o *CuratedOffer) Total() decimal.Decimal {
	return o.UnitPrice.Mul(decimal.NewFromInt(int64(o.Quantity)))
}

// Advance is the deposit due on acceptance.
func (o *CuratedOffer) Advance() decimal.Decimal {
	return o.Total().Mul(o.AdvancePercent).Div(decimal.NewFromInt(100))
}
