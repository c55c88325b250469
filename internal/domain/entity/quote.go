package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote statuses.
const (
	QuoteStatusSubmitted = "submitted"
	QuoteStatusAccepted  = "accepted"
	QuoteStatusRejected  = "rejected"
)

// Quote is a supplier's priced response to an RFQ. It can only exist for a
// supplier holding a live invite on that RFQ.
type Quote struct {
	ID           string
	RFQID        string
	InviteID     string
	SupplierID   string
	UnitPrice    decimal.Decimal
	Quantity     int
	LeadTimeDays int
	Terms        string // payment/delivery terms, free text
	Notes        string
	Status       string // submitted, accepted, rejected
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
