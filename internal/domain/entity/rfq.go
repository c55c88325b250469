package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RFQ statuses. Terminal states are completed and cancelled.
const (
	RFQStatusDraft           = "draft"
	RFQStatusSubmitted       = "submitted"
	RFQStatusUnderReview     = "under_review"
	RFQStatusInvited         = "invited"
	RFQStatusQuoted          = "quoted"
	RFQStatusOffersPublished = "offers_published"
	RFQStatusAccepted        = "accepted"
	RFQStatusCompleted       = "completed"
	RFQStatusCancelled       = "cancelled"
)

// ValidRFQStatus reports whether s is a known RFQ status.
func ValidRFQStatus(s string) bool {
	switch s {
	case RFQStatusDraft, RFQStatusSubmitted, RFQStatusUnderReview, RFQStatusInvited,
		RFQStatusQuoted, RFQStatusOffersPublished, RFQStatusAccepted,
		RFQStatusCompleted, RFQStatusCancelled:
		return true
	}
	return false
}

// RFQTerminal reports whether a status admits no further transitions.
func RFQTerminal(s string) bool {
	return s == RFQStatusCompleted || s == RFQStatusCancelled
}

// RFQItem is one requested line inside an RFQ.
type RFQItem struct {
	SKUID           string          `json:"sku_id,omitempty"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	TargetUnitPrice decimal.Decimal `json:"target_unit_price"`
	Material        string          `json:"material,omitempty"`
	Finish          string          `json:"finish,omitempty"`
}

// RFQTerms carries the commercial side of the request.
type RFQTerms struct {
	Incoterm         string `json:"incoterm,omitempty"`
	PaymentTerms     string `json:"payment_terms,omitempty"`
	DeliveryLocation string `json:"delivery_location,omitempty"`
	TargetLeadDays   int    `json:"target_lead_days,omitempty"`
}

// RFQDetails is the nested request document. Persisted as JSONB.
type RFQDetails struct {
	Items       []RFQItem `json:"items"`
	DocumentIDs []string  `json:"document_ids,omitempty"`
	Terms       RFQTerms  `json:"terms"`
}

// RFQ is a buyer-authored request for quotation. BuyerID is always set from
// the authenticated caller, never from client input.
type RFQ struct {
	ID        string
	BuyerID   string
	Title     string
	Status    string
	Details   RFQDetails
	CreatedAt time.Time
	UpdatedAt time.Time
}
