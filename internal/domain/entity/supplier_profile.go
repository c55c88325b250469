package entity

import "time"

// Supplier trust tiers, set exclusively by admin review.
const (
	VerifiedUnverified = "unverified"
	VerifiedBronze     = "bronze"
	VerifiedSilver     = "silver"
	VerifiedGold       = "gold"
)

// ValidVerifiedStatus reports whether s is a known trust tier.
func ValidVerifiedStatus(s string) bool {
	switch s {
	case VerifiedUnverified, VerifiedBronze, VerifiedSilver, VerifiedGold:
		return true
	}
	return false
}

// SupplierProfile describes the manufacturing capability of a supplier
// company. One profile per company.
type SupplierProfile struct {
	ID             string
	CompanyID      string
	Capabilities   []string // process names, e.g. "cnc_machining"
	Certifications []string // e.g. "ISO 9001"
	MOQ            int      // minimum order quantity
	VerifiedStatus string   // unverified, bronze, silver, gold
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
