package entity

import "time"

// Company represents a legal entity on either side of the marketplace.
type Company struct {
	ID             string
	Name           string
	RegistrationNo string // company registry number, optional
	TaxID          string // GST/VAT number, optional
	Address        string
	City           string
	Country        string
	Status         string // active, suspended, inactive
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
