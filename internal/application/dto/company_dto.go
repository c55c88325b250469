package dto

import "time"

// UpdateCompanyRequest partial company update (nil = leave unchanged).
type UpdateCompanyRequest struct {
	Name           *string `json:"name" validate:"omitempty,min=1,max=200"`
	RegistrationNo *string `json:"registration_no"`
	TaxID          *string `json:"tax_id"`
	Address        *string `json:"address"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
}

// CompanyResponse company output.
type CompanyResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	RegistrationNo string    `json:"registration_no,omitempty"`
	TaxID          string    `json:"tax_id,omitempty"`
	Address        string    `json:"address,omitempty"`
	City           string    `json:"city,omitempty"`
	Country        string    `json:"country,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
