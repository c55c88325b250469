package dto

import "time"

// UpsertSupplierProfileRequest supplier input for their capability profile.
// VerifiedStatus is absent on purpose: only admins mutate it.
type UpsertSupplierProfileRequest struct {
	Capabilities   []string `json:"capabilities" validate:"required,min=1"`
	Certifications []string `json:"certifications"`
	MOQ            int      `json:"moq" validate:"min=0"`
}

// VerifySupplierRequest admin input setting a supplier trust tier.
type VerifySupplierRequest struct {
	Status string `json:"status" validate:"required,oneof=unverified bronze silver gold"`
}

// SupplierProfileResponse profile output.
type SupplierProfileResponse struct {
	ID             string    `json:"id"`
	CompanyID      string    `json:"company_id"`
	Capabilities   []string  `json:"capabilities"`
	Certifications []string  `json:"certifications,omitempty"`
	MOQ            int       `json:"moq"`
	VerifiedStatus string    `json:"verified_status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
