package dto

import (
	"time"

	"github.com/jobforge/jobwork-api/internal/domain/entity"
)

// CreateRFQRequest buyer input for a new RFQ. There is deliberately no
// buyer field here: ownership comes from the authenticated caller.
type CreateRFQRequest struct {
	Title   string            `json:"title" validate:"required,min=1,max=300"`
	Details entity.RFQDetails `json:"details"`
	Submit  bool              `json:"submit"` // true = submit immediately instead of draft
}

// OverrideRFQStatusRequest admin force-set of an RFQ status.
type OverrideRFQStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// RFQResponse RFQ output.
type RFQResponse struct {
	ID        string            `json:"id"`
	BuyerID   string            `json:"buyer_id"`
	Title     string            `json:"title"`
	Status    string            `json:"status"`
	Details   entity.RFQDetails `json:"details"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// RFQListResponse paginated RFQ list.
type RFQListResponse struct {
	Items []RFQResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
