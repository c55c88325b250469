package dto

import "time"

// InviteSuppliersRequest admin input inviting suppliers to quote on an RFQ.
type InviteSuppliersRequest struct {
	RFQID       string   `json:"rfq_id" validate:"required,uuid"`
	SupplierIDs []string `json:"supplier_ids" validate:"required,min=1"`
}

// InviteResponse invite output.
type InviteResponse struct {
	ID               string    `json:"id"`
	RFQID            string    `json:"rfq_id"`
	SupplierID       string    `json:"supplier_id"`
	Status           string    `json:"status"`
	ResponseDeadline time.Time `json:"response_deadline"`
	CreatedAt        time.Time `json:"created_at"`
}

// InviteListResponse paginated invite list.
type InviteListResponse struct {
	Items []InviteResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
