package dto

import "time"

// UploadDocumentRequest file upload as a base64 payload inside JSON.
// ClaimedSize is informational only; the server validates the decoded
// length against the per-kind cap.
type UploadDocumentRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=document image cad"`
	FileName    string `json:"file_name" validate:"required,min=1,max=255"`
	ContentType string `json:"content_type"`
	Content     string `json:"content" validate:"required"` // base64
	ClaimedSize int    `json:"claimed_size"`
}

// DocumentResponse document metadata output (content is never echoed back).
type DocumentResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	UploadedBy  string    `json:"uploaded_by"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type,omitempty"`
	SizeBytes   int       `json:"size_bytes"`
	StorageRef  string    `json:"storage_ref"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentListResponse paginated document list.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
