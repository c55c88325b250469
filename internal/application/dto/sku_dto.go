package dto

// SKUResponse catalogue entry output.
type SKUResponse struct {
	ID          string `json:"id"`
	Industry    string `json:"industry"`
	ProcessName string `json:"process_name"`
	Description string `json:"description,omitempty"`
}

// SKUListResponse paginated SKU list.
type SKUListResponse struct {
	Items []SKUResponse `json:"items"`
	Page  PageResponse  `json:"page"`
}
