package dtos

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"response_time"`
	Data         any    `json:"data,omitempty"`
}

// FieldError tags a validation failure with the offending field so the
// client can surface it next to the right input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PageView wraps paginated listings.
type PageView struct {
	Count    int64 `json:"count"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Results  any   `json:"results"`
}
