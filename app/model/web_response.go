package model

// WebResponse is the envelope used for every API response.
type WebResponse struct {
	Success bool         `json:"success"`
	Data    any          `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Details string       `json:"details,omitempty"`
}

// FieldError names the offending field together with a human-readable
// message, one entry per violated rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func Success(data any) WebResponse {
	return WebResponse{Success: true, Data: data}
}

func Fail(message string) WebResponse {
	return WebResponse{Success: false, Error: message}
}
