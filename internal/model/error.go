package model

// ErrorResponse is the JSON envelope for every non-2xx API response.
// Details carries upstream vendor error payloads verbatim when present.
type ErrorResponse struct {
	Error         string `json:"error"`
	Details       any    `json:"details,omitempty"`
	CorrelationID string `json:"correlationId,omitempty"`
}
