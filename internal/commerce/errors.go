package commerce

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx platform response. Raw preserves the vendor body
// verbatim so callers can forward it for support diagnosis.
type APIError struct {
	Status int
	Code   string
	Detail string
	Raw    json.RawMessage
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("commerce api error (status %d, %s): %s", e.Status, e.Code, e.Detail)
	}
	return fmt.Sprintf("commerce api error (status %d)", e.Status)
}

type vendorErrorBody struct {
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
	} `json:"errors"`
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	apiErr.Raw = json.RawMessage(body)

	var parsed vendorErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		apiErr.Code = parsed.Errors[0].Code
		apiErr.Detail = parsed.Errors[0].Detail
	}
	return apiErr
}
