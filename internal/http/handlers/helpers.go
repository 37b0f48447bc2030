package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
	"github.com/Groundwork-Books/storefront-api/internal/middleware"
	"github.com/Groundwork-Books/storefront-api/internal/model"
)

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string, details any) {
	WriteJSON(w, status, model.ErrorResponse{
		Error:         msg,
		Details:       details,
		CorrelationID: middleware.GetCorrelationID(r.Context()),
	})
}

// WriteVendorError forwards a commerce-platform failure with its detail
// preserved verbatim. Vendor-reported statuses are forwarded; transport
// failures become a 502.
func WriteVendorError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var apiErr *commerce.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.Status
		if status < 400 {
			status = http.StatusBadGateway
		}
		var details any
		if apiErr.Raw != nil {
			details = apiErr.Raw
		}
		WriteError(w, r, status, msg, details)
		return
	}
	WriteError(w, r, http.StatusBadGateway, msg, err.Error())
}
