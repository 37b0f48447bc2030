package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Groundwork-Books/storefront-api/internal/http/dto"
	"github.com/Groundwork-Books/storefront-api/internal/inventory"
)

// AvailabilityService is implemented by inventory.Aggregator.
type AvailabilityService interface {
	Availability(ctx context.Context, variationIDs []string, locationID string) (map[string]float64, error)
}

type InventoryHandler struct {
	svc AvailabilityService
}

func NewInventoryHandler(svc AvailabilityService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) Availability(w http.ResponseWriter, r *http.Request) {
	var req dto.InventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	available, err := h.svc.Availability(r.Context(), req.VariationIDs, req.LocationID)
	if err != nil {
		if errors.Is(err, inventory.ErrNoVariations) {
			WriteError(w, r, http.StatusBadRequest, "variationIds is required", nil)
			return
		}
		WriteVendorError(w, r, "inventory lookup failed", err)
		return
	}

	WriteJSON(w, http.StatusOK, dto.InventoryResponse{Success: true, Available: available})
}
