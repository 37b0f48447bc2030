package handlers

import "net/http"

type HealthHandler struct{}

func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront-api",
	})
}
