package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Groundwork-Books/storefront-api/internal/http/dto"
	"github.com/Groundwork-Books/storefront-api/internal/search"
	"github.com/Groundwork-Books/storefront-api/internal/searchindex"
)

// SearchService is implemented by search.Gateway.
type SearchService interface {
	Query(ctx context.Context, q string, limit int) ([]searchindex.Hit, error)
	Status(ctx context.Context) search.Status
	SyncCatalog(ctx context.Context) (int, error)
}

type SearchHandler struct {
	svc SearchService
}

func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	hits, err := h.svc.Query(r.Context(), q, limit)
	if err != nil {
		if errors.Is(err, search.ErrEmptyQuery) {
			WriteError(w, r, http.StatusBadRequest, "query parameter q is required", nil)
			return
		}
		WriteError(w, r, http.StatusBadGateway, "search request failed", err.Error())
		return
	}

	if hits == nil {
		hits = []searchindex.Hit{}
	}
	WriteJSON(w, http.StatusOK, dto.SearchResponse{Query: q, Results: hits})
}

// Status always responds 200; the body carries ready vs error state.
func (h *SearchHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.svc.Status(r.Context()))
}

func (h *SearchHandler) Sync(w http.ResponseWriter, r *http.Request) {
	upserted, err := h.svc.SyncCatalog(r.Context())
	if err != nil {
		WriteVendorError(w, r, "catalog sync failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, dto.SyncResponse{Success: true, Upserted: upserted})
}
