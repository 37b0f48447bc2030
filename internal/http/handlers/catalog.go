package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
	"github.com/Groundwork-Books/storefront-api/internal/http/dto"
)

// CatalogService is the slice of the commerce client the book routes need.
type CatalogService interface {
	ListCatalogItems(ctx context.Context, cursor string) ([]commerce.CatalogItem, string, error)
	RetrieveCatalogItem(ctx context.Context, id string) (*commerce.CatalogItem, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	items, cursor, err := h.svc.ListCatalogItems(r.Context(), r.URL.Query().Get("cursor"))
	if err != nil {
		WriteVendorError(w, r, "catalog listing failed", err)
		return
	}
	if items == nil {
		items = []commerce.CatalogItem{}
	}
	WriteJSON(w, http.StatusOK, dto.BookListResponse{Items: items, Cursor: cursor})
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.RetrieveCatalogItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		WriteVendorError(w, r, "catalog lookup failed", err)
		return
	}
	WriteJSON(w, http.StatusOK, item)
}
