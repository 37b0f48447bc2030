package dto

import (
	"github.com/Groundwork-Books/storefront-api/internal/commerce"
	"github.com/Groundwork-Books/storefront-api/internal/searchindex"
)

type InventoryRequest struct {
	VariationIDs []string `json:"variationIds"`
	LocationID   string   `json:"locationId,omitempty"`
}

type InventoryResponse struct {
	Success   bool               `json:"success"`
	Available map[string]float64 `json:"available"`
}

type PaymentRequest struct {
	SourceID       string        `json:"sourceId"`
	Amount         int64         `json:"amount"`
	Currency       string        `json:"currency,omitempty"`
	IdempotencyKey string        `json:"idempotencyKey,omitempty"`
	CustomerInfo   *CustomerInfo `json:"customerInfo,omitempty"`
}

type CustomerInfo struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type PaymentResponse struct {
	Success   bool              `json:"success"`
	Payment   *commerce.Payment `json:"payment,omitempty"`
	PaymentID string            `json:"paymentId"`
	Status    string            `json:"status"`
}

type WebhookAck struct {
	Received bool `json:"received"`
}

type SearchResponse struct {
	Query   string            `json:"query"`
	Results []searchindex.Hit `json:"results"`
}

type SyncResponse struct {
	Success  bool `json:"success"`
	Upserted int  `json:"upserted"`
}

type BookListResponse struct {
	Items  []commerce.CatalogItem `json:"items"`
	Cursor string                 `json:"cursor,omitempty"`
}
