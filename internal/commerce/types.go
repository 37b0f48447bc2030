package commerce

// Money is a minor-unit amount plus ISO currency code.
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// InventoryCount is one raw per-location stock record. Quantity arrives as a
// string on the wire; callers decide how to parse it.
type InventoryCount struct {
	CatalogObjectID string `json:"catalog_object_id"`
	State           string `json:"state"`
	LocationID      string `json:"location_id,omitempty"`
	Quantity        string `json:"quantity"`
}

type batchCountsRequest struct {
	CatalogObjectIDs []string `json:"catalog_object_ids"`
	LocationIDs      []string `json:"location_ids,omitempty"`
}

type batchCountsResponse struct {
	Counts []InventoryCount `json:"counts"`
}

// PaymentRequest is the platform's create-payment body.
type PaymentRequest struct {
	SourceID       string `json:"source_id"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountMoney    Money  `json:"amount_money"`
	LocationID     string `json:"location_id,omitempty"`
	OrderID        string `json:"order_id,omitempty"`
	BuyerEmail     string `json:"buyer_email_address,omitempty"`
	Note           string `json:"note,omitempty"`
}

// Payment is the platform's authoritative payment object.
type Payment struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	OrderID     string `json:"order_id,omitempty"`
	AmountMoney Money  `json:"amount_money"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
}

type createPaymentResponse struct {
	Payment Payment `json:"payment"`
}

// CatalogItem is an immutable per-request snapshot of one book. Never
// persisted locally.
type CatalogItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	CategoryID   string   `json:"category_id,omitempty"`
	ImageURL     string   `json:"image_url,omitempty"`
	Price        Money    `json:"price"`
	VariationIDs []string `json:"variation_ids,omitempty"`
}

type listCatalogResponse struct {
	Items  []CatalogItem `json:"items"`
	Cursor string        `json:"cursor,omitempty"`
}

type retrieveCatalogResponse struct {
	Item CatalogItem `json:"item"`
}
