package commerce

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Header http.Header
	Body   string
}

func newStubServer(t *testing.T, status int, respBody string) (*httptest.Server, <-chan recordedRequest) {
	t.Helper()
	ch := make(chan recordedRequest, 10)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ch <- recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   string(body),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(respBody))
	}))
	t.Cleanup(srv.Close)
	return srv, ch
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(baseURL, "test-token", &http.Client{Timeout: 5 * time.Second})
	require.NoError(t, err)
	return c
}

func TestBatchRetrieveCounts_RequestShape(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `{"counts":[{"catalog_object_id":"v1","state":"IN_STOCK","quantity":"3"}]}`)
	c := newTestClient(t, srv.URL)

	counts, err := c.BatchRetrieveCounts(context.Background(), []string{"v1", "v2"}, "loc-1")
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "v1", counts[0].CatalogObjectID)
	assert.Equal(t, "3", counts[0].Quantity)

	got := <-ch
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v2/inventory/counts/batch-retrieve", got.Path)
	assert.Equal(t, "Bearer test-token", got.Header.Get("Authorization"))

	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(got.Body), &body))
	assert.Equal(t, []any{"v1", "v2"}, body["catalog_object_ids"])
	assert.Equal(t, []any{"loc-1"}, body["location_ids"])
}

func TestCreatePayment_DecodesPayment(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `{"payment":{"id":"pay-9","status":"COMPLETED","order_id":"o1","amount_money":{"amount":1500,"currency":"USD"}}}`)
	c := newTestClient(t, srv.URL)

	p, err := c.CreatePayment(context.Background(), PaymentRequest{
		SourceID:       "tok",
		IdempotencyKey: "k1",
		AmountMoney:    Money{Amount: 1500, Currency: "USD"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pay-9", p.ID)
	assert.Equal(t, "COMPLETED", p.Status)
	assert.Equal(t, int64(1500), p.AmountMoney.Amount)

	got := <-ch
	assert.Equal(t, "/v2/payments", got.Path)
	assert.Contains(t, got.Body, `"idempotency_key":"k1"`)
}

func TestDo_NonSuccessPreservesVendorBody(t *testing.T) {
	raw := `{"errors":[{"code":"CARD_DECLINED","detail":"Card was declined."}]}`
	srv, _ := newStubServer(t, http.StatusPaymentRequired, raw)
	c := newTestClient(t, srv.URL)

	_, err := c.CreatePayment(context.Background(), PaymentRequest{SourceID: "tok"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusPaymentRequired, apiErr.Status)
	assert.Equal(t, "CARD_DECLINED", apiErr.Code)
	assert.Equal(t, "Card was declined.", apiErr.Detail)
	assert.JSONEq(t, raw, string(apiErr.Raw))
}

func TestListCatalogItems_CursorForwarded(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `{"items":[{"id":"b1","name":"Bluets","price":{"amount":1200,"currency":"USD"}}],"cursor":"next-page"}`)
	c := newTestClient(t, srv.URL)

	items, cursor, err := c.ListCatalogItems(context.Background(), "page-2")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bluets", items[0].Name)
	assert.Equal(t, "next-page", cursor)

	got := <-ch
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/v2/catalog/items", got.Path)
}

func TestCompleteOrder_PostsToOrderCompleteEndpoint(t *testing.T) {
	srv, ch := newStubServer(t, http.StatusOK, `{}`)
	c := newTestClient(t, srv.URL)

	require.NoError(t, c.CompleteOrder(context.Background(), "order-7"))

	got := <-ch
	assert.Equal(t, http.MethodPost, got.Method)
	assert.Equal(t, "/v2/orders/order-7/complete", got.Path)
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	_, err := NewClient("://bad", "tok", http.DefaultClient)
	require.Error(t, err)
}
