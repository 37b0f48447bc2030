package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the commerce platform's REST API (catalog, inventory
// counts, payments, orders). It is stateless: construct once at startup and
// share across requests.
type Client struct {
	baseURL *url.URL
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid commerce base url %q: %w", baseURL, err)
	}
	return &Client{baseURL: u, token: token, http: httpClient}, nil
}

// BatchRetrieveCounts fetches per-location stock records for all variation
// ids in a single request. Callers must never loop this per id.
func (c *Client) BatchRetrieveCounts(ctx context.Context, variationIDs []string, locationID string) ([]InventoryCount, error) {
	req := batchCountsRequest{CatalogObjectIDs: variationIDs}
	if locationID != "" {
		req.LocationIDs = []string{locationID}
	}
	var resp batchCountsResponse
	if err := c.do(ctx, http.MethodPost, "/v2/inventory/counts/batch-retrieve", req, &resp); err != nil {
		return nil, err
	}
	return resp.Counts, nil
}

// CreatePayment submits one charge. The idempotency key must already be set
// by the caller; the client does not invent one.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (*Payment, error) {
	var resp createPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/v2/payments", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Payment, nil
}

func (c *Client) ListCatalogItems(ctx context.Context, cursor string) ([]CatalogItem, string, error) {
	path := "/v2/catalog/items"
	if cursor != "" {
		path += "?cursor=" + url.QueryEscape(cursor)
	}
	var resp listCatalogResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, "", err
	}
	return resp.Items, resp.Cursor, nil
}

func (c *Client) RetrieveCatalogItem(ctx context.Context, id string) (*CatalogItem, error) {
	var resp retrieveCatalogResponse
	if err := c.do(ctx, http.MethodGet, "/v2/catalog/items/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Item, nil
}

// CompleteOrder marks an order fulfilled on the platform. The endpoint sets
// state rather than incrementing anything, so repeat calls for the same
// order are safe.
func (c *Client) CompleteOrder(ctx context.Context, orderID string) error {
	return c.do(ctx, http.MethodPost, "/v2/orders/"+url.PathEscape(orderID)+"/complete", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	rel := &url.URL{Path: path}
	if i := strings.IndexByte(path, '?'); i >= 0 {
		rel = &url.URL{Path: path[:i], RawQuery: path[i+1:]}
	}
	u := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("commerce %s %s: %w", method, rel.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode commerce %s %s response: %w", method, rel.Path, err)
	}
	return nil
}
