package searchindex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ErrMissingAPIKey distinguishes a missing credential from a network
// failure; it is returned before any request is made.
var ErrMissingAPIKey = errors.New("search index api key is not configured")

// Client talks to the vector search index's data plane.
type Client struct {
	host   string
	apiKey string
	http   *http.Client
}

// NewClient normalizes a bare index host ("idx-abc.example.net") into an
// https URL. The client is stateless; construct once and share.
func NewClient(host, apiKey string, httpClient *http.Client) *Client {
	if host != "" && !strings.Contains(host, "://") {
		host = "https://" + host
	}
	return &Client{host: strings.TrimRight(host, "/"), apiKey: apiKey, http: httpClient}
}

// Search runs one semantic query in a namespace and returns hits in the
// index's ranking order.
func (c *Client) Search(ctx context.Context, namespace, text string, topK int) ([]Hit, error) {
	req := searchRequest{}
	req.Query.Inputs = map[string]string{"text": text}
	req.Query.TopK = topK

	var resp searchResponse
	path := "/records/namespaces/" + url.PathEscape(namespace) + "/search"
	if err := c.do(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return resp.Result.Hits, nil
}

// Upsert writes records into a namespace; existing ids are overwritten.
func (c *Client) Upsert(ctx context.Context, namespace string, records []Record) error {
	path := "/records/namespaces/" + url.PathEscape(namespace) + "/upsert"
	return c.do(ctx, path, upsertRequest{Records: records}, nil)
}

// DescribeStats is the lightweight readiness probe.
func (c *Client) DescribeStats(ctx context.Context) (*IndexStats, error) {
	var stats IndexStats
	if err := c.do(ctx, "/describe_index_stats", struct{}{}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, path string, in, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}
	if c.host == "" {
		return errors.New("search index host is not configured")
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("marshal search index request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("search index %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("search index %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode search index %s response: %w", path, err)
	}
	return nil
}
