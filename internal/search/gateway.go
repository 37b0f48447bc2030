package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
	"github.com/Groundwork-Books/storefront-api/internal/searchindex"
)

// ErrEmptyQuery rejects a blank query before any network call.
var ErrEmptyQuery = errors.New("search query is required")

const (
	defaultLimit = 10
	maxLimit     = 50
)

// Index is the slice of the search index client the gateway needs.
type Index interface {
	Search(ctx context.Context, namespace, text string, topK int) ([]searchindex.Hit, error)
	Upsert(ctx context.Context, namespace string, records []searchindex.Record) error
	DescribeStats(ctx context.Context) (*searchindex.IndexStats, error)
}

// Catalog is the slice of the commerce client used by SyncCatalog.
type Catalog interface {
	ListCatalogItems(ctx context.Context, cursor string) ([]commerce.CatalogItem, string, error)
}

// Gateway scopes all index operations to the fixed book-catalog namespace.
// It does no re-ranking; hits come back in the index's order.
type Gateway struct {
	index     Index
	catalog   Catalog
	namespace string
	indexName string
	indexHost string
}

func NewGateway(index Index, catalog Catalog, namespace, indexName, indexHost string) *Gateway {
	return &Gateway{
		index:     index,
		catalog:   catalog,
		namespace: namespace,
		indexName: indexName,
		indexHost: indexHost,
	}
}

func (g *Gateway) Query(ctx context.Context, q string, limit int) ([]searchindex.Hit, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return g.index.Search(ctx, g.namespace, q, limit)
}

// Status is the probe response shape.
type Status struct {
	Status       string         `json:"status"`
	IndexName    string         `json:"indexName"`
	IndexHost    string         `json:"indexHost"`
	TotalVectors int            `json:"totalVectors"`
	Dimension    int            `json:"dimension"`
	Namespaces   map[string]int `json:"namespaces,omitempty"`
	Error        string         `json:"error,omitempty"`
}

// Status reports index readiness. A missing credential surfaces here as a
// configuration error, not a network failure.
func (g *Gateway) Status(ctx context.Context) Status {
	st := Status{IndexName: g.indexName, IndexHost: g.indexHost}

	stats, err := g.index.DescribeStats(ctx)
	if err != nil {
		st.Status = "error"
		st.Error = err.Error()
		return st
	}

	st.Status = "ready"
	st.TotalVectors = stats.TotalVectorCount
	st.Dimension = stats.Dimension
	st.Namespaces = make(map[string]int, len(stats.Namespaces))
	for name, ns := range stats.Namespaces {
		st.Namespaces[name] = ns.VectorCount
	}
	return st
}

// SyncCatalog walks the full catalog listing and upserts one record per
// book into the namespace. Returns how many records were written.
func (g *Gateway) SyncCatalog(ctx context.Context) (int, error) {
	total := 0
	cursor := ""
	for {
		items, next, err := g.catalog.ListCatalogItems(ctx, cursor)
		if err != nil {
			return total, fmt.Errorf("list catalog items: %w", err)
		}

		if len(items) > 0 {
			records := make([]searchindex.Record, 0, len(items))
			for _, it := range items {
				records = append(records, bookRecord(it))
			}
			if err := g.index.Upsert(ctx, g.namespace, records); err != nil {
				return total, fmt.Errorf("upsert catalog records: %w", err)
			}
			total += len(records)
		}

		if next == "" {
			return total, nil
		}
		cursor = next
	}
}

func bookRecord(it commerce.CatalogItem) searchindex.Record {
	text := it.Name
	if it.Description != "" {
		text += ". " + it.Description
	}
	rec := searchindex.Record{
		"_id":  it.ID,
		"text": text,
		"name": it.Name,
	}
	if it.CategoryID != "" {
		rec["category"] = it.CategoryID
	}
	return rec
}
