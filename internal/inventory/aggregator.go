package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
)

// ErrNoVariations rejects an empty id set before any network call.
var ErrNoVariations = errors.New("at least one variation id is required")

const stateInStock = "IN_STOCK"

// CountsClient is the slice of the commerce client the aggregator needs.
type CountsClient interface {
	BatchRetrieveCounts(ctx context.Context, variationIDs []string, locationID string) ([]commerce.InventoryCount, error)
}

// Aggregator reduces raw per-location stock records into a single
// available-quantity mapping. Stateless; recomputed fresh per request.
type Aggregator struct {
	counts CountsClient
}

func NewAggregator(c CountsClient) *Aggregator {
	return &Aggregator{counts: c}
}

// Availability issues exactly one batched request for all ids and sums the
// quantities of records whose state is IN_STOCK. Unparsable quantities
// contribute zero rather than failing the whole lookup. Identifiers with no
// in-stock records are absent from the result; callers treat absence as
// zero.
func (a *Aggregator) Availability(ctx context.Context, variationIDs []string, locationID string) (map[string]float64, error) {
	if len(variationIDs) == 0 {
		return nil, ErrNoVariations
	}

	records, err := a.counts.BatchRetrieveCounts(ctx, variationIDs, locationID)
	if err != nil {
		return nil, fmt.Errorf("retrieve inventory counts: %w", err)
	}

	available := make(map[string]float64, len(variationIDs))
	for _, rec := range records {
		if rec.State != stateInStock {
			continue
		}
		qty, err := strconv.ParseFloat(rec.Quantity, 64)
		if err != nil {
			qty = 0
		}
		available[rec.CatalogObjectID] += qty
	}
	return available, nil
}
