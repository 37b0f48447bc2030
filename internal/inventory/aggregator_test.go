package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Groundwork-Books/storefront-api/internal/commerce"
)

type fakeCounts struct {
	calls   int
	gotIDs  []string
	gotLoc  string
	records []commerce.InventoryCount
	err     error
}

func (f *fakeCounts) BatchRetrieveCounts(ctx context.Context, variationIDs []string, locationID string) ([]commerce.InventoryCount, error) {
	f.calls++
	f.gotIDs = variationIDs
	f.gotLoc = locationID
	return f.records, f.err
}

func TestAvailability_EmptyInputRejectedBeforeNetwork(t *testing.T) {
	fake := &fakeCounts{}
	agg := NewAggregator(fake)

	_, err := agg.Availability(context.Background(), nil, "")

	require.ErrorIs(t, err, ErrNoVariations)
	assert.Equal(t, 0, fake.calls)
}

func TestAvailability_SingleBatchedCall(t *testing.T) {
	fake := &fakeCounts{}
	agg := NewAggregator(fake)

	ids := []string{"v1", "v2", "v3", "v4", "v5"}
	_, err := agg.Availability(context.Background(), ids, "loc-1")

	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, ids, fake.gotIDs)
	assert.Equal(t, "loc-1", fake.gotLoc)
}

func TestAvailability_SumsOnlyInStockRecords(t *testing.T) {
	fake := &fakeCounts{records: []commerce.InventoryCount{
		{CatalogObjectID: "v1", State: "IN_STOCK", Quantity: "3"},
		{CatalogObjectID: "v1", State: "IN_STOCK", Quantity: "2.5"},
		{CatalogObjectID: "v1", State: "SOLD", Quantity: "7"},
		{CatalogObjectID: "v2", State: "WASTE", Quantity: "4"},
	}}
	agg := NewAggregator(fake)

	got, err := agg.Availability(context.Background(), []string{"v1", "v2"}, "")

	require.NoError(t, err)
	want := map[string]float64{"v1": 5.5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("availability mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailability_UnparsableQuantityContributesZero(t *testing.T) {
	// v1 has one in-stock record of 3 plus a sold record; v2's only
	// in-stock record carries garbage and must count as zero.
	fake := &fakeCounts{records: []commerce.InventoryCount{
		{CatalogObjectID: "v1", State: "IN_STOCK", Quantity: "3"},
		{CatalogObjectID: "v1", State: "SOLD", Quantity: "1"},
		{CatalogObjectID: "v2", State: "IN_STOCK", Quantity: "abc"},
	}}
	agg := NewAggregator(fake)

	got, err := agg.Availability(context.Background(), []string{"v1", "v2"}, "")

	require.NoError(t, err)
	want := map[string]float64{"v1": 3, "v2": 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("availability mismatch (-want +got):\n%s", diff)
	}
}

func TestAvailability_AbsentMeansNoInStockRecords(t *testing.T) {
	fake := &fakeCounts{records: []commerce.InventoryCount{
		{CatalogObjectID: "v1", State: "IN_STOCK", Quantity: "1"},
	}}
	agg := NewAggregator(fake)

	got, err := agg.Availability(context.Background(), []string{"v1", "v2"}, "")

	require.NoError(t, err)
	_, present := got["v2"]
	assert.False(t, present, "v2 has no in-stock records and must be absent")
}

func TestAvailability_VendorErrorPropagated(t *testing.T) {
	vendorErr := errors.New("inventory service unavailable")
	fake := &fakeCounts{err: vendorErr}
	agg := NewAggregator(fake)

	_, err := agg.Availability(context.Background(), []string{"v1"}, "")

	require.ErrorIs(t, err, vendorErr)
}
