package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapCatalogueRows(t *testing.T) {
	raw := []map[string]any{
		{"Title": "  Widget ", "Price": 2.5},
		{"Title": "GADGET", "Price": "9.99"},
	}

	rows, err := MapCatalogueRows(raw)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "widget", rows[0].Name)
	assert.Equal(t, 2.5, rows[0].Value)
	assert.Equal(t, "gadget", rows[1].Name)
}

func TestMapSalesRowsHeaderSpellings(t *testing.T) {
	tests := []struct {
		name    string
		raw     []map[string]any
		wantErr string
	}{
		{
			name: "canonical lower case",
			raw:  []map[string]any{{"product": "widget", "quantity": 3}},
		},
		{
			name: "mixed case headers accepted",
			raw:  []map[string]any{{"PRODUCT": "widget", "Quantity": 3}},
		},
		{
			name:    "missing quantity",
			raw:     []map[string]any{{"product": "widget", "amount": 3}},
			wantErr: "quantity",
		},
		{
			name:    "missing both",
			raw:     []map[string]any{{"foo": 1}},
			wantErr: "product, quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := MapSalesRows(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, rows, 1)
			assert.Equal(t, "widget", rows[0].Name)
		})
	}
}

func TestMapRowsAbsentNameKey(t *testing.T) {
	rows, err := MapSalesRows([]map[string]any{
		{"product": "widget", "quantity": 1},
		{"quantity": 2},
		{"product": nil, "quantity": 3},
	})

	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Absent or null product names come back empty, never "<nil>".
	assert.Equal(t, "", rows[1].Name)
	assert.Equal(t, "", rows[2].Name)
	assert.NotContains(t, rows[1].String(), "<nil>")
}

func TestMapRowsEmptyInput(t *testing.T) {
	rows, err := MapSalesRows(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCleanCatalogue(t *testing.T) {
	entries, groups := CleanCatalogue([]Row{
		{Name: "widget", Value: 2.5},
		{Name: "free", Value: 0.0},
		{Name: "refund", Value: -1.0},
		{Name: "mystery", Value: "n/a"},
		{Name: "strprice", Value: "3.25"},
	})

	assert.Equal(t, []CatalogueEntry{
		{Title: "widget", Price: 2.5},
		{Title: "strprice", Price: 3.25},
	}, entries)

	require.Len(t, groups, 2)
	assert.Equal(t, GroupCataloguePriceNotNumeric, groups[0].Name)
	require.Len(t, groups[0].Rows, 1)
	assert.Equal(t, "mystery", groups[0].Rows[0].Name)
	assert.Equal(t, GroupCataloguePriceNonPositive, groups[1].Name)
	assert.Len(t, groups[1].Rows, 2)
}

func TestCleanSales(t *testing.T) {
	entries, groups := CleanSales([]Row{
		{Name: "widget", Value: 3.0},
		{Name: "gadget", Value: "oops"},
		{Name: "widget", Value: -2.0},
	})

	assert.Equal(t, []SalesEntry{{Product: "widget", Quantity: 3}}, entries)
	require.Len(t, groups, 2)
	assert.Equal(t, GroupSalesQuantityNotNumeric, groups[0].Name)
	assert.Equal(t, GroupSalesQuantityNonPositive, groups[1].Name)
}

func TestCleanAllValidYieldsNoGroups(t *testing.T) {
	_, groups := CleanSales([]Row{{Name: "widget", Value: 1.0}})
	assert.Empty(t, groups)
}

// The example from the requirements: one matched product, one missing.
func TestComputeTotals(t *testing.T) {
	catalogue := []CatalogueEntry{{Title: "widget", Price: 2.5}}
	entries := []SalesEntry{
		{Product: "widget", Quantity: 3},
		{Product: "gadget", Quantity: 1},
	}

	matched, missing := ComputeTotals(catalogue, entries)

	require.Len(t, matched, 1)
	assert.Equal(t, MatchedRow{Product: "widget", Quantity: 3, Price: 2.5, TotalCost: 7.5}, matched[0])

	require.Len(t, missing, 1)
	assert.Equal(t, MissingRow{Product: "gadget", Quantity: 1}, missing[0])

	assert.InDelta(t, 7.5, GrandTotal(matched), 1e-12)
}

func TestComputeTotalsSumsPerProductAndSorts(t *testing.T) {
	catalogue := []CatalogueEntry{
		{Title: "widget", Price: 2},
		{Title: "gadget", Price: 10},
	}
	entries := []SalesEntry{
		{Product: "widget", Quantity: 1},
		{Product: "gadget", Quantity: 1},
		{Product: "widget", Quantity: 2},
		{Product: "doohickey", Quantity: 5},
		{Product: "gizmo", Quantity: 9},
	}

	matched, missing := ComputeTotals(catalogue, entries)

	// gadget: 1*10=10 before widget: 3*2=6 (total_cost descending).
	require.Len(t, matched, 2)
	assert.Equal(t, "gadget", matched[0].Product)
	assert.Equal(t, "widget", matched[1].Product)
	assert.InDelta(t, 6, matched[1].TotalCost, 1e-12)

	// Missing sorted by quantity descending.
	require.Len(t, missing, 2)
	assert.Equal(t, "gizmo", missing[0].Product)
	assert.Equal(t, "doohickey", missing[1].Product)

	assert.InDelta(t, 16, GrandTotal(matched), 1e-12)
}

func TestComputeTotalsNoMatches(t *testing.T) {
	matched, missing := ComputeTotals(nil, []SalesEntry{{Product: "x", Quantity: 1}})

	assert.Empty(t, matched)
	require.Len(t, missing, 1)
	assert.Equal(t, 0.0, GrandTotal(matched))
}

func TestDuplicateCatalogueTitleFirstWins(t *testing.T) {
	catalogue := []CatalogueEntry{
		{Title: "widget", Price: 2},
		{Title: "widget", Price: 99},
	}
	matched, _ := ComputeTotals(catalogue, []SalesEntry{{Product: "widget", Quantity: 1}})

	require.Len(t, matched, 1)
	assert.Equal(t, 2.0, matched[0].Price)
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 2.5, 2.5, true},
		{"int", 3, 3, true},
		{"numeric string", " 4.25 ", 4.25, true},
		{"non-numeric string", "abc", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toNumber(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}
