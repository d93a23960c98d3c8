// =============================================================================
// Dataset Report Tools - Sales Computation Module
// =============================================================================
//
// This module cleans a product catalogue and per-case sales tables, then
// joins them: valid sale quantities are summed per normalized product name
// and left-joined against the catalogue on normalized title. Invalid rows are
// bucketed by failure reason into named groups and excluded from aggregation
// but never discarded; every group is reported with its row count and
// contents.
//
// Header spellings are resolved through an explicit enumerated mapping from
// accepted (case-insensitive) names to canonical field names, validated once
// when a table is loaded.
//
// =============================================================================

package sales

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Canonical field names.
const (
	FieldTitle    = "title"
	FieldPrice    = "price"
	FieldProduct  = "product"
	FieldQuantity = "quantity"
)

// Invalid-row group names, in report order.
const (
	GroupCataloguePriceNotNumeric  = "catalogue_price_not_numeric"
	GroupCataloguePriceNonPositive = "catalogue_price_non_positive"
	GroupSalesQuantityNotNumeric   = "sales_quantity_not_numeric"
	GroupSalesQuantityNonPositive  = "sales_quantity_non_positive"
)

// Accepted header spellings per canonical field. Matching is done on the
// lower-cased, trimmed header. Additional legacy spellings go here, not in
// the matching code.
var (
	catalogueHeaders = map[string][]string{
		FieldTitle: {"title"},
		FieldPrice: {"price"},
	}
	salesHeaders = map[string][]string{
		FieldProduct:  {"product"},
		FieldQuantity: {"quantity"},
	}
)

// Row is one raw table row after header resolution: a normalized name field
// plus the untouched numeric field, kept raw so invalid values can be
// reported verbatim.
type Row struct {
	Name  string // lower-cased, trimmed title or product
	Value any    // raw price or quantity
}

// String renders the row for error-group listings.
func (r Row) String() string {
	return fmt.Sprintf("%s\t%v", r.Name, r.Value)
}

// CatalogueEntry is a cleaned catalogue row.
type CatalogueEntry struct {
	Title string
	Price float64
}

// SalesEntry is a cleaned sales row.
type SalesEntry struct {
	Product  string
	Quantity float64
}

// ErrorGroup is one bucket of invalid rows sharing a failure reason.
type ErrorGroup struct {
	Name string
	Rows []Row
}

// MapCatalogueRows resolves headers of raw catalogue rows and returns them as
// Rows. It fails when the required title or price field cannot be found.
func MapCatalogueRows(raw []map[string]any) ([]Row, error) {
	return mapRows(raw, catalogueHeaders, FieldTitle, FieldPrice)
}

// MapSalesRows resolves headers of raw sales rows and returns them as Rows.
// It fails when the required product or quantity field cannot be found.
func MapSalesRows(raw []map[string]any) ([]Row, error) {
	return mapRows(raw, salesHeaders, FieldProduct, FieldQuantity)
}

// mapRows applies the enumerated header mapping. The mapping is resolved and
// validated once against the first row; every row is then read through the
// resolved keys. Name values are stringified, trimmed and lower-cased; the
// numeric field stays raw.
func mapRows(raw []map[string]any, accepted map[string][]string, nameField, valueField string) ([]Row, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	keys, err := resolveHeaders(raw[0], accepted)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		// Rows after the first may lack resolved keys; an absent or null
		// name becomes empty rather than a stringified nil.
		name := ""
		if v, ok := r[keys[nameField]]; ok && v != nil {
			name = strings.ToLower(strings.TrimSpace(fmt.Sprint(v)))
		}
		rows = append(rows, Row{
			Name:  name,
			Value: r[keys[valueField]],
		})
	}
	return rows, nil
}

// resolveHeaders maps each canonical field to the actual key spelling used in
// row, failing with the list of missing fields when a required one is absent.
func resolveHeaders(row map[string]any, accepted map[string][]string) (map[string]string, error) {
	lower := make(map[string]string, len(row))
	for k := range row {
		lower[strings.ToLower(strings.TrimSpace(k))] = k
	}

	keys := make(map[string]string, len(accepted))
	var missing []string
	for field, spellings := range accepted {
		found := false
		for _, s := range spellings {
			if actual, ok := lower[s]; ok {
				keys[field] = actual
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("required field(s) missing: %s", strings.Join(missing, ", "))
	}
	return keys, nil
}

// CleanCatalogue classifies catalogue rows: price must be numeric and
// positive. Invalid rows land in reason groups; valid rows become entries.
func CleanCatalogue(rows []Row) ([]CatalogueEntry, []ErrorGroup) {
	var (
		entries    []CatalogueEntry
		notNumeric []Row
		nonPos     []Row
	)
	for _, r := range rows {
		price, ok := toNumber(r.Value)
		switch {
		case !ok:
			notNumeric = append(notNumeric, r)
		case price <= 0:
			nonPos = append(nonPos, r)
		default:
			entries = append(entries, CatalogueEntry{Title: r.Name, Price: price})
		}
	}
	return entries, buildGroups(
		ErrorGroup{Name: GroupCataloguePriceNotNumeric, Rows: notNumeric},
		ErrorGroup{Name: GroupCataloguePriceNonPositive, Rows: nonPos},
	)
}

// CleanSales classifies sales rows: quantity must be numeric and positive.
func CleanSales(rows []Row) ([]SalesEntry, []ErrorGroup) {
	var (
		entries    []SalesEntry
		notNumeric []Row
		nonPos     []Row
	)
	for _, r := range rows {
		qty, ok := toNumber(r.Value)
		switch {
		case !ok:
			notNumeric = append(notNumeric, r)
		case qty <= 0:
			nonPos = append(nonPos, r)
		default:
			entries = append(entries, SalesEntry{Product: r.Name, Quantity: qty})
		}
	}
	return entries, buildGroups(
		ErrorGroup{Name: GroupSalesQuantityNotNumeric, Rows: notNumeric},
		ErrorGroup{Name: GroupSalesQuantityNonPositive, Rows: nonPos},
	)
}

func buildGroups(groups ...ErrorGroup) []ErrorGroup {
	var out []ErrorGroup
	for _, g := range groups {
		if len(g.Rows) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// toNumber coerces a raw JSON or XLSX cell value to float64. Numeric strings
// count as numeric; everything else does not.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// MatchedRow is a per-product total joined against a catalogue price.
type MatchedRow struct {
	Product   string
	Quantity  float64
	Price     float64
	TotalCost float64
}

// MissingRow is a per-product total with no catalogue match.
type MissingRow struct {
	Product  string
	Quantity float64
}

// ComputeTotals sums valid sale quantities per product, then left-joins the
// sums against the cleaned catalogue. Matched rows carry
// total_cost = quantity * price and come back sorted by total_cost
// descending; unmatched products come back sorted by quantity descending.
// Ties break on product name for deterministic output. When the catalogue
// lists a title twice, the first occurrence wins.
func ComputeTotals(catalogue []CatalogueEntry, entries []SalesEntry) ([]MatchedRow, []MissingRow) {
	prices := make(map[string]float64, len(catalogue))
	for _, c := range catalogue {
		if _, dup := prices[c.Title]; !dup {
			prices[c.Title] = c.Price
		}
	}

	sums := make(map[string]float64)
	var order []string
	for _, s := range entries {
		if _, seen := sums[s.Product]; !seen {
			order = append(order, s.Product)
		}
		sums[s.Product] += s.Quantity
	}

	var (
		matched []MatchedRow
		missing []MissingRow
	)
	for _, product := range order {
		qty := sums[product]
		price, ok := prices[product]
		if !ok {
			missing = append(missing, MissingRow{Product: product, Quantity: qty})
			continue
		}
		matched = append(matched, MatchedRow{
			Product:   product,
			Quantity:  qty,
			Price:     price,
			TotalCost: qty * price,
		})
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].TotalCost != matched[j].TotalCost {
			return matched[i].TotalCost > matched[j].TotalCost
		}
		return matched[i].Product < matched[j].Product
	})
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Quantity != missing[j].Quantity {
			return missing[i].Quantity > missing[j].Quantity
		}
		return missing[i].Product < missing[j].Product
	})
	return matched, missing
}

// GrandTotal sums total_cost across matched rows; 0 when nothing matched.
func GrandTotal(matched []MatchedRow) float64 {
	total := 0.0
	for _, m := range matched {
		total += m.TotalCost
	}
	return total
}
