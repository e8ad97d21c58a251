// =============================================================================
// Shipping List Processor - Deduplication Stage
// =============================================================================
//
// Merges manifest rows that share the same (part number, unit price)
// identity. Quantities, total volume, total gross/net weight, carton count
// and piece count are summed across the merged rows; every other field
// keeps the value of the first-encountered row in the group. Output order
// is the order of first appearance of each distinct identity.
//
// Price equality is exact: prices are compared by decimal value, so
// 9.999999 and 10 are distinct identities while 10 and 10.00 are the same.
//
// =============================================================================

package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/hzlogistics/shiplist/internal/manifest"
)

// Deduplicate reduces rows to one entry per (part number, unit price)
// identity. The input is not mutated.
func Deduplicate(rows []manifest.Row) []manifest.Row {
	index := make(map[string]int)
	var out []manifest.Row

	for _, row := range rows {
		key := identityKey(row)
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, row)
			continue
		}
		out[i] = mergeRows(out[i], row)
	}

	for i := range out {
		recomputeUnitWeights(&out[i])
	}
	return out
}

// identityKey builds the grouping key. Decimal String() renders equal
// values identically regardless of trailing zeros, which is exactly the
// equality the merge policy wants. Rows without a price keep a distinct
// marker so they survive to the FOB stage, where the missing price is
// reported.
func identityKey(row manifest.Row) string {
	price := "<none>"
	if row.UnitPrice != nil {
		price = row.UnitPrice.String()
	}
	return row.PartNumber + "\x00" + price
}

// mergeRows folds next into the accumulated row for its identity group.
func mergeRows(acc, next manifest.Row) manifest.Row {
	acc.Quantity = acc.Quantity.Add(next.Quantity)
	acc.TotalVolume = acc.TotalVolume.Add(next.TotalVolume)
	acc.TotalGrossWeight = acc.TotalGrossWeight.Add(next.TotalGrossWeight)
	acc.FullCartonQuantity = acc.FullCartonQuantity.Add(next.FullCartonQuantity)
	acc.PieceCount = acc.PieceCount.Add(next.PieceCount)
	acc.TotalNetWeight = sumNullable(acc.TotalNetWeight, next.TotalNetWeight)
	return acc
}

// sumNullable adds two nullable weights. The sum is nil only when both
// operands are nil, so a group with any recorded net weight keeps it.
func sumNullable(a, b *decimal.Decimal) *decimal.Decimal {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		sum := a.Add(*b)
		return &sum
	}
}

// recomputeUnitWeights rebuilds the per-unit weights from the merged
// totals. Merged rows would otherwise carry the first row's unit weights
// next to summed totals.
func recomputeUnitWeights(row *manifest.Row) {
	if !row.Quantity.IsPositive() {
		return
	}
	if row.TotalNetWeight != nil {
		row.UnitNetWeight = row.TotalNetWeight.Div(row.Quantity)
	}
	if row.TotalGrossWeight.IsPositive() {
		row.UnitGrossWeight = row.TotalGrossWeight.Div(row.Quantity)
	}
}
