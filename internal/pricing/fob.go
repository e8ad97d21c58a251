// =============================================================================
// Shipping List Processor - FOB Stage
// =============================================================================
//
// Applies the policy markup to each row:
//
//   fob_unit_price  = unit_price_before_tax x (1 + markup_percentage)
//   fob_total_price = fob_unit_price x quantity
//
// =============================================================================

package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/hzlogistics/shiplist/internal/manifest"
	"github.com/hzlogistics/shiplist/internal/refdata"
)

var one = decimal.NewFromInt(1)

// ComputeFOB attaches FOB prices to every row. It fails with
// ErrInvalidInput when the markup percentage is negative or a row has no
// unit price.
func ComputeFOB(rows []manifest.Row, policy refdata.Policy) ([]manifest.PricedRow, error) {
	if policy.MarkupPercentage.IsNegative() {
		return nil, rowErrf(0, "", ErrInvalidInput,
			"markup percentage %s is negative", policy.MarkupPercentage)
	}

	markupFactor := one.Add(policy.MarkupPercentage)

	out := make([]manifest.PricedRow, 0, len(rows))
	for _, row := range rows {
		if !row.HasUnitPrice() {
			return nil, rowErrf(row.SequenceNo, row.PartNumber, ErrInvalidInput,
				"unit price is missing")
		}

		priced := manifest.PricedRow{Row: row}
		priced.FOBUnitPrice = row.UnitPrice.Mul(markupFactor)
		priced.FOBTotalPrice = priced.FOBUnitPrice.Mul(row.Quantity)
		out = append(out, priced)
	}
	return out, nil
}
