// =============================================================================
// Shipping List Processor - CIF Stage
// =============================================================================
//
// Computes the landed (CIF) price from the FOB total, in order:
//
//   1. goods_cost = fob_total x insurance_coefficient x (1 + insurance_rate)
//   2. effective_net_weight = total_net_weight when present and > 0,
//      otherwise total_gross_weight x 0.9
//   3. shipping_cost = effective_net_weight x shipping_rate
//   4. cif_total_rmb = goods_cost + shipping_cost
//   5. cif_unit_rmb  = cif_total_rmb / quantity
//   6. cif_unit_usd  = cif_unit_rmb / rmb_to_usd
//
// The gross-weight fallback in step 2 is a per-row business rule: each row
// decides independently which weight drives its shipping cost. A row with
// neither weight fails the run; zeroing the shipping cost would understate
// the declared customs value.
//
// No intermediate result is rounded. Rounding to presentation digits
// happens in the receipt projection only.
//
// =============================================================================

package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/hzlogistics/shiplist/internal/manifest"
	"github.com/hzlogistics/shiplist/internal/refdata"
)

// grossToNetFactor estimates net weight from gross weight when the
// manifest row has no net weight.
var grossToNetFactor = decimal.RequireFromString("0.9")

// ComputeCIF attaches CIF prices to rows that already carry FOB prices.
// It fails with ErrDivisionUndefined when a row quantity or the RMB/USD
// rate is zero or absent, and with ErrMissingWeight when neither weight is
// available for the shipping-cost fallback.
func ComputeCIF(rows []manifest.PricedRow, policy refdata.Policy, rate refdata.ShippingRate, rates refdata.ExchangeRates) ([]manifest.PricedRow, error) {
	if !rates.RMBToUSD.IsPositive() {
		return nil, rowErrf(0, "", ErrDivisionUndefined,
			"RMB to USD exchange rate is zero or absent")
	}

	insuranceFactor := policy.InsuranceCoefficient.Mul(one.Add(policy.InsuranceRate))

	out := make([]manifest.PricedRow, 0, len(rows))
	for _, row := range rows {
		if !row.Quantity.IsPositive() {
			return nil, rowErrf(row.SequenceNo, row.PartNumber, ErrDivisionUndefined,
				"quantity is zero or missing")
		}

		effectiveNet, err := effectiveNetWeight(row.Row)
		if err != nil {
			return nil, err
		}

		goodsCost := row.FOBTotalPrice.Mul(insuranceFactor)
		shippingCost := effectiveNet.Mul(rate.RMBPerKg)
		cifTotalRMB := goodsCost.Add(shippingCost)

		row.CIFUnitPriceRMB = cifTotalRMB.Div(row.Quantity)
		row.CIFUnitPriceUSD = row.CIFUnitPriceRMB.Div(rates.RMBToUSD)
		row.CIFTotalAmountUSD = row.CIFUnitPriceUSD.Mul(row.Quantity)

		if rates.RMBToRupee != nil && !rates.RMBToRupee.IsZero() {
			rupee := row.CIFUnitPriceRMB.Mul(*rates.RMBToRupee)
			row.CIFUnitPriceRupee = &rupee
		}

		out = append(out, row)
	}
	return out, nil
}

// effectiveNetWeight resolves the weight driving the shipping cost:
// the recorded total net weight, or total gross weight x 0.9.
func effectiveNetWeight(row manifest.Row) (decimal.Decimal, error) {
	if row.HasTotalNetWeight() {
		return *row.TotalNetWeight, nil
	}
	if row.TotalGrossWeight.IsPositive() {
		return row.TotalGrossWeight.Mul(grossToNetFactor), nil
	}
	return decimal.Zero, rowErrf(row.SequenceNo, row.PartNumber, ErrMissingWeight,
		"neither total net weight nor total gross weight is available")
}
