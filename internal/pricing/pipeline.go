// =============================================================================
// Shipping List Processor - Pricing Pipeline
// =============================================================================
//
// Runs the stages in order over a fully loaded manifest:
//
//   raw rows -> Deduplicate -> ComputeFOB -> ComputeCIF
//
// The pipeline is a synchronous batch transform. Each stage consumes an
// immutable input collection and produces a new output collection; the
// first row error aborts the whole run. Re-running after correcting the
// input is always safe because nothing here has side effects.
//
// =============================================================================

package pricing

import (
	"github.com/hzlogistics/shiplist/internal/manifest"
	"github.com/hzlogistics/shiplist/internal/refdata"
)

// Pipeline bundles the reference data for a single run.
type Pipeline struct {
	Policy        refdata.Policy
	ShippingRate  refdata.ShippingRate
	ExchangeRates refdata.ExchangeRates
}

// Result holds the outputs of a pipeline run.
type Result struct {
	// Deduped is the reduced manifest, one row per (part number,
	// unit price) identity, in order of first appearance.
	Deduped []manifest.Row

	// Priced is the deduplicated manifest with FOB and CIF prices
	// attached, in the same order.
	Priced []manifest.PricedRow
}

// Run executes the pipeline over the manifest rows.
func (p Pipeline) Run(rows []manifest.Row) (Result, error) {
	deduped := Deduplicate(rows)

	fob, err := ComputeFOB(deduped, p.Policy)
	if err != nil {
		return Result{}, err
	}

	priced, err := ComputeCIF(fob, p.Policy, p.ShippingRate, p.ExchangeRates)
	if err != nil {
		return Result{}, err
	}

	return Result{Deduped: deduped, Priced: priced}, nil
}
