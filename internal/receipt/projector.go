// =============================================================================
// Shipping List Processor - Receipt Projections
// =============================================================================
//
// Maps priced rows into the two customs-facing receipt schemas. This is a
// pure projection: field selection, renaming and the amount multiplication.
// Prices are not recomputed here.
//
// Rounding to presentation digits happens at this boundary and nowhere
// earlier: the unit price is rounded first and the amount is derived from
// the rounded unit price, so the two printed columns always reconcile.
//
// =============================================================================

package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/hzlogistics/shiplist/internal/manifest"
)

// DefaultRoundingDigits is the presentation precision for USD columns.
const DefaultRoundingDigits int32 = 2

// ExportColumns is the fixed column order of the export receipt.
var ExportColumns = []string{
	"NO.", "P/N", "DESCRIPTION", "Model NO.",
	"Unit Price USD", "Qty", "Unit", "Amount USD",
}

// ReimportColumns is the fixed column order of the re-import receipt: the
// export columns followed by the customs descriptions and weights.
var ReimportColumns = []string{
	"NO.", "P/N", "DESCRIPTION", "Model NO.",
	"Unit Price USD", "Qty", "Unit", "Amount USD",
	"English Description", "Chinese Description",
	"Net Weight (kg)", "Total Net Weight (kg)",
	"Gross Weight (kg)", "Total Gross Weight (kg)",
}

// ExportRow is one line of the export receipt.
type ExportRow struct {
	No           int
	PartNumber   string
	Description  string
	Model        string
	UnitPriceUSD decimal.Decimal
	Quantity     decimal.Decimal
	Unit         string
	AmountUSD    decimal.Decimal
}

// ReimportRow is one line of the re-import receipt.
type ReimportRow struct {
	ExportRow

	CustomsDescEN    string
	CustomsDescCN    string
	UnitNetWeight    decimal.Decimal
	TotalNetWeight   *decimal.Decimal
	UnitGrossWeight  decimal.Decimal
	TotalGrossWeight decimal.Decimal
}

// ProjectExport maps priced rows into the export schema, rounding the USD
// columns to digits decimal places.
func ProjectExport(rows []manifest.PricedRow, digits int32) []ExportRow {
	out := make([]ExportRow, 0, len(rows))
	for i, row := range rows {
		out = append(out, exportRow(row, i, digits))
	}
	return out
}

// ProjectReimport maps priced rows into the re-import schema.
func ProjectReimport(rows []manifest.PricedRow, digits int32) []ReimportRow {
	out := make([]ReimportRow, 0, len(rows))
	for i, row := range rows {
		out = append(out, ReimportRow{
			ExportRow:        exportRow(row, i, digits),
			CustomsDescEN:    row.CustomsDescEN,
			CustomsDescCN:    row.CustomsDescCN,
			UnitNetWeight:    row.UnitNetWeight,
			TotalNetWeight:   row.TotalNetWeight,
			UnitGrossWeight:  row.UnitGrossWeight,
			TotalGrossWeight: row.TotalGrossWeight,
		})
	}
	return out
}

// exportRow builds the base projection shared by both schemas. Rows
// without a serial number fall back to their position, keeping the NO.
// column dense after deduplication.
func exportRow(row manifest.PricedRow, position int, digits int32) ExportRow {
	no := row.SequenceNo
	if no == 0 {
		no = position + 1
	}

	description := row.DescriptionEN
	if description == "" {
		description = row.MaterialName
	}

	unitUSD := row.CIFUnitPriceUSD.Round(digits)
	return ExportRow{
		No:           no,
		PartNumber:   row.PartNumber,
		Description:  description,
		Model:        row.Model,
		UnitPriceUSD: unitUSD,
		Quantity:     row.Quantity,
		Unit:         row.Unit,
		AmountUSD:    unitUSD.Mul(row.Quantity).Round(digits),
	}
}
