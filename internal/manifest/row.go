// =============================================================================
// Shipping List Processor - Manifest Row Model
// =============================================================================
//
// This module defines the normalized representation of a shipping manifest
// line item. Rows are produced once by the workbook reader, reduced by the
// deduplication stage, and augmented with derived prices by the FOB and CIF
// stages. A row is never mutated after pricing.
//
// All monetary, weight and volume quantities are decimal.Decimal so that the
// pricing pipeline stays exact; values are converted to float only at the
// workbook cell boundary.
//
// =============================================================================

package manifest

import (
	"github.com/shopspring/decimal"
)

// Row represents a single normalized line item from the shipping manifest.
type Row struct {
	// SequenceNo is the serial number of the line item in the manifest.
	SequenceNo int

	// PartNumber is the system part number (P/N). Together with UnitPrice
	// it forms the deduplication identity of the row.
	PartNumber string

	// Supplier is the supplier name.
	Supplier string

	// ProjectName is the project the goods belong to.
	ProjectName string

	// Factory is the destination factory (e.g. Daman/Silvassa).
	Factory string

	// CustomsDescEN is the English customs clearance description.
	CustomsDescEN string

	// CustomsDescCN is the Chinese customs declaration name.
	CustomsDescCN string

	// DescriptionEN is the system English product description.
	DescriptionEN string

	// InvoiceName is the invoicing name of the goods.
	InvoiceName string

	// MaterialName is the material name.
	MaterialName string

	// Model is the goods model number.
	Model string

	// Quantity is the shipped quantity. Every division in the pipeline
	// (unit prices, per-unit weights) requires Quantity > 0; a zero or
	// missing quantity aborts the run.
	Quantity decimal.Decimal

	// Unit is the unit of measure (e.g. PCS).
	Unit string

	// CartonMeasurement is the outer carton dimensions in centimetres.
	CartonMeasurement string

	// UnitVolume is the volume per piece in CBM.
	UnitVolume decimal.Decimal

	// TotalVolume is the total volume of the line in CBM.
	TotalVolume decimal.Decimal

	// UnitGrossWeight is the gross weight per piece in kilograms.
	UnitGrossWeight decimal.Decimal

	// TotalGrossWeight is the total gross weight of the line in kilograms.
	TotalGrossWeight decimal.Decimal

	// UnitNetWeight is the net weight per piece in kilograms.
	UnitNetWeight decimal.Decimal

	// TotalNetWeight is the total net weight of the line in kilograms.
	// It is nullable: when absent the CIF stage falls back to
	// TotalGrossWeight x 0.9 for the shipping cost.
	TotalNetWeight *decimal.Decimal

	// FullCartonQuantity is the number of full cartons.
	FullCartonQuantity decimal.Decimal

	// PieceCount is the number of packages.
	PieceCount decimal.Decimal

	// CartonNo holds the carton number range (e.g. "1-5").
	CartonNo string

	// ExportCustomsMethod is the export declaration method.
	ExportCustomsMethod string

	// PurchasingUnit is the purchase channel.
	PurchasingUnit string

	// UnitPrice is the unit price before tax in RMB. It is nullable: a
	// missing price is an InvalidInput error in the FOB stage, never a
	// silent zero.
	UnitPrice *decimal.Decimal

	// TaxRate is the invoicing tax rate, kept verbatim.
	TaxRate string

	// SourceRow is the 1-based row number in the source workbook,
	// used in error messages.
	SourceRow int
}

// PricedRow is a Row augmented with the derived FOB and CIF prices.
// PricedRow values are immutable once the CIF stage has produced them.
type PricedRow struct {
	Row

	// FOBUnitPrice is the unit price after markup, in RMB.
	FOBUnitPrice decimal.Decimal

	// FOBTotalPrice is FOBUnitPrice x Quantity, in RMB.
	FOBTotalPrice decimal.Decimal

	// CIFUnitPriceRMB is the landed unit price in RMB, kept for audit.
	CIFUnitPriceRMB decimal.Decimal

	// CIFUnitPriceUSD is the landed unit price converted to USD.
	CIFUnitPriceUSD decimal.Decimal

	// CIFTotalAmountUSD is CIFUnitPriceUSD x Quantity.
	CIFTotalAmountUSD decimal.Decimal

	// CIFUnitPriceRupee is the landed unit price in rupees, present only
	// when the exchange rate table carries an RMB to rupee rate.
	CIFUnitPriceRupee *decimal.Decimal
}

// HasUnitPrice reports whether the row carries a unit price.
func (r Row) HasUnitPrice() bool {
	return r.UnitPrice != nil
}

// HasTotalNetWeight reports whether the row carries a usable total net
// weight. A zero net weight counts as absent for the shipping fallback.
func (r Row) HasTotalNetWeight() bool {
	return r.TotalNetWeight != nil && r.TotalNetWeight.IsPositive()
}
