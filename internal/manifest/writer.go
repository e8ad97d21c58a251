// =============================================================================
// Shipping List Processor - Manifest Workbook Writer
// =============================================================================
//
// Writers for the two manifest-shaped output sinks:
//   - the deduplicated shipping list, for audit and reuse
//   - the intermediate FOB price list produced by the FOB stage
//
// Both write a single sheet with a fixed English header row. Decimal values
// cross the cell boundary as float64; nullable fields stay blank.
//
// =============================================================================

package manifest

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// dedupedHeader is the column order of the deduplicated manifest sheet.
var dedupedHeader = []interface{}{
	"NO.", "P/N", "Supplier", "Project Name", "Factory",
	"Customs Description (EN)", "Customs Description (CN)", "DESCRIPTION",
	"Invoice Name", "Material Name", "Model NO.", "Qty", "Unit",
	"Carton Measurement (CM)", "Volume (CBM)", "Total Volume (CBM)",
	"Unit Gross Weight (kg)", "Total Gross Weight (kg)",
	"Unit Net Weight (kg)", "Total Net Weight (kg)",
	"Full Carton Qty", "Piece Count", "CTN NO.",
	"Export Customs Method", "Purchasing Unit",
	"Unit Price (RMB)", "Tax Rate",
}

// WriteDeduped writes the deduplicated manifest to an xlsx workbook.
func WriteDeduped(path string, rows []Row) error {
	return writeSheet(path, "Deduplicated List", dedupedHeader, rows, nil)
}

// WriteFOB writes the intermediate FOB price list: the deduplicated
// manifest columns followed by the two FOB price columns.
func WriteFOB(path string, rows []PricedRow) error {
	header := append(append([]interface{}{}, dedupedHeader...),
		"FOB Unit Price (RMB)", "FOB Total Price (RMB)")

	plain := make([]Row, len(rows))
	extra := make([][]interface{}, len(rows))
	for i, row := range rows {
		plain[i] = row.Row
		extra[i] = []interface{}{
			row.FOBUnitPrice.InexactFloat64(),
			row.FOBTotalPrice.InexactFloat64(),
		}
	}
	return writeSheet(path, "FOB Prices", header, plain, extra)
}

// writeSheet writes header plus one line per row, appending the matching
// extra cells when provided.
func writeSheet(path, sheetName string, header []interface{}, rows []Row, extra [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cells := rowCells(row)
		if extra != nil {
			cells = append(cells, extra[i]...)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// rowCells flattens a Row into the dedupedHeader column order.
func rowCells(row Row) []interface{} {
	var totalNet interface{}
	if row.TotalNetWeight != nil {
		totalNet = row.TotalNetWeight.InexactFloat64()
	}
	var unitPrice interface{}
	if row.UnitPrice != nil {
		unitPrice = row.UnitPrice.InexactFloat64()
	}

	return []interface{}{
		row.SequenceNo,
		row.PartNumber,
		row.Supplier,
		row.ProjectName,
		row.Factory,
		row.CustomsDescEN,
		row.CustomsDescCN,
		row.DescriptionEN,
		row.InvoiceName,
		row.MaterialName,
		row.Model,
		row.Quantity.InexactFloat64(),
		row.Unit,
		row.CartonMeasurement,
		row.UnitVolume.InexactFloat64(),
		row.TotalVolume.InexactFloat64(),
		row.UnitGrossWeight.InexactFloat64(),
		row.TotalGrossWeight.InexactFloat64(),
		row.UnitNetWeight.InexactFloat64(),
		totalNet,
		row.FullCartonQuantity.InexactFloat64(),
		row.PieceCount.InexactFloat64(),
		row.CartonNo,
		row.ExportCustomsMethod,
		row.PurchasingUnit,
		unitPrice,
		row.TaxRate,
	}
}
