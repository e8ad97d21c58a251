// =============================================================================
// Shipping List Processor - Receipt Workbook Writer
// =============================================================================
//
// Writes the export and re-import receipts as xlsx workbooks. Each
// workbook carries the receipt sheet plus a Metadata sheet recording when
// the document was generated, matching what downstream customs brokers
// expect from these files.
//
// =============================================================================

package receipt

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// WriteOptions controls workbook generation.
type WriteOptions struct {
	// SheetName overrides the receipt sheet name.
	SheetName string

	// IncludeMetadata adds the Metadata sheet with the generation time.
	IncludeMetadata bool

	// GeneratedAt is the timestamp recorded in the Metadata sheet.
	// Zero means time.Now().
	GeneratedAt time.Time
}

// DefaultWriteOptions returns the options used when none are supplied.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{IncludeMetadata: true}
}

// WriteExport writes the export receipt workbook.
func WriteExport(path string, rows []ExportRow, opts WriteOptions) error {
	if opts.SheetName == "" {
		opts.SheetName = "Export Receipt"
	}
	cells := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells[i] = exportCells(row)
	}
	return writeWorkbook(path, opts, ExportColumns, cells)
}

// WriteReimport writes the re-import receipt workbook.
func WriteReimport(path string, rows []ReimportRow, opts WriteOptions) error {
	if opts.SheetName == "" {
		opts.SheetName = "Re-Import Receipt"
	}
	cells := make([][]interface{}, len(rows))
	for i, row := range rows {
		line := exportCells(row.ExportRow)
		line = append(line,
			row.CustomsDescEN,
			row.CustomsDescCN,
			row.UnitNetWeight.InexactFloat64(),
			nullableFloat(row.TotalNetWeight),
			row.UnitGrossWeight.InexactFloat64(),
			row.TotalGrossWeight.InexactFloat64(),
		)
		cells[i] = line
	}
	return writeWorkbook(path, opts, ReimportColumns, cells)
}

// exportCells flattens the base projection into the export column order.
func exportCells(row ExportRow) []interface{} {
	return []interface{}{
		row.No,
		row.PartNumber,
		row.Description,
		row.Model,
		row.UnitPriceUSD.InexactFloat64(),
		row.Quantity.InexactFloat64(),
		row.Unit,
		row.AmountUSD.InexactFloat64(),
	}
}

// writeWorkbook writes the receipt sheet and optional Metadata sheet.
func writeWorkbook(path string, opts WriteOptions, columns []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", opts.SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(opts.SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(opts.SheetName, cell, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if opts.IncludeMetadata {
		if err := writeMetadataSheet(f, opts.GeneratedAt); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeMetadataSheet records the generation timestamp.
func writeMetadataSheet(f *excelize.File, generatedAt time.Time) error {
	if generatedAt.IsZero() {
		generatedAt = time.Now()
	}
	if _, err := f.NewSheet("Metadata"); err != nil {
		return fmt.Errorf("failed to create metadata sheet: %w", err)
	}
	if err := f.SetCellValue("Metadata", "A1", "Generated Date"); err != nil {
		return err
	}
	return f.SetCellValue("Metadata", "B1", generatedAt.Format("2006-01-02 15:04:05"))
}

// nullableFloat converts an optional decimal to a cell value, leaving the
// cell blank when absent.
func nullableFloat(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}
