// =============================================================================
// Shipping List Processor - Manifest Workbook Reader
// =============================================================================
//
// This module reads a shipping manifest workbook into an ordered slice of
// normalized rows. The reader:
//   - opens the workbook and takes the first sheet
//   - resolves the header row against the column alias table
//   - parses each data row, skipping fully empty rows
//   - reports parse failures with the offending workbook row number
//
// Numeric cells are parsed into decimal.Decimal. An unparsable or empty
// cell in a nullable field (unit price, total net weight) yields nil; an
// empty cell in any other numeric field yields zero. Validation of value
// domains (positive quantity and so on) is the pricing pipeline's job.
//
// =============================================================================

package manifest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReadOptions controls how the manifest workbook is read.
type ReadOptions struct {
	// HeaderRow is the 1-based row holding the column labels.
	HeaderRow int

	// Aliases maps canonical field names to accepted column labels.
	// Nil means DefaultAliases().
	Aliases map[string][]string
}

// DefaultReadOptions returns the options used when none are supplied.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{HeaderRow: 1}
}

// Read loads the manifest workbook at path using default options.
func Read(path string) ([]Row, error) {
	return ReadWithOptions(path, DefaultReadOptions())
}

// ReadWithOptions loads the manifest workbook at path.
func ReadWithOptions(path string, opts ReadOptions) ([]Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("manifest workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	if opts.HeaderRow <= 0 {
		opts.HeaderRow = 1
	}
	if len(rows) < opts.HeaderRow {
		return nil, fmt.Errorf("manifest workbook has no header row")
	}

	aliases := opts.Aliases
	if aliases == nil {
		aliases = DefaultAliases()
	}

	columns, err := ResolveColumns(rows[opts.HeaderRow-1], aliases)
	if err != nil {
		return nil, err
	}

	var out []Row
	for i := opts.HeaderRow; i < len(rows); i++ {
		cells := rows[i]
		if isRowEmpty(cells) {
			continue
		}

		row, err := parseRow(cells, columns, i+1)
		if err != nil {
			return nil, fmt.Errorf("manifest row %d: %w", i+1, err)
		}
		out = append(out, row)
	}

	return out, nil
}

// parseRow converts one raw workbook row into a Row.
func parseRow(cells []string, columns ColumnMap, sourceRow int) (Row, error) {
	get := func(field string) string {
		idx, ok := columns[field]
		if !ok || idx >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[idx])
	}

	row := Row{
		PartNumber:          get(FieldPartNumber),
		Supplier:            get(FieldSupplier),
		ProjectName:         get(FieldProjectName),
		Factory:             get(FieldFactory),
		CustomsDescEN:       get(FieldCustomsDescEN),
		CustomsDescCN:       get(FieldCustomsDescCN),
		DescriptionEN:       get(FieldDescriptionEN),
		InvoiceName:         get(FieldInvoiceName),
		MaterialName:        get(FieldMaterialName),
		Model:               get(FieldModel),
		Unit:                get(FieldUnit),
		CartonMeasurement:   get(FieldCartonMeasurement),
		CartonNo:            get(FieldCartonNo),
		ExportCustomsMethod: get(FieldExportCustomsMethod),
		PurchasingUnit:      get(FieldPurchasingUnit),
		TaxRate:             get(FieldTaxRate),
		SourceRow:           sourceRow,
	}

	row.SequenceNo = parseInt(get(FieldSequenceNo))
	row.Quantity = parseDecimal(get(FieldQuantity))
	row.UnitVolume = parseDecimal(get(FieldUnitVolume))
	row.TotalVolume = parseDecimal(get(FieldTotalVolume))
	row.UnitGrossWeight = parseDecimal(get(FieldUnitGrossWeight))
	row.TotalGrossWeight = parseDecimal(get(FieldTotalGrossWeight))
	row.UnitNetWeight = parseDecimal(get(FieldUnitNetWeight))
	row.FullCartonQuantity = parseDecimal(get(FieldFullCartonQuantity))
	row.PieceCount = parseDecimal(get(FieldPieceCount))
	row.TotalNetWeight = parseNullableDecimal(get(FieldTotalNetWeight))
	row.UnitPrice = parseNullableDecimal(get(FieldUnitPrice))

	return row, nil
}

// parseDecimal parses a numeric cell, treating empty or unparsable values
// as zero. Thousands separators are tolerated.
func parseDecimal(s string) decimal.Decimal {
	d := parseNullableDecimal(s)
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// parseNullableDecimal parses a numeric cell, returning nil for empty or
// unparsable values so that callers can distinguish absent from zero.
func parseNullableDecimal(s string) *decimal.Decimal {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}

// parseInt parses an integer cell, tolerating decimal formatting such as
// "3.0" that spreadsheets produce for numeric cells.
func parseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return int(d.IntPart())
	}
	return 0
}

// isRowEmpty reports whether every cell in the row is blank.
func isRowEmpty(cells []string) bool {
	for _, cell := range cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
