// =============================================================================
// Shipping List Processor - Column Mapping
// =============================================================================
//
// This module resolves the header row of a manifest workbook against a
// configurable alias table. Each canonical field name maps to one or more
// accepted source column labels; resolution happens once at load time and
// any unresolved required field is reported as a schema mismatch listing
// every missing canonical field.
//
// Matching is attempted in three passes, mirroring how operators actually
// label these workbooks (mixed English/Chinese headers, annotations in
// parentheses):
//   1. exact label match
//   2. case-insensitive label match
//   3. substring match, for labels of at least three characters, so that
//      a header like "P/N.（系统料号）" still resolves to part_number
//
// =============================================================================

package manifest

import (
	"fmt"
	"sort"
	"strings"
)

// Canonical field names for manifest columns.
const (
	FieldSequenceNo          = "sequence_no"
	FieldPartNumber          = "part_number"
	FieldSupplier            = "supplier"
	FieldProjectName         = "project_name"
	FieldFactory             = "factory"
	FieldCustomsDescEN       = "customs_desc_en"
	FieldCustomsDescCN       = "customs_desc_cn"
	FieldDescriptionEN       = "description_en"
	FieldInvoiceName         = "invoice_name"
	FieldMaterialName        = "material_name"
	FieldModel               = "model"
	FieldQuantity            = "quantity"
	FieldUnit                = "unit"
	FieldCartonMeasurement   = "carton_measurement"
	FieldUnitVolume          = "unit_volume"
	FieldTotalVolume         = "total_volume"
	FieldUnitGrossWeight     = "unit_gross_weight"
	FieldTotalGrossWeight    = "total_gross_weight"
	FieldUnitNetWeight       = "unit_net_weight"
	FieldTotalNetWeight      = "total_net_weight"
	FieldFullCartonQuantity  = "full_carton_quantity"
	FieldPieceCount          = "piece_count"
	FieldCartonNo            = "carton_no"
	FieldExportCustomsMethod = "export_customs_method"
	FieldPurchasingUnit      = "purchasing_unit"
	FieldUnitPrice           = "unit_price"
	FieldTaxRate             = "tax_rate"
)

// RequiredFields are the canonical fields the pipeline cannot run without.
// All other fields degrade to empty values when their column is absent.
var RequiredFields = []string{
	FieldPartNumber,
	FieldQuantity,
	FieldUnitPrice,
}

// DefaultAliases returns the built-in alias table. The labels cover the
// header variants seen in real shipping list workbooks; a configuration
// file can extend or replace individual entries.
func DefaultAliases() map[string][]string {
	return map[string][]string{
		FieldSequenceNo:          {"Sr NO (序列号)", "Sr NO", "序列号", "Serial No", "Serial Number", "NO."},
		FieldPartNumber:          {"P/N.（系统料号 ）", "P/N.", "P/N", "Part Number", "料号", "系统料号"},
		FieldSupplier:            {"供应商", "Supplier"},
		FieldProjectName:         {"项目名称", "Project Name"},
		FieldFactory:             {"工厂(Daman/Silvassa)", "工厂", "Factory"},
		FieldCustomsDescEN:       {"清关英文货描（关务提供）", "清关英文货描", "Customs Description"},
		FieldCustomsDescCN:       {"报关中文品名", "中文品名"},
		FieldDescriptionEN:       {"DESCRIPTION (系统英文品名）", "DESCRIPTION", "英文品名"},
		FieldInvoiceName:         {"开票名称", "Invoice Name"},
		FieldMaterialName:        {"物料名称", "Material Name"},
		FieldModel:               {"MODEL（货物型号（与实物相符)", "MODEL", "货物型号"},
		FieldQuantity:            {"QUANTITY （数量）", "QUANTITY", "数量", "Qty"},
		FieldUnit:                {"单位", "Unit"},
		FieldCartonMeasurement:   {"Carton MEASUREMENT (外箱尺寸CM）", "Carton MEASUREMENT", "外箱尺寸"},
		FieldUnitVolume:          {"体积（CBM）", "体积", "Volume"},
		FieldTotalVolume:         {"总体积", "Total Volume"},
		FieldUnitGrossWeight:     {"单件毛重", "Unit Gross Weight"},
		FieldTotalGrossWeight:    {"G.W（KG) 总毛重", "G.W", "总毛重", "Total Gross Weight"},
		FieldUnitNetWeight:       {"单件净重", "Unit Net Weight"},
		FieldTotalNetWeight:      {"N.W  (KG) 总净重", "N.W", "总净重", "Total Net Weight"},
		FieldFullCartonQuantity:  {"整箱数量", "Full Carton Quantity"},
		FieldPieceCount:          {"件数", "Piece Count"},
		FieldCartonNo:            {"CTN NO. (箱号)", "CTN NO.", "箱号"},
		FieldExportCustomsMethod: {"出口报关方式", "Export Customs Method"},
		FieldPurchasingUnit:      {"采购单位（智乐/UC/客供/供应商赠送/系统外订单）", "采购单位", "Purchasing Unit"},
		FieldUnitPrice:           {"不含税单价（RMB）", "不含税单价", "单价", "Unit Price"},
		FieldTaxRate:             {"开票税率", "Tax Rate"},
	}
}

// SchemaError reports canonical fields that could not be resolved against
// the workbook header row.
type SchemaError struct {
	// Missing lists the unresolved canonical field names, sorted.
	Missing []string

	// Header is the header row that was inspected, for diagnostics.
	Header []string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema mismatch: no column found for field(s) %s",
		strings.Join(e.Missing, ", "))
}

// ColumnMap is the result of header resolution: canonical field name to
// 0-based column index.
type ColumnMap map[string]int

// Has reports whether the canonical field resolved to a column.
func (m ColumnMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// ResolveColumns matches the workbook header row against the alias table.
// It returns a SchemaError when any field in RequiredFields is unresolved;
// optional fields are simply left out of the map.
func ResolveColumns(header []string, aliases map[string][]string) (ColumnMap, error) {
	columns := make(ColumnMap)

	for field, labels := range aliases {
		if idx, ok := matchColumn(header, labels); ok {
			columns[field] = idx
		}
	}

	var missing []string
	for _, field := range RequiredFields {
		if !columns.Has(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &SchemaError{Missing: missing, Header: header}
	}

	return columns, nil
}

// matchColumn finds the first header cell matching any of the labels.
// Exact matches win over case-insensitive matches, which win over
// substring matches.
func matchColumn(header []string, labels []string) (int, bool) {
	for _, label := range labels {
		for i, cell := range header {
			if cell == label {
				return i, true
			}
		}
	}

	for _, label := range labels {
		for i, cell := range header {
			if strings.EqualFold(strings.TrimSpace(cell), label) {
				return i, true
			}
		}
	}

	for _, label := range labels {
		// Very short labels produce false substring matches.
		if len(label) < 3 {
			continue
		}
		lower := strings.ToLower(label)
		for i, cell := range header {
			if strings.Contains(strings.ToLower(cell), lower) {
				return i, true
			}
		}
	}

	return 0, false
}
