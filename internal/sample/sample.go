// =============================================================================
// Shipping List Processor - Sample Workbook Generation
// =============================================================================
//
// Generates a complete set of sample input workbooks so the pipeline can
// be exercised without real customs data:
//   - sample_shipping_list.xlsx  (manifest, includes a duplicated P/N)
//   - sample_policy.xlsx         (markup/insurance policy)
//   - sample_shipping_rate.xlsx  (RMB per kg rate with carrier metadata)
//   - sample_exchange_rate.xlsx  (currency conversion rates)
//
// =============================================================================

package sample

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

// Files lists the sample workbook file names, in generation order.
var Files = []string{
	"sample_shipping_list.xlsx",
	"sample_policy.xlsx",
	"sample_shipping_rate.xlsx",
	"sample_exchange_rate.xlsx",
}

// Generate writes all sample workbooks into dir and returns their paths.
func Generate(dir string) ([]string, error) {
	generators := []func(string) error{
		writeShippingList,
		writePolicy,
		writeShippingRate,
		writeExchangeRates,
	}

	paths := make([]string, 0, len(Files))
	for i, name := range Files {
		path := filepath.Join(dir, name)
		if err := generators[i](path); err != nil {
			return nil, fmt.Errorf("failed to generate %s: %w", name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// writeShippingList writes a small manifest. Rows 1 and 3 share the same
// part number and unit price, so a sample run demonstrates deduplication.
func writeShippingList(path string) error {
	header := []interface{}{
		"Sr NO (序列号)", "P/N.（系统料号 ）", "供应商", "DESCRIPTION (系统英文品名）",
		"报关中文品名", "清关英文货描（关务提供）", "MODEL（货物型号（与实物相符)",
		"QUANTITY （数量）", "单位", "总体积", "单件毛重", "G.W（KG) 总毛重",
		"单件净重", "N.W  (KG) 总净重", "整箱数量", "件数", "不含税单价（RMB）", "开票税率",
	}
	rows := [][]interface{}{
		{1, "PN-1001", "Hangzhou Precision", "Steel bracket", "钢支架", "Steel mounting bracket", "BRK-01",
			100, "PCS", 0.8, 0.55, 55.0, 0.5, 50.0, 10, 10, 12.5, "13%"},
		{2, "PN-2002", "Ningbo Plastics", "ABS housing", "塑料外壳", "Plastic enclosure", "HSG-22",
			40, "PCS", 0.5, 0.3, 12.0, 0.25, 10.0, 4, 4, 31.2, "13%"},
		{3, "PN-1001", "Hangzhou Precision", "Steel bracket", "钢支架", "Steel mounting bracket", "BRK-01",
			60, "PCS", 0.5, 0.55, 33.0, 0.5, 30.0, 6, 6, 12.5, "13%"},
		{4, "PN-3003", "Shenzhen Cables", "Wire harness", "线束", "Cable assembly", "WH-7",
			500, "PCS", 0.3, 0.02, 10.0, 0.018, nil, 2, 2, 4.8, "13%"},
	}
	return writeWorkbook(path, "Shipping List", header, rows)
}

func writePolicy(path string) error {
	header := []interface{}{"markup_percentage", "insurance_rate", "insurance_coefficient"}
	rows := [][]interface{}{{15, 2.5, 1.05}}
	return writeWorkbook(path, "Policy", header, rows)
}

func writeShippingRate(path string) error {
	header := []interface{}{"shipping_rate", "effective_date", "expiry_date", "carrier", "notes"}
	rows := [][]interface{}{
		{2.75, "2023-01-01", "2023-12-31", "Sample Carrier", "Sample shipping rate for demonstration"},
	}
	return writeWorkbook(path, "Shipping Rate", header, rows)
}

func writeExchangeRates(path string) error {
	header := []interface{}{"RMB_USD", "RMB_RUPEE", "USD_RUPEE", "effective_date", "notes"}
	rows := [][]interface{}{
		{6.85, 0.085, 82.5, "2023-01-01", "Sample exchange rates for demonstration"},
	}
	return writeWorkbook(path, "Exchange Rates", header, rows)
}

// writeWorkbook writes a single-sheet workbook with a header row.
func writeWorkbook(path, sheetName string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}
