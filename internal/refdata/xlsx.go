// =============================================================================
// Shipping List Processor - Reference Workbook Loaders
// =============================================================================
//
// xlsx-backed implementations of the reference data sources. Each reference
// workbook carries a header row plus a single data row; values are looked
// up by column name, case-insensitively.
//
// The policy workbook stores markup_percentage and insurance_rate as
// percentages (15 means 15%); the loaders convert them to fractions.
// insurance_coefficient is a plain multiplier and is taken as-is.
//
// =============================================================================

package refdata

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

var oneHundred = decimal.NewFromInt(100)

// XLSXPolicySource reads the policy from an xlsx workbook.
type XLSXPolicySource struct {
	Path string
}

// Policy implements PolicySource.
func (s XLSXPolicySource) Policy() (Policy, error) {
	sheet, err := readSingleRowSheet(s.Path)
	if err != nil {
		return Policy{}, fmt.Errorf("failed to read policy workbook: %w", err)
	}

	markup, err := sheet.decimal("markup_percentage")
	if err != nil {
		return Policy{}, err
	}
	insurance, err := sheet.decimal("insurance_rate")
	if err != nil {
		return Policy{}, err
	}

	policy := Policy{
		MarkupPercentage:     markup.Div(oneHundred),
		InsuranceRate:        insurance.Div(oneHundred),
		InsuranceCoefficient: DefaultInsuranceCoefficient,
	}
	if coeff, err := sheet.decimal("insurance_coefficient"); err == nil {
		policy.InsuranceCoefficient = coeff
	}
	return policy, nil
}

// XLSXShippingRateSource reads the shipping rate from an xlsx workbook.
type XLSXShippingRateSource struct {
	Path string
}

// ShippingRate implements ShippingRateSource.
func (s XLSXShippingRateSource) ShippingRate() (ShippingRate, error) {
	sheet, err := readSingleRowSheet(s.Path)
	if err != nil {
		return ShippingRate{}, fmt.Errorf("failed to read shipping rate workbook: %w", err)
	}

	rate, err := sheet.decimal("shipping_rate")
	if err != nil {
		return ShippingRate{}, err
	}

	return ShippingRate{
		RMBPerKg:      rate,
		Carrier:       sheet.text("carrier"),
		EffectiveDate: sheet.text("effective_date"),
		ExpiryDate:    sheet.text("expiry_date"),
		Notes:         sheet.text("notes"),
	}, nil
}

// XLSXExchangeRateSource reads the exchange rates from an xlsx workbook.
type XLSXExchangeRateSource struct {
	Path string
}

// ExchangeRates implements ExchangeRateSource.
func (s XLSXExchangeRateSource) ExchangeRates() (ExchangeRates, error) {
	sheet, err := readSingleRowSheet(s.Path)
	if err != nil {
		return ExchangeRates{}, fmt.Errorf("failed to read exchange rate workbook: %w", err)
	}

	usd, err := sheet.decimal("RMB_USD")
	if err != nil {
		return ExchangeRates{}, err
	}

	rates := ExchangeRates{RMBToUSD: usd}
	if rupee, err := sheet.decimal("RMB_RUPEE"); err == nil && !rupee.IsZero() {
		rates.RMBToRupee = &rupee
	}
	if cross, err := sheet.decimal("USD_RUPEE"); err == nil && !cross.IsZero() {
		rates.USDToRupee = &cross
	}
	return rates, nil
}

// =============================================================================
// SINGLE-ROW SHEET ACCESS
// =============================================================================

// singleRowSheet is a header row plus the first data row of a workbook.
type singleRowSheet struct {
	path   string
	header []string
	values []string
}

// readSingleRowSheet opens the workbook and captures its first sheet's
// header and first data row.
func readSingleRowSheet(path string) (*singleRowSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("workbook %s has no data row", path)
	}

	return &singleRowSheet{path: path, header: rows[0], values: rows[1]}, nil
}

// decimal returns the named column parsed as a decimal.
func (s *singleRowSheet) decimal(column string) (decimal.Decimal, error) {
	raw, ok := s.lookup(column)
	if !ok || strings.TrimSpace(raw) == "" {
		return decimal.Zero, fmt.Errorf("workbook %s: column %q absent or empty", s.path, column)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("workbook %s: column %q: %w", s.path, column, err)
	}
	return d, nil
}

// text returns the named column as trimmed text, empty when absent.
func (s *singleRowSheet) text(column string) string {
	raw, _ := s.lookup(column)
	return strings.TrimSpace(raw)
}

// lookup finds the value under the named header, case-insensitively.
func (s *singleRowSheet) lookup(column string) (string, bool) {
	for i, name := range s.header {
		if strings.EqualFold(strings.TrimSpace(name), column) {
			if i < len(s.values) {
				return s.values[i], true
			}
			return "", true
		}
	}
	return "", false
}
