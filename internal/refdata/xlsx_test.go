package refdata_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hzlogistics/shiplist/internal/refdata"
	"github.com/hzlogistics/shiplist/internal/sample"
)

// sampleFiles generates the sample reference workbooks and returns the
// policy, shipping rate and exchange rate paths.
func sampleFiles(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	_, err := sample.Generate(dir)
	require.NoError(t, err)
	return filepath.Join(dir, "sample_policy.xlsx"),
		filepath.Join(dir, "sample_shipping_rate.xlsx"),
		filepath.Join(dir, "sample_exchange_rate.xlsx")
}

func TestPolicySourceConvertsPercentages(t *testing.T) {
	policyPath, _, _ := sampleFiles(t)

	policy, err := refdata.XLSXPolicySource{Path: policyPath}.Policy()
	require.NoError(t, err)

	// Stored as 15 / 2.5 / 1.05 in the workbook.
	assert.True(t, policy.MarkupPercentage.Equal(decimal.RequireFromString("0.15")),
		"got %s", policy.MarkupPercentage)
	assert.True(t, policy.InsuranceRate.Equal(decimal.RequireFromString("0.025")),
		"got %s", policy.InsuranceRate)
	assert.True(t, policy.InsuranceCoefficient.Equal(decimal.RequireFromString("1.05")))
}

func TestPolicySourceDefaultsCoefficient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.xlsx")
	writeRefWorkbook(t, path,
		[]interface{}{"markup_percentage", "insurance_rate"},
		[]interface{}{10, 2})

	policy, err := refdata.XLSXPolicySource{Path: path}.Policy()
	require.NoError(t, err)
	assert.True(t, policy.InsuranceCoefficient.Equal(decimal.NewFromInt(1)))
}

func TestPolicySourceRequiresMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.xlsx")
	writeRefWorkbook(t, path,
		[]interface{}{"insurance_rate"},
		[]interface{}{2})

	_, err := refdata.XLSXPolicySource{Path: path}.Policy()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "markup_percentage")
}

func TestShippingRateSource(t *testing.T) {
	_, ratePath, _ := sampleFiles(t)

	rate, err := refdata.XLSXShippingRateSource{Path: ratePath}.ShippingRate()
	require.NoError(t, err)

	assert.True(t, rate.RMBPerKg.Equal(decimal.RequireFromString("2.75")))
	assert.Equal(t, "Sample Carrier", rate.Carrier)
	assert.NotEmpty(t, rate.EffectiveDate)
}

func TestExchangeRateSource(t *testing.T) {
	_, _, fxPath := sampleFiles(t)

	rates, err := refdata.XLSXExchangeRateSource{Path: fxPath}.ExchangeRates()
	require.NoError(t, err)

	assert.True(t, rates.RMBToUSD.Equal(decimal.RequireFromString("6.85")))
	require.NotNil(t, rates.RMBToRupee)
	assert.True(t, rates.RMBToRupee.Equal(decimal.RequireFromString("0.085")))
	require.NotNil(t, rates.USDToRupee)
	assert.True(t, rates.USDToRupee.Equal(decimal.RequireFromString("82.5")))
}

func TestExchangeRateSourceOptionalRatesAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.xlsx")
	writeRefWorkbook(t, path,
		[]interface{}{"RMB_USD"},
		[]interface{}{7})

	rates, err := refdata.XLSXExchangeRateSource{Path: path}.ExchangeRates()
	require.NoError(t, err)
	assert.True(t, rates.RMBToUSD.Equal(decimal.NewFromInt(7)))
	assert.Nil(t, rates.RMBToRupee)
	assert.Nil(t, rates.USDToRupee)
}

func TestExchangeRateSourceRequiresUSDRate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.xlsx")
	writeRefWorkbook(t, path,
		[]interface{}{"RMB_RUPEE"},
		[]interface{}{0.085})

	_, err := refdata.XLSXExchangeRateSource{Path: path}.ExchangeRates()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RMB_USD")
}

func writeRefWorkbook(t *testing.T, path string, header, row []interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
}
