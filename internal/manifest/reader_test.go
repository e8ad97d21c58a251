package manifest

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeTestManifest builds a manifest workbook fixture on disk.
func writeTestManifest(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	header := []interface{}{
		"Sr NO", "P/N", "Supplier", "DESCRIPTION", "MODEL",
		"QUANTITY", "Unit", "G.W", "N.W", "Unit Price",
	}

	path := filepath.Join(t.TempDir(), "manifest.xlsx")
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadParsesRows(t *testing.T) {
	path := writeTestManifest(t, [][]interface{}{
		{1, "PN-1001", "Hangzhou Precision", "Steel bracket", "BRK-01", 100, "PCS", 55.0, 50.0, 12.5},
		{2, "PN-2002", "Ningbo Plastics", "ABS housing", "HSG-22", 40, "PCS", 12.0, 10.0, 31.2},
	})

	rows, err := Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 1, first.SequenceNo)
	assert.Equal(t, "PN-1001", first.PartNumber)
	assert.Equal(t, "Hangzhou Precision", first.Supplier)
	assert.Equal(t, "Steel bracket", first.DescriptionEN)
	assert.Equal(t, "BRK-01", first.Model)
	assert.Equal(t, "PCS", first.Unit)
	assert.True(t, first.Quantity.Equal(decimal.NewFromInt(100)))
	assert.True(t, first.TotalGrossWeight.Equal(decimal.NewFromInt(55)))
	require.NotNil(t, first.TotalNetWeight)
	assert.True(t, first.TotalNetWeight.Equal(decimal.NewFromInt(50)))
	require.NotNil(t, first.UnitPrice)
	assert.True(t, first.UnitPrice.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, 2, first.SourceRow)
}

func TestReadEmptyCellsAreNil(t *testing.T) {
	path := writeTestManifest(t, [][]interface{}{
		{1, "PN-1", "", "", "", 10, "PCS", 5.0, nil, nil},
	})

	rows, err := Read(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Absent, not zero: the pipeline distinguishes the two.
	assert.Nil(t, rows[0].TotalNetWeight)
	assert.Nil(t, rows[0].UnitPrice)
}

func TestReadSkipsEmptyRows(t *testing.T) {
	path := writeTestManifest(t, [][]interface{}{
		{1, "PN-1", "", "", "", 10, "PCS", 5.0, 4.0, 1.0},
		{nil, nil, nil, nil, nil, nil, nil, nil, nil, nil},
		{2, "PN-2", "", "", "", 20, "PCS", 6.0, 5.0, 2.0},
	})

	rows, err := Read(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadSchemaMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.xlsx")
	f := excelize.NewFile()
	header := []interface{}{"Foo", "Bar"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{"a", "b"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
	f.Close()

	_, err := Read(path)
	require.Error(t, err)

	var schemaErr *SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestWriteDedupedRoundTrip(t *testing.T) {
	price := decimal.RequireFromString("12.5")
	net := decimal.RequireFromString("50")
	in := []Row{{
		SequenceNo:       1,
		PartNumber:       "PN-1001",
		Supplier:         "Hangzhou Precision",
		DescriptionEN:    "Steel bracket",
		Model:            "BRK-01",
		Quantity:         decimal.NewFromInt(160),
		Unit:             "PCS",
		TotalGrossWeight: decimal.NewFromInt(88),
		TotalNetWeight:   &net,
		UnitPrice:        &price,
	}}

	path := filepath.Join(t.TempDir(), "deduped.xlsx")
	require.NoError(t, WriteDeduped(path, in))

	out, err := Read(path)
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "PN-1001", out[0].PartNumber)
	assert.True(t, out[0].Quantity.Equal(decimal.NewFromInt(160)))
	require.NotNil(t, out[0].UnitPrice)
	assert.True(t, out[0].UnitPrice.Equal(price))
	require.NotNil(t, out[0].TotalNetWeight)
	assert.True(t, out[0].TotalNetWeight.Equal(net))
}
