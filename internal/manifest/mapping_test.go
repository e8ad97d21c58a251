package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveColumnsExactMatch(t *testing.T) {
	header := []string{"Sr NO", "P/N", "QUANTITY", "单价"}

	columns, err := ResolveColumns(header, DefaultAliases())
	require.NoError(t, err)

	assert.Equal(t, 0, columns[FieldSequenceNo])
	assert.Equal(t, 1, columns[FieldPartNumber])
	assert.Equal(t, 2, columns[FieldQuantity])
	assert.Equal(t, 3, columns[FieldUnitPrice])
}

func TestResolveColumnsAnnotatedHeaders(t *testing.T) {
	// Real manifests decorate labels with parenthesized annotations.
	header := []string{
		"Sr NO (序列号)",
		"P/N.（系统料号 ）",
		"QUANTITY （数量）",
		"不含税单价（RMB）",
		"N.W  (KG) 总净重",
		"G.W（KG) 总毛重",
	}

	columns, err := ResolveColumns(header, DefaultAliases())
	require.NoError(t, err)

	assert.Equal(t, 1, columns[FieldPartNumber])
	assert.Equal(t, 2, columns[FieldQuantity])
	assert.Equal(t, 3, columns[FieldUnitPrice])
	assert.Equal(t, 4, columns[FieldTotalNetWeight])
	assert.Equal(t, 5, columns[FieldTotalGrossWeight])
}

func TestResolveColumnsCaseInsensitive(t *testing.T) {
	header := []string{"p/n", "quantity", "unit price"}

	columns, err := ResolveColumns(header, DefaultAliases())
	require.NoError(t, err)
	assert.Equal(t, 0, columns[FieldPartNumber])
	assert.Equal(t, 1, columns[FieldQuantity])
	assert.Equal(t, 2, columns[FieldUnitPrice])
}

func TestResolveColumnsMissingRequiredFields(t *testing.T) {
	header := []string{"Supplier", "MODEL"}

	_, err := ResolveColumns(header, DefaultAliases())
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, []string{"part_number", "quantity", "unit_price"}, schemaErr.Missing)
	assert.Contains(t, schemaErr.Error(), "part_number")
}

func TestResolveColumnsOptionalFieldsMayBeAbsent(t *testing.T) {
	header := []string{"P/N", "QUANTITY", "Unit Price"}

	columns, err := ResolveColumns(header, DefaultAliases())
	require.NoError(t, err)
	assert.False(t, columns.Has(FieldSupplier))
	assert.False(t, columns.Has(FieldTotalNetWeight))
}

func TestResolveColumnsCustomAliases(t *testing.T) {
	aliases := DefaultAliases()
	aliases[FieldPartNumber] = append(aliases[FieldPartNumber], "Item Code")

	header := []string{"Item Code", "QUANTITY", "Unit Price"}
	columns, err := ResolveColumns(header, aliases)
	require.NoError(t, err)
	assert.Equal(t, 0, columns[FieldPartNumber])
}
