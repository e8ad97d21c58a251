package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzlogistics/shiplist/internal/manifest"
)

func testPipeline() Pipeline {
	policy, rate, rates := cifInputs()
	return Pipeline{Policy: policy, ShippingRate: rate, ExchangeRates: rates}
}

func pipelineRows() []manifest.Row {
	a := testRow(1, "PN-1", "10", "5")
	a.TotalNetWeight = decPtr("20")

	b := testRow(2, "PN-2", "4.8", "500")
	b.TotalGrossWeight = dec("10")

	c := testRow(3, "PN-1", "10", "3")
	c.TotalNetWeight = decPtr("12")

	return []manifest.Row{a, b, c}
}

func TestPipelineRunDedupesThenPrices(t *testing.T) {
	result, err := testPipeline().Run(pipelineRows())
	require.NoError(t, err)

	require.Len(t, result.Deduped, 2)
	require.Len(t, result.Priced, 2)

	merged := result.Priced[0]
	assert.Equal(t, "PN-1", merged.PartNumber)
	assert.True(t, merged.Quantity.Equal(dec("8")))
	require.NotNil(t, merged.TotalNetWeight)
	assert.True(t, merged.TotalNetWeight.Equal(dec("32")))

	// goods cost 8 x 12 x 1.1 = 105.6; shipping 32 x 2 = 64;
	// total 169.6 RMB; unit 21.2 RMB.
	assert.True(t, merged.CIFUnitPriceRMB.Equal(dec("21.2")), "got %s", merged.CIFUnitPriceRMB)
}

func TestPipelineRunIsIdempotent(t *testing.T) {
	pipeline := testPipeline()

	first, err := pipeline.Run(pipelineRows())
	require.NoError(t, err)
	second, err := pipeline.Run(pipelineRows())
	require.NoError(t, err)

	require.Equal(t, len(first.Priced), len(second.Priced))
	for i := range first.Priced {
		a, b := first.Priced[i], second.Priced[i]
		assert.Equal(t, a.PartNumber, b.PartNumber)
		assert.True(t, a.CIFUnitPriceUSD.Equal(b.CIFUnitPriceUSD))
		assert.True(t, a.CIFTotalAmountUSD.Equal(b.CIFTotalAmountUSD))
	}
}

func TestPipelineRunAbortsOnBadRow(t *testing.T) {
	rows := pipelineRows()
	rows = append(rows, testRow(4, "PN-BAD", "10", "0"))

	result, err := testPipeline().Run(rows)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDivisionUndefined)

	// All-or-nothing: no partial output.
	assert.Nil(t, result.Priced)
	assert.Nil(t, result.Deduped)

	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, "PN-BAD", rowErr.PartNumber)
}
