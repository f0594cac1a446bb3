package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/platewise/platewise/pkg/models"
)

func testTable() Table {
	return Table{
		{Key: "chicken", Min: 3.5, Max: 6.0, Unit: "lb", AvgQuantity: 1},
		{Key: "rice", Min: 1.0, Max: 3.0, Unit: "lb", AvgQuantity: 1},
		{Key: DefaultKey, Min: 1.5, Max: 4.0, Unit: "item", AvgQuantity: 1},
	}
}

func TestEstimateSingleItem(t *testing.T) {
	estimator, err := NewEstimator(testTable())
	require.NoError(t, err)

	estimate, err := estimator.Estimate([]models.BasketItem{
		{Name: "chicken breast", Quantity: 2},
	})
	require.NoError(t, err)

	require.Len(t, estimate.Items, 1)
	item := estimate.Items[0]
	assert.Equal(t, "chicken breast", item.ItemName)
	assert.InDelta(t, 7.0, item.MinCost, 1e-9)
	assert.InDelta(t, 12.0, item.MaxCost, 1e-9)
	assert.InDelta(t, 9.5, item.EstimatedCost, 1e-9)
	assert.Equal(t, "lb", item.Unit)
}

func TestEstimateUnmatchedItemFallsBackToDefault(t *testing.T) {
	estimator, err := NewEstimator(testTable())
	require.NoError(t, err)

	estimate, err := estimator.Estimate([]models.BasketItem{
		{Name: "dragonfruit"},
	})
	require.NoError(t, err)

	require.Len(t, estimate.Items, 1)
	assert.Equal(t, "item", estimate.Items[0].Unit)
	assert.InDelta(t, 1.5, estimate.Items[0].MinCost, 1e-9)
	assert.InDelta(t, 4.0, estimate.Items[0].MaxCost, 1e-9)
}

func TestEstimateTableOrderEncodesPriority(t *testing.T) {
	table := Table{
		{Key: "chicken", Min: 3.5, Max: 6.0, Unit: "lb", AvgQuantity: 1},
		{Key: "rice", Min: 1.0, Max: 3.0, Unit: "lb", AvgQuantity: 1},
		{Key: DefaultKey, Min: 1.5, Max: 4.0, Unit: "item", AvgQuantity: 1},
	}
	estimator, err := NewEstimator(table)
	require.NoError(t, err)

	// "chicken rice bowl" could match both keys; the first wins
	estimate, err := estimator.Estimate([]models.BasketItem{
		{Name: "chicken rice bowl"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, estimate.Items[0].MinCost, 1e-9)
}

func TestEstimateMissingQuantityDefaultsToOne(t *testing.T) {
	estimator, err := NewEstimator(testTable())
	require.NoError(t, err)

	estimate, err := estimator.Estimate([]models.BasketItem{
		{Name: "rice"},
	})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, estimate.Items[0].MinCost, 1e-9)
	assert.InDelta(t, 3.0, estimate.Items[0].MaxCost, 1e-9)
}

func TestEstimateTotalsInvariant(t *testing.T) {
	estimator, err := NewEstimator(testTable())
	require.NoError(t, err)

	estimate, err := estimator.Estimate([]models.BasketItem{
		{Name: "chicken thighs", Quantity: 3},
		{Name: "brown rice", Quantity: 2},
		{Name: "mystery snack"},
	})
	require.NoError(t, err)

	var minSum, maxSum float64
	for _, item := range estimate.Items {
		minSum += item.MinCost
		maxSum += item.MaxCost
	}
	assert.InDelta(t, minSum, estimate.MinTotal, 1e-9)
	assert.InDelta(t, maxSum, estimate.MaxTotal, 1e-9)
	assert.InDelta(t, (estimate.MinTotal+estimate.MaxTotal)/2, estimate.EstimatedTotal, 1e-9)
}

func TestEstimateEmptyBasket(t *testing.T) {
	estimator, err := NewEstimator(testTable())
	require.NoError(t, err)

	estimate, err := estimator.Estimate(nil)
	require.NoError(t, err)
	assert.Zero(t, estimate.EstimatedTotal)
	assert.Zero(t, estimate.MinTotal)
	assert.Zero(t, estimate.MaxTotal)
	assert.Empty(t, estimate.Items)
}

func TestEstimateRejectsNamelessItem(t *testing.T) {
	estimator, err := NewEstimator(testTable())
	require.NoError(t, err)

	_, err = estimator.Estimate([]models.BasketItem{
		{Name: "rice"},
		{Name: "   "},
	})
	assert.Error(t, err)
}

func TestTableValidation(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"missing default", Table{{Key: "rice", Min: 1, Max: 2, Unit: "lb", AvgQuantity: 1}}},
		{"empty key", Table{{Key: "", Min: 1, Max: 2, Unit: "lb", AvgQuantity: 1}, {Key: DefaultKey, Min: 1, Max: 2, Unit: "item", AvgQuantity: 1}}},
		{"inverted range", Table{{Key: "rice", Min: 5, Max: 2, Unit: "lb", AvgQuantity: 1}, {Key: DefaultKey, Min: 1, Max: 2, Unit: "item", AvgQuantity: 1}}},
		{"zero avg quantity", Table{{Key: "rice", Min: 1, Max: 2, Unit: "lb", AvgQuantity: 0}, {Key: DefaultKey, Min: 1, Max: 2, Unit: "item", AvgQuantity: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.table.Validate())
		})
	}

	assert.NoError(t, testTable().Validate())
	assert.NoError(t, DefaultTable().Validate())
}

func TestDefaultTableChickenEstimate(t *testing.T) {
	estimator, err := NewEstimator(DefaultTable())
	require.NoError(t, err)

	estimate, err := estimator.Estimate([]models.BasketItem{
		{Name: "chicken breast", Quantity: 2},
	})
	require.NoError(t, err)
	assert.InDelta(t, 7.0, estimate.Items[0].MinCost, 1e-9)
	assert.InDelta(t, 12.0, estimate.Items[0].MaxCost, 1e-9)
	assert.InDelta(t, 9.5, estimate.Items[0].EstimatedCost, 1e-9)
}
