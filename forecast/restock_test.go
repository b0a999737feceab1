package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestDemandSharesSumToOne(t *testing.T) {
	sales := []Sale{
		{Date: "2024-01-01", Total: 100, Items: []LineItem{
			{ProductID: intPtr(1), Quantity: 3, UnitPrice: 10},
			{ProductID: intPtr(2), Quantity: 5, UnitPrice: 8},
		}},
		{Date: "2024-01-02", Total: 60, Items: []LineItem{
			{ProductID: intPtr(1), Quantity: 2, UnitPrice: 10},
		}},
	}

	shares := demandShares(sales)

	require.Len(t, shares, 2)
	assert.InDelta(t, 0.5, shares[1], 1e-9)
	assert.InDelta(t, 0.5, shares[2], 1e-9)

	sum := 0.0
	for _, share := range shares {
		sum += share
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestDemandSharesExcludeServiceLines(t *testing.T) {
	sales := []Sale{
		{Date: "2024-01-01", Total: 150, Items: []LineItem{
			{ProductID: intPtr(7), Quantity: 1, UnitPrice: 50},
			{Quantity: 4, UnitPrice: 25}, // grooming, no product ref
		}},
	}

	shares := demandShares(sales)

	require.Len(t, shares, 1)
	assert.InDelta(t, 1.0, shares[7], 1e-9)
}

func TestDemandSharesNoProductSales(t *testing.T) {
	sales := []Sale{
		{Date: "2024-01-01", Total: 80, Items: []LineItem{
			{Quantity: 2, UnitPrice: 40}, // service line only
		}},
	}

	assert.Nil(t, demandShares(sales))
}

func TestSuggestRestocksThreshold(t *testing.T) {
	shares := map[int]float64{1: 0.5, 2: 0.5}
	products := []Product{
		{ID: 1, Name: "Ração Premium", Stock: 10},  // demand 50 > 10
		{ID: 2, Name: "Antipulgas", Stock: 80},     // demand 50 <= 80
		{ID: 3, Name: "Shampoo Neutro", Stock: 0},  // never sold
	}

	suggestions := suggestRestocks(products, shares, 100)

	require.Len(t, suggestions, 1)
	s := suggestions[0]
	assert.Equal(t, "Ração Premium", s.ProductName)
	assert.Equal(t, 10, s.CurrentStock)
	assert.Equal(t, 50, s.EstimatedSales30Days)
	assert.Equal(t, "Estoque recomendado: 40 unidades.", s.Suggestion)
}

func TestSuggestRestocksZeroingStockOnlyEnlarges(t *testing.T) {
	shares := map[int]float64{1: 1.0}

	withStock := suggestRestocks([]Product{{ID: 1, Name: "Ração", Stock: 20}}, shares, 100)
	noStock := suggestRestocks([]Product{{ID: 1, Name: "Ração", Stock: 0}}, shares, 100)

	require.Len(t, withStock, 1)
	require.Len(t, noStock, 1)
	assert.Equal(t, "Estoque recomendado: 80 unidades.", withStock[0].Suggestion)
	assert.Equal(t, "Estoque recomendado: 100 unidades.", noStock[0].Suggestion)
}

func TestSuggestRestocksRoundsHalfUp(t *testing.T) {
	// demand 10.5 with stock 0 rounds to 11, not banker's 10
	shares := map[int]float64{1: 1.0}
	products := []Product{{ID: 1, Name: "Vermífugo", Stock: 0}}

	suggestions := suggestRestocks(products, shares, 10.5)

	require.Len(t, suggestions, 1)
	assert.Equal(t, 11, suggestions[0].EstimatedSales30Days)
	assert.Equal(t, "Estoque recomendado: 11 unidades.", suggestions[0].Suggestion)
}

func TestSuggestRestocksNeverSoldProductIgnored(t *testing.T) {
	shares := map[int]float64{1: 1.0}
	products := []Product{
		{ID: 1, Name: "Ração", Stock: 0},
		{ID: 99, Name: "Coleira Nova", Stock: 0}, // no share, any stock
	}

	suggestions := suggestRestocks(products, shares, 60)

	require.Len(t, suggestions, 1)
	assert.Equal(t, "Ração", suggestions[0].ProductName)
}
