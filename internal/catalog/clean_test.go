package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperjump/shohin/internal/models"
)

func TestClean_DefaultsAndDedupe(t *testing.T) {
	records := []RawRecord{
		{Name: "iPhone 12", Brand: "Apple", Price: "50000", Image: `["http://img/a.jpg"]`},
		{Name: "  Galaxy Watch ", Brand: "", Price: "20,000"},
		{Name: "", Brand: "Nobody", Price: "1"},
		{Name: "iPhone 12", Brand: "Other", Price: "1"},
		{Name: "USB Cable", Brand: "Boat", Price: "n/a"},
	}
	products, stats := Clean(records, PriceMedian)
	require.Len(t, products, 3)

	assert.Equal(t, "iPhone 12", products[0].Name)
	assert.Equal(t, "Apple", products[0].Brand, "first occurrence wins")
	assert.Equal(t, `["http://img/a.jpg"]`, products[0].ImageRef)
	assert.Equal(t, models.ProductID("iPhone 12"), products[0].ID)

	assert.Equal(t, "Galaxy Watch", products[1].Name)
	assert.Equal(t, models.UnknownBrand, products[1].Brand)
	assert.Equal(t, 20000.0, products[1].Price)

	// Valid prices 50000, 20000, 1, 1 -> median 10000.5
	assert.Equal(t, 10000.5, products[2].Price)

	assert.Equal(t, 5, stats.RowsRead)
	assert.Equal(t, 1, stats.EmptyNames)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, 1, stats.PricesImputed)
	assert.Equal(t, 3, stats.Products)
}

func TestClean_ExactDuplicateRowsCountOnceInMedian(t *testing.T) {
	records := []RawRecord{
		{Name: "A", Price: "100"},
		{Name: "A", Price: "100"},
		{Name: "A", Price: "100"},
		{Name: "B", Price: "300"},
		{Name: "C", Price: ""},
	}
	products, _ := Clean(records, PriceMedian)
	require.Len(t, products, 3)
	assert.Equal(t, 200.0, products[2].Price)
}

func TestClean_ZeroPolicy(t *testing.T) {
	records := []RawRecord{
		{Name: "A", Price: "100"},
		{Name: "B", Price: "-5"},
		{Name: "C", Price: "NaN"},
	}
	products, stats := Clean(records, PriceZero)
	require.Len(t, products, 3)
	assert.Equal(t, 0.0, products[1].Price)
	assert.Equal(t, 0.0, products[2].Price)
	assert.Equal(t, 2, stats.PricesImputed)
}

func TestClean_NoValidPrices(t *testing.T) {
	products, _ := Clean([]RawRecord{{Name: "A"}}, PriceMedian)
	require.Len(t, products, 1)
	assert.Equal(t, 0.0, products[0].Price)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1299", 1299, true},
		{" 1,299.50 ", 1299.5, true},
		{"₹2,500", 2500, true},
		{"0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-1", 0, false},
		{"Inf", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePrice(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}
