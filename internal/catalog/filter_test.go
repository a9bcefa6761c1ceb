package catalog

import (
	"testing"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProducts() []model.Product {
	return []model.Product{
		{ID: "1", Name: "Wireless Headphones", Description: "Bluetooth audio", Brand: "SoundCore", Category: "Electronics", Price: 2999, Rating: 4.5, Stock: 5, InStock: true, Tags: []string{"audio", "wireless"}},
		{ID: "2", Name: "Fitness Watch", Description: "Heart-rate tracking", Brand: "FitTech", Category: "Electronics", Price: 5499, Rating: 4.2, Stock: 0, InStock: false, Tags: []string{"wearable"}, Featured: true},
		{ID: "3", Name: "Denim Jacket", Description: "Stonewashed blue", Brand: "UrbanWear", Category: "Fashion", Price: 1799, Rating: 4.0, Stock: 40, InStock: true, Tags: []string{"casual"}},
		{ID: "4", Name: "Leather Bag", Description: "Fits a laptop", Brand: "UrbanWear", Category: "Fashion", Price: 3499, Rating: 4.6, Stock: 15, InStock: true, Tags: []string{"leather"}, Featured: true},
	}
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestFilterAndSort_TextQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{name: "Matches name", query: "headphones", expected: []string{"1"}},
		{name: "Case insensitive and trimmed", query: "  FITNESS  ", expected: []string{"2"}},
		{name: "Matches description", query: "laptop", expected: []string{"4"}},
		{name: "Matches brand", query: "urbanwear", expected: []string{"3", "4"}},
		{name: "Matches category", query: "electronics", expected: []string{"1", "2"}},
		{name: "Matches tag", query: "wearable", expected: []string{"2"}},
		{name: "No match", query: "zzz", expected: []string{}},
		{name: "Empty query keeps all", query: "", expected: []string{"1", "2", "3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(testProducts(), tt.query, Filter{}, SortNewest)
			assert.ElementsMatch(t, tt.expected, ids(got))
		})
	}
}

func TestFilterAndSort_FacetClauses(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []string
	}{
		{name: "Category", filter: Filter{Category: "Fashion"}, expected: []string{"3", "4"}},
		{name: "Brand set", filter: Filter{Brands: []string{"SoundCore", "FitTech"}}, expected: []string{"1", "2"}},
		{name: "Price range inclusive", filter: Filter{PriceRange: &PriceRange{Min: 1799, Max: 2999}}, expected: []string{"1", "3"}},
		{name: "Minimum rating", filter: Filter{MinRating: 4.5}, expected: []string{"1", "4"}},
		{name: "Stock only", filter: Filter{InStock: true}, expected: []string{"1", "3", "4"}},
		{
			name:     "Clauses are ANDed",
			filter:   Filter{Category: "Fashion", Brands: []string{"UrbanWear"}, MinRating: 4.5},
			expected: []string{"4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(testProducts(), "", tt.filter, SortNewest)
			assert.ElementsMatch(t, tt.expected, ids(got))
		})
	}
}

func TestFilterAndSort_NoFalsePositives(t *testing.T) {
	f := Filter{Category: "Electronics", PriceRange: &PriceRange{Min: 0, Max: 3000}, InStock: true}
	got := FilterAndSort(testProducts(), "", f, SortFeatured)

	for _, p := range got {
		assert.Equal(t, "Electronics", p.Category)
		assert.LessOrEqual(t, p.Price, 3000.0)
		assert.True(t, p.InStock)
	}
}

func TestFilterAndSort_SortKeys(t *testing.T) {
	tests := []struct {
		name     string
		sortKey  string
		expected []string
	}{
		{name: "Price low to high", sortKey: SortPriceLow, expected: []string{"3", "1", "4", "2"}},
		{name: "Price high to low", sortKey: SortPriceHigh, expected: []string{"2", "4", "1", "3"}},
		{name: "Rating descending", sortKey: SortRating, expected: []string{"4", "1", "2", "3"}},
		{name: "Newest by id reverse lexicographic", sortKey: SortNewest, expected: []string{"4", "3", "2", "1"}},
		{name: "Featured first stable", sortKey: SortFeatured, expected: []string{"2", "4", "1", "3"}},
		{name: "Unknown key falls back to featured", sortKey: "bogus", expected: []string{"2", "4", "1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAndSort(testProducts(), "", Filter{}, tt.sortKey)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestFilterAndSort_DoesNotMutateInput(t *testing.T) {
	products := testProducts()

	_ = FilterAndSort(products, "", Filter{}, SortPriceHigh)

	require.Equal(t, []string{"1", "2", "3", "4"}, ids(products))
}
