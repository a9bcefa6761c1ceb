package catalog

import (
	"sort"
	"strings"

	"github.com/Alhamd-Khan/E-Commerce-Platform/internal/model"
)

// Sort keys accepted by FilterAndSort.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortNewest    = "newest"
)

// PriceRange is an inclusive [Min, Max] price filter.
type PriceRange struct {
	Min float64
	Max float64
}

// Filter holds the faceted filter clauses. Zero values mean "clause not
// active"; active clauses are ANDed together.
type Filter struct {
	Category   string
	Brands     []string
	PriceRange *PriceRange
	MinRating  float64
	InStock    bool
}

// FilterAndSort returns the products matching the query and every active
// filter clause, ordered by the sort key. The input slice is never mutated;
// an unknown sort key falls back to featured-first ordering.
func FilterAndSort(products []model.Product, query string, f Filter, sortKey string) []model.Product {
	query = strings.ToLower(strings.TrimSpace(query))

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if matches(p, query, f) {
			filtered = append(filtered, p)
		}
	}

	switch sortKey {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortNewest:
		// Reverse-lexicographic id order, a stand-in for recency that
		// matches the seeded id scheme.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].ID > filtered[j].ID
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Featured && !filtered[j].Featured
		})
	}

	return filtered
}

// matches reports whether p satisfies the query and every active clause of f.
func matches(p model.Product, query string, f Filter) bool {
	if query != "" && !matchesQuery(p, query) {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if len(f.Brands) > 0 && !containsString(f.Brands, p.Brand) {
		return false
	}
	if f.PriceRange != nil && (p.Price < f.PriceRange.Min || p.Price > f.PriceRange.Max) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	if f.InStock && !p.InStock {
		return false
	}
	return true
}

// matchesQuery reports whether the lower-cased query is a substring of the
// product's name, description, brand, category or any tag.
func matchesQuery(p model.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) ||
		strings.Contains(strings.ToLower(p.Description), query) ||
		strings.Contains(strings.ToLower(p.Brand), query) ||
		strings.Contains(strings.ToLower(p.Category), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
