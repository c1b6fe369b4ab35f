package catalog

import (
	"sort"
	"strings"
)

// SortMode orders the visible products.
type SortMode string

const (
	SortFeatured  SortMode = "destacados"
	SortPriceAsc  SortMode = "precio-asc"
	SortPriceDesc SortMode = "precio-desc"
)

// SortModes lists the menu options in display order.
var SortModes = []SortMode{SortFeatured, SortPriceAsc, SortPriceDesc}

// ParseSortMode accepts the Spanish values plus English aliases. Anything
// else falls back to featured order.
func ParseSortMode(raw string) SortMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(SortPriceAsc), "price-asc":
		return SortPriceAsc
	case string(SortPriceDesc), "price-desc":
		return SortPriceDesc
	default:
		return SortFeatured
	}
}

// Filter is the page's derivation input.
type Filter struct {
	Query    string
	Category Category
	Sort     SortMode
}

// Derive applies category filter, text filter and sort, in that order. The
// result is always a fresh slice and products is never reordered.
func Derive(products []Product, f Filter) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != "" && f.Category != CategoryAll && p.Category != f.Category {
			continue
		}
		out = append(out, p)
	}

	if strings.TrimSpace(f.Query) != "" {
		q := strings.ToLower(f.Query)
		kept := out[:0]
		for _, p := range out {
			if strings.Contains(strings.ToLower(p.SearchText()), q) {
				kept = append(kept, p)
			}
		}
		out = kept
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// CategoryCount is one facet entry.
type CategoryCount struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
}

// FacetSummary describes a product set for the filter bar and API.
type FacetSummary struct {
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
	MinPrice   int64           `json:"minPrice"`
	MaxPrice   int64           `json:"maxPrice"`
}

// Facets counts products per category (in Categories order) and records the
// price range. Prices are zero for an empty set.
func Facets(products []Product) FacetSummary {
	counts := make(map[Category]int, len(Categories))
	s := FacetSummary{Total: len(products)}
	for i, p := range products {
		counts[p.Category]++
		if i == 0 || p.Price < s.MinPrice {
			s.MinPrice = p.Price
		}
		if i == 0 || p.Price > s.MaxPrice {
			s.MaxPrice = p.Price
		}
	}
	s.Categories = make([]CategoryCount, 0, len(Categories))
	for _, c := range Categories {
		s.Categories = append(s.Categories, CategoryCount{Category: c, Count: counts[c]})
	}
	return s
}

// Count returns the facet count for c, or Total for CategoryAll.
func (s FacetSummary) Count(c Category) int {
	if c == CategoryAll {
		return s.Total
	}
	for _, cc := range s.Categories {
		if cc.Category == c {
			return cc.Count
		}
	}
	return 0
}
