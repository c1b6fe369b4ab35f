package catalog

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func prices(products []Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.Price)
	}
	return out
}

func TestDeriveCategoryFilter(t *testing.T) {
	all := Default().Products()
	for _, c := range Categories {
		got := Derive(all, Filter{Category: c, Sort: SortFeatured})
		require.NotEmpty(t, got)
		for _, p := range got {
			require.Equal(t, c, p.Category)
		}
	}

	got := Derive(all, Filter{Category: CategoryAll})
	require.Equal(t, ids(all), ids(got))

	cats := map[Category]bool{}
	for _, p := range got {
		cats[p.Category] = true
	}
	require.Len(t, cats, len(Categories))
}

func TestDeriveSweatersFeaturedKeepsCatalogOrder(t *testing.T) {
	got := Derive(Default().Products(), Filter{Category: CategorySweaters, Sort: SortFeatured})
	require.Equal(t, []string{"p1", "p2", "p5"}, ids(got))
}

func TestDeriveQuerySanrio(t *testing.T) {
	got := Derive(Default().Products(), Filter{Query: "sanrio", Category: CategoryAll})
	require.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(got))
	for _, p := range got {
		require.True(t, p.Licensed)
		require.Equal(t, "Sanrio", p.Brand)
	}
}

func TestDeriveQueryIsCaseInsensitiveSubstring(t *testing.T) {
	all := Default().Products()
	for _, q := range []string{"CELESTE", "campera", "hdv buzos", "Kitty"} {
		got := Derive(all, Filter{Query: q})
		for _, p := range got {
			require.Contains(t, strings.ToLower(p.SearchText()), strings.ToLower(q))
		}
	}
	require.Equal(t, []string{"p6"}, ids(Derive(all, Filter{Query: "rompe"})))
}

func TestDeriveBlankQueryIsNoop(t *testing.T) {
	all := Default().Products()
	for _, q := range []string{"", "   ", "\t\n"} {
		require.Equal(t, ids(all), ids(Derive(all, Filter{Query: q})))
	}
}

func TestDeriveNoResultsIsEmptyNotNil(t *testing.T) {
	got := Derive(Default().Products(), Filter{Query: "zzz-no-match", Category: CategoryBuzos})
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestDeriveSortIsStable(t *testing.T) {
	list := []Product{
		{ID: "a", Price: 74990},
		{ID: "b", Price: 74990},
		{ID: "c", Price: 124990},
		{ID: "d", Price: 31999},
	}
	asc := Derive(list, Filter{Sort: SortPriceAsc})
	require.Equal(t, []int64{31999, 74990, 74990, 124990}, prices(asc))
	require.Equal(t, []string{"d", "a", "b", "c"}, ids(asc))

	desc := Derive(list, Filter{Sort: SortPriceDesc})
	require.Equal(t, []string{"c", "a", "b", "d"}, ids(desc))

	// input untouched
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(list))
}

func TestDeriveSortMonotonic(t *testing.T) {
	all := Default().Products()
	asc := prices(Derive(all, Filter{Sort: SortPriceAsc}))
	require.True(t, sort.SliceIsSorted(asc, func(i, j int) bool { return asc[i] < asc[j] }))

	desc := prices(Derive(all, Filter{Sort: SortPriceDesc}))
	require.True(t, sort.SliceIsSorted(desc, func(i, j int) bool { return desc[i] > desc[j] }))
}

func TestDeriveIsIdempotent(t *testing.T) {
	all := Default().Products()
	filters := []Filter{
		{Query: "sweater", Category: CategorySweaters, Sort: SortPriceAsc},
		{Query: "hdv", Category: CategoryAll, Sort: SortPriceDesc},
		{Category: CategoryCamperas, Sort: SortFeatured},
	}
	for _, f := range filters {
		once := Derive(all, f)
		twice := Derive(once, f)
		require.Equal(t, ids(once), ids(twice))
	}
}

func TestParseSortMode(t *testing.T) {
	require.Equal(t, SortPriceAsc, ParseSortMode("precio-asc"))
	require.Equal(t, SortPriceAsc, ParseSortMode("price-asc"))
	require.Equal(t, SortPriceDesc, ParseSortMode("PRECIO-DESC"))
	require.Equal(t, SortFeatured, ParseSortMode("destacados"))
	require.Equal(t, SortFeatured, ParseSortMode("bogus"))
}

func TestFacets(t *testing.T) {
	s := Facets(Default().Products())
	require.Equal(t, 8, s.Total)
	require.Equal(t, int64(9999), s.MinPrice)
	require.Equal(t, int64(124990), s.MaxPrice)

	sum := 0
	for _, cc := range s.Categories {
		sum += cc.Count
	}
	require.Equal(t, s.Total, sum)
	require.Equal(t, 3, s.Count(CategorySweaters))
	require.Equal(t, 1, s.Count(CategoryAccesorios))
	require.Equal(t, 8, s.Count(CategoryAll))

	empty := Facets(nil)
	require.Zero(t, empty.Total)
	require.Zero(t, empty.MaxPrice)
	require.Len(t, empty.Categories, len(Categories))
}

func TestSortMenu(t *testing.T) {
	m := SortMenu{Active: SortPriceAsc}
	m.Toggle()
	require.True(t, m.Open)
	m.Toggle()
	require.False(t, m.Open)
	require.Equal(t, SortPriceAsc, m.Active)

	m.Toggle()
	m.Choose(SortPriceDesc)
	require.False(t, m.Open)
	require.Equal(t, SortPriceDesc, m.Active)

	active := 0
	for _, o := range m.Options() {
		if o.Active {
			active++
			require.Equal(t, SortPriceDesc, o.Value)
		}
	}
	require.Equal(t, 1, active)
	require.Equal(t, "Precio: mayor a menor", SortPriceDesc.Label())
}
