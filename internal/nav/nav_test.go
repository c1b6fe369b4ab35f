package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"horadevestirse.ar/storefront/internal/catalog"
)

func TestFromValuesDefaults(t *testing.T) {
	s := FromValues(url.Values{})
	require.Equal(t, catalog.CategoryAll, s.Category)
	require.Equal(t, catalog.SortFeatured, s.Sort)
	require.False(t, s.MenuOpen)
	require.Equal(t, "/", s.Href("/"))
}

func TestFromValuesParsesState(t *testing.T) {
	v, err := url.ParseQuery("q=kitty&cat=sweaters&sort=price-desc&menu=open&product=p3&img=2")
	require.NoError(t, err)
	s := FromValues(v)
	require.Equal(t, "kitty", s.Query)
	require.Equal(t, catalog.CategorySweaters, s.Category)
	require.Equal(t, catalog.SortPriceDesc, s.Sort)
	require.True(t, s.MenuOpen)
	require.Equal(t, "p3", s.Product)
	require.Equal(t, 2, s.Image)
	require.Equal(t, "/?cat=Sweaters&img=2&menu=open&product=p3&q=kitty&sort=precio-desc", s.Href("/"))
}

func TestUnknownCategoryFallsBackToAll(t *testing.T) {
	s := FromValues(url.Values{ParamCategory: {"Remeras"}})
	require.Equal(t, catalog.CategoryAll, s.Category)
}

func TestTransitionsDropTransientState(t *testing.T) {
	s := State{Query: "sanrio", Category: catalog.CategoryAll, Sort: catalog.SortPriceAsc, MenuOpen: true, Product: "p1", Image: 1}
	require.Equal(t, "/?cat=Camperas&q=sanrio&sort=precio-asc", s.WithCategory(catalog.CategoryCamperas).Href("/"))
	require.Equal(t, "/?q=sanrio", s.WithSort(catalog.SortFeatured).Href("/"))
	require.Equal(t, "/?menu=open&q=sanrio&sort=precio-asc", s.WithMenu(true).Href("/"))
	require.Equal(t, "/?product=p3&q=sanrio&sort=precio-asc", s.WithProduct("p3", 0).Href("/"))
}

func TestCategoryTabs(t *testing.T) {
	facets := catalog.Facets(catalog.Default().Products())
	s := State{Query: "kitty", Category: catalog.CategorySweaters, Sort: catalog.SortPriceDesc}
	tabs := CategoryTabs("/", s, facets)
	require.Len(t, tabs, 5)
	require.Equal(t, "Todos", tabs[0].Label)
	require.Equal(t, 8, tabs[0].Count)
	require.Equal(t, "/?q=kitty&sort=precio-desc", tabs[0].Href)

	var active []string
	for _, tab := range tabs {
		if tab.Active {
			active = append(active, tab.Label)
		}
	}
	require.Equal(t, []string{"Sweaters"}, active)
	require.Equal(t, 3, tabs[2].Count)

	sum := 0
	for _, tab := range tabs[1:] {
		sum += tab.Count
	}
	require.Equal(t, tabs[0].Count, sum)
}

func TestSortLinks(t *testing.T) {
	s := State{Category: catalog.CategoryBuzos, Sort: catalog.SortPriceAsc, MenuOpen: true}
	links := SortLinks("/", s)
	require.Len(t, links, 3)
	require.Equal(t, "Destacados", links[0].Label)
	require.Equal(t, "/?cat=Buzos", links[0].Href)
	require.True(t, links[1].Active)
	require.Equal(t, "/?cat=Buzos&sort=precio-desc", links[2].Href)
}

func TestContactLinks(t *testing.T) {
	require.Len(t, Contact, 3)
	require.True(t, Contact[0].External)
	require.Equal(t, "#", Contact[1].Href)
	require.Equal(t, "mailto:horadevestirse.ar@gmail.com", Contact[2].Href)
}
