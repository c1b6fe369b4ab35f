// Package nav builds the storefront's links: the query-string view state,
// the category filter bar, the sort menu entries and the outbound contact
// links.
package nav

import (
	"net/url"
	"strconv"

	"horadevestirse.ar/storefront/internal/catalog"
)

// Query parameter names.
const (
	ParamQuery    = "q"
	ParamCategory = "cat"
	ParamSort     = "sort"
	ParamMenu     = "menu"
	ParamProduct  = "product"
	ParamImage    = "img"
)

// State is the page view state carried in the URL.
type State struct {
	Query    string
	Category catalog.Category
	Sort     catalog.SortMode
	MenuOpen bool
	Product  string
	Image    int
}

// FromValues decodes view state. Unknown categories and sort modes fall back
// to "all" and featured order.
func FromValues(v url.Values) State {
	cat, ok := catalog.ParseCategory(v.Get(ParamCategory))
	if !ok {
		cat = catalog.CategoryAll
	}
	s := State{
		Query:    v.Get(ParamQuery),
		Category: cat,
		Sort:     catalog.ParseSortMode(v.Get(ParamSort)),
		MenuOpen: v.Get(ParamMenu) == "open",
		Product:  v.Get(ParamProduct),
	}
	if i, err := strconv.Atoi(v.Get(ParamImage)); err == nil {
		s.Image = i
	}
	return s
}

// Filter returns the derivation input for this state.
func (s State) Filter() catalog.Filter {
	return catalog.Filter{Query: s.Query, Category: s.Category, Sort: s.Sort}
}

// Values encodes only non-default fields so canonical URLs stay short.
func (s State) Values() url.Values {
	v := url.Values{}
	if s.Query != "" {
		v.Set(ParamQuery, s.Query)
	}
	if s.Category != "" && s.Category != catalog.CategoryAll {
		v.Set(ParamCategory, string(s.Category))
	}
	if s.Sort != "" && s.Sort != catalog.SortFeatured {
		v.Set(ParamSort, string(s.Sort))
	}
	if s.MenuOpen {
		v.Set(ParamMenu, "open")
	}
	if s.Product != "" {
		v.Set(ParamProduct, s.Product)
		if s.Image != 0 {
			v.Set(ParamImage, strconv.Itoa(s.Image))
		}
	}
	return v
}

// Href renders path with the encoded state.
func (s State) Href(path string) string {
	if enc := s.Values().Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// Listing drops transient UI state (menu, open dialog), keeping the filter.
func (s State) Listing() State {
	return State{Query: s.Query, Category: s.Category, Sort: s.Sort}
}

// WithCategory returns a listing state for c.
func (s State) WithCategory(c catalog.Category) State {
	out := s.Listing()
	out.Category = c
	return out
}

// WithSort returns a listing state for mode.
func (s State) WithSort(mode catalog.SortMode) State {
	out := s.Listing()
	out.Sort = mode
	return out
}

// WithMenu returns s with the sort menu open or closed.
func (s State) WithMenu(open bool) State {
	out := s.Listing()
	out.MenuOpen = open
	return out
}

// WithProduct returns a listing state with the detail dialog of id open at image i.
func (s State) WithProduct(id string, i int) State {
	out := s.Listing()
	out.Product = id
	out.Image = i
	return out
}

// Tab is one filter bar button.
type Tab struct {
	Label    string
	Category catalog.Category
	Href     string
	Count    int
	Active   bool
}

// CategoryTabs renders "Todos" plus every category. Hrefs keep the query
// and sort mode of s.
func CategoryTabs(path string, s State, facets catalog.FacetSummary) []Tab {
	active := s.Category
	if active == "" {
		active = catalog.CategoryAll
	}
	all := append([]catalog.Category{catalog.CategoryAll}, catalog.Categories...)
	tabs := make([]Tab, 0, len(all))
	for _, c := range all {
		tabs = append(tabs, Tab{
			Label:    string(c),
			Category: c,
			Href:     s.WithCategory(c).Href(path),
			Count:    facets.Count(c),
			Active:   c == active,
		})
	}
	return tabs
}

// SortLink is one sort menu entry.
type SortLink struct {
	catalog.SortOption
	Href string
}

// SortLinks renders the menu entries for s. Choosing an entry closes the menu.
func SortLinks(path string, s State) []SortLink {
	menu := catalog.SortMenu{Open: s.MenuOpen, Active: s.Sort}
	opts := menu.Options()
	out := make([]SortLink, 0, len(opts))
	for _, opt := range opts {
		out = append(out, SortLink{SortOption: opt, Href: s.WithSort(opt.Value).Href(path)})
	}
	return out
}
