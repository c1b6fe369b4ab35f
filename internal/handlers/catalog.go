// Package handlers builds the template view models of the storefront from
// the catalog and the URL view state.
package handlers

import (
	"fmt"
	"html/template"
	"net/url"

	"horadevestirse.ar/storefront/internal/catalog"
	"horadevestirse.ar/storefront/internal/format"
	"horadevestirse.ar/storefront/internal/media"
	"horadevestirse.ar/storefront/internal/nav"
	"horadevestirse.ar/storefront/internal/placeholder"
)

// Route paths shared by the view models and the router.
const (
	PagePath     = "/"
	GridPath     = "/catalog/grid"
	SortMenuPath = "/catalog/sort-menu"
	ProductPath  = "/catalog/products/"
	CartPath     = "/cart"
)

// Image edge lengths requested from the thumbnail endpoint.
const (
	CardImageSize   = 640
	DetailImageSize = 960
	ThumbImageSize  = 128
)

// CatalogView is the filter bar, sort menu and product grid.
type CatalogView struct {
	State   nav.State
	Query   string
	Tabs    []nav.Tab
	Sort    SortView
	Cards   []CardView
	Count   int
	Empty   bool
	PushURL string
}

// SortView is the "Ordenar" disclosure control.
type SortView struct {
	Open           bool
	ActiveLabel    string
	ToggleHref     string
	ToggleFragment string
	Links          []nav.SortLink
}

// CardView is one product card of the grid.
type CardView struct {
	ID             string
	Name           string
	Brand          string
	Color          string
	Category       catalog.Category
	Licensed       bool
	Price          string
	Cover          string
	Placeholder    template.HTML
	DetailHref     string
	DetailFragment string
}

// BuildCatalog derives the visible products for s and every link the
// listing needs.
func BuildCatalog(c *catalog.Catalog, s nav.State) CatalogView {
	all := c.Products()
	visible := catalog.Derive(all, s.Filter())
	listing := s.Listing()

	v := CatalogView{
		State:   s,
		Query:   s.Query,
		Tabs:    nav.CategoryTabs(PagePath, listing, catalog.Facets(all)),
		Sort:    BuildSortMenu(s),
		Count:   len(visible),
		Empty:   len(visible) == 0,
		PushURL: listing.Href(PagePath),
		Cards:   make([]CardView, 0, len(visible)),
	}
	for _, p := range visible {
		v.Cards = append(v.Cards, buildCard(p, listing))
	}
	return v
}

// BuildSortMenu renders the sort control for s.
func BuildSortMenu(s nav.State) SortView {
	menu := catalog.SortMenu{Open: s.MenuOpen, Active: s.Sort}
	toggled := menu
	toggled.Toggle()
	next := s.WithMenu(toggled.Open)
	return SortView{
		Open:           menu.Open,
		ActiveLabel:    menu.Active.Label(),
		ToggleHref:     next.Href(PagePath),
		ToggleFragment: next.Href(SortMenuPath),
		Links:          nav.SortLinks(PagePath, s),
	}
}

func buildCard(p catalog.Product, listing nav.State) CardView {
	card := CardView{
		ID:             p.ID,
		Name:           p.Name,
		Brand:          p.Brand,
		Color:          p.Color,
		Category:       p.Category,
		Licensed:       p.Licensed,
		Price:          format.Pesos(p.Price),
		Cover:          media.URL(p.Cover(), CardImageSize),
		DetailHref:     listing.WithProduct(p.ID, 0).Href(PagePath),
		DetailFragment: ProductHref(p.ID, listing, 0),
	}
	if card.Cover == "" {
		card.Placeholder = PlaceholderArt(p)
	}
	return card
}

// PlaceholderArt is the inline SVG card face for p.
func PlaceholderArt(p catalog.Product) template.HTML {
	return template.HTML(placeholder.New(p.PlaceholderSeed()).SVG())
}

// PlaceholderURL is the standalone SVG endpoint for p.
func PlaceholderURL(p catalog.Product) string {
	return "/placeholder/" + url.PathEscape(p.PlaceholderSeed()) + ".svg"
}

// ProductHref is the detail fragment URL for id at image i, carrying the
// listing filter so closing the dialog can restore it.
func ProductHref(id string, listing nav.State, i int) string {
	v := listing.Listing().Values()
	if i != 0 {
		v.Set(nav.ParamImage, fmt.Sprint(i))
	}
	path := ProductPath + url.PathEscape(id)
	if enc := v.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
