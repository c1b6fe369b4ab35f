package handlers

import (
	"html/template"

	"horadevestirse.ar/storefront/internal/cms"
	"horadevestirse.ar/storefront/internal/nav"
	"horadevestirse.ar/storefront/internal/seo"
)

// PageData is the view model for the storefront layout.
type PageData struct {
	Lang      string
	Locale    string
	SiteName  string
	Path      string
	Dev       bool
	SEO       seo.Meta
	Instagram nav.Link
	Contact   []nav.Link

	Hero      cms.Page
	Licencias cms.Page

	Catalog CatalogView
	// Detail is set when the page is loaded with a dialog already open.
	Detail *DetailView
}

// CartView is the placeholder cart panel.
type CartView struct {
	Title   string
	Body    template.HTML
	Reserve nav.Link
	// CloseHref returns to the page the panel was opened from.
	CloseHref string
}

// BuildCart renders the cart panel from its copy page.
func BuildCart(page cms.Page, listing nav.State) CartView {
	return CartView{
		Title:     page.Title,
		Body:      page.Body,
		Reserve:   nav.Link{Label: "Reservá por Instagram", Href: nav.InstagramURL, External: true},
		CloseHref: listing.Listing().Href(PagePath),
	}
}
