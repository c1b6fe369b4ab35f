package handlers

import (
	"html/template"
	"strconv"

	"horadevestirse.ar/storefront/internal/catalog"
	"horadevestirse.ar/storefront/internal/format"
	"horadevestirse.ar/storefront/internal/gallery"
	"horadevestirse.ar/storefront/internal/media"
	"horadevestirse.ar/storefront/internal/nav"
)

// DetailView is the product dialog.
type DetailView struct {
	ID          string
	Name        string
	Brand       string
	Color       string
	Category    catalog.Category
	Licensed    bool
	Price       string
	Sizes       []string
	Notice      template.HTML
	Placeholder template.HTML

	// Open is false for a dialog rendered closed; the template hides it.
	Open       bool
	Gallery    gallery.View
	Image      string
	Prev       Step
	Next       Step
	Thumbnails []Thumbnail

	// CloseHref restores the listing without the dialog.
	CloseHref string
	// PageHref is the full-page URL of this exact dialog state.
	PageHref string
}

// Step is a prev/next gallery control.
type Step struct {
	Href     string
	Fragment string
}

// Thumbnail is one selectable gallery entry.
type Thumbnail struct {
	gallery.Slide
	Thumb    string
	Href     string
	Fragment string
}

// BuildDetail renders the dialog of p in gallery state g. listing keeps the
// filter the dialog was opened from.
func BuildDetail(p catalog.Product, g gallery.State, listing nav.State, notice template.HTML) DetailView {
	listing = listing.Listing()
	gv := gallery.BuildView(p, g)
	d := DetailView{
		ID:        p.ID,
		Name:      p.Name,
		Brand:     p.Brand,
		Color:     p.Color,
		Category:  p.Category,
		Licensed:  p.Licensed,
		Price:     format.Pesos(p.Price),
		Sizes:     append([]string(nil), p.Sizes...),
		Notice:    notice,
		Open:      g.Open,
		Gallery:   gv,
		Image:     media.URL(gv.Src, DetailImageSize),
		CloseHref: listing.Href(PagePath),
		PageHref:  listing.WithProduct(p.ID, gv.Index).Href(PagePath),
	}
	if gv.ShowPlaceholder {
		d.Placeholder = PlaceholderArt(p)
	}
	if !gv.ShowControls {
		return d
	}
	d.Prev = step(p.ID, listing, gv.PrevIndex)
	d.Next = step(p.ID, listing, gv.NextIndex)
	d.Thumbnails = make([]Thumbnail, 0, len(gv.Slides))
	for _, s := range gv.Slides {
		st := step(p.ID, listing, s.Index)
		d.Thumbnails = append(d.Thumbnails, Thumbnail{
			Slide:    s,
			Thumb:    media.URL(s.Src, ThumbImageSize),
			Href:     st.Href,
			Fragment: st.Fragment,
		})
	}
	return d
}

func step(id string, listing nav.State, i int) Step {
	return Step{
		Href:     listing.WithProduct(id, i).Href(PagePath),
		Fragment: ProductHref(id, listing, i),
	}
}

// OpenDetail returns the dialog the page state asks for, or nil when no
// known product is named.
func OpenDetail(c *catalog.Catalog, s nav.State, notice template.HTML) *DetailView {
	if s.Product == "" {
		return nil
	}
	p, ok := c.Get(s.Product)
	if !ok {
		return nil
	}
	g := gallery.FromQuery(p, false, strconv.Itoa(s.Image))
	g.OpenDialog()
	d := BuildDetail(p, g, s, notice)
	return &d
}
