package handlers

import (
	"horadevestirse.ar/storefront/internal/catalog"
	"horadevestirse.ar/storefront/internal/nav"
	"horadevestirse.ar/storefront/internal/seo"
)

// SiteInfo is the static identity used for metadata.
type SiteInfo struct {
	Name        string
	Description string
	BaseURL     string
	Locale      string
}

// BuildSEO returns page metadata plus JSON-LD for the visible products.
// detail, when non-nil, adds a Product block for the open dialog.
func BuildSEO(site SiteInfo, c *catalog.Catalog, view CatalogView, detail *DetailView) seo.Meta {
	canonical := site.BaseURL + view.State.Listing().Href(PagePath)
	meta := seo.Meta{
		Title:       site.Name,
		Description: site.Description,
		Canonical:   canonical,
		OG: seo.OpenGraph{
			Title:       site.Name,
			Description: site.Description,
			Type:        "website",
			Locale:      ogLocale(site.Locale),
			SiteName:    site.Name,
		},
		Twitter: seo.Twitter{Card: "summary"},
	}
	if view.Query != "" || view.State.Category != catalog.CategoryAll {
		meta.Robots = "noindex,follow"
	}

	items := make([]seo.ProductData, 0, len(view.Cards))
	for _, card := range view.Cards {
		if p, ok := c.Get(card.ID); ok {
			items = append(items, productData(site, p, view.State))
		}
	}
	meta.JSONLD = append(meta.JSONLD,
		seo.JSON(seo.Organization(site.Name, site.BaseURL+PagePath, nav.Email, nav.InstagramURL)),
		seo.JSON(seo.WebSite(site.Name, site.BaseURL+PagePath, site.BaseURL+PagePath+"?"+nav.ParamQuery+"=")),
		seo.JSON(seo.ItemList(site.Name, items)),
	)
	if detail != nil {
		if p, ok := c.Get(detail.ID); ok {
			meta.Title = p.Name + " · " + site.Name
			meta.OG.Title = meta.Title
			meta.OG.Type = "product"
			if detail.Image != "" {
				meta.OG.Image = site.BaseURL + detail.Image
				meta.Twitter.Image = meta.OG.Image
			}
			meta.JSONLD = append(meta.JSONLD, seo.JSON(seo.Product(productData(site, p, view.State))))
		}
	}
	return meta
}

func productData(site SiteInfo, p catalog.Product, listing nav.State) seo.ProductData {
	href := site.BaseURL + listing.Listing().WithProduct(p.ID, 0).Href(PagePath)
	d := seo.ProductData{
		Name:     p.Name,
		SKU:      p.ID,
		Brand:    p.Brand,
		Color:    p.Color,
		Category: string(p.Category),
		URL:      href,
		Offer:    seo.Offer{Price: p.Price, Currency: "ARS", URL: href},
	}
	if cover := p.Cover(); cover != "" {
		d.Image = site.BaseURL + cover
	} else {
		d.Image = site.BaseURL + PlaceholderURL(p)
	}
	return d
}

func ogLocale(tag string) string {
	out := []byte(tag)
	for i, b := range out {
		if b == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}
