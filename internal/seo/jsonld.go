package seo

import (
	"encoding/json"
	"strconv"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Organization returns a minimal Organization schema.
func Organization(name, url, email string, sameAs ...string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if email != "" {
		m["email"] = email
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(name, url, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// Offer is the price block of a Product.
type Offer struct {
	Price       int64
	Currency    string
	URL         string
	Available   bool
	Description string
}

// ProductData is the input for Product.
type ProductData struct {
	Name     string
	SKU      string
	Brand    string
	Color    string
	Category string
	URL      string
	Image    string
	Offer    Offer
}

// Product returns a product schema payload with an Offer.
func Product(p ProductData) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Product",
		"name":     p.Name,
	}
	if p.SKU != "" {
		m["sku"] = p.SKU
	}
	if p.Brand != "" {
		m["brand"] = map[string]any{"@type": "Brand", "name": p.Brand}
	}
	if p.Color != "" {
		m["color"] = p.Color
	}
	if p.Category != "" {
		m["category"] = p.Category
	}
	if p.URL != "" {
		m["url"] = p.URL
	}
	if p.Image != "" {
		m["image"] = p.Image
	}
	availability := "https://schema.org/PreOrder"
	if p.Offer.Available {
		availability = "https://schema.org/InStock"
	}
	currency := p.Offer.Currency
	if currency == "" {
		currency = "ARS"
	}
	offer := map[string]any{
		"@type":         "Offer",
		"price":         strconv.FormatInt(p.Offer.Price, 10),
		"priceCurrency": currency,
		"availability":  availability,
	}
	if p.Offer.URL != "" {
		offer["url"] = p.Offer.URL
	}
	m["offers"] = offer
	return m
}

// ItemList returns an ItemList of products in display order.
func ItemList(name string, items []ProductData) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		entry := Product(it)
		delete(entry, "@context")
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     entry,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(items),
		"itemListElement": el,
	}
}
