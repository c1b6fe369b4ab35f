package main

import (
	"encoding/json"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"horadevestirse.ar/storefront/internal/catalog"
	"horadevestirse.ar/storefront/internal/format"
	handlersPkg "horadevestirse.ar/storefront/internal/handlers"
	mw "horadevestirse.ar/storefront/internal/middleware"
	"horadevestirse.ar/storefront/internal/nav"
	"horadevestirse.ar/storefront/internal/observability"
)

// apiProduct is a catalog record plus presentation fields.
type apiProduct struct {
	catalog.Product
	PriceLabel  string   `json:"priceLabel"`
	Gallery     []string `json:"gallery"`
	Placeholder string   `json:"placeholder"`
	URL         string   `json:"url"`
}

type apiFilter struct {
	Query    string           `json:"q"`
	Category catalog.Category `json:"category"`
	Sort     catalog.SortMode `json:"sort"`
}

type productsResponse struct {
	Products []apiProduct         `json:"products"`
	Facets   catalog.FacetSummary `json:"facets"`
	Filter   apiFilter            `json:"filter"`
}

func apiCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         600,
	})
}

// ProductsAPIHandler returns the same derivation the page renders, as JSON.
func (a *app) ProductsAPIHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if _, ok := catalog.ParseCategory(q.Get(nav.ParamCategory)); !ok {
		mw.WriteError(w, r, http.StatusBadRequest, "unknown category")
		return
	}
	s := nav.FromValues(q).Listing()
	all := a.catalog.Products()
	visible := catalog.Derive(all, s.Filter())

	resp := productsResponse{
		Products: make([]apiProduct, 0, len(visible)),
		Facets:   catalog.Facets(all),
		Filter:   apiFilter{Query: s.Query, Category: s.Category, Sort: s.Sort},
	}
	for _, p := range visible {
		resp.Products = append(resp.Products, apiProduct{
			Product:     p,
			PriceLabel:  format.Pesos(p.Price),
			Gallery:     append([]string{}, p.Gallery()...),
			Placeholder: handlersPkg.PlaceholderURL(p),
			URL:         s.WithProduct(p.ID, 0).Href(handlersPkg.PagePath),
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=60")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		observability.FromContext(r.Context()).Warn("encode products response", zap.Error(err))
	}
}
