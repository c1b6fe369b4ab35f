package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"horadevestirse.ar/storefront/internal/format"
	"horadevestirse.ar/storefront/internal/gallery"
	handlersPkg "horadevestirse.ar/storefront/internal/handlers"
	"horadevestirse.ar/storefront/internal/media"
	mw "horadevestirse.ar/storefront/internal/middleware"
	"horadevestirse.ar/storefront/internal/nav"
	"horadevestirse.ar/storefront/internal/observability"
	"horadevestirse.ar/storefront/internal/placeholder"
)

// CatalogPageHandler renders the full storefront. A product parameter opens
// its detail dialog server-side.
func (a *app) CatalogPageHandler(w http.ResponseWriter, r *http.Request) {
	s := nav.FromValues(r.URL.Query())
	view := handlersPkg.BuildCatalog(a.catalog, s)

	lang := a.lang(r)
	detail := handlersPkg.OpenDetail(a.catalog, s, a.content.HTML("detalle"))

	hero, _ := a.content.Page("hero")
	licencias, _ := a.content.Page("licencias")
	vm := handlersPkg.PageData{
		Lang:      lang,
		Locale:    format.Locale(),
		SiteName:  a.site.Name,
		Path:      r.URL.Path,
		Dev:       a.cfg.DevMode,
		SEO:       handlersPkg.BuildSEO(a.site, a.catalog, view, detail),
		Instagram: nav.Instagram,
		Contact:   nav.Contact,
		Hero:      hero,
		Licencias: licencias,
		Catalog:   view,
		Detail:    detail,
	}
	a.renderPage(w, r, vm)
}

// CatalogGridFrag renders the filter bar, sort control and grid.
func (a *app) CatalogGridFrag(w http.ResponseWriter, r *http.Request) {
	s := nav.FromValues(r.URL.Query()).Listing()
	view := handlersPkg.BuildCatalog(a.catalog, s)
	mw.PushURL(w, view.PushURL)
	a.renderTemplate(w, r, "frag_grid", view)
}

// SortMenuFrag renders the sort disclosure in the requested menu state.
func (a *app) SortMenuFrag(w http.ResponseWriter, r *http.Request) {
	s := nav.FromValues(r.URL.Query())
	a.renderTemplate(w, r, "frag_sort_menu", handlersPkg.BuildSortMenu(s))
}

// ProductDetailFrag renders the detail dialog at the requested image. Direct
// navigation lands on the full page with the dialog open.
func (a *app) ProductDetailFrag(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := a.catalog.Get(id)
	if !ok {
		observability.FromContext(r.Context()).Debug("unknown product", zap.String("product_id", id))
		mw.WriteError(w, r, http.StatusNotFound, a.bundle.T(a.lang(r), "error.not_found"))
		return
	}
	q := r.URL.Query()
	listing := nav.FromValues(q).Listing()
	d := handlersPkg.BuildDetail(p, gallery.FromQuery(p, true, q.Get(nav.ParamImage)), listing, a.content.HTML("detalle"))

	info := mw.HTMXInfoFromContext(r.Context())
	if !info.IsHTMX || info.HistoryRestore || info.IsBoosted {
		http.Redirect(w, r, d.PageHref, http.StatusSeeOther)
		return
	}
	w.Header().Add("Vary", "HX-Request")
	mw.PushURL(w, d.PageHref)
	a.renderTemplate(w, r, "frag_product_detail", d)
}

// CartFrag renders the placeholder cart panel.
func (a *app) CartFrag(w http.ResponseWriter, r *http.Request) {
	page, err := a.content.Page("carrito")
	if err != nil {
		observability.FromContext(r.Context()).Error("cart copy missing", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, a.bundle.T(a.lang(r), "error.internal"))
		return
	}
	a.renderTemplate(w, r, "frag_cart", handlersPkg.BuildCart(page, nav.FromValues(r.URL.Query())))
}

// PlaceholderHandler serves generated card art for /placeholder/{seed}.svg.
func (a *app) PlaceholderHandler(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	seed, ok := strings.CutSuffix(file, ".svg")
	if !ok || seed == "" {
		mw.WriteError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	_, _ = w.Write(placeholder.New(seed).SVG())
}

// ThumbnailHandler serves a square crop of a public image, or placeholder
// art when the source cannot be read.
func (a *app) ThumbnailHandler(w http.ResponseWriter, r *http.Request) {
	size, err := strconv.Atoi(chi.URLParam(r, "size"))
	if err != nil || !media.ValidSize(size) {
		mw.WriteError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	src := "/" + chi.URLParam(r, "*")
	thumb, err := a.thumbs.Thumbnail(src, size)
	if err != nil {
		observability.FromContext(r.Context()).Error("thumbnail failed", zap.String("src", src), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	if thumb.Fallback {
		w.Header().Set("X-Placeholder", "1")
		w.Header().Set("Cache-Control", "public, max-age=300")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")
	}
	w.Header().Set("Content-Type", thumb.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(thumb.Data)))
	_, _ = w.Write(thumb.Data)
}
