package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	mw "horadevestirse.ar/storefront/internal/middleware"
	"horadevestirse.ar/storefront/internal/observability"
)

// funcMap binds the translation helpers to lang.
func (a *app) funcMap(lang string) template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"t": func(key string) string {
			return a.bundle.T(lang, key)
		},
		"tf": func(key string, args ...any) string {
			return a.bundle.Tf(lang, key, args...)
		},
		// frag swaps the path of a page href, keeping its query.
		"frag": func(path, href string) string {
			if i := strings.IndexByte(href, '?'); i >= 0 {
				return path + href[i:]
			}
			return path
		},
		"jsonld": func(s string) template.JS {
			return template.JS(s)
		},
	}
}

func (a *app) parseTemplates() (*template.Template, error) {
	var files []string
	if err := filepath.WalkDir(a.cfg.Paths.Templates, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", a.cfg.Paths.Templates)
	}
	return template.New("_root").Funcs(a.funcMap(a.bundle.Fallback())).ParseFiles(files...)
}

// templates returns the cached set, or a fresh parse in dev mode.
func (a *app) templates() (*template.Template, error) {
	if a.tmpl != nil {
		return a.tmpl, nil
	}
	return a.parseTemplates()
}

// renderPage executes the full layout.
func (a *app) renderPage(w http.ResponseWriter, r *http.Request, data any) {
	a.renderTemplate(w, r, "base", data)
}

// renderTemplate executes name into a buffer so a failing template never
// leaves a half-written response.
func (a *app) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	lang := a.lang(r)
	t, err := a.templates()
	if err == nil {
		// the cached set is never executed itself, so it stays clonable
		t, err = t.Clone()
	}
	if err != nil {
		observability.FromContext(r.Context()).Error("template parse failed", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, a.bundle.T(lang, "error.internal"))
		return
	}
	var buf bytes.Buffer
	if err := t.Funcs(a.funcMap(lang)).ExecuteTemplate(&buf, name, data); err != nil {
		observability.FromContext(r.Context()).Error("template exec failed", zap.String("template", name), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, a.bundle.T(lang, "error.internal"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if lang != a.bundle.Fallback() {
		w.Header().Set("Content-Language", lang)
	}
	_, _ = buf.WriteTo(w)
}

// lang picks the best loaded language for the request's Accept-Language.
func (a *app) lang(r *http.Request) string {
	return a.bundle.Resolve(r.Header.Get("Accept-Language"))
}
