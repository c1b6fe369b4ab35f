package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"horadevestirse.ar/storefront/internal/catalog"
	"horadevestirse.ar/storefront/internal/cms"
	"horadevestirse.ar/storefront/internal/config"
	"horadevestirse.ar/storefront/internal/format"
	handlersPkg "horadevestirse.ar/storefront/internal/handlers"
	"horadevestirse.ar/storefront/internal/i18n"
	"horadevestirse.ar/storefront/internal/media"
	mw "horadevestirse.ar/storefront/internal/middleware"
	"horadevestirse.ar/storefront/internal/observability"
	"horadevestirse.ar/storefront/internal/status"
)

const defaultLang = "es"

// app holds everything a request needs. All fields are read-only after
// newApp returns.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	catalog *catalog.Catalog
	content *cms.Library
	bundle  *i18n.Bundle
	thumbs  *media.Thumbnailer
	health  *status.Registry
	site    handlersPkg.SiteInfo
	tmpl    *template.Template
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	flag.StringVar(&cfg.Server.Addr, "addr", cfg.Server.Addr, "HTTP listen address")
	flag.StringVar(&cfg.Paths.Templates, "templates", cfg.Paths.Templates, "templates directory")
	flag.StringVar(&cfg.Paths.Public, "public", cfg.Paths.Public, "public assets directory")
	flag.StringVar(&cfg.Paths.Locales, "locales", cfg.Paths.Locales, "locales directory")
	flag.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "reparse templates on every request")
	flag.Parse()

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("storefront stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.routes(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("storefront listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("env", cfg.Environment),
		zap.Bool("dev", cfg.DevMode),
		zap.Int("products", a.catalog.Len()),
	)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}

func newApp(cfg config.Config, logger *zap.Logger) (*app, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	langs, err := localeNames(cfg.Paths.Locales)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	bundle, err := i18n.Load(cfg.Paths.Locales, defaultLang, langs)
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}
	logger.Debug("locales loaded", zap.Strings("languages", bundle.Supported()))
	content, err := cms.Default()
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog.Default(),
		content: content,
		bundle:  bundle,
		thumbs:  media.NewThumbnailer(cfg.Paths.Public),
		health:  status.NewRegistry(),
		site: handlersPkg.SiteInfo{
			Name:        bundle.T(bundle.Fallback(), "site.name"),
			Description: bundle.T(bundle.Fallback(), "site.description"),
			BaseURL:     cfg.Site.BaseURL,
			Locale:      format.Locale(),
		},
	}

	tmpl, err := a.parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if !cfg.DevMode {
		a.tmpl = tmpl
	}
	a.registerChecks()
	return a, nil
}

// localeNames lists the languages with a <lang>.json bundle in dir.
func localeNames(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

func (a *app) registerChecks() {
	a.health.Register("catalog", func(context.Context) error {
		if a.catalog.Len() == 0 {
			return errors.New("catalog is empty")
		}
		return nil
	})
	a.health.Register("content", func(context.Context) error {
		for _, slug := range []string{"hero", "licencias", "carrito", "detalle"} {
			if _, err := a.content.Page(slug); err != nil {
				return fmt.Errorf("%s: %w", slug, err)
			}
		}
		return nil
	})
	a.health.Register("templates", func(context.Context) error {
		t, err := a.templates()
		if err != nil {
			return err
		}
		for _, name := range []string{"base", "frag_grid", "frag_sort_menu", "frag_product_detail", "frag_cart"} {
			if t.Lookup(name) == nil {
				return fmt.Errorf("template %s not defined", name)
			}
		}
		return nil
	})
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// RealIP trusts X-Forwarded-For; deploy behind a proxy that sets it.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLogger(a.logger))
	r.Use(observability.Trace())
	r.Use(observability.RequestLogger())
	r.Use(observability.Recovery())
	r.Use(mw.HTMX())
	r.Use(mw.ContentLanguage(format.Locale()))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(a.cfg.Server.RequestTimeout))

	r.Get("/healthz", a.health.Handler())

	r.Handle("/assets/*", mw.StaticWithCache("/assets", filepath.Join(a.cfg.Paths.Public, "assets")))
	r.Handle("/products/*", mw.StaticWithCache("/products", filepath.Join(a.cfg.Paths.Public, "products")))
	r.Get("/placeholder/{file}", a.PlaceholderHandler)
	r.Get("/media/thumb/{size}/*", a.ThumbnailHandler)

	r.Get(handlersPkg.PagePath, a.CatalogPageHandler)
	r.Get(handlersPkg.ProductPath+"{id}", a.ProductDetailFrag)
	r.Group(func(r chi.Router) {
		r.Use(mw.FragmentOnly(handlersPkg.PagePath))
		r.Get(handlersPkg.GridPath, a.CatalogGridFrag)
		r.Get(handlersPkg.SortMenuPath, a.SortMenuFrag)
		r.Get(handlersPkg.CartPath, a.CartFrag)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(apiCORS().Handler)
		r.Get("/products", a.ProductsAPIHandler)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		mw.WriteError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	return r
}
