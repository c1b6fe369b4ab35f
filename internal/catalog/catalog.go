package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Category is one of the fixed product classifications.
type Category string

const (
	CategoryBuzos      Category = "Buzos"
	CategorySweaters   Category = "Sweaters"
	CategoryCamperas   Category = "Camperas"
	CategoryAccesorios Category = "Accesorios"

	// CategoryAll is the filter sentinel that keeps every product.
	CategoryAll Category = "Todos"
)

// Categories lists the closed category set in filter-bar order.
var Categories = []Category{CategoryBuzos, CategorySweaters, CategoryCamperas, CategoryAccesorios}

// ErrInvalidCatalog is returned when a catalog document fails validation.
var ErrInvalidCatalog = errors.New("catalog: invalid catalog")

// Product is an immutable catalog record. Prices are whole pesos.
type Product struct {
	ID       string   `yaml:"id" json:"id" validate:"required"`
	Name     string   `yaml:"name" json:"name" validate:"required"`
	Price    int64    `yaml:"price" json:"price" validate:"gte=0"`
	Category Category `yaml:"category" json:"category" validate:"oneof=Buzos Sweaters Camperas Accesorios"`
	Licensed bool     `yaml:"licensed" json:"licensed"`
	Brand    string   `yaml:"brand" json:"brand"`
	Color    string   `yaml:"color" json:"color"`
	Sizes    []string `yaml:"sizes" json:"sizes" validate:"required,min=1,dive,required"`
	// Image is the legacy single-image field; Images takes precedence.
	Image  string   `yaml:"image,omitempty" json:"image,omitempty"`
	Images []string `yaml:"images,omitempty" json:"images,omitempty" validate:"dive,required"`
}

// Gallery returns the effective image sequence: Images, else the legacy
// Image as a single entry, else nothing.
func (p Product) Gallery() []string {
	if len(p.Images) > 0 {
		out := make([]string, len(p.Images))
		copy(out, p.Images)
		return out
	}
	if p.Image != "" {
		return []string{p.Image}
	}
	return nil
}

// Cover returns the canonical card image or "" when the product has none.
func (p Product) Cover() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return p.Image
}

// SearchText is the haystack the text filter matches against.
func (p Product) SearchText() string {
	return strings.Join([]string{p.Name, p.Brand, string(p.Category), p.Color}, " ")
}

// PlaceholderSeed is the seed used for generated cover art.
func (p Product) PlaceholderSeed() string { return p.ID + p.Name }

// Catalog is an ordered, read-only collection of products.
type Catalog struct {
	products []Product
	byID     map[string]int
}

type document struct {
	Products []Product `yaml:"products" validate:"required,min=1,unique=ID,dive"`
}

//go:embed catalog.yaml
var defaultDocument []byte

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the compiled-in catalog. It panics if the embedded document
// is invalid, which can only happen at build time.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultDocument)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	return New(doc.Products), nil
}

// New builds a catalog from already validated products, copying the slice.
func New(products []Product) *Catalog {
	c := &Catalog{
		products: make([]Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	copy(c.products, products)
	for i, p := range c.products {
		c.byID[p.ID] = i
	}
	return c
}

// Products returns a copy of the catalog in author order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get looks up a product by id.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// Len reports the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// ParseCategory resolves a filter value. Empty, "todos" and "all" map to
// CategoryAll; matching is case-insensitive.
func ParseCategory(raw string) (Category, bool) {
	v := strings.TrimSpace(raw)
	switch strings.ToLower(v) {
	case "", "todos", "all":
		return CategoryAll, true
	}
	for _, c := range Categories {
		if strings.EqualFold(v, string(c)) {
			return c, true
		}
	}
	return CategoryAll, false
}
