package catalog

import (
	"strings"
)

// Filters narrows a catalog listing. Zero values mean "no constraint".
// The struct is decoded straight from query strings by gorilla/schema, so the
// schema tags name the public query parameters.
type Filters struct {
	Category  Category `schema:"category"`
	MinPrice  int      `schema:"minPrice"`
	MaxPrice  int      `schema:"maxPrice"`
	Materials []string `schema:"material"`
	InStock   *bool    `schema:"inStock"`
}

// Catalog is a read-only product list. It is populated once at startup and
// never mutated, so concurrent readers need no locking.
type Catalog struct {
	products []Product
	byID     map[string]int
}

// New builds a catalog over the built-in product list.
func New() *Catalog {
	return NewWithProducts(defaultProducts)
}

// NewWithProducts builds a catalog over an explicit product list. Used by
// tests that need a small fixed inventory.
func NewWithProducts(products []Product) *Catalog {
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

// Get returns the product with the given id, or false when it is unknown.
func (c *Catalog) Get(id string) (Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// List returns products matching the filters, in catalog order.
func (c *Catalog) List(f Filters) []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice > 0 && p.Price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		if len(f.Materials) > 0 && !matchesAnyMaterial(p, f.Materials) {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Featured returns the products flagged for the landing page.
func (c *Catalog) Featured() []Product {
	var out []Product
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory returns all products in one category.
func (c *Catalog) ByCategory(cat Category) []Product {
	var out []Product
	for _, p := range c.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories present, in catalog order.
func (c *Catalog) Categories() []Category {
	seen := make(map[Category]struct{})
	var out []Category
	for _, p := range c.products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Related returns up to limit products sharing the given product's category,
// excluding the product itself. Unknown ids yield an empty slice.
func (c *Catalog) Related(id string, limit int) []Product {
	product, ok := c.Get(id)
	if !ok {
		return nil
	}
	if limit <= 0 {
		limit = 4
	}
	var out []Product
	for _, p := range c.products {
		if p.ID == id || p.Category != product.Category {
			continue
		}
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Search matches the query against name, description, and material,
// case-insensitively.
func (c *Catalog) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Material), q) {
			out = append(out, p)
		}
	}
	return out
}

// PriceRange returns the minimum and maximum catalog price.
func (c *Catalog) PriceRange() (min, max int) {
	for i, p := range c.products {
		if i == 0 || p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}

func matchesAnyMaterial(p Product, materials []string) bool {
	material := strings.ToLower(p.Material)
	for _, m := range materials {
		if m = strings.ToLower(strings.TrimSpace(m)); m == "" {
			continue
		}
		if strings.Contains(material, m) {
			return true
		}
	}
	return false
}
