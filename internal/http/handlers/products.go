package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/schema"

	"storefront/internal/catalog"
)

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// productJSON decorates a product with its display price.
type productJSON struct {
	catalog.Product
	DisplayPrice string `json:"displayPrice"`
}

func toProductJSON(products []catalog.Product) []productJSON {
	out := make([]productJSON, len(products))
	for i, p := range products {
		out[i] = productJSON{Product: p, DisplayPrice: catalog.FormatPrice(p.Price)}
	}
	return out
}

// ProductsList returns the catalog, optionally narrowed by query filters
// (category, minPrice, maxPrice, material, inStock).
func (a *App) ProductsList(w http.ResponseWriter, r *http.Request) {
	var filters catalog.Filters
	if err := queryDecoder.Decode(&filters, r.URL.Query()); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid filter parameters")
		return
	}
	if filters.Category != "" && !filters.Category.Valid() {
		a.fail(w, http.StatusBadRequest, "unknown category")
		return
	}
	products := a.Catalog.List(filters)
	a.json(w, http.StatusOK, map[string]any{"success": true, "products": toProductJSON(products)})
}

// ProductsFeatured returns the products flagged for the landing page.
func (a *App) ProductsFeatured(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"success": true, "products": toProductJSON(a.Catalog.Featured())})
}

// ProductsSearch matches q against product names, descriptions, and materials.
func (a *App) ProductsSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		a.fail(w, http.StatusBadRequest, "query parameter q is required")
		return
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "products": toProductJSON(a.Catalog.Search(query))})
}

// ProductGet returns a single product by id.
func (a *App) ProductGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	product, ok := a.Catalog.Get(id)
	if !ok {
		a.fail(w, http.StatusNotFound, "Product not found")
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success": true,
		"product": productJSON{Product: product, DisplayPrice: catalog.FormatPrice(product.Price)},
	})
}

// ProductRelated returns up to ?limit products from the same category.
func (a *App) ProductRelated(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := a.Catalog.Get(id); !ok {
		a.fail(w, http.StatusNotFound, "Product not found")
		return
	}
	limit := 4
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "products": toProductJSON(a.Catalog.Related(id, limit))})
}

// Categories lists the distinct categories present in the catalog.
func (a *App) Categories(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]any{"success": true, "categories": a.Catalog.Categories()})
}
