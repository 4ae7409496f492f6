package handlers

import (
	"encoding/json"
	"net/http"

	"storefront/internal/aiview"
)

type generateViewRequest struct {
	ProductID string          `json:"productId"`
	ViewType  aiview.ViewType `json:"viewType"`
	Options   aiview.Options  `json:"options"`
}

type generateViewsRequest struct {
	ProductID string            `json:"productId"`
	ViewTypes []aiview.ViewType `json:"viewTypes"`
	Options   aiview.Options    `json:"options"`
}

// GenerateView renders one product from one requested perspective.
func (a *App) GenerateView(w http.ResponseWriter, r *http.Request) {
	var req generateViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ProductID == "" || req.ViewType == "" {
		a.fail(w, http.StatusBadRequest, "Missing productId or viewType")
		return
	}
	product, ok := a.Catalog.Get(req.ProductID)
	if !ok {
		a.fail(w, http.StatusNotFound, "Product not found")
		return
	}
	if !req.ViewType.Valid() {
		a.fail(w, http.StatusBadRequest, "Invalid view type")
		return
	}

	result, err := a.Views.GenerateView(r.Context(), product, req.ViewType, req.Options)
	if err != nil {
		a.failGeneration(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"imageUrl": result.ImageURL,
		"metadata": result.Metadata,
	})
}

// GenerateViews renders several perspectives of one product in a single
// request. Per-view failures are reported inside the map; the call itself
// succeeds as long as the input was valid.
func (a *App) GenerateViews(w http.ResponseWriter, r *http.Request) {
	var req generateViewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		a.fail(w, http.StatusBadRequest, "Missing productId")
		return
	}
	product, ok := a.Catalog.Get(req.ProductID)
	if !ok {
		a.fail(w, http.StatusNotFound, "Product not found")
		return
	}
	for _, v := range req.ViewTypes {
		if !v.Valid() {
			a.fail(w, http.StatusBadRequest, "Invalid view type")
			return
		}
	}

	results := a.Views.GenerateAllViews(r.Context(), product, req.ViewTypes, req.Options)
	views := make(map[aiview.ViewType]any, len(results))
	for viewType, vr := range results {
		if vr.Err != nil {
			views[viewType] = map[string]any{"success": false, "error": vr.Err.Error()}
			continue
		}
		views[viewType] = map[string]any{
			"success":  true,
			"imageUrl": vr.Result.ImageURL,
			"metadata": vr.Result.Metadata,
		}
	}
	a.json(w, http.StatusOK, map[string]any{"success": true, "views": views})
}
