package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/aiview"
	"storefront/internal/catalog"
	"storefront/internal/infra"
	"storefront/internal/providers/imaging"
)

// App is the request-handler container. Dependencies are injected explicitly
// at startup; nothing here is constructed at package load.
type App struct {
	Config  *infra.Config
	Logger  infra.Logger
	Catalog *catalog.Catalog
	Views   *aiview.Service
}

func NewApp(cfg *infra.Config, logger infra.Logger, cat *catalog.Catalog, views *aiview.Service) *App {
	return &App{Config: cfg, Logger: logger, Catalog: cat, Views: views}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the failure envelope shared by every endpoint.
func (a *App) fail(w http.ResponseWriter, code int, message string) {
	a.json(w, code, map[string]any{"success": false, "error": message})
}

// failGeneration maps a pipeline error onto the status taxonomy: upstream
// vendor failures and empty results are 502, a missing credential is 500, and
// anything else is an unexpected local 500.
func (a *App) failGeneration(w http.ResponseWriter, err error) {
	var upstream *imaging.UpstreamError
	switch {
	case errors.As(err, &upstream):
		a.fail(w, http.StatusBadGateway, upstream.Message)
	case errors.Is(err, imaging.ErrNoImage):
		a.fail(w, http.StatusBadGateway, imaging.ErrNoImage.Error())
	case errors.Is(err, aiview.ErrNotConfigured):
		a.fail(w, http.StatusInternalServerError, "XAI_API_KEY is not configured")
	default:
		a.fail(w, http.StatusInternalServerError, err.Error())
	}
}
