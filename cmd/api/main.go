package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"storefront/internal/aiview"
	"storefront/internal/catalog"
	"storefront/internal/http/handlers"
	"storefront/internal/http/httpapi"
	"storefront/internal/infra"
	"storefront/internal/providers/gemini"
	"storefront/internal/providers/imaging"
	"storefront/internal/providers/xai"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client := buildImagingClient(cfg, logger)
	if client == nil {
		logger.Warn().Msg("no AI credential configured; view generation runs in mock mode")
	}

	views := aiview.NewService(client, &http.Client{Timeout: 120 * time.Second}, logger)
	app := handlers.NewApp(cfg, logger, catalog.New(), views)
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildImagingClient selects the vendor binding from configuration. A missing
// credential yields nil, which the view service treats as mock mode.
func buildImagingClient(cfg *infra.Config, logger infra.Logger) imaging.Client {
	switch cfg.AIProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return gemini.NewClient(gemini.Options{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
		})
	case "xai":
		if cfg.XAIAPIKey == "" {
			return nil
		}
		return xai.NewClient(xai.Options{
			APIKey:     cfg.XAIAPIKey,
			BaseURL:    cfg.XAIBaseURL,
			ChatModel:  cfg.XAIChatModel,
			ImageModel: cfg.XAIImageModel,
		})
	default:
		logger.Warn().Str("provider", cfg.AIProvider).Msg("unknown AI_PROVIDER; falling back to mock mode")
		return nil
	}
}
