// Command pregen renders catalog views ahead of time. Products are processed
// one at a time so a full-catalog run does not burst the vendor's rate limit.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"storefront/internal/aiview"
	"storefront/internal/catalog"
	"storefront/internal/infra"
	"storefront/internal/providers/xai"
)

func main() {
	var (
		viewsFlag    = flag.String("views", "front,side,angle-45,in-room", "comma-separated view types to generate")
		categoryFlag = flag.String("category", "", "restrict to one product category")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	var viewTypes []aiview.ViewType
	for _, raw := range strings.Split(*viewsFlag, ",") {
		v := aiview.ViewType(strings.TrimSpace(raw))
		if !v.Valid() {
			fmt.Fprintf(os.Stderr, "unknown view type %q\n", v)
			os.Exit(1)
		}
		viewTypes = append(viewTypes, v)
	}

	if *categoryFlag != "" && !catalog.Category(*categoryFlag).Valid() {
		fmt.Fprintf(os.Stderr, "unknown category %q\n", *categoryFlag)
		os.Exit(1)
	}
	cat := catalog.New()
	products := cat.List(catalog.Filters{Category: catalog.Category(*categoryFlag)})

	var client *xai.Client
	if cfg.XAIAPIKey != "" {
		client = xai.NewClient(xai.Options{
			APIKey:     cfg.XAIAPIKey,
			BaseURL:    cfg.XAIBaseURL,
			ChatModel:  cfg.XAIChatModel,
			ImageModel: cfg.XAIImageModel,
		})
	}
	service := newService(client, logger)

	ctx := context.Background()
	results := service.BatchGenerateViews(ctx, products, viewTypes)

	var failures int
	for _, product := range products {
		for _, viewType := range viewTypes {
			vr := results[product.ID][viewType]
			if vr.Err != nil {
				failures++
				fmt.Printf("FAIL  %-22s %-10s %v\n", product.ID, viewType, vr.Err)
				continue
			}
			fmt.Printf("OK    %-22s %-10s model=%s %dms\n",
				product.ID, viewType, vr.Result.Metadata.Model, vr.Result.Metadata.GenerationTime)
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

func newService(client *xai.Client, logger infra.Logger) *aiview.Service {
	httpClient := &http.Client{Timeout: 120 * time.Second}
	if client == nil {
		// nil interface, not a nil *xai.Client wrapped in an interface
		return aiview.NewService(nil, httpClient, logger)
	}
	return aiview.NewService(client, httpClient, logger)
}
