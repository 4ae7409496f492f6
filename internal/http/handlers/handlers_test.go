package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"storefront/internal/aiview"
	"storefront/internal/catalog"
	"storefront/internal/infra"
	"storefront/internal/providers/imaging"
)

// stubImaging is a scriptable imaging.Client shared by the handler tests.
type stubImaging struct {
	mu           sync.Mutex
	describeText string
	describeErr  error
	edited       *imaging.Edited
	editErr      error
	editCalls    int
}

func (s *stubImaging) DescribeImage(ctx context.Context, img imaging.Image, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.describeText, s.describeErr
}

func (s *stubImaging) EditImage(ctx context.Context, img imaging.Image, prompt string) (*imaging.Edited, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editCalls++
	if s.editErr != nil {
		return nil, s.editErr
	}
	if s.edited != nil {
		return s.edited, nil
	}
	return &imaging.Edited{B64: "Zm9v", MIME: "image/png"}, nil
}

func (s *stubImaging) Model() string { return "stub-model" }

func testCatalog(baseImage string) *catalog.Catalog {
	return catalog.NewWithProducts([]catalog.Product{
		{ID: "oak-chair", Name: "Oak Chair", Category: catalog.CategoryChair, BaseImage: baseImage, Price: 1299, Material: "Solid oak", InStock: true, Featured: true},
		{ID: "rope-chair", Name: "Rope Chair", Category: catalog.CategoryChair, BaseImage: baseImage, Price: 749, Material: "Steel, rope", InStock: true},
		{ID: "walnut-table", Name: "Walnut Table", Category: catalog.CategoryTable, BaseImage: baseImage, Price: 2499, Material: "Walnut", InStock: false},
	})
}

// newTestApp wires an App around an optional stub vendor client. A nil client
// puts view generation in mock mode, exactly as in production.
func newTestApp(client imaging.Client, agentID string) (*App, *httptest.Server) {
	imgSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte("jpeg-bytes"))
	}))

	cfg := &infra.Config{
		AppEnv:            "test",
		ElevenLabsAgentID: agentID,
		HTTPReadTimeout:   time.Second,
		HTTPWriteTimeout:  time.Second,
		HTTPIdleTimeout:   time.Second,
	}
	service := aiview.NewService(client, imgSrv.Client(), zerolog.Nop())
	app := NewApp(cfg, zerolog.Nop(), testCatalog(imgSrv.URL+"/base.jpg"), service)
	return app, imgSrv
}
