package aiview

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"storefront/internal/catalog"
	"storefront/internal/infra"
	"storefront/internal/providers/imaging"
)

// ErrNotConfigured means no vendor credential is set. View generation falls
// back to mock responses instead; the room pipeline surfaces it as a server
// configuration error.
var ErrNotConfigured = errors.New("image provider is not configured")

// MockModelName tags responses produced without a vendor credential.
const MockModelName = "mock-model"

// Metadata describes how a view was produced.
type Metadata struct {
	Model          string `json:"model"`
	GenerationTime int64  `json:"generationTime"`
	PromptUsed     string `json:"promptUsed"`
}

// Result is a successful single-view generation.
type Result struct {
	ImageURL string   `json:"imageUrl"`
	Metadata Metadata `json:"metadata"`
}

// ViewResult pairs a view's outcome with its error, for fan-out calls where
// one view failing must not discard the others.
type ViewResult struct {
	Result *Result
	Err    error
}

// Service generates product views. The provider client is injected
// explicitly; a nil client puts the service in mock mode, where every view
// request succeeds with the product's existing photo as a placeholder.
type Service struct {
	client     imaging.Client
	httpClient *http.Client
	logger     infra.Logger
}

func NewService(client imaging.Client, httpClient *http.Client, logger infra.Logger) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Service{client: client, httpClient: httpClient, logger: logger}
}

// Configured reports whether a real vendor client is wired in.
func (s *Service) Configured() bool {
	return s.client != nil
}

// GenerateView renders one product from the requested perspective. The
// product's reference photo is fetched, encoded, and sent with the composed
// prompt in a single edit call.
func (s *Service) GenerateView(ctx context.Context, product catalog.Product, viewType ViewType, opts Options) (*Result, error) {
	start := time.Now()
	prompt := BuildPrompt(product, viewType, opts)

	if s.client == nil {
		return s.mockResult(product, prompt, start), nil
	}

	img, err := imaging.Fetch(ctx, s.httpClient, product.BaseImage)
	if err != nil {
		return nil, err
	}

	edited, err := s.client.EditImage(ctx, img, prompt)
	if err != nil {
		s.logger.Error().Err(err).
			Str("product_id", product.ID).
			Str("view", string(viewType)).
			Msg("aiview: edit call failed")
		return nil, err
	}

	return &Result{
		ImageURL: edited.DataURL(),
		Metadata: Metadata{
			Model:          s.client.Model(),
			GenerationTime: time.Since(start).Milliseconds(),
			PromptUsed:     prompt,
		},
	}, nil
}

// GenerateAllViews renders several views of one product concurrently. The
// returned map is keyed by every requested view type regardless of which
// upstream call finished first; per-view failures are carried in ViewResult.
func (s *Service) GenerateAllViews(ctx context.Context, product catalog.Product, viewTypes []ViewType, opts Options) map[ViewType]ViewResult {
	if len(viewTypes) == 0 {
		viewTypes = DefaultViews
	}

	var (
		mu      sync.Mutex
		results = make(map[ViewType]ViewResult, len(viewTypes))
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, viewType := range viewTypes {
		viewType := viewType
		g.Go(func() error {
			res, err := s.GenerateView(ctx, product, viewType, opts)
			mu.Lock()
			results[viewType] = ViewResult{Result: res, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// BatchGenerateViews renders views for many products, strictly one product at
// a time. The sequencing is a deliberate throttle so a catalog-wide run does
// not burst the vendor's rate limit.
func (s *Service) BatchGenerateViews(ctx context.Context, products []catalog.Product, viewTypes []ViewType) map[string]map[ViewType]ViewResult {
	results := make(map[string]map[ViewType]ViewResult, len(products))
	for _, product := range products {
		results[product.ID] = s.GenerateAllViews(ctx, product, viewTypes, Options{})
	}
	return results
}

// mockResult echoes the product's existing photo so calling UI can be
// exercised without live credentials. The latency figure gets a small random
// bump to resemble a real round trip.
func (s *Service) mockResult(product catalog.Product, prompt string, start time.Time) *Result {
	mockDelay := rand.Int63n(500) + 200
	return &Result{
		ImageURL: product.BaseImage,
		Metadata: Metadata{
			Model:          MockModelName,
			GenerationTime: time.Since(start).Milliseconds() + mockDelay,
			PromptUsed:     prompt,
		},
	}
}
