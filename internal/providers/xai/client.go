// Package xai binds the imaging capability contract to the xAI (Grok) API:
// chat completions for vision descriptions and the image edits endpoint for
// generation.
package xai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/providers/imaging"
)

type Options struct {
	APIKey     string
	BaseURL    string
	ChatModel  string
	ImageModel string
	HTTPClient *http.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	chatModel  string
	imageModel string
	httpClient *http.Client
}

const defaultTimeout = 120 * time.Second

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.x.ai/v1"
	}
	chatModel := opts.ChatModel
	if chatModel == "" {
		chatModel = "grok-4"
	}
	imageModel := opts.ImageModel
	if imageModel == "" {
		imageModel = "grok-imagine-image"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		chatModel:  chatModel,
		imageModel: imageModel,
		httpClient: client,
	}
}

// Model returns the image model identifier used for edit calls.
func (c *Client) Model() string {
	return c.imageModel
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatContentPart `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Stream      bool          `json:"stream"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type editRequest struct {
	Model  string    `json:"model"`
	Image  editImage `json:"image"`
	Prompt string    `json:"prompt"`
}

type editImage struct {
	URL string `json:"url"`
}

type editResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json,omitempty"`
		URL     string `json:"url,omitempty"`
	} `json:"data"`
}

// DescribeImage sends the image with a vision prompt and returns the first
// choice's text. An empty content is returned as an empty string; the caller
// decides on a fallback.
func (c *Client) DescribeImage(ctx context.Context, img imaging.Image, prompt string) (string, error) {
	payload := chatRequest{
		Model:       c.chatModel,
		Stream:      false,
		Temperature: 0.3,
		Messages: []chatMessage{{
			Role: "user",
			Content: []chatContentPart{
				{Type: "text", Text: prompt},
				{Type: "image_url", ImageURL: &chatImageURL{URL: imaging.DataURL(img)}},
			},
		}},
	}

	var out chatResponse
	if err := c.post(ctx, "/chat/completions", "Furniture description", payload, &out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// EditImage applies the prompt to the image via the edits endpoint and
// returns the first result, preferring inline base64 data over a URL.
func (c *Client) EditImage(ctx context.Context, img imaging.Image, prompt string) (*imaging.Edited, error) {
	payload := editRequest{
		Model:  c.imageModel,
		Image:  editImage{URL: imaging.DataURL(img)},
		Prompt: prompt,
	}

	var out editResponse
	if err := c.post(ctx, "/images/edits", "Image generation", payload, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, imaging.ErrNoImage
	}
	first := out.Data[0]
	if first.B64JSON == "" && first.URL == "" {
		return nil, imaging.ErrNoImage
	}
	return &imaging.Edited{B64: first.B64JSON, URL: first.URL, MIME: "image/png"}, nil
}

func (c *Client) post(ctx context.Context, path, operation string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("invoke xai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return &imaging.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    extractErrorMessage(resp.Body, operation, resp.StatusCode),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode xai response: %w", err)
	}
	return nil
}

// extractErrorMessage best-effort parses the vendor error body for a
// human-readable message, falling back to "<operation> failed: <status>".
func extractErrorMessage(body io.Reader, operation string, status int) string {
	raw, _ := io.ReadAll(body)
	var apiErr struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
		return apiErr.Error.Message
	}
	return fmt.Sprintf("%s failed: %d", operation, status)
}

var _ imaging.Client = (*Client)(nil)
