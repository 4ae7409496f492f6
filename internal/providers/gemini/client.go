// Package gemini binds the imaging capability contract to the Google
// Generative Language API. It is the alternate vendor variant; both
// description and edits go through generateContent with inline image parts.
package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/internal/providers/imaging"
)

type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	model := opts.Model
	if model == "" {
		model = "gemini-2.5-flash-image"
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 120 * time.Second}
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		model:      model,
		httpClient: client,
	}
}

func (c *Client) Model() string {
	return c.model
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts,omitempty"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
	FileData   *fileData   `json:"fileData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type fileData struct {
	MimeType string `json:"mimeType,omitempty"`
	FileURI  string `json:"fileUri,omitempty"`
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
	} `json:"error"`
}

// DescribeImage asks the model for free text about the image and returns the
// first text part of the first candidate.
func (c *Client) DescribeImage(ctx context.Context, img imaging.Image, prompt string) (string, error) {
	out, err := c.generateContent(ctx, img, prompt, "Furniture description")
	if err != nil {
		return "", err
	}
	for _, candidate := range out.Candidates {
		for _, p := range candidate.Content.Parts {
			if text := strings.TrimSpace(p.Text); text != "" {
				return text, nil
			}
		}
	}
	return "", nil
}

// EditImage sends the image plus instruction and returns the first image part
// of the response, inline data preferred over a file reference.
func (c *Client) EditImage(ctx context.Context, img imaging.Image, prompt string) (*imaging.Edited, error) {
	out, err := c.generateContent(ctx, img, prompt, "Image generation")
	if err != nil {
		return nil, err
	}
	for _, candidate := range out.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				mime := p.InlineData.MimeType
				if mime == "" {
					mime = "image/png"
				}
				return &imaging.Edited{B64: p.InlineData.Data, MIME: mime}, nil
			}
			if p.FileData != nil && p.FileData.FileURI != "" {
				return &imaging.Edited{URL: p.FileData.FileURI, MIME: p.FileData.MimeType}, nil
			}
		}
	}
	return nil, imaging.ErrNoImage
}

func (c *Client) generateContent(ctx context.Context, img imaging.Image, prompt, operation string) (*generateContentResponse, error) {
	mime := img.MIME
	if mime == "" {
		mime = "image/jpeg"
	}
	payload := generateContentRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{Text: prompt},
				{InlineData: &inlineData{MimeType: mime, Data: base64.StdEncoding.EncodeToString(img.Data)}},
			},
		}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	q := req.URL.Query()
	q.Set("key", c.apiKey)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("invoke gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr errorResponse
		message := fmt.Sprintf("%s failed: %d", operation, resp.StatusCode)
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error.Message != "" {
			message = apiErr.Error.Message
		}
		return nil, &imaging.UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	return &out, nil
}

var _ imaging.Client = (*Client)(nil)
