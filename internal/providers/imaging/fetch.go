package imaging

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Fetch downloads an image and captures its served MIME type. Content-Type
// parameters after ';' are stripped; an absent header defaults to image/jpeg,
// matching what product photo CDNs serve.
func Fetch(ctx context.Context, client *http.Client, url string) (Image, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Image{}, fmt.Errorf("create image request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return Image{}, fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return Image{}, fmt.Errorf("fetch image status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, fmt.Errorf("read image: %w", err)
	}

	mime := resp.Header.Get("Content-Type")
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(mime)
	if mime == "" {
		mime = "image/jpeg"
	}
	return Image{Data: data, MIME: mime}, nil
}

// DataURL encodes an image as a base64 data URI for vendors that accept
// images embedded in JSON payloads.
func DataURL(img Image) string {
	mime := img.MIME
	if mime == "" {
		mime = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(img.Data))
}
