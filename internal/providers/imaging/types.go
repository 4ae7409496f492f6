package imaging

import (
	"context"
	"errors"
	"fmt"
)

// Image is raw picture bytes plus the MIME type they were served with.
type Image struct {
	Data []byte
	MIME string
}

// Edited is a single generated image returned by an edit call. Providers fill
// B64 when the vendor returned inline data and URL when it returned a remote
// location; at least one of the two is always set.
type Edited struct {
	B64  string
	URL  string
	MIME string
}

// DataURL returns the inline data URI for the edited image when inline bytes
// are present, otherwise the remote URL. Inline data wins when both exist.
func (e *Edited) DataURL() string {
	if e.B64 != "" {
		mime := e.MIME
		if mime == "" {
			mime = "image/png"
		}
		return fmt.Sprintf("data:%s;base64,%s", mime, e.B64)
	}
	return e.URL
}

// Client is the capability contract implemented by every vendor binding.
// DescribeImage turns a picture into free text; EditImage applies a textual
// instruction to a picture and returns exactly one result image.
type Client interface {
	DescribeImage(ctx context.Context, img Image, prompt string) (string, error)
	EditImage(ctx context.Context, img Image, prompt string) (*Edited, error)
	Model() string
}

// ErrNoImage signals a 2xx vendor response that carried no usable image.
var ErrNoImage = errors.New("No image was generated.")

// UpstreamError is a non-2xx vendor response, normalized so handlers can map
// it to a 502 with the vendor's own message when one could be extracted.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
