package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"storefront/internal/providers/imaging"
)

type filePart struct {
	field       string
	filename    string
	contentType string
	data        []byte
}

// buildMultipart assembles a multipart body with explicit per-part content
// types; CreateFormFile would hardcode application/octet-stream.
func buildMultipart(t *testing.T, fields map[string]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.filename+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		if _, err := part.Write(f.data); err != nil {
			t.Fatalf("write part: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func postMultipart(t *testing.T, app *App, fields map[string]string, files ...filePart) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := buildMultipart(t, fields, files...)
	req := httptest.NewRequest(http.MethodPost, "/api/visualize-furniture", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	app.VisualizeFurniture(rr, req)
	return rr
}

func roomFile(data []byte) filePart {
	return filePart{field: "roomImage", filename: "room.jpg", contentType: "image/jpeg", data: data}
}

func TestVisualizeRequiresCredential(t *testing.T) {
	app, imgSrv := newTestApp(nil, "")
	defer imgSrv.Close()

	rr := postMultipart(t, app, map[string]string{"furnitureProductId": "oak-chair"}, roomFile([]byte("room")))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
	env := decodeEnvelope(t, rr)
	if env["error"] != "XAI_API_KEY is not configured" {
		t.Fatalf("error = %v", env["error"])
	}
}

func TestVisualizeInputValidation(t *testing.T) {
	testCases := []struct {
		name       string
		fields     map[string]string
		files      []filePart
		wantStatus int
		wantSubstr string
	}{
		{
			name:       "missing room image",
			fields:     map[string]string{"furnitureProductId": "oak-chair"},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "Room image is required.",
		},
		{
			name:       "empty room image",
			fields:     map[string]string{"furnitureProductId": "oak-chair"},
			files:      []filePart{roomFile(nil)},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "Room image is empty.",
		},
		{
			name:       "oversized room image",
			fields:     map[string]string{"furnitureProductId": "oak-chair"},
			files:      []filePart{roomFile(bytes.Repeat([]byte{0xAB}, maxUploadBytes+1))},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "10MB",
		},
		{
			name:       "gif room image",
			fields:     map[string]string{"furnitureProductId": "oak-chair"},
			files:      []filePart{{field: "roomImage", filename: "room.gif", contentType: "image/gif", data: []byte("gif")}},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "PNG, JPG, JPEG, or WEBP",
		},
		{
			name:       "no furniture selection",
			fields:     map[string]string{},
			files:      []filePart{roomFile([]byte("room"))},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "Please select a furniture piece from our collection.",
		},
		{
			name:       "unknown furniture product",
			fields:     map[string]string{"furnitureProductId": "ghost-sofa"},
			files:      []filePart{roomFile([]byte("room"))},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "Selected furniture is not available.",
		},
		{
			name:   "gif furniture upload",
			fields: map[string]string{},
			files: []filePart{
				roomFile([]byte("room")),
				{field: "furnitureImage", filename: "sofa.gif", contentType: "image/gif", data: []byte("gif")},
			},
			wantStatus: http.StatusBadRequest,
			wantSubstr: "Furniture image must be PNG, JPG, JPEG, or WEBP.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubImaging{describeText: "a sofa"}
			app, imgSrv := newTestApp(stub, "")
			defer imgSrv.Close()

			rr := postMultipart(t, app, tc.fields, tc.files...)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d; body=%s", rr.Code, tc.wantStatus, rr.Body.String())
			}
			if !strings.Contains(rr.Body.String(), tc.wantSubstr) {
				t.Fatalf("body %q missing %q", rr.Body.String(), tc.wantSubstr)
			}
			if stub.editCalls != 0 {
				t.Fatal("invalid input must not reach the vendor")
			}
		})
	}
}

func TestVisualizeAcceptsExactly10MB(t *testing.T) {
	stub := &stubImaging{describeText: "oak chair", edited: &imaging.Edited{B64: "QUJD", MIME: "image/png"}}
	app, imgSrv := newTestApp(stub, "")
	defer imgSrv.Close()

	rr := postMultipart(t, app,
		map[string]string{"furnitureProductId": "oak-chair"},
		roomFile(bytes.Repeat([]byte{0xCD}, maxUploadBytes)))
	if rr.Code != http.StatusOK {
		t.Fatalf("a file of exactly 10MB must be accepted; status = %d; body=%s", rr.Code, rr.Body.String())
	}
}

func TestVisualizeSuccessInlineImage(t *testing.T) {
	stub := &stubImaging{describeText: "oak chair", edited: &imaging.Edited{B64: "QUJD", MIME: "image/png"}}
	app, imgSrv := newTestApp(stub, "")
	defer imgSrv.Close()

	rr := postMultipart(t, app, map[string]string{"furnitureProductId": "oak-chair"}, roomFile([]byte("room")))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
	env := decodeEnvelope(t, rr)
	if env["success"] != true {
		t.Fatalf("success = %v", env["success"])
	}
	if env["image"] != "QUJD" {
		t.Fatalf("image = %v", env["image"])
	}
	if env["mimeType"] != "image/png" {
		t.Fatalf("mimeType = %v", env["mimeType"])
	}
	if env["dataUrl"] != "data:image/png;base64,QUJD" {
		t.Fatalf("dataUrl = %v", env["dataUrl"])
	}
}

func TestVisualizeSuccessURLOnly(t *testing.T) {
	stub := &stubImaging{describeText: "oak chair", edited: &imaging.Edited{URL: "https://cdn.example.com/out.png"}}
	app, imgSrv := newTestApp(stub, "")
	defer imgSrv.Close()

	rr := postMultipart(t, app, map[string]string{"furnitureProductId": "oak-chair"}, roomFile([]byte("room")))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
	env := decodeEnvelope(t, rr)
	if env["url"] != "https://cdn.example.com/out.png" {
		t.Fatalf("url = %v", env["url"])
	}
	if env["dataUrl"] != "https://cdn.example.com/out.png" {
		t.Fatalf("dataUrl = %v", env["dataUrl"])
	}
}

func TestVisualizeTwoUploadVariant(t *testing.T) {
	stub := &stubImaging{describeText: "blue velvet armchair", edited: &imaging.Edited{B64: "QUJD", MIME: "image/png"}}
	app, imgSrv := newTestApp(stub, "")
	defer imgSrv.Close()

	rr := postMultipart(t, app, nil,
		roomFile([]byte("room")),
		filePart{field: "furnitureImage", filename: "chair.png", contentType: "image/png", data: []byte("chair")},
	)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d; body=%s", rr.Code, rr.Body.String())
	}
}

func TestVisualizeUpstreamFailures(t *testing.T) {
	testCases := []struct {
		name       string
		stub       *stubImaging
		wantStatus int
		wantError  string
	}{
		{
			name:       "describe endpoint down",
			stub:       &stubImaging{describeErr: &imaging.UpstreamError{StatusCode: 500, Message: "Furniture description failed: 500"}},
			wantStatus: http.StatusBadGateway,
			wantError:  "Furniture description failed: 500",
		},
		{
			name:       "edit returns no image",
			stub:       &stubImaging{describeText: "oak chair", editErr: imaging.ErrNoImage},
			wantStatus: http.StatusBadGateway,
			wantError:  "No image was generated.",
		},
		{
			name:       "edit endpoint rejects",
			stub:       &stubImaging{describeText: "oak chair", editErr: &imaging.UpstreamError{StatusCode: 400, Message: "prompt violates policy"}},
			wantStatus: http.StatusBadGateway,
			wantError:  "prompt violates policy",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, imgSrv := newTestApp(tc.stub, "")
			defer imgSrv.Close()

			rr := postMultipart(t, app, map[string]string{"furnitureProductId": "oak-chair"}, roomFile([]byte("room")))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d; body=%s", rr.Code, tc.wantStatus, rr.Body.String())
			}
			env := decodeEnvelope(t, rr)
			if env["error"] != tc.wantError {
				t.Fatalf("error = %v, want %q", env["error"], tc.wantError)
			}
		})
	}
}
