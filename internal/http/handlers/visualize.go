package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"storefront/internal/providers/imaging"
)

const maxUploadBytes = 10 * 1024 * 1024 // 10MB

var allowedUploadTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/jpg":  {},
	"image/webp": {},
}

// validateUpload checks presence, size, and MIME type of an uploaded image.
// It runs before any upstream call so invalid input never spends vendor quota.
func validateUpload(header *multipart.FileHeader, fieldName string) error {
	if header.Size == 0 {
		return fmt.Errorf("%s is empty.", fieldName)
	}
	if header.Size > maxUploadBytes {
		return fmt.Errorf("%s must be 10MB or less.", fieldName)
	}
	mime := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	if _, ok := allowedUploadTypes[mime]; !ok {
		return fmt.Errorf("%s must be PNG, JPG, JPEG, or WEBP.", fieldName)
	}
	return nil
}

func readUpload(header *multipart.FileHeader) (imaging.Image, error) {
	f, err := header.Open()
	if err != nil {
		return imaging.Image{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return imaging.Image{}, err
	}
	mime := header.Header.Get("Content-Type")
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.TrimSpace(mime)
	if mime == "" {
		mime = "image/jpeg"
	}
	return imaging.Image{Data: data, MIME: mime}, nil
}

// VisualizeFurniture composites a furniture piece into an uploaded room
// photo. The furniture comes either from the catalog (furnitureProductId) or
// from a second uploaded file (furnitureImage).
func (a *App) VisualizeFurniture(w http.ResponseWriter, r *http.Request) {
	if !a.Views.Configured() {
		a.fail(w, http.StatusInternalServerError, "XAI_API_KEY is not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes + 1024*1024); err != nil {
		a.fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	_, roomHeader, err := r.FormFile("roomImage")
	if err != nil {
		a.fail(w, http.StatusBadRequest, "Room image is required.")
		return
	}
	if err := validateUpload(roomHeader, "Room image"); err != nil {
		a.fail(w, http.StatusBadRequest, err.Error())
		return
	}

	furniture, status, err := a.resolveFurnitureImage(r)
	if err != nil {
		a.fail(w, status, err.Error())
		return
	}

	room, err := readUpload(roomHeader)
	if err != nil {
		a.fail(w, http.StatusBadRequest, "Could not read the room image.")
		return
	}

	result, err := a.Views.PlaceInRoom(r.Context(), furniture, room)
	if err != nil {
		a.failGeneration(w, err)
		return
	}

	if result.Base64 != "" {
		a.json(w, http.StatusOK, map[string]any{
			"success":  true,
			"image":    result.Base64,
			"mimeType": result.MIMEType,
			"dataUrl":  result.DataURL,
			"url":      emptyToNil(result.URL),
		})
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":  true,
		"url":      result.URL,
		"dataUrl":  result.DataURL,
		"mimeType": result.MIMEType,
	})
}

// resolveFurnitureImage loads the furniture reference either from the catalog
// or from the alternate two-upload form shape.
func (a *App) resolveFurnitureImage(r *http.Request) (imaging.Image, int, error) {
	productID := strings.TrimSpace(r.FormValue("furnitureProductId"))
	if productID != "" {
		product, ok := a.Catalog.Get(productID)
		if !ok || product.BaseImage == "" {
			return imaging.Image{}, http.StatusBadRequest, fmt.Errorf("Selected furniture is not available.")
		}
		img, err := imaging.Fetch(r.Context(), nil, product.BaseImage)
		if err != nil {
			return imaging.Image{}, http.StatusBadRequest, fmt.Errorf("Could not load the selected furniture image.")
		}
		return img, 0, nil
	}

	_, furnitureHeader, err := r.FormFile("furnitureImage")
	if err != nil {
		return imaging.Image{}, http.StatusBadRequest, fmt.Errorf("Please select a furniture piece from our collection.")
	}
	if err := validateUpload(furnitureHeader, "Furniture image"); err != nil {
		return imaging.Image{}, http.StatusBadRequest, err
	}
	img, err := readUpload(furnitureHeader)
	if err != nil {
		return imaging.Image{}, http.StatusBadRequest, fmt.Errorf("Could not read the furniture image.")
	}
	return img, 0, nil
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
