package aiview

import (
	"strings"
	"testing"

	"storefront/internal/catalog"
)

var promptProduct = catalog.Product{
	ID:         "oslo-lounge-chair",
	Name:       "Oslo Lounge Chair",
	Category:   catalog.CategoryChair,
	BaseImage:  "https://example.com/oslo.jpg",
	Price:      1299,
	Dimensions: "W 76cm × D 82cm × H 77cm",
	Material:   "Solid oak frame, wool blend upholstery",
}

func TestBuildPromptDeterministic(t *testing.T) {
	allViews := []ViewType{ViewFront, ViewSide, ViewAngle45, ViewInRoom, ViewDetail, ViewTop}
	opts := Options{Lighting: "natural", Background: "room", Quality: "ultra"}
	for _, v := range allViews {
		first := BuildPrompt(promptProduct, v, opts)
		second := BuildPrompt(promptProduct, v, opts)
		if first != second {
			t.Fatalf("prompt for %s is not deterministic", v)
		}
		if !strings.Contains(first, promptProduct.Name) {
			t.Fatalf("prompt for %s missing product name", v)
		}
	}
}

func TestBuildPromptSections(t *testing.T) {
	got := BuildPrompt(promptProduct, ViewSide, Options{})

	checks := []string{
		"side view of this furniture piece",
		"PRODUCT DETAILS:",
		"- Name: Oslo Lounge Chair",
		"- Category: chair",
		"- Material: Solid oak frame, wool blend upholstery",
		"VIEW SPECIFICATIONS:",
		"profile side view, showing depth and proportions",
		"VISUAL REQUIREMENTS:",
		"professional studio lighting with soft shadows",
		"clean, minimal white/light gray background",
		"8K resolution, highly detailed",
		"CRITICAL PRESERVATION:",
		"Maintain exact material textures",
		"OUTPUT:",
	}
	for _, expect := range checks {
		if !strings.Contains(got, expect) {
			t.Fatalf("prompt missing %q:\n%s", expect, got)
		}
	}
}

func TestBuildPromptDefaults(t *testing.T) {
	bare := catalog.Product{ID: "p", Name: "P", Category: catalog.CategoryLamp}
	got := BuildPrompt(bare, ViewFront, Options{})

	if !strings.Contains(got, "as shown in reference image") {
		t.Fatalf("expected material fallback:\n%s", got)
	}
	if !strings.Contains(got, "maintain original proportions") {
		t.Fatalf("expected dimensions fallback:\n%s", got)
	}
}

func TestBuildPromptInRoomOverridesBackground(t *testing.T) {
	got := BuildPrompt(promptProduct, ViewInRoom, Options{Background: "white"})

	if !strings.Contains(got, "styled lifestyle setting with complementary furniture and decor") {
		t.Fatalf("in-room prompt missing lifestyle background:\n%s", got)
	}
	if strings.Contains(got, "pure white seamless background") {
		t.Fatalf("in-room prompt must not honor the white background option:\n%s", got)
	}
}

func TestViewTypeValid(t *testing.T) {
	for _, v := range []ViewType{ViewFront, ViewSide, ViewAngle45, ViewInRoom, ViewDetail, ViewTop} {
		if !v.Valid() {
			t.Fatalf("%s should be valid", v)
		}
	}
	if ViewType("isometric").Valid() {
		t.Fatal("isometric should not be a valid view type")
	}
}
