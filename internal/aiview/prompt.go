package aiview

import (
	"fmt"
	"strings"

	"storefront/internal/catalog"
)

var lightingDescriptions = map[string]string{
	"studio":   "professional studio lighting with soft shadows",
	"natural":  "natural daylight with gentle ambient illumination",
	"dramatic": "dramatic directional lighting with defined shadows",
	"soft":     "soft diffused lighting with minimal shadows",
}

var backgroundDescriptions = map[string]string{
	"minimal":   "clean, minimal white/light gray background",
	"white":     "pure white seamless background",
	"room":      "modern interior room setting with neutral walls",
	"lifestyle": "styled lifestyle setting with complementary furniture and decor",
}

var qualityModifiers = map[string]string{
	"standard": "4K resolution",
	"high":     "8K resolution, highly detailed",
	"ultra":    "8K resolution, photorealistic, ultra-detailed, ray-traced lighting",
}

// BuildPrompt composes the edit instruction for rendering a product from the
// requested view. Pure and deterministic: identical inputs yield identical
// strings. The in-room view always uses the lifestyle background phrase, no
// matter what background the caller asked for.
func BuildPrompt(product catalog.Product, viewType ViewType, opts Options) string {
	cfg := viewConfigs[viewType]

	lighting := opts.Lighting
	if lighting == "" {
		lighting = "studio"
	}
	background := opts.Background
	if background == "" {
		background = "minimal"
	}
	quality := opts.Quality
	if quality == "" {
		quality = "high"
	}

	material := product.Material
	if material == "" {
		material = "as shown in reference image"
	}
	dimensions := product.Dimensions
	if dimensions == "" {
		dimensions = "maintain original proportions"
	}

	backgroundPhrase := backgroundDescriptions[background]
	if viewType == ViewInRoom {
		backgroundPhrase = backgroundDescriptions["lifestyle"]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Generate a high-quality, photorealistic %s of this furniture piece.\n\n", strings.ToLower(cfg.Label))
	b.WriteString("PRODUCT DETAILS:\n")
	fmt.Fprintf(&b, "- Name: %s\n", product.Name)
	fmt.Fprintf(&b, "- Category: %s\n", product.Category)
	fmt.Fprintf(&b, "- Material: %s\n", material)
	fmt.Fprintf(&b, "- Dimensions: %s\n\n", dimensions)
	b.WriteString("VIEW SPECIFICATIONS:\n")
	b.WriteString(cfg.PromptModifier)
	b.WriteString("\n\n")
	b.WriteString("VISUAL REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Lighting: %s\n", lightingDescriptions[lighting])
	fmt.Fprintf(&b, "- Background: %s\n", backgroundPhrase)
	fmt.Fprintf(&b, "- Quality: %s\n\n", qualityModifiers[quality])
	b.WriteString("CRITICAL PRESERVATION:\n")
	b.WriteString("- Maintain exact material textures and finishes from the reference\n")
	b.WriteString("- Preserve precise color accuracy and tones\n")
	b.WriteString("- Keep proportions and dimensions accurate\n")
	b.WriteString("- Ensure realistic shadows and reflections\n")
	b.WriteString("- Match the design language and style exactly\n\n")
	b.WriteString("OUTPUT:\n")
	b.WriteString("Photorealistic product photography quality, suitable for e-commerce and marketing materials.")

	return b.String()
}
