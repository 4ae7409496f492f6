// Package aiview renders catalog products from new camera angles and places
// them into customer room photos using an image-edit vendor behind the
// imaging.Client contract.
package aiview

// ViewType is one of six fixed camera/context perspectives.
type ViewType string

const (
	ViewFront   ViewType = "front"
	ViewSide    ViewType = "side"
	ViewAngle45 ViewType = "angle-45"
	ViewInRoom  ViewType = "in-room"
	ViewDetail  ViewType = "detail"
	ViewTop     ViewType = "top"
)

// Valid reports whether v is a known view type.
func (v ViewType) Valid() bool {
	_, ok := viewConfigs[v]
	return ok
}

// DefaultViews are the perspectives pre-generated for catalog pages.
var DefaultViews = []ViewType{ViewFront, ViewSide, ViewAngle45, ViewInRoom}

// ViewConfig pairs a view type with its display strings and the fixed phrase
// injected into generation prompts.
type ViewConfig struct {
	Type           ViewType `json:"type"`
	Label          string   `json:"label"`
	Description    string   `json:"description"`
	PromptModifier string   `json:"promptModifier"`
}

var viewConfigs = map[ViewType]ViewConfig{
	ViewFront: {
		Type:           ViewFront,
		Label:          "Front View",
		Description:    "Direct front-facing view",
		PromptModifier: "straight-on front view, centered composition",
	},
	ViewSide: {
		Type:           ViewSide,
		Label:          "Side View",
		Description:    "Profile side view",
		PromptModifier: "profile side view, showing depth and proportions",
	},
	ViewAngle45: {
		Type:           ViewAngle45,
		Label:          "45° Angle",
		Description:    "Three-quarter angle view",
		PromptModifier: "45-degree angle view, three-quarter perspective showing form and depth",
	},
	ViewInRoom: {
		Type:           ViewInRoom,
		Label:          "In Room",
		Description:    "Lifestyle context view",
		PromptModifier: "placed in a modern, well-lit living space with complementary decor",
	},
	ViewDetail: {
		Type:           ViewDetail,
		Label:          "Detail",
		Description:    "Close-up material detail",
		PromptModifier: "close-up detail shot showcasing material texture and craftsmanship",
	},
	ViewTop: {
		Type:           ViewTop,
		Label:          "Top View",
		Description:    "Bird's eye view",
		PromptModifier: "top-down birds eye view, showing overall shape and footprint",
	},
}

// Config returns the configuration for a view type. The bool is false for
// unknown values.
func Config(v ViewType) (ViewConfig, bool) {
	cfg, ok := viewConfigs[v]
	return cfg, ok
}

// Options are the optional generation knobs. Absent values take the defaults
// studio lighting, minimal background, high quality.
type Options struct {
	Lighting    string `json:"lighting,omitempty"`
	Background  string `json:"background,omitempty"`
	Quality     string `json:"quality,omitempty"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}
