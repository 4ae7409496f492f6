package aiview

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/providers/imaging"
)

// furnitureDescriptionPrompt instructs the vision model to produce a
// description precise enough for a second model to draw the piece into
// another scene.
const furnitureDescriptionPrompt = `You are describing a furniture piece so an image model can draw it exactly in another image. Look at this image and describe ONLY what you see. Be very specific:
- Exact type (e.g. "gray fabric 3-seater L-shaped sectional sofa", "oak wood coffee table with four legs", "white bookshelf with 5 shelves").
- Exact colors (e.g. "navy blue", "light oak", "matte black").
- Material and finish (e.g. fabric/leather/wood/metal, glossy/matte).
- Shape, proportions, and any distinctive details (armrests, legs, drawers, cushions).
- Style if clear (modern, mid-century, rustic, etc.).
Output ONLY this description. No preamble. The image model will add this exact piece to a room—so the description must be precise enough to draw it correctly.`

// fallbackDescription stands in when the vision model returns empty text.
// Degrading to a generic description beats failing the whole request.
const fallbackDescription = "The furniture piece from the user image"

func buildRoomEditPrompt(furnitureDescription string) string {
	return fmt.Sprintf(`TASK: Add ONE piece of furniture to the room in this image. The furniture you add MUST be exactly as described below—no other furniture, no generic or random items.

FURNITURE TO ADD (add only this, and make it look exactly like this description):
%s

RULES: Keep the room exactly as it is. Do not change the room. Place the described furniture naturally on the floor in a sensible spot. The added furniture must look exactly like the description above—same type, same colors, same style. Do not add a different piece of furniture. No floating, no clipping.`, furnitureDescription)
}

// RoomResult is the outcome of placing furniture into a room photo. Either
// Base64 (with DataURL carrying the inline URI) or URL is populated.
type RoomResult struct {
	Base64   string
	URL      string
	MIMEType string
	DataURL  string
}

// PlaceInRoom composites a furniture piece into a room photo. Two sequential
// upstream calls: describe the furniture image as text, then edit the room
// image to contain exactly the described piece. The edit receives only the
// room image, which anchors the output to the customer's own room.
func (s *Service) PlaceInRoom(ctx context.Context, furniture, room imaging.Image) (*RoomResult, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}

	description, err := s.client.DescribeImage(ctx, furniture, furnitureDescriptionPrompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("aiview: furniture description failed")
		return nil, err
	}
	if strings.TrimSpace(description) == "" {
		description = fallbackDescription
	}

	edited, err := s.client.EditImage(ctx, room, buildRoomEditPrompt(description))
	if err != nil {
		s.logger.Error().Err(err).Msg("aiview: room edit failed")
		return nil, err
	}

	result := &RoomResult{
		Base64:   edited.B64,
		URL:      edited.URL,
		MIMEType: "image/png",
		DataURL:  edited.DataURL(),
	}
	if result.Base64 == "" && result.URL == "" {
		return nil, imaging.ErrNoImage
	}
	return result, nil
}
