// Package assets builds URLs for game asset images hosted on the CDN. The
// server never serves image bytes itself; it only hands out locations.
package assets

import (
	"fmt"
	"strings"
)

// Banner image variants.
const (
	VariantEvolution = "evolution"
	VariantNormal    = "normal"
)

// Resolver maps entity IDs and variants onto CDN URLs.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver rooted at baseURL.
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimSuffix(baseURL, "/")}
}

// CampaignBanner returns the URL of the full card still used as a campaign
// banner. Birthdays use the normal variant, everything else evolution.
func (r *Resolver) CampaignBanner(bannerID int64, variant string) string {
	return fmt.Sprintf("%s/assets/card_still_full1_%d_%s.webp", r.baseURL, bannerID, variant)
}

// CharacterRender returns the URL of a character's full render image.
func (r *Resolver) CharacterRender(renderID int64) string {
	return fmt.Sprintf("%s/assets/character_full1_%d.png", r.baseURL, renderID)
}
