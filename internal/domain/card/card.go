// Package card composes the canonical score, presentation model, and layout
// plan into the single layout description handed to the external renderer.
package card

import (
	"fmt"

	"github.com/okian/scorecard/internal/domain/layout"
	"github.com/okian/scorecard/internal/domain/model"
	"github.com/okian/scorecard/internal/domain/present"
)

// ImageKind tags an image reference for the proxy collaborator.
type ImageKind string

// Image kinds resolved through the proxy.
const (
	KindAvatar     ImageKind = "avatar"
	KindBackground ImageKind = "background"
)

// FullComboText is the banner text shown on full-combo plays.
const FullComboText = "FULL COMBO!"

// ImageResolver maps a source image URL to a stable reference URL the
// renderer can dereference. Implementations never fail; they fall back to a
// placeholder reference instead.
type ImageResolver interface {
	Resolve(kind ImageKind, src string) string
}

// Layout is the complete description of one scorecard, ready for
// rasterization. Each recompute produces a fresh Layout that fully replaces
// the previous one.
type Layout struct {
	Canonical    model.CanonicalScore `json:"canonical"`
	Presentation present.Model        `json:"presentation"`
	Plan         layout.Plan          `json:"plan"`

	AuxText       []string `json:"aux_text"`
	BackgroundURL string   `json:"background_url"`
	AvatarURL     string   `json:"avatar_url"`
}

// Assembler builds layouts. It holds the injected measurement and image
// resolution capabilities plus the gradient ramp loaded at startup.
type Assembler struct {
	measurer layout.Measurer
	resolver ImageResolver
	ramp     *present.Ramp
}

// New creates an Assembler. A nil ramp selects the discrete color fallback.
func New(measurer layout.Measurer, resolver ImageResolver, ramp *present.Ramp) *Assembler {
	return &Assembler{measurer: measurer, resolver: resolver, ramp: ramp}
}

// Assemble derives the full layout for one canonical score. It is a pure
// composition: image references are resolved to URLs, never fetched.
func (a *Assembler) Assemble(c model.CanonicalScore) Layout {
	pm := present.Compute(c, a.ramp)
	aux := auxText(c)

	plan := layout.Fit(a.measurer, layout.Input{
		Title:         c.Title,
		IconCount:     len(pm.ModIcons),
		PPText:        pm.PPText,
		FullComboText: FullComboText,
		ShowFullCombo: pm.ShowFullCombo,
		AuxLines:      len(aux),
	})

	return Layout{
		Canonical:     c,
		Presentation:  pm,
		Plan:          plan,
		AuxText:       aux,
		BackgroundURL: a.resolver.Resolve(KindBackground, c.CoverURL),
		AvatarURL:     a.resolver.Resolve(KindAvatar, c.AvatarURL),
	}
}

// auxText builds the auxiliary lines under the title. Lines with nothing to
// say are omitted, so the count varies and drives vertical sizing.
func auxText(c model.CanonicalScore) []string {
	lines := make([]string, 0, 3)
	if c.Version != "" {
		lines = append(lines, fmt.Sprintf("[%s]", c.Version))
	}
	if c.Creator != "" {
		lines = append(lines, "mapped by "+c.Creator)
	}
	if c.Username != "" {
		lines = append(lines, "played by "+c.Username)
	}
	return lines
}
