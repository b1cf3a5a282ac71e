package layout

import (
	"math"
	"strings"
)

// Static layout constants, in pixels unless noted. These mirror the card
// artwork and are not configurable at runtime.
const (
	CardWidth = 920

	titleFontSize  = 34.0
	titlePaddingX  = 96.0 // total horizontal padding around the title
	IconWidth      = 68.0 // per mod icon
	IconSpacing    = 12.0 // gap between title and icon strip, if any icons
	minTitleWidth  = 120.0
	minTitleRunes  = 8
	ellipsisSuffix = ".."

	leftSectionWidth = 560.0
	sectionMargin    = 24.0

	// Vertical sizing.
	BaseHeight     = 320.0
	auxLineHeight  = 30.0
	freeAuxLines   = 2
	fcBannerWidth  = 300.0
	fcBoxHeight    = 64.0
	lineHeightStep = 1.3 // line height as a multiple of font size
)

// SizeClass is one entry of the right-section sizing table.
type SizeClass struct {
	Name     string
	MinWidth float64
	FontSize float64
}

// sizeClasses is ordered largest-first; the last entry has a zero threshold
// so every width selects something.
var sizeClasses = []SizeClass{
	{Name: "xl", MinWidth: 300, FontSize: 48},
	{Name: "lg", MinWidth: 230, FontSize: 38},
	{Name: "md", MinWidth: 160, FontSize: 30},
	{Name: "sm", MinWidth: 0, FontSize: 22},
}

// FittedTitle is the outcome of one title fit.
type FittedTitle struct {
	Text      string
	Truncated bool
	Width     float64
}

// Plan holds the final sizes and truncations of one card.
type Plan struct {
	Title          FittedTitle `json:"title"`
	PPClass        string      `json:"pp_class"`
	FullComboClass string      `json:"full_combo_class"`
	Height         float64     `json:"height"`
}

// Input bundles everything the fitter needs from the earlier stages.
type Input struct {
	Title         string
	IconCount     int
	PPText        string
	FullComboText string
	ShowFullCombo bool
	AuxLines      int // auxiliary text lines under the title
}

// TitleBudget is the width available to the title once the mod icon strip
// has taken its share, floored at the minimum title width.
func TitleBudget(iconCount int) float64 {
	w := CardWidth - titlePaddingX - float64(iconCount)*IconWidth
	if iconCount > 0 {
		w -= IconSpacing
	}
	return math.Max(w, minTitleWidth)
}

// FitTitle truncates a title to its budget. A fitting title is returned
// unchanged, which also makes the operation idempotent: re-fitting an
// already truncated title cannot shrink it further.
func FitTitle(m Measurer, title string, iconCount int) FittedTitle {
	budget := TitleBudget(iconCount)
	spec := FontSpec{Size: titleFontSize, Bold: true}

	if w := m.Measure(title, spec); w <= budget {
		return FittedTitle{Text: title, Width: w}
	}

	runes := []rune(title)
	for len(runes) > minTitleRunes {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsisSuffix
		if w := m.Measure(candidate, spec); w <= budget {
			return FittedTitle{Text: candidate, Truncated: true, Width: w}
		}
	}
	candidate := strings.TrimRight(string(runes), " ") + ellipsisSuffix
	return FittedTitle{Text: candidate, Truncated: true, Width: m.Measure(candidate, spec)}
}

// rightSectionWidth is the horizontal space shared by the pp text and the
// full-combo banner.
func rightSectionWidth() float64 {
	return CardWidth - leftSectionWidth - sectionMargin
}

// ClassFor selects the largest size class whose threshold the available
// width still satisfies.
func ClassFor(available float64) SizeClass {
	for _, sc := range sizeClasses {
		if available >= sc.MinWidth {
			return sc
		}
	}
	return sizeClasses[len(sizeClasses)-1]
}

// Height computes the container height: the base, plus one step per
// auxiliary line beyond the first two, plus overflow compensation when the
// full-combo banner's natural content height exceeds its box.
func Height(auxLines int, fcContentHeight float64) float64 {
	h := BaseHeight
	if extra := auxLines - freeAuxLines; extra > 0 {
		h += auxLineHeight * float64(extra)
	}
	if overflow := fcContentHeight - fcBoxHeight; overflow > 0 {
		h += overflow
	}
	return h
}

// bannerContentHeight estimates the natural height of the full-combo banner
// text at a size class: wrapped line count times the class line height.
func bannerContentHeight(m Measurer, text string, sc SizeClass) float64 {
	if text == "" {
		return 0
	}
	w := m.Measure(text, FontSpec{Size: sc.FontSize, Bold: true})
	lines := math.Ceil(w / fcBannerWidth)
	if lines < 1 {
		lines = 1
	}
	return lines * sc.FontSize * lineHeightStep
}

// classForText picks the largest satisfied class whose rendered text still
// fits on one line. It tightens the plain width-threshold table (ClassFor)
// with a per-text fit check; used for the pp text, which never wraps. The
// banner keeps the plain table because it wraps instead.
func classForText(m Measurer, text string, available float64) SizeClass {
	for _, sc := range sizeClasses {
		if available < sc.MinWidth {
			continue
		}
		if text == "" || m.Measure(text, FontSpec{Size: sc.FontSize, Bold: true}) <= available {
			return sc
		}
	}
	return sizeClasses[len(sizeClasses)-1]
}

// Fit runs both fitting passes and produces the layout plan.
func Fit(m Measurer, in Input) Plan {
	// The two right-section regions class independently: the pp text spans
	// the whole section and must fit on one line, the banner only owns its
	// box and wraps instead.
	ppClass := classForText(m, in.PPText, rightSectionWidth())
	fcClass := ClassFor(math.Min(rightSectionWidth(), fcBannerWidth))

	fcContent := 0.0
	if in.ShowFullCombo {
		fcContent = bannerContentHeight(m, in.FullComboText, fcClass)
	}

	return Plan{
		Title:          FitTitle(m, in.Title, in.IconCount),
		PPClass:        ppClass.Name,
		FullComboClass: fcClass.Name,
		Height:         Height(in.AuxLines, fcContent),
	}
}
