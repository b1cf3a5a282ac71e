// Package normalize reconciles upstream score records, upstream beatmap
// records, and user overrides into one canonical score.
//
// Nothing in this package fails: malformed override values degrade to the
// upstream value, and missing upstream values degrade to documented
// defaults. Only fetch and render operations can fail visibly.
package normalize

import (
	"strconv"
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
)

// Documented defaults used when neither an override nor an upstream value
// is available.
const (
	// DefaultRank is shown when a card has no play behind it.
	DefaultRank = "F"

	// PreviewSliderCount is the slider-end placeholder for beatmap-preview
	// cards, where no play exists to take the real count from.
	PreviewSliderCount = 100
)

// Source is the upstream input of one normalization. Score and User are nil
// for beatmap-preview cards (map id typed, no score yet); Beatmap is always
// present.
type Source struct {
	Score   *model.RawScoreRecord
	Beatmap model.RawBeatmapRecord
	User    *model.RawUserRecord
}

// Preview reports whether this source describes a beatmap-preview card.
func (s Source) Preview() bool { return s.Score == nil }

// DetectMode applies the scoring-scheme heuristic: a score is modern when it
// carries no legacy score id and its replay was retained. The heuristic
// lives in this one function so an upstream semantics change stays local.
func DetectMode(score *model.RawScoreRecord) model.ScoringMode {
	if score == nil {
		return model.ModeClassic
	}
	if score.LegacyScoreID == 0 && score.HasReplay {
		return model.ModeModern
	}
	return model.ModeClassic
}

// ResolveMode combines the detected mode with the explicit user toggle; the
// toggle wins when set.
func ResolveMode(score *model.RawScoreRecord, toggle model.ModeToggle) model.ScoringMode {
	switch toggle {
	case model.ToggleClassic:
		return model.ModeClassic
	case model.ToggleModern:
		return model.ModeModern
	default:
		return DetectMode(score)
	}
}

// Normalize produces the canonical score for one source and one override
// set. Field resolution order is override, then upstream, then default.
func Normalize(src Source, ov model.OverrideSet) model.CanonicalScore {
	mode := ResolveMode(src.Score, ov.ForceMode)

	c := model.CanonicalScore{
		Mode:         mode,
		Preview:      src.Preview(),
		BeatmapsetID: src.Beatmap.BeatmapsetID,
		CoverURL:     src.Beatmap.CoverURL,
		Status:       src.Beatmap.Status,
	}

	c.Title = resolveString(ov.Title, src.Beatmap.Title)
	c.Version = resolveString(ov.Version, src.Beatmap.Version)
	c.Creator = resolveString(ov.Creator, src.Beatmap.Creator)
	c.StarRating = resolveFloat(ov.StarRating, src.Beatmap.StarRating)
	if c.StarRating < 0 {
		c.StarRating = 0
	}

	if src.User != nil {
		c.Username = src.User.Username
		c.AvatarURL = src.User.AvatarURL
	}
	c.Username = resolveString(ov.Username, c.Username)

	if src.Preview() {
		normalizePreview(&c, src, ov)
		return c
	}

	score := src.Score
	switch mode {
	case model.ModeModern:
		c.DisplayedScore = resolveInt64(ov.Score, score.TotalScore)
	default:
		c.DisplayedScore = resolveInt64(ov.Score, score.LegacyTotal)
	}

	c.Statistics = model.HitStatistics{
		Great:       resolveInt(ov.Count300, score.Statistics.Great),
		Ok:          resolveInt(ov.Count100, score.Statistics.Ok),
		Meh:         resolveInt(ov.Count50, score.Statistics.Meh),
		Miss:        resolveInt(ov.Miss, score.Statistics.Miss),
		SliderTail:  resolveInt(ov.SliderTail, score.Statistics.SliderTail),
		SliderCount: score.Statistics.SliderCount,
	}
	if c.Statistics.SliderCount == 0 {
		c.Statistics.SliderCount = src.Beatmap.SliderCount
	}

	c.Combo = resolveInt(ov.Combo, score.MaxCombo)
	c.Accuracy = resolveAccuracy(ov.Accuracy, score.Accuracy)
	c.Rank = resolveRank(ov.Rank, score.Rank)
	c.GlobalRank = resolveInt64(ov.GlobalRank, score.GlobalRank)
	c.PP, c.PPOverridden = resolvePP(ov.PP, score.PP)
	c.Mods = resolveMods(ov.Mods, score.Mods)
	c.FullCombo = c.Statistics.Miss == 0 && c.Combo > 0

	return c
}

// normalizePreview fills the representative "empty" card shown while the
// user explores override fields before any score exists.
func normalizePreview(c *model.CanonicalScore, src Source, ov model.OverrideSet) {
	c.DisplayedScore = resolveInt64(ov.Score, 0)
	c.Statistics = model.HitStatistics{
		Great:       resolveInt(ov.Count300, 0),
		Ok:          resolveInt(ov.Count100, 0),
		Meh:         resolveInt(ov.Count50, 0),
		Miss:        resolveInt(ov.Miss, 0),
		SliderTail:  resolveInt(ov.SliderTail, 0),
		SliderCount: PreviewSliderCount,
	}
	if src.Beatmap.SliderCount > 0 {
		c.Statistics.SliderCount = src.Beatmap.SliderCount
	}
	c.Combo = resolveInt(ov.Combo, 0)
	c.Accuracy = resolveAccuracy(ov.Accuracy, 0)
	c.Rank = resolveRank(ov.Rank, DefaultRank)
	c.GlobalRank = resolveInt64(ov.GlobalRank, 0)
	c.PP, c.PPOverridden = resolvePP(ov.PP, 0)
	c.Mods = resolveMods(ov.Mods, nil)
	c.FullCombo = false
}

// resolveString returns the trimmed override when non-empty, else upstream.
func resolveString(override, upstream string) string {
	if v := strings.TrimSpace(override); v != "" {
		return v
	}
	return upstream
}

func resolveInt(override string, upstream int) int {
	v, err := strconv.Atoi(strings.TrimSpace(override))
	if err != nil || v < 0 {
		return upstream
	}
	return v
}

func resolveInt64(override string, upstream int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(override), 10, 64)
	if err != nil || v < 0 {
		return upstream
	}
	return v
}

func resolveFloat(override string, upstream float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(override), 64)
	if err != nil {
		return upstream
	}
	return v
}

// resolveAccuracy accepts user input as either a percentage ("97.53") or a
// fraction ("0.9753") and always yields a fraction clamped to [0,1].
func resolveAccuracy(override string, upstream float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(override), 64)
	if err != nil || v < 0 {
		return upstream
	}
	if v > 1 {
		v /= 100
	}
	if v > 1 {
		v = 1
	}
	return v
}

// validRanks is the upstream rank-letter alphabet.
var validRanks = map[string]struct{}{
	"XH": {}, "X": {}, "SH": {}, "S": {},
	"A": {}, "B": {}, "C": {}, "D": {}, "F": {},
}

func resolveRank(override, upstream string) string {
	v := strings.ToUpper(strings.TrimSpace(override))
	if _, ok := validRanks[v]; ok {
		return v
	}
	if upstream != "" {
		return upstream
	}
	return DefaultRank
}

// resolvePP reports the resolved value plus whether an override took effect;
// the presentation layer needs the distinction for loved maps.
func resolvePP(override string, upstream float64) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(override), 64)
	if err != nil || v < 0 {
		return upstream, false
	}
	return v, true
}

// resolveMods picks the override list when the override string is non-empty,
// else the upstream list. The two are never merged.
func resolveMods(override string, upstream []string) []string {
	if strings.TrimSpace(override) != "" {
		return ParseMods(override)
	}
	out := make([]string, 0, len(upstream))
	for _, m := range upstream {
		if a, ok := normalizeAcronym(m); ok {
			out = append(out, a)
		}
	}
	return out
}

// ParseMods parses a comma-separated list of mod acronyms. Tokens that are
// not exactly two letters are silently dropped; surviving tokens are
// upper-cased. Order is preserved.
func ParseMods(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if a, ok := normalizeAcronym(p); ok {
			out = append(out, a)
		}
	}
	return out
}

func normalizeAcronym(token string) (string, bool) {
	t := strings.TrimSpace(token)
	if len(t) != 2 {
		return "", false
	}
	for _, r := range t {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return "", false
		}
	}
	return strings.ToUpper(t), true
}
