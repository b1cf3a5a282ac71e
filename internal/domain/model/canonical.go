package model

// ScoringMode is the reconciled scoring convention of a card.
type ScoringMode int

// Scoring modes. Classic is the legacy total; Modern is the lazer total.
const (
	ModeClassic ScoringMode = iota
	ModeModern
)

// String returns the lowercase mode name.
func (m ScoringMode) String() string {
	if m == ModeModern {
		return "modern"
	}
	return "classic"
}

// CanonicalScore is the normalizer output: one authoritative value per field
// after override and scheme reconciliation. DisplayedScore already holds the
// total selected by Mode; the unselected total is not carried forward.
type CanonicalScore struct {
	Mode           ScoringMode
	DisplayedScore int64
	Statistics     HitStatistics
	Combo          int
	Accuracy       float64 // fraction in [0,1]
	Rank           string
	PP             float64
	PPOverridden   bool
	GlobalRank     int64
	Mods           []string
	FullCombo      bool

	Title      string
	Version    string
	Creator    string
	Username   string
	StarRating float64
	Status     RankedStatus

	BeatmapsetID int64
	CoverURL     string
	AvatarURL    string

	// Preview marks a beatmap-preview-only card (map typed, no score yet).
	Preview bool
}
