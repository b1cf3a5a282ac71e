package model

// ModeToggle is the user-facing scoring-mode override.
type ModeToggle string

// ModeToggle values. Auto keeps the detected mode.
const (
	ToggleAuto    ModeToggle = ""
	ToggleClassic ModeToggle = "classic"
	ToggleModern  ModeToggle = "modern"
)

// OverrideSet is a sparse set of user-supplied replacement values for a
// single editing session. Every field is optional and carried as raw text;
// an empty string means "use the upstream value". Parsing and validation
// happen during normalization, where malformed values degrade to the
// upstream value rather than failing.
type OverrideSet struct {
	Title      string `json:"title,omitempty"`
	Version    string `json:"version,omitempty"`
	Creator    string `json:"creator,omitempty"`
	Username   string `json:"username,omitempty"`
	Score      string `json:"score,omitempty"`
	Combo      string `json:"combo,omitempty"`
	Accuracy   string `json:"accuracy,omitempty"`
	Rank       string `json:"rank,omitempty"`
	PP         string `json:"pp,omitempty"`
	GlobalRank string `json:"global_rank,omitempty"`
	StarRating string `json:"star_rating,omitempty"`
	Count300   string `json:"count_300,omitempty"`
	Count100   string `json:"count_100,omitempty"`
	Count50    string `json:"count_50,omitempty"`
	Miss       string `json:"miss,omitempty"`
	SliderTail string `json:"slider_tail,omitempty"`
	Mods       string `json:"mods,omitempty"` // comma-separated acronyms

	// ForceMode takes precedence over heuristic mode detection.
	ForceMode ModeToggle `json:"force_mode,omitempty"`
}

// IsZero reports whether no override is set.
func (o OverrideSet) IsZero() bool {
	return o == OverrideSet{}
}
