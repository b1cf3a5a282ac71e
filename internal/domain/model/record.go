// Package model contains domain models passed between layers.
package model

// HitStatistics holds the per-judgement counts of a play.
type HitStatistics struct {
	Great       int `json:"great"`        // "300" judgements
	Ok          int `json:"ok"`           // "100" judgements
	Meh         int `json:"meh"`          // "50" judgements
	Miss        int `json:"miss"`         //
	SliderTail  int `json:"slider_tail"`  // slider ends hit (modern ruleset only)
	SliderCount int `json:"slider_count"` // total slider ends on the map
}

// RawScoreRecord mirrors the upstream score schema. Immutable once fetched.
type RawScoreRecord struct {
	ID            int64         `json:"id"`
	BeatmapID     int64         `json:"beatmap_id"`
	UserID        int64         `json:"user_id"`
	LegacyScoreID int64         `json:"legacy_score_id"` // 0 when no stable counterpart exists
	HasReplay     bool          `json:"has_replay"`
	TotalScore    int64         `json:"total_score"`  // modern ("lazer") total
	LegacyTotal   int64         `json:"legacy_total"` // classic total
	Statistics    HitStatistics `json:"statistics"`
	MaxCombo      int           `json:"max_combo"`
	Accuracy      float64       `json:"accuracy"` // fraction in [0,1]
	Rank          string        `json:"rank"`
	PP            float64       `json:"pp"`
	GlobalRank    int64         `json:"global_rank"`
	Mods          []string      `json:"mods"`
}

// RankedStatus is the upstream beatmap ranked-status tier.
type RankedStatus string

// Ranked-status values as reported by the upstream API.
const (
	StatusRanked    RankedStatus = "ranked"
	StatusLoved     RankedStatus = "loved"
	StatusGraveyard RankedStatus = "graveyard"
	StatusPending   RankedStatus = "pending"
	StatusQualified RankedStatus = "qualified"
)

// RawBeatmapRecord mirrors the upstream beatmap schema. Immutable once fetched.
type RawBeatmapRecord struct {
	BeatmapsetID int64        `json:"beatmapset_id"`
	Title        string       `json:"title"`
	Version      string       `json:"version"` // difficulty name
	StarRating   float64      `json:"star_rating"`
	CoverURL     string       `json:"cover_url"`
	Creator      string       `json:"creator"`
	Status       RankedStatus `json:"status"`
	SliderCount  int          `json:"slider_count"`
}

// RawUserRecord carries the user fields associated with a score.
type RawUserRecord struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
}
