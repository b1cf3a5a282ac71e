// Package present derives every display-only value of a scorecard from a
// canonical score: colors, formatted strings, conditional hit-count rows,
// and mod icon descriptors. The model is recomputed in full on every update
// and never patched incrementally.
package present

import (
	"fmt"
	"strings"

	"github.com/okian/scorecard/internal/domain/model"
)

// Badge text colors around the dark-background threshold.
const (
	badgeTextThreshold = 6.5
	badgeTextDark      = "#000000"
	badgeTextLight     = "#ffd966"
)

// HeartGlyph replaces the pp value on loved maps.
const HeartGlyph = "♥"

// Cell is one labelled value inside a hit-count row.
type Cell struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row is one line of the hit-count grid.
type Row struct {
	Cells []Cell `json:"cells"`
}

// ModIcon describes one mod badge, order preserved from the source list.
type ModIcon struct {
	Acronym string `json:"acronym"`
	Asset   string `json:"asset"`
}

// Model carries everything the layout and renderer need that is purely
// presentational. It holds no authority: all values derive from the
// canonical score plus the gradient ramp.
type Model struct {
	DifficultyColor string    `json:"difficulty_color"`
	BadgeTextColor  string    `json:"badge_text_color"`
	StarText        string    `json:"star_text"`
	ScoreText       string    `json:"score_text"`
	AccuracyText    string    `json:"accuracy_text"`
	ComboText       string    `json:"combo_text"`
	GlobalRankText  string    `json:"global_rank_text"`
	PPText          string    `json:"pp_text"`
	ShowHeart       bool      `json:"show_heart"`
	ShowFullCombo   bool      `json:"show_full_combo"`
	HitRows         []Row     `json:"hit_rows"`
	ModIcons        []ModIcon `json:"mod_icons"`
}

// Compute derives the full presentation model. It never fails; every input
// produces a coherent model.
func Compute(c model.CanonicalScore, ramp *Ramp) Model {
	m := Model{
		DifficultyColor: DifficultyColor(ramp, c.StarRating),
		BadgeTextColor:  badgeTextColor(c.StarRating),
		StarText:        FormatStars(c.StarRating),
		ScoreText:       GroupInt(c.DisplayedScore),
		AccuracyText:    FormatAccuracy(c.Accuracy),
		ComboText:       GroupInt(int64(c.Combo)) + "x",
		GlobalRankText:  "#" + GroupInt(c.GlobalRank),
		PPText:          ppText(c),
		ShowHeart:       c.Status == model.StatusLoved,
		ShowFullCombo:   c.FullCombo,
		HitRows:         hitRows(c),
		ModIcons:        modIcons(c.Mods),
	}
	return m
}

func badgeTextColor(rating float64) string {
	if rating > badgeTextThreshold {
		return badgeTextLight
	}
	return badgeTextDark
}

// ppText applies the loved-status rules: loved maps show a bare heart unless
// the pp value was explicitly overridden, in which case the overridden value
// gets a heart suffix. Everything else shows the rounded value plus "pp".
func ppText(c model.CanonicalScore) string {
	if c.Status == model.StatusLoved {
		if c.PPOverridden {
			return fmt.Sprintf("%d %s", roundHalfUp(c.PP), HeartGlyph)
		}
		return HeartGlyph
	}
	return fmt.Sprintf("%dpp", roundHalfUp(c.PP))
}

// cellSpec extracts one cell from a canonical score. The row tables below
// drive a single generator for both scoring modes instead of duplicating
// the grid per mode.
type cellSpec struct {
	label   string
	extract func(model.CanonicalScore) string
}

var (
	cell300 = cellSpec{"300", func(c model.CanonicalScore) string { return GroupInt(int64(c.Statistics.Great)) }}
	cell100 = cellSpec{"100", func(c model.CanonicalScore) string { return GroupInt(int64(c.Statistics.Ok)) }}
	cell50  = cellSpec{"50", func(c model.CanonicalScore) string { return GroupInt(int64(c.Statistics.Meh)) }}
	cellX   = cellSpec{"Miss", func(c model.CanonicalScore) string { return GroupInt(int64(c.Statistics.Miss)) }}
	cellEnd = cellSpec{"Slider ends", func(c model.CanonicalScore) string {
		return fmt.Sprintf("%d/%d", c.Statistics.SliderTail, c.Statistics.SliderCount)
	}}
	cellCombo = cellSpec{"Combo", func(c model.CanonicalScore) string { return GroupInt(int64(c.Combo)) + "x" }}
	cellAcc   = cellSpec{"Accuracy", func(c model.CanonicalScore) string { return FormatAccuracy(c.Accuracy) }}
)

// rowTables maps each scoring mode to its three-row grid. The grids group
// different fields, not just different formats: modern plays surface the 50
// count beside 300/100 and add the slider-end fraction.
var rowTables = map[model.ScoringMode][][]cellSpec{
	model.ModeModern: {
		{cell300, cell100, cell50},
		{cellX, cellEnd},
		{cellCombo, cellAcc},
	},
	model.ModeClassic: {
		{cell300, cell100},
		{cell50, cellX},
		{cellCombo, cellAcc},
	},
}

func hitRows(c model.CanonicalScore) []Row {
	specs := rowTables[c.Mode]
	rows := make([]Row, 0, len(specs))
	for _, rs := range specs {
		cells := make([]Cell, 0, len(rs))
		for _, cs := range rs {
			cells = append(cells, Cell{Label: cs.label, Value: cs.extract(c)})
		}
		rows = append(rows, Row{Cells: cells})
	}
	return rows
}

func modIcons(mods []string) []ModIcon {
	icons := make([]ModIcon, 0, len(mods))
	for _, m := range mods {
		icons = append(icons, ModIcon{
			Acronym: m,
			Asset:   "mods/" + strings.ToLower(m) + ".png",
		})
	}
	return icons
}
