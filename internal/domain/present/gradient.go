package present

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Star-rating domain bounds for color lookup.
const (
	minRating = 0.0
	maxRating = 10.0
)

// sentinelColor is returned by the discrete fallback for any bucket miss.
const sentinelColor = "#000000"

// bucketColors is the discrete fallback table, keyed by floor(rating).
var bucketColors = [11]string{
	"#4290fb", // 0
	"#4fc0ff", // 1
	"#4fffd5", // 2
	"#7cff4f", // 3
	"#f6f05c", // 4
	"#ff8068", // 5
	"#ff4e6f", // 6
	"#c645b8", // 7
	"#6563de", // 8
	"#18158e", // 9
	"#000000", // 10
}

// Ramp is a precomputed 1-D color gradient, sampled by linear interpolation
// between stops. Positions are in [0,1]; stops are evenly spaced when built
// from a plain hex list.
type Ramp struct {
	stops []stop
}

type stop struct {
	pos   float64
	color colorful.Color
}

// NewRamp builds a ramp from ordered hex stops. It returns nil when fewer
// than two stops parse, which callers treat as "ramp unavailable".
func NewRamp(hexes []string) *Ramp {
	stops := make([]stop, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			continue
		}
		stops = append(stops, stop{color: c})
	}
	if len(stops) < 2 {
		return nil
	}
	for i := range stops {
		stops[i].pos = float64(i) / float64(len(stops)-1)
	}
	return &Ramp{stops: stops}
}

// Sample returns the hex color for a star rating. Ratings are clamped to
// [0,10] and mapped linearly onto the ramp.
func (r *Ramp) Sample(rating float64) string {
	t := clampRating(rating) / maxRating
	s := r.stops
	if t <= s[0].pos {
		return s[0].color.Hex()
	}
	for i := 0; i < len(s)-1; i++ {
		if t <= s[i+1].pos {
			span := s[i+1].pos - s[i].pos
			frac := (t - s[i].pos) / span
			return s[i].color.BlendRgb(s[i+1].color, frac).Clamped().Hex()
		}
	}
	return s[len(s)-1].color.Hex()
}

// DifficultyColor resolves the color for a star rating: ramp sampling when a
// ramp is available, else the discrete bucket table. It never fails.
func DifficultyColor(ramp *Ramp, rating float64) string {
	if ramp != nil {
		return ramp.Sample(rating)
	}
	idx := int(math.Floor(clampRating(rating)))
	if idx < 0 || idx >= len(bucketColors) {
		return sentinelColor
	}
	return bucketColors[idx]
}

func clampRating(rating float64) float64 {
	if rating < minRating || math.IsNaN(rating) {
		return minRating
	}
	if rating > maxRating {
		return maxRating
	}
	return rating
}
