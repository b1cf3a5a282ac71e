package present

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// groupPrinter renders thousands-separated integers ("987,654").
var groupPrinter = message.NewPrinter(language.English)

// GroupInt formats n with thousands separators.
func GroupInt(n int64) string {
	return groupPrinter.Sprintf("%d", n)
}

// FormatAccuracy converts an accuracy fraction to a fixed two-decimal
// percentage string, e.g. 0.9753 -> "97.53%".
func FormatAccuracy(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// FormatStars renders a star rating for the difficulty badge.
func FormatStars(rating float64) string {
	return fmt.Sprintf("%.2f", rating)
}

// roundHalfUp rounds half away from zero, not to even. 4.5 -> 5, 8.5 -> 9.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
