// Package layout performs the deterministic text/space fitting of a
// scorecard: title truncation against the width left over by mod icons,
// size classing of the right-hand section, and dynamic vertical sizing.
// All fitting is a pure function of (text, constraints) through an injected
// text measurer, so tests run headless.
package layout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSpec identifies a font for measurement purposes.
type FontSpec struct {
	Size float64 // pixel size
	Bold bool
}

// Measurer reports the rendered width of text in pixels for a font spec.
type Measurer interface {
	Measure(text string, spec FontSpec) float64
}

// boldWidthFactor approximates the extra advance of a bold face.
const boldWidthFactor = 1.06

// BasicMeasurer measures with the fixed-metric basicfont face scaled to the
// requested size. It is deterministic and needs no rendering surface.
type BasicMeasurer struct {
	face *basicfont.Face
}

// NewBasicMeasurer returns a measurer backed by basicfont.Face7x13.
func NewBasicMeasurer() *BasicMeasurer {
	return &BasicMeasurer{face: basicfont.Face7x13}
}

// Measure implements Measurer.
func (b *BasicMeasurer) Measure(text string, spec FontSpec) float64 {
	adv := font.MeasureString(b.face, text)
	w := float64(adv) / 64
	scale := spec.Size / float64(b.face.Height)
	if spec.Bold {
		scale *= boldWidthFactor
	}
	return w * scale
}
