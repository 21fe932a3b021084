package graph

import (
	"image/color"
	"math"
)

// PaintStyle selects between filling and stroking
type PaintStyle uint8

const (
	Fill PaintStyle = iota
	Stroke
)

// DashEffect is a dash pattern applied when stroking.
type DashEffect struct {
	Intervals []float64 // alternating on and off lengths
	Phase     float64   // starting offset into the pattern
}

// Normalized returns the intervals with the phase wrapped into [0, sum),
// as expected by most backends, or nil when the pattern is empty.
func (d *DashEffect) Normalized() (intervals []float64, phase float64) {
	if d == nil {
		return nil, 0
	}
	var sum float64
	for _, v := range d.Intervals {
		sum += v
	}
	if sum <= 0 {
		return nil, 0
	}
	phase = math.Mod(d.Phase, sum)
	if phase < 0 {
		phase += sum
	}
	return d.Intervals, phase
}

// Paint describes how a path is drawn.
type Paint struct {
	Style       PaintStyle
	StrokeWidth float64
	Cap         CapStyle
	AntiAlias   bool

	// Dash is nil for plain strokes.
	Dash *DashEffect

	// Color is used when Shader is nil.
	Color color.NRGBA
	// Shader, when not nil, overrides Color.
	Shader *SweepGradient
}

// TextPaint describes how labels are drawn.
type TextPaint struct {
	Color     color.NRGBA
	Size      float64 // in user units
	AntiAlias bool
}

// Opacity is the transparency reported to the host surface.
type Opacity uint8

const (
	Opaque Opacity = iota
	Translucent
	Transparent
)

func (o Opacity) String() string {
	switch o {
	case Opaque:
		return "Opaque"
	case Translucent:
		return "Translucent"
	case Transparent:
		return "Transparent"
	default:
		return "<unknown Opacity>"
	}
}
