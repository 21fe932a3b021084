// Provides the model of a radial graph and the renderer
// building the paths and paints of its sections.
// The actual rasterization is performed by a Driver,
// see for example radialgraph/graphraster or radialgraph/graphpdf .
package graph

import (
	"image/color"
)

// CapStyle defines how the ends of a section arc are drawn
type CapStyle uint8

const (
	CapButt CapStyle = iota // flush with the end of the arc
	CapRound
	CapSquare
)

func (c CapStyle) String() string {
	switch c {
	case CapButt:
		return "Butt"
	case CapRound:
		return "Round"
	case CapSquare:
		return "Square"
	default:
		return "<unknown CapStyle>"
	}
}

// AnimationDirection is the direction sections grow around the circle.
type AnimationDirection uint8

const (
	Clockwise AnimationDirection = iota
	CounterClockwise
)

func (d AnimationDirection) String() string {
	switch d {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		return "<unknown AnimationDirection>"
	}
}

// sign of the sweep angle, in the y-down coordinate system
func (d AnimationDirection) sign() float64 {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// GradientType selects the shader applied to sections
type GradientType uint8

const (
	GradientNone GradientType = iota
	GradientSweep
)

func (g GradientType) String() string {
	switch g {
	case GradientNone:
		return "None"
	case GradientSweep:
		return "Sweep"
	default:
		return "<unknown GradientType>"
	}
}

// GradientFill determines whether gradient stops span the
// whole circle or only the section arc.
type GradientFill uint8

const (
	FillWhole GradientFill = iota
	FillSection
)

func (g GradientFill) String() string {
	switch g {
	case FillWhole:
		return "Whole"
	case FillSection:
		return "Section"
	default:
		return "<unknown GradientFill>"
	}
}

// GraphConfig is the read-only configuration of a graph.
// Changing it requires to rebuild every section paint.
type GraphConfig struct {
	StrokeWidth        float64
	CapStyle           CapStyle
	AnimationDirection AnimationDirection
	GradientType       GradientType
	GradientFill       GradientFill
}

// IsGradientEnabled returns true if sections are shaded by a gradient.
func (g GraphConfig) IsGradientEnabled() bool { return g.GradientType != GradientNone }

// SectionState holds the drawing state of one arc section.
// It is owned and updated in place by the animation driver.
type SectionState struct {
	// Color contains at least one color. A single color disables
	// gradient shading.
	Color []color.NRGBA
	// StartPosition is the fraction of the circle where the section starts.
	StartPosition float64
	// SweepSize is the fraction of the circle occupied by the section.
	SweepSize float64
	// Length of the section arc, in path units.
	// It must be set before building the paint.
	Length *float64
	// CurrentProgress is the dash phase animation offset.
	CurrentProgress float64

	// Paint is built by Renderer.BuildStrokePaint, and
	// then patched by Renderer.UpdatePhasePaint.
	Paint *Paint
}

// SetLength is a convenience to set the Length field.
func (s *SectionState) SetLength(l float64) { s.Length = &l }

// length returns the section length, panicking if it has not been set
func (s *SectionState) length() float64 {
	if s.Length == nil {
		panic("radialgraph: section length must be set before building its paint")
	}
	return *s.Length
}

func (s *SectionState) firstColor() color.NRGBA {
	if len(s.Color) == 0 {
		panic("radialgraph: section has no color")
	}
	return s.Color[0]
}
