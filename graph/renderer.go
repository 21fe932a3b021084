package graph

import (
	"image/color"
	"math"

	"github.com/benoitkugler/radialgraph/graphpath"
)

const (
	// StartingRotation moves the origin of paths and gradients
	// from 3 o'clock to 12 o'clock.
	StartingRotation = -90.

	// EndGradientCapFill is the offset after which the first color is
	// repeated, so that a round or square cap at the start of the circle
	// does not show the last color.
	EndGradientCapFill = 0.98
)

// Renderer builds the paths and paints needed to draw the sections
// of a graph. It holds no state besides its configuration: paints are
// stored in the SectionState they describe.
type Renderer struct {
	config GraphConfig
}

// NewRenderer returns a renderer for the given configuration.
func NewRenderer(config GraphConfig) *Renderer {
	return &Renderer{config: config}
}

// Config returns the configuration used by the renderer.
func (r *Renderer) Config() GraphConfig { return r.config }

// InsetBounds shrinks `bounds` by half the stroke width, so that
// strokes following the returned rectangle stay inside `bounds`.
func (r *Renderer) InsetBounds(bounds graphpath.Rect) graphpath.Rect {
	return bounds.Inset(r.config.StrokeWidth / 2)
}

func phasedDash(state *SectionState) *DashEffect {
	length := state.length()
	return &DashEffect{
		Intervals: []float64{length, length},
		Phase:     length + state.CurrentProgress,
	}
}

// BuildStrokePaint creates the stroke paint of a section, whose dash phase
// encodes the progress of the section arc. The paint is stored in `state`
// and returned.
// `bounds` are the nominal bounds of the graph, used to center gradients.
// It panics if the section length is not set or if the section has no color.
func (r *Renderer) BuildStrokePaint(state *SectionState, bounds graphpath.Rect) *Paint {
	paint := &Paint{
		Style:       Stroke,
		StrokeWidth: r.config.StrokeWidth,
		Cap:         r.config.CapStyle,
		AntiAlias:   true,
		Dash:        phasedDash(state),
	}

	if !r.config.IsGradientEnabled() {
		paint.Color = state.firstColor()
	}

	if r.config.GradientType == GradientSweep {
		r.applySweepGradient(state, paint, bounds)
	}

	state.Paint = paint
	logger().Debug("stroke paint built",
		"start", state.StartPosition, "sweep", state.SweepSize, "length", *state.Length)
	return paint
}

// UpdatePhasePaint only refreshes the dash phase of an already built paint.
// It does nothing if the paint of `state` is not built yet.
func (r *Renderer) UpdatePhasePaint(state *SectionState) {
	dash := phasedDash(state)
	if state.Paint != nil {
		state.Paint.Dash = dash
	}
}

func (r *Renderer) applySweepGradient(state *SectionState, paint *Paint, bounds graphpath.Rect) {
	first := state.firstColor()
	if len(state.Color) == 1 {
		paint.Color = first
		return
	}

	colors := append([]color.NRGBA(nil), state.Color...)
	positions := generatePositions(state, len(colors), r.config.GradientFill)

	// fix the gradient overflow when using a cap style other than Butt
	if state.StartPosition == 0 && r.config.CapStyle != CapButt {
		colors = append(colors, first)
		last := positions[len(positions)-1]
		positions = append(positions[:len(positions)-1], math.Min(last, EndGradientCapFill), EndGradientCapFill)
	}

	stops := make([]ColorStop, len(colors))
	for i, c := range colors {
		stops[i] = ColorStop{Offset: positions[i], Color: c}
	}

	boundaries := r.InsetBounds(bounds)
	paint.Shader = &SweepGradient{
		Center:   Point{X: boundaries.CenterX(), Y: boundaries.CenterY()},
		Rotation: StartingRotation,
		Stops:    stops,
	}
}

// generatePositions evenly spaces `n` stops over the circle,
// or over the section arc, starting at the section start.
func generatePositions(state *SectionState, n int, fill GradientFill) []float64 {
	gap := 1 / float64(max(n-1, 1))
	if fill == FillSection {
		gap *= state.SweepSize
	}
	positions := make([]float64, n)
	for i := range positions {
		positions[i] = gap*float64(i) + state.StartPosition
	}
	return positions
}

// BuildArcPath returns the full circle inscribed in the inset bounds,
// starting at 12 o'clock and turning in the configured direction.
func (r *Renderer) BuildArcPath(bounds graphpath.Rect) graphpath.Path {
	var path graphpath.Path
	path.AddArc(r.InsetBounds(bounds), 0, 360*r.config.AnimationDirection.sign())

	// the starting position of the arc is undesirable, therefore set it explicitly
	return path.Rotate(StartingRotation)
}

// BuildSectionPath returns the part of the circle built by BuildArcPath
// covered by the section, starting at the section start.
func (r *Renderer) BuildSectionPath(bounds graphpath.Rect, state *SectionState) graphpath.Path {
	sign := r.config.AnimationDirection.sign()
	var path graphpath.Path
	path.AddArc(r.InsetBounds(bounds), StartingRotation+sign*360*state.StartPosition, sign*360*state.SweepSize)
	return path
}

// SectionLength measures the arc of the section, to be
// used as its Length.
func (r *Renderer) SectionLength(bounds graphpath.Rect, state *SectionState) float64 {
	return r.BuildSectionPath(bounds, state).Length()
}

// BuildFillPaint returns a flat fill paint.
func (r *Renderer) BuildFillPaint(c color.NRGBA) *Paint {
	return &Paint{Style: Fill, Color: c, AntiAlias: true}
}

// BuildLabelPaint returns the paint used for labels.
func (r *Renderer) BuildLabelPaint(c color.NRGBA, size float64) *TextPaint {
	return &TextPaint{Color: c, Size: size, AntiAlias: true}
}

// Opacity always reports the graph as opaque.
func (r *Renderer) Opacity() Opacity { return Opaque }
