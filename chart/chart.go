// Given a list of values, implements how to
// draw a radial graph on a driver.
// The chart owns the section states, and only rebuilds
// their paints when the geometry changes: between two frames,
// the dash phase is the only updated property.
package chart

import (
	"image/color"
	"math"

	"github.com/benoitkugler/radialgraph/graph"
	"github.com/benoitkugler/radialgraph/graphpath"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// LabelKind selects the text drawn on the node of a section
type LabelKind uint8

const (
	LabelNone LabelKind = iota
	LabelPercent
)

func (l LabelKind) String() string {
	switch l {
	case LabelNone:
		return "None"
	case LabelPercent:
		return "Percent"
	default:
		return "<unknown LabelKind>"
	}
}

// Section is one value of the chart, drawn
// with one or more colors.
type Section struct {
	Value  float64
	Colors []color.NRGBA
}

// LabelOptions configures the section labels
type LabelOptions struct {
	Kind   LabelKind
	Color  color.NRGBA
	Size   float64 // default to the stroke width
	Locale language.Tag
}

// Options holds the decorations of a chart.
// A zero alpha disables the corresponding element.
type Options struct {
	TrackColor color.NRGBA // full circle drawn behind the sections
	NodeColor  color.NRGBA // dot drawn at the end of each section
	Labels     LabelOptions
}

// Chart is a radial graph, drawable on any graph.Driver.
type Chart struct {
	renderer *graph.Renderer
	sections []Section
	states   []*graph.SectionState
	opts     Options

	// geometry the states were measured for
	measured bool
	bounds   graphpath.Rect
	paths    []graphpath.Path
}

// New returns a chart for the given sections. Values are fractions
// of the circle, unless their total exceeds 1, in which case
// they are normalized. Sections must have at least one color.
func New(config graph.GraphConfig, sections []Section, opts Options) *Chart {
	var total float64
	for _, s := range sections {
		total += math.Max(s.Value, 0)
	}
	scale := 1.
	if total > 1 {
		scale = 1 / total
	}

	states := make([]*graph.SectionState, len(sections))
	var start float64
	for i, s := range sections {
		sweep := math.Max(s.Value, 0) * scale
		states[i] = &graph.SectionState{
			Color:         append([]color.NRGBA(nil), s.Colors...),
			StartPosition: start,
			SweepSize:     sweep,
		}
		start += sweep
	}
	if opts.Labels.Size == 0 {
		opts.Labels.Size = config.StrokeWidth
	}
	return &Chart{renderer: graph.NewRenderer(config), sections: sections, states: states, opts: opts}
}

// Renderer returns the renderer used by the chart.
func (c *Chart) Renderer() *graph.Renderer { return c.renderer }

// States returns the section states, to be updated by an animation driver.
func (c *Chart) States() []*graph.SectionState { return c.states }

// Opacity is the opacity reported to the host surface.
func (c *Chart) Opacity() graph.Opacity { return c.renderer.Opacity() }

// Measure computes the section lengths for the given bounds and builds
// the section paints. It is a no-op if the bounds did not change since
// the last call.
func (c *Chart) Measure(bounds graphpath.Rect) {
	if c.measured && bounds == c.bounds {
		return
	}
	c.paths = make([]graphpath.Path, len(c.states))
	for i, state := range c.states {
		c.paths[i] = c.renderer.BuildSectionPath(bounds, state)
		state.SetLength(c.paths[i].Length())
		c.renderer.BuildStrokePaint(state, bounds)
	}
	c.measured, c.bounds = true, bounds
	graph.Logger().Debug("chart measured", "sections", len(c.states),
		"width", bounds.Width(), "height", bounds.Height())
}

// visibleFraction returns the drawn part of the section, in [0, 1]
func visibleFraction(state *graph.SectionState) float64 {
	if state.Length == nil || *state.Length == 0 {
		return 0
	}
	return math.Min(math.Max(-state.CurrentProgress / *state.Length, 0), 1)
}

// Draw draws the chart into `bounds`.
func (c *Chart) Draw(d graph.Driver, bounds graphpath.Rect) {
	c.Measure(bounds)
	config := c.renderer.Config()

	if c.opts.TrackColor.A != 0 {
		track := &graph.Paint{
			Style:       graph.Stroke,
			StrokeWidth: config.StrokeWidth,
			Cap:         graph.CapButt,
			AntiAlias:   true,
			Color:       c.opts.TrackColor,
		}
		graph.DrawPath(d, c.renderer.BuildArcPath(bounds), track)
	}

	for i, state := range c.states {
		if state.Paint == nil {
			c.renderer.BuildStrokePaint(state, bounds)
		} else {
			c.renderer.UpdatePhasePaint(state)
		}
		if visibleFraction(state) == 0 { // avoid drawing lone caps
			continue
		}
		graph.DrawPath(d, c.paths[i], state.Paint)
	}

	c.drawNodes(d, bounds)
}

// NodePosition returns the center of the node of the given section,
// at the leading edge of its visible arc.
func (c *Chart) NodePosition(bounds graphpath.Rect, section int) (x, y float64) {
	state := c.states[section]
	config := c.renderer.Config()
	sign := 1.
	if config.AnimationDirection == graph.CounterClockwise {
		sign = -1
	}
	position := state.StartPosition + state.SweepSize*visibleFraction(state)
	angle := (graph.StartingRotation + sign*360*position) * math.Pi / 180
	oval := c.renderer.InsetBounds(bounds)
	return oval.CenterX() + oval.Width()/2*math.Cos(angle), oval.CenterY() + oval.Height()/2*math.Sin(angle)
}

func (c *Chart) drawNodes(d graph.Driver, bounds graphpath.Rect) {
	withNodes, withLabels := c.opts.NodeColor.A != 0, c.opts.Labels.Kind != LabelNone
	if !withNodes && !withLabels {
		return
	}
	radius := c.renderer.Config().StrokeWidth / 2
	var (
		fill  *graph.Paint
		label *graph.TextPaint
	)
	if withNodes {
		fill = c.renderer.BuildFillPaint(c.opts.NodeColor)
	}
	if withLabels {
		label = c.renderer.BuildLabelPaint(c.opts.Labels.Color, c.opts.Labels.Size)
	}
	printer := message.NewPrinter(c.opts.Labels.Locale)
	for i, state := range c.states {
		if visibleFraction(state) == 0 {
			continue
		}
		x, y := c.NodePosition(bounds, i)
		if withNodes {
			var dot graphpath.Path
			dot.AddArc(graphpath.Rect{Left: x - radius, Top: y - radius, Right: x + radius, Bottom: y + radius}, 0, 360)
			dot.Stop(true)
			graph.DrawPath(d, dot, fill)
		}
		if withLabels {
			d.DrawText(c.label(printer, i), x, y, label)
		}
	}
}

// label returns the text of the given section
func (c *Chart) label(printer *message.Printer, section int) string {
	switch c.opts.Labels.Kind {
	case LabelPercent:
		return printer.Sprint(number.Percent(c.states[section].SweepSize, number.MaxFractionDigits(0)))
	default:
		return ""
	}
}
