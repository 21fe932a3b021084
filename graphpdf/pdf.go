// Implements a PDF backend, writing radial graphs
// as content stream operations.
package graphpdf

import (
	"image/color"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/radialgraph/chart"
	"github.com/benoitkugler/radialgraph/graph"
	"github.com/benoitkugler/radialgraph/graphpath"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ graph.Driver = Renderer{}
	_ graph.Drawer = (*filler)(nil)
	_ graph.Drawer = (*stroker)(nil)
)

const miterLimit = 4

// Renderer writes to a content stream.
// Sweep gradients are approximated by their first color,
// and labels are not drawn.
type Renderer struct {
	pdf                 *contentstream.Appearance
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// NewRenderer return a renderer which will
// write to the given `cs`.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{
		pdf:                 cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// RenderToPDF draws the chart on a single page of size `width` x `height`
// and writes it into the given file.
func RenderToPDF(c *chart.Chart, width, height float64, pdfName string) error {
	pdf := contentstream.NewAppearance(width, height)
	renderer := NewRenderer(&pdf)
	pdf.Ops(
		contentstream.OpSave{},
		// the graph uses a top-left origin
		contentstream.OpConcat{Matrix: model.Matrix{1, 0, 0, -1, 0, height}},
	)
	c.Draw(renderer, graphpath.Rect{Right: width, Bottom: height})
	pdf.Ops(contentstream.OpRestore{})

	var doc model.Document
	page := &model.PageObject{}
	pdf.ApplyToPageObject(page, true)
	doc.Catalog.Pages.Kids = append(doc.Catalog.Pages.Kids, page)
	return doc.WriteFile(pdfName, nil)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f graph.Drawer, s graph.Drawer) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, opacityStates: r.fillOpacityStates}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}, opacityStates: r.strokeOpacityStates}
	}
	return f, s
}

// DrawText does not draw labels: the output only
// contains the graph geometry.
func (r Renderer) DrawText(text string, x, y float64, _ *graph.TextPaint) {
	graph.Logger().Warn("pdf: skipping label", "text", text, "x", x, "y", y)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf *contentstream.Appearance

	current fixed.Point26_6 // needed to elevate quadratic curves
}

func (p *pather) Clear() { p.current = fixed.Point26_6{} }

func (p *pather) Start(a fixed.Point26_6) {
	x, y := fixedTof(a)
	p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
	p.current = a
}

func (p *pather) Line(b fixed.Point26_6) {
	x, y := fixedTof(b)
	p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
	p.current = b
}

// PDF has no quadratic curves: they are written as cubics
func (p *pather) QuadBezier(b, c fixed.Point26_6) {
	x0, y0 := fixedTof(p.current)
	bx, by := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.Ops(contentstream.OpCubicTo{
		X1: x0 + 2./3*(bx-x0), Y1: y0 + 2./3*(by-y0),
		X2: x + 2./3*(bx-x), Y2: y + 2./3*(by-y),
		X3: x, Y3: y,
	})
	p.current = c
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.Ops(contentstream.OpCubicTo{X1: cx0, Y1: cy0, X2: cx1, Y2: cy1, X3: x, Y3: y})
	p.current = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.Ops(contentstream.OpClosePath{})
	}
}

// setOpacity selects a graphic state with the given alpha,
// caching the states
func (p *pather) setOpacity(states map[float64]*model.GraphicState, alpha uint8, stroke bool) {
	opacity := float64(alpha) / 255
	gs, ok := states[opacity]
	if !ok {
		gs = &model.GraphicState{BM: []model.Name{"Normal"}}
		if stroke {
			gs.CA = model.ObjFloat(opacity)
		} else {
			gs.Ca = model.ObjFloat(opacity)
		}
		states[opacity] = gs
	}
	name := p.pdf.AddExtGState(gs)
	p.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

// flatColor returns the color used for `paint`
func flatColor(paint *graph.Paint) color.NRGBA {
	if paint.Shader == nil || len(paint.Shader.Stops) == 0 {
		return paint.Color
	}
	graph.Logger().Debug("pdf: sweep gradient approximated by its first color")
	return paint.Shader.Stops[0].Color
}

// implements the filling operation
type filler struct {
	pather
	opacityStates map[float64]*model.GraphicState
}

func (f *filler) SetPaint(paint *graph.Paint) {
	c := flatColor(paint)
	f.pdf.SetColorFill(c)
	f.setOpacity(f.opacityStates, c.A, false)
}

func (f *filler) Draw() {
	f.pdf.Ops(contentstream.OpFill{})
}

// implements the stroking operation
type stroker struct {
	pather
	opacityStates map[float64]*model.GraphicState
}

var capToStyle = [...]uint8{
	graph.CapButt:   0,
	graph.CapRound:  1,
	graph.CapSquare: 2,
}

func (s *stroker) SetPaint(paint *graph.Paint) {
	dashes, phase := paint.Dash.Normalized()
	s.pdf.Ops(
		contentstream.OpSetDash{Dash: model.DashPattern{
			Array: dashes,
			Phase: phase,
		}},
		contentstream.OpSetLineWidth{W: paint.StrokeWidth},
		contentstream.OpSetLineCap{Style: capToStyle[paint.Cap]},
		contentstream.OpSetLineJoin{Style: 1},
		contentstream.OpSetMiterLimit{Limit: miterLimit},
	)
	c := flatColor(paint)
	s.pdf.SetColorStroke(c)
	s.setOpacity(s.opacityStates, c.A, true)
}

func (s *stroker) Draw() {
	s.pdf.Ops(contentstream.OpStroke{})
}
