// Implements a raster backend to render radial graphs,
// by wrapping rasterx.
package graphraster

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/benoitkugler/radialgraph/graph"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ graph.Driver = (*Renderer)(nil) // assert interface conformance

const miterLimit = 4

// Renderer draws into an image. Anti-aliasing is always on.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance

	img   draw.Image
	faces faceCache
}

// NewRenderer returns a renderer drawing into `img`.
// If scanner is nil, a default scanner rasterx.ScannerGV is used.
func NewRenderer(img draw.Image, scanner rasterx.Scanner) *Renderer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if scanner == nil {
		scanner = rasterx.NewScannerGV(w, h, img, b)
	}
	return &Renderer{
		dasher: rasterx.NewDasher(w, h, scanner),
		filler: rasterx.NewFiller(w, h, scanner),
		img:    img,
	}
}

// SetupDrawers implements graph.Driver
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f graph.Drawer, s graph.Drawer) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// resolve the paint color
func setColorFromPaint(paint *graph.Paint, scanner rasterx.Scanner) {
	if paint.Shader == nil {
		scanner.SetColor(paint.Color)
		return
	}
	gradient := paint.Shader
	scanner.SetColor(rasterx.ColorFunc(func(x, y int) color.Color {
		// sample at the pixel center
		return gradient.ColorAt(float64(x)+0.5, float64(y)+0.5)
	}))
}

var capToFunc = [...]rasterx.CapFunc{
	graph.CapButt:   rasterx.ButtCap,
	graph.CapRound:  rasterx.RoundCap,
	graph.CapSquare: rasterx.SquareCap,
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetPaint(paint *graph.Paint) {
	f.SetWinding(true)
	setColorFromPaint(paint, f.Scanner)
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetPaint(paint *graph.Paint) {
	dashes, offset := paint.Dash.Normalized()
	capF := capToFunc[paint.Cap]
	s.SetStroke(
		fixed.Int26_6(paint.StrokeWidth*64), fixed.Int26_6(miterLimit*64), capF, capF,
		rasterx.RoundGap, rasterx.Round, dashes, offset,
	)
	setColorFromPaint(paint, s.Scanner)
}

// Clear fills the whole image with `c`.
func (rd *Renderer) Clear(c color.Color) {
	draw.Draw(rd.img, rd.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}
