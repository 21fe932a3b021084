package graph

import (
	"github.com/benoitkugler/radialgraph/graphpath"
	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any graph knowledge.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetPaint sets the color, shader and stroke options
	// for the current path. It is called before the path commands,
	// since strokers may outline the path while it is built.
	SetPaint(paint *Paint)

	// Draw fills or strokes the accumulated path using the current paint
	Draw()
}

// Driver is implemented by the painting backends, that is
// the host drawing surface.
type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer may be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (filler, stroker Drawer)

	// DrawText draws `text` centered on (x, y).
	DrawText(text string, x, y float64, paint *TextPaint)
}

// DrawPath draws `path` with `paint` on the driver `d`.
func DrawPath(d Driver, path graphpath.Path, paint *Paint) {
	willFill := paint.Style == Fill
	filler, stroker := d.SetupDrawers(willFill, !willFill)
	drawer := stroker
	if willFill {
		drawer = filler
	}
	if drawer == nil {
		return
	}
	drawer.Clear()
	drawer.SetPaint(paint)
	path.AddTo(drawer, graphpath.Identity)
	drawer.Draw()
}
