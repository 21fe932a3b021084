// Implements an abstract representation of
// the graph paths, which can then be consumed
// by painting drivers.
package graphpath

import (
	"fmt"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Matrix2D is the affine transform applied to paths.
type Matrix2D = rasterx.Matrix2D

// Identity is the identity transform.
var Identity = rasterx.Identity

// Adder is implemented by types that can accumulate path commands,
// such as the drivers' drawers.
type Adder interface {
	// Start starts a new curve at the given point.
	Start(a fixed.Point26_6)
	// Line adds a line segment to the path
	Line(b fixed.Point26_6)
	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)
	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)
	// Closes the path to the start point if closeLoop is true
	Stop(closeLoop bool)
}

// Operation groups the different path commands
type Operation interface {
	// add itself on `a`, after aplying the transform `M`
	addTo(a Adder, M Matrix2D)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) addTo(a Adder, M Matrix2D) {
	a.Stop(false) // implicit close if currently in path.
	a.Start(M.TFixed(fixed.Point26_6(op)))
}

func (op LineTo) addTo(a Adder, M Matrix2D) {
	a.Line(M.TFixed(fixed.Point26_6(op)))
}

func (op QuadTo) addTo(a Adder, M Matrix2D) {
	a.QuadBezier(M.TFixed(op[0]), M.TFixed(op[1]))
}

func (op CubicTo) addTo(a Adder, M Matrix2D) {
	a.CubeBezier(M.TFixed(op[0]), M.TFixed(op[1]), M.TFixed(op[2]))
}

func (op Close) addTo(a Adder, _ Matrix2D) {
	a.Stop(true)
}

// Path describes a sequence of basic operations.
// Arcs and circles are reduced to cubic bezier curves.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// AddTo replays the path on `a`, applying the transform `M`.
func (p Path) AddTo(a Adder, M Matrix2D) {
	for _, op := range p {
		op.addTo(a, M)
	}
	a.Stop(false)
}

// Transform returns a new path, with `M` applied to every point.
func (p Path) Transform(M Matrix2D) Path {
	out := make(Path, 0, len(p))
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			out = append(out, MoveTo(M.TFixed(fixed.Point26_6(op))))
		case LineTo:
			out = append(out, LineTo(M.TFixed(fixed.Point26_6(op))))
		case QuadTo:
			out = append(out, QuadTo{M.TFixed(op[0]), M.TFixed(op[1])})
		case CubicTo:
			out = append(out, CubicTo{M.TFixed(op[0]), M.TFixed(op[1]), M.TFixed(op[2])})
		case Close:
			out = append(out, op)
		}
	}
	return out
}

// Rotate returns a copy of the path rotated by `degrees`
// (clockwise on screen) around its own bounding box center.
func (p Path) Rotate(degrees float64) Path {
	bounds := p.Bounds()
	cx, cy := bounds.CenterX(), bounds.CenterY()
	m := Identity.Translate(cx, cy).Rotate(degrees * degToRad).Translate(-cx, -cy)
	return p.Transform(m)
}

// FirstPoint returns the starting point of the path,
// or false for an empty path.
func (p Path) FirstPoint() (x, y float64, ok bool) {
	for _, op := range p {
		if m, isMove := op.(MoveTo); isMove {
			x, y = fixedTof(fixed.Point26_6(m))
			return x, y, true
		}
	}
	return 0, 0, false
}
