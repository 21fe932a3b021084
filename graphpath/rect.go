package graphpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

const degToRad = math.Pi / 180

// Rect is an axis aligned rectangle, in user units.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Inset shrinks r by d on all four sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

// union returns the smallest rectangle containing r and s.
func (r Rect) union(s Rect) Rect {
	return Rect{
		Left:   math.Min(r.Left, s.Left),
		Top:    math.Min(r.Top, s.Top),
		Right:  math.Max(r.Right, s.Right),
		Bottom: math.Max(r.Bottom, s.Bottom),
	}
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(math.Round(x * 64))
	p.Y = fixed.Int26_6(math.Round(y * 64))
	return
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// ToFixed converts a point in user units to the
// fixed representation used by the paths.
func ToFixed(x, y float64) fixed.Point26_6 { return toFixedP(x, y) }
