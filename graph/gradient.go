package graph

import (
	"image/color"
	"math"
)

// ColorStop represents a stop of a gradient
type ColorStop struct {
	Offset float64 // in [0, 1]
	Color  color.NRGBA
}

// Point is a location in user units
type Point struct{ X, Y float64 }

// SweepGradient is an angular gradient: the color varies with the
// angle around Center rather than with the distance to it.
// Offset 0 lies on the x axis rotated by Rotation (in degrees,
// clockwise on screen), and offsets grow clockwise.
// Offsets are pinned to [previous offset, 1], and before the first
// and after the last stop the edge colors are extended.
type SweepGradient struct {
	Center   Point
	Rotation float64
	Stops    []ColorStop
}

// Offset returns the gradient parameter of the point (x, y), in [0, 1).
func (g *SweepGradient) Offset(x, y float64) float64 {
	dx, dy := x-g.Center.X, y-g.Center.Y
	angle := math.Atan2(dy, dx)*180/math.Pi - g.Rotation
	t := math.Mod(angle, 360) / 360
	if t < 0 {
		t++
	}
	if t >= 1 { // rounding
		t = 0
	}
	return t
}

// ColorAt returns the color at the given point.
func (g *SweepGradient) ColorAt(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	if x == g.Center.X && y == g.Center.Y { // undefined angle
		return g.Stops[0].Color
	}
	return g.colorAtOffset(g.Offset(x, y))
}

// colorAtOffset resolves `t` against the stops, whose offsets
// are pinned to [previous offset, 1].
func (g *SweepGradient) colorAtOffset(t float64) color.NRGBA {
	stops := g.Stops
	prev := math.Min(math.Max(stops[0].Offset, 0), 1)
	if t <= prev {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		offset := math.Min(math.Max(stops[i].Offset, prev), 1)
		if t < offset {
			return lerpColor(stops[i-1].Color, stops[i].Color, (t-prev)/(offset-prev))
		}
		prev = offset
	}
	return stops[len(stops)-1].Color
}

func lerpColor(c1, c2 color.NRGBA, t float64) color.NRGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.NRGBA{
		R: lerp(c1.R, c2.R),
		G: lerp(c1.G, c2.G),
		B: lerp(c1.B, c2.B),
		A: lerp(c1.A, c2.A),
	}
}
