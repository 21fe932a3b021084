package graphpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// number of chords used to measure a curve
const measureSteps = 32

// Length returns the length of the path, measured by flattening
// its curves. Closing segments are included.
func (p Path) Length() float64 {
	var (
		total          float64
		first, current fixed.Point26_6
	)
	chords := func(c bezier) float64 {
		var l float64
		px, py := c.evaluateCurve(0)
		for i := 1; i <= measureSteps; i++ {
			x, y := c.evaluateCurve(float64(i) / measureSteps)
			l += math.Hypot(x-px, y-py)
			px, py = x, y
		}
		return l
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			first, current = fixed.Point26_6(op), fixed.Point26_6(op)
		case LineTo:
			total += chords(line{current, fixed.Point26_6(op)})
			current = fixed.Point26_6(op)
		case QuadTo:
			total += chords(quadBezier{current, op[0], op[1]})
			current = op[1]
		case CubicTo:
			total += chords(cubicBezier{current, op[0], op[1], op[2]})
			current = op[2]
		case Close:
			total += chords(line{current, first})
			current = first
		}
	}
	return total
}
