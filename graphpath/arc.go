package graphpath

import (
	"math"
)

// This file implements the transformation from
// arcs to their cubic bezier equivalent

// maxDx is the maximum radians a cubic splice is allowed to span
// when approximating an arc.
const maxDx float64 = math.Pi / 8

// AddArc starts a new sub-path with the arc of the oval inscribed in `oval`,
// beginning at `startAngle` and spanning `sweepAngle` (both in degrees).
// Angle 0 is at 3 o'clock and positive angles turn clockwise on screen,
// since the y axis points down.
func (p *Path) AddArc(oval Rect, startAngle, sweepAngle float64) {
	cx, cy := oval.CenterX(), oval.CenterY()
	rx, ry := oval.Width()/2, oval.Height()/2

	etaStart := startAngle * degToRad
	deltaEta := sweepAngle * degToRad

	// Round up to determine number of cubic splines to approximate the arc
	segs := int(math.Ceil(math.Abs(deltaEta) / maxDx))
	if segs == 0 {
		segs = 1
	}
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!

	lx, ly := ovalPointAt(rx, ry, etaStart, cx, cy)
	ldx, ldy := ovalPrime(rx, ry, etaStart)
	p.Start(toFixedP(lx, ly))
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		px, py := ovalPointAt(rx, ry, eta, cx, cy)
		dx, dy := ovalPrime(rx, ry, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// ovalPrime gives tangent vectors for an axis aligned oval; a, b, radii, eta parameter
func ovalPrime(a, b, eta float64) (px, py float64) {
	return -a * math.Sin(eta), b * math.Cos(eta)
}

// ovalPointAt gives points for an axis aligned oval; a, b, radii, eta parameter, center cx, cy
func ovalPointAt(a, b, eta, cx, cy float64) (px, py float64) {
	return cx + a*math.Cos(eta), cy + b*math.Sin(eta)
}
