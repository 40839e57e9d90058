package vgpath

import "math"

// cubicBezierPos returns the position on the cubic bezier at parameter t.
func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul((1 - t) * (1 - t) * (1 - t))
	p1 = p1.Mul(3.0 * t * (1 - t) * (1 - t))
	p2 = p2.Mul(3.0 * t * t * (1 - t))
	p3 = p3.Mul(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// cubicBezierDeriv returns the derivative dp/dt on the cubic bezier at parameter t.
func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	p0 = p0.Mul(-3.0 * (1 - t) * (1 - t))
	p1 = p1.Mul(3.0 * (1.0 - 4.0*t + 3.0*t*t))
	p2 = p2.Mul(3.0 * t * (2.0 - 3.0*t))
	p3 = p3.Mul(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// splitCubicBezier splits the cubic bezier at parameter t using De Casteljau's algorithm and returns the control points of both sides. The fourth point of the first curve equals the first point of the second.
func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// cubicBezierLength returns the arc length of the cubic bezier, integrating the speed by composite Gauss-Legendre quadrature over limit subintervals. Refining limit converges to the true length.
func cubicBezierLength(p0, p1, p2, p3 Point, limit int) float64 {
	if limit < 1 {
		limit = 1
	}
	speed := func(t float64) float64 {
		return cubicBezierDeriv(p0, p1, p2, p3, t).Length()
	}
	length := 0.0
	for i := 0; i < limit; i++ {
		t0 := float64(i) / float64(limit)
		t1 := float64(i+1) / float64(limit)
		length += gaussLegendre5(speed, t0, t1)
	}
	return length
}

// cubicBezierBounds returns the exact bounding rectangle of the cubic bezier by solving for the parameters where the derivative is zero in x and in y.
// see https://pomax.github.io/bezierinfo/#extremities
func cubicBezierBounds(p0, p1, p2, p3 Point) Rect {
	x0, y0 := math.Min(p0.X, p3.X), math.Min(p0.Y, p3.Y)
	x1, y1 := math.Max(p0.X, p3.X), math.Max(p0.Y, p3.Y)

	// dp/dt = 3at^2 + 2bt + c
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	bx := p0.X - 2.0*p1.X + p2.X
	cx := p1.X - p0.X
	tx0, tx1 := solveQuadraticFormula(3.0*ax, 6.0*bx, 3.0*cx)

	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	by := p0.Y - 2.0*p1.Y + p2.Y
	cy := p1.Y - p0.Y
	ty0, ty1 := solveQuadraticFormula(3.0*ay, 6.0*by, 3.0*cy)

	for _, t := range [4]float64{tx0, tx1, ty0, ty1} {
		if !math.IsNaN(t) && 0.0 < t && t < 1.0 {
			p := cubicBezierPos(p0, p1, p2, p3, t)
			x0, y0 = math.Min(x0, p.X), math.Min(y0, p.Y)
			x1, y1 = math.Max(x1, p.X), math.Max(y1, p.Y)
		}
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// subdivideCubicBezier flattens the cubic bezier into a polyline of limit+1 points at uniform parameter steps, including both endpoints.
func subdivideCubicBezier(p0, p1, p2, p3 Point, limit int) []Point {
	if limit < 1 {
		limit = 1
	}
	points := make([]Point, limit+1)
	points[0] = p0
	for i := 1; i < limit; i++ {
		points[i] = cubicBezierPos(p0, p1, p2, p3, float64(i)/float64(limit))
	}
	points[limit] = p3
	return points
}

// quadraticToCubicBezier returns the cubic bezier control points that draw the quadratic bezier with control point c exactly.
func quadraticToCubicBezier(p0, c, p2 Point) (Point, Point) {
	p1 := p0.Interpolate(c, 2.0/3.0)
	pm := p2.Interpolate(c, 2.0/3.0)
	return p1, pm
}

// ellipsePos returns the position on the ellipse with radii (rx,ry) rotated by phi around center (cx,cy) at angle theta, all angles in radians.
func ellipsePos(rx, ry, phi, cx, cy, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	x := cx + rx*costheta*cosphi - ry*sintheta*sinphi
	y := cy + rx*costheta*sinphi + ry*sintheta*cosphi
	return Point{x, y}
}

// ellipseDeriv returns the derivative dp/dtheta on the same ellipse.
func ellipseDeriv(rx, ry, phi, theta float64) Point {
	sintheta, costheta := math.Sincos(theta)
	sinphi, cosphi := math.Sincos(phi)
	dx := -rx*sintheta*cosphi - ry*costheta*sinphi
	dy := -rx*sintheta*sinphi + ry*costheta*cosphi
	return Point{dx, dy}
}

// ellipseToCenter converts an elliptical arc from endpoint to center notation, returning the center, the corrected radii, the start angle and the sweep angle in radians. Radii too small to span the endpoints are scaled up as SVG requires.
// see https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
func ellipseToCenter(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) (float64, float64, float64, float64, float64, float64) {
	if Equal(x1, x2) && Equal(y1, y2) {
		return x1, y1, rx, ry, 0.0, 0.0
	}

	sinphi, cosphi := math.Sincos(phi)
	x1p := cosphi*(x1-x2)/2.0 + sinphi*(y1-y2)/2.0
	y1p := -sinphi*(x1-x2)/2.0 + cosphi*(y1-y2)/2.0

	radiiCheck := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry)
	if 1.0 < radiiCheck {
		scale := math.Sqrt(radiiCheck)
		rx *= scale
		ry *= scale
	}

	sq := (rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p) / (rx*rx*y1p*y1p + ry*ry*x1p*x1p)
	if sq < 0.0 {
		sq = 0.0
	}
	coef := math.Sqrt(sq)
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	theta0 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta1 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	dtheta := theta1 - theta0
	if !sweep && 0.0 < dtheta {
		dtheta -= 2.0 * math.Pi
	} else if sweep && dtheta < 0.0 {
		dtheta += 2.0 * math.Pi
	}
	return cx, cy, rx, ry, theta0, dtheta
}

// ellipseToCubicBeziers approximates the elliptical arc from (x1,y1) to (x2,y2) by cubic beziers of at most a quarter turn each, returning per slice the two control points and the end point.
// see https://pomax.github.io/bezierinfo/#circles_cubic
func ellipseToCubicBeziers(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) [][3]Point {
	cx, cy, rx, ry, theta0, dtheta := ellipseToCenter(x1, y1, rx, ry, phi, large, sweep, x2, y2)
	if dtheta == 0.0 {
		return nil
	}

	n := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2.0)))
	beziers := make([][3]Point, 0, n)
	start := Point{x1, y1}
	for i := 0; i < n; i++ {
		ta := theta0 + float64(i)*dtheta/float64(n)
		tb := theta0 + float64(i+1)*dtheta/float64(n)
		end := ellipsePos(rx, ry, phi, cx, cy, tb)
		if i == n-1 {
			end = Point{x2, y2}
		}

		k := 4.0 / 3.0 * math.Tan((tb-ta)/4.0)
		cp1 := start.Add(ellipseDeriv(rx, ry, phi, ta).Mul(k))
		cp2 := end.Sub(ellipseDeriv(rx, ry, phi, tb).Mul(k))
		beziers = append(beziers, [3]Point{cp1, cp2, end})
		start = end
	}
	return beziers
}
