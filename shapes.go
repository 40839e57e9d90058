package vgpath

import (
	"math"
)

// Line returns a line segment from (0,0) to (x,y).
func Line(x, y float64) *Path {
	if Equal(x, 0.0) && Equal(y, 0.0) {
		return NewPath()
	}

	p := NewPath()
	p.MoveTo(0.0, 0.0)
	p.LineTo(x, y)
	return p
}

// Arc returns a circular arc with radius r, running from angle theta0 to theta1 in degrees and centered at the origin. If theta0 < theta1, the arc runs in a CCW direction.
func Arc(r, theta0, theta1 float64) *Path {
	return EllipticalArc(r, r, 0.0, theta0, theta1)
}

// EllipticalArc returns an elliptical arc with radii rx and ry, with rot the counter clockwise rotation in degrees, running from angle theta0 to theta1 in degrees (measured before rot is applied) and centered at the origin. If theta0 < theta1, the arc runs in a CCW direction. A sweep beyond 360 degrees draws a full ellipse and the remainder, e.g. 810 degrees draw one full turn and an arc over 90 degrees.
func EllipticalArc(rx, ry, rot, theta0, theta1 float64) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return NewPath()
	}

	phi := rot * math.Pi / 180.0
	start := ellipsePos(rx, ry, phi, 0.0, 0.0, theta0*math.Pi/180.0)

	p := NewPath()
	p.MoveTo(start.X, start.Y)
	p.Arc(rx, ry, rot, theta0, theta1)
	return p
}

// Rectangle returns a rectangle of width w and height h with its lower left corner at the origin.
func Rectangle(w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return NewPath()
	}

	p := NewPath()
	p.MoveTo(0.0, 0.0)
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// RoundedRectangle returns a rectangle of width w and height h with rounded corners of radius r. A negative radius will cast the corners inwards (i.e. concave).
func RoundedRectangle(w, h, r float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return NewPath()
	} else if Equal(r, 0.0) {
		return Rectangle(w, h)
	}

	sweep := true
	if r < 0.0 {
		sweep = false
		r = -r
	}
	r = math.Min(r, w/2.0)
	r = math.Min(r, h/2.0)

	p := NewPath()
	p.MoveTo(0.0, r)
	p.ArcTo(r, r, 0.0, false, sweep, r, 0.0)
	p.LineTo(w-r, 0.0)
	p.ArcTo(r, r, 0.0, false, sweep, w, r)
	p.LineTo(w, h-r)
	p.ArcTo(r, r, 0.0, false, sweep, w-r, h)
	p.LineTo(r, h)
	p.ArcTo(r, r, 0.0, false, sweep, 0.0, h-r)
	p.Close()
	return p
}

// BeveledRectangle returns a rectangle of width w and height h with beveled corners at distance r from the corner.
func BeveledRectangle(w, h, r float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return NewPath()
	} else if Equal(r, 0.0) {
		return Rectangle(w, h)
	}

	r = math.Abs(r)
	r = math.Min(r, w/2.0)
	r = math.Min(r, h/2.0)

	p := NewPath()
	p.MoveTo(0.0, r)
	p.LineTo(r, 0.0)
	p.LineTo(w-r, 0.0)
	p.LineTo(w, r)
	p.LineTo(w, h-r)
	p.LineTo(w-r, h)
	p.LineTo(r, h)
	p.LineTo(0.0, h-r)
	p.Close()
	return p
}

// Circle returns a circle of radius r centered at the origin.
func Circle(r float64) *Path {
	return Ellipse(r, r)
}

// Ellipse returns an ellipse of radii rx and ry centered at the origin. It is built from four curved vertices whose handles span a quarter turn each, so that closing the path draws the last quarter.
func Ellipse(rx, ry float64) *Path {
	if Equal(rx, 0.0) || Equal(ry, 0.0) {
		return NewPath()
	}

	k := 4.0 / 3.0 * math.Tan(math.Pi/8.0)
	kx, ky := k*rx, k*ry

	right := NewCurveAnchor(rx, 0.0, 0.0, -ky, 0.0, ky)
	right.Command = MoveCmd
	top := NewCurveAnchor(0.0, ry, kx, 0.0, -kx, 0.0)
	left := NewCurveAnchor(-rx, 0.0, 0.0, ky, 0.0, -ky)
	bottom := NewCurveAnchor(0.0, -ry, -kx, 0.0, kx, 0.0)

	p := NewPath(right, top, left, bottom)
	p.SetClosed(true)
	return p
}

// RegularPolygon returns a regular polygon with radius r. It uses n vertices/edges, so when n approaches infinity this will return a path that approximates a circle. n must be 3 or more. The up boolean defines whether the first point will point north or not.
func RegularPolygon(n int, r float64, up bool) *Path {
	return RegularStarPolygon(n, 1, r, up)
}

// RegularStarPolygon returns a regular star polygon with radius r. It uses n vertices of density d. This will result in a self-intersecting star in counter clockwise direction. If n/2 < d the star will be clockwise and if n and d are not coprime a regular polygon will be obtained, possibly with multiple windings. n must be 3 or more and d 2 or more. The up boolean defines whether the first point will point north or not.
func RegularStarPolygon(n, d int, r float64, up bool) *Path {
	if n < 3 || d < 1 || n == d*2 || Equal(r, 0.0) {
		return NewPath()
	}

	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta / 2.0
	}

	p := NewPath()
	for i := 0; i == 0 || i%n != 0; i += d {
		theta := theta0 + float64(i)*dtheta
		sintheta, costheta := math.Sincos(theta)
		if i == 0 {
			p.MoveTo(r*costheta, r*sintheta)
		} else {
			p.LineTo(r*costheta, r*sintheta)
		}
	}
	p.Close()
	return p
}

// StarPolygon returns a star polygon of n points with alternating radius R and r. The up boolean defines whether the first point (true) or second point (false) will be pointing north.
func StarPolygon(n int, R, r float64, up bool) *Path {
	if n < 3 || Equal(R, 0.0) || Equal(r, 0.0) {
		return NewPath()
	}

	n *= 2
	dtheta := 2.0 * math.Pi / float64(n)
	theta0 := 0.5 * math.Pi
	if !up {
		theta0 += dtheta
	}

	p := NewPath()
	for i := 0; i < n; i++ {
		theta := theta0 + float64(i)*dtheta
		sintheta, costheta := math.Sincos(theta)
		if i == 0 {
			p.MoveTo(R*costheta, R*sintheta)
		} else if i%2 == 0 {
			p.LineTo(R*costheta, R*sintheta)
		} else {
			p.LineTo(r*costheta, r*sintheta)
		}
	}
	p.Close()
	return p
}
