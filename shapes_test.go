package vgpath

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestShapes(t *testing.T) {
	Epsilon = 0.01

	test.T(t, Line(0.0, 0.0), NewPath())
	test.String(t, Line(3.0, 4.0).ToSVG(), "M0 0L3 4")

	test.T(t, Rectangle(0.0, 10.0), NewPath())
	test.String(t, Rectangle(5.0, 10.0).ToSVG(), "M0 0L5 0L5 10L0 10z")

	test.T(t, BeveledRectangle(0.0, 10.0, 2.0), NewPath())
	test.T(t, BeveledRectangle(5.0, 10.0, 0.0), Rectangle(5.0, 10.0))
	test.String(t, BeveledRectangle(5.0, 10.0, 2.0).ToSVG(), "M0 2L2 0L3 0L5 2L5 8L3 10L2 10L0 8z")

	test.T(t, Circle(0.0), NewPath())
	test.String(t, Circle(2.0).ToSVG(), "M2 0C2 1.1045695 1.1045695 2 0 2C-1.1045695 2 -2 1.1045695 -2 0C-2 -1.1045695 -1.1045695 -2 0 -2C1.1045695 -2 2 -1.1045695 2 0z")

	test.T(t, RegularPolygon(2, 2.0, true), NewPath())
	test.T(t, RegularPolygon(4, 0.0, true), NewPath())
	test.T(t, RegularPolygon(4, 2.0, true), MustParseSVGPath("M0 2L-2 0L0 -2L2 0z"))
	test.T(t, RegularPolygon(3, 2.0, true), MustParseSVGPath("M0 2L-1.7321 -1L1.7321 -1z"))
	test.T(t, RegularPolygon(3, 2.0, false), MustParseSVGPath("M-1.7321 1L0 -2L1.7321 1z"))
	test.T(t, RegularStarPolygon(4, 2, 2.0, true), NewPath())
	test.T(t, RegularStarPolygon(5, 2, 2.0, true), MustParseSVGPath("M0 2L-1.1756 -1.618L1.9021 0.618L-1.9021 0.618L1.1756 -1.618z"))
	test.T(t, StarPolygon(2, 4.0, 2.0, true), NewPath())
	test.T(t, StarPolygon(4, 4.0, 2.0, true), MustParseSVGPath("M0 4L-1.41 1.41L-4 0L-1.41 -1.41L0 -4L1.41 -1.41L4 0L1.41 1.41z"))
	test.T(t, StarPolygon(3, 4.0, 2.0, false), MustParseSVGPath("M-3.4641 2L-1.7321 -1L0 -4L1.7321 -1L3.4641 2L0 2z"))
}

func TestShapesRoundedRectangle(t *testing.T) {
	Epsilon = 0.01

	test.T(t, RoundedRectangle(0.0, 10.0, 2.0), NewPath())
	test.T(t, RoundedRectangle(5.0, 10.0, 0.0), Rectangle(5.0, 10.0))

	p := RoundedRectangle(5.0, 10.0, 2.0)
	test.T(t, p.Len(), 8)
	test.That(t, p.Closed())
	test.T(t, p.Vertex(0).Position, Point{0.0, 2.0})
	test.T(t, p.Vertex(1).Position, Point{2.0, 0.0})
	test.T(t, p.Vertex(2).Position, Point{3.0, 0.0})
	test.T(t, p.Vertex(3).Position, Point{5.0, 2.0})
	test.T(t, p.Vertex(4).Position, Point{5.0, 8.0})
	test.T(t, p.Vertex(5).Position, Point{3.0, 10.0})
	test.T(t, p.Vertex(6).Position, Point{2.0, 10.0})
	test.T(t, p.Vertex(7).Position, Point{0.0, 8.0})
	test.That(t, math.Abs(p.Length()-26.5664) < 0.01)

	// a negative radius casts the corners inwards
	test.That(t, !p.Equals(RoundedRectangle(5.0, 10.0, -2.0)))
}

func TestShapesEllipse(t *testing.T) {
	Epsilon = 0.01

	test.T(t, Ellipse(0.0, 1.0), NewPath())

	p := Ellipse(2.0, 1.0)
	test.T(t, p.Len(), 4)
	test.That(t, p.Closed())
	test.T(t, p.Vertex(0).Position, Point{2.0, 0.0})
	test.T(t, p.Vertex(1).Position, Point{0.0, 1.0})
	test.T(t, p.Vertex(2).Position, Point{-2.0, 0.0})
	test.T(t, p.Vertex(3).Position, Point{0.0, -1.0})
	test.That(t, math.Abs(p.Length()-9.6884) < 0.02)
}

func TestShapesArc(t *testing.T) {
	Epsilon = 0.01

	p := Arc(2.0, 90.0, 0.0)
	test.T(t, p.Len(), 2)
	test.T(t, p.Vertex(0).Position, Point{0.0, 2.0})
	test.T(t, p.Vertex(1).Position, Point{2.0, 0.0})

	p = EllipticalArc(2.0, 1.0, 0.0, 180.0, 0.0)
	test.T(t, p.Len(), 3)
	test.T(t, p.Vertex(0).Position, Point{-2.0, 0.0})
	test.T(t, p.Vertex(1).Position, Point{0.0, 1.0})
	test.T(t, p.Vertex(2).Position, Point{2.0, 0.0})

	test.T(t, EllipticalArc(0.0, 1.0, 0.0, 180.0, 0.0), NewPath())
}
