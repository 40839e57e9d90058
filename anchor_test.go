package vgpath

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestCommand(t *testing.T) {
	test.String(t, MoveCmd.String(), "move")
	test.String(t, LineCmd.String(), "line")
	test.String(t, CurveCmd.String(), "curve")
	test.String(t, CloseCmd.String(), "close")
	test.String(t, Command(10).String(), "?")
}

func TestAnchorHandles(t *testing.T) {
	a := NewAnchor(1.0, 2.0)
	test.T(t, a.Position, Point{1.0, 2.0})
	test.T(t, a.Command, LineCmd)
	test.That(t, a.Relative)
	test.That(t, !a.HasLeft())
	test.That(t, !a.HasRight())

	a.SetAbsLeft(Point{0.0, 2.0})
	a.SetAbsRight(Point{2.0, 2.0})
	test.That(t, a.HasLeft())
	test.That(t, a.HasRight())
	test.T(t, a.Left, Point{-1.0, 0.0})
	test.T(t, a.Right, Point{1.0, 0.0})
	test.T(t, a.AbsLeft(), Point{0.0, 2.0})
	test.T(t, a.AbsRight(), Point{2.0, 2.0})

	a.ClearLeft()
	a.ClearRight()
	test.That(t, !a.HasLeft())
	test.That(t, !a.HasRight())
	test.T(t, a.AbsLeft(), a.Position)

	b := NewAnchor(1.0, 2.0)
	b.Relative = false
	b.ClearLeft()
	b.ClearRight()
	test.That(t, !b.HasLeft())
	test.That(t, !b.HasRight())

	b.SetAbsRight(Point{3.0, 2.0})
	test.That(t, b.HasRight())
	test.T(t, b.Right, Point{3.0, 2.0})
	test.T(t, b.AbsRight(), Point{3.0, 2.0})
}

func TestAnchorMove(t *testing.T) {
	a := NewCurveAnchor(1.0, 1.0, -1.0, 0.0, 1.0, 0.0)
	a.Move(10.0, 10.0)
	test.T(t, a.Position, Point{11.0, 11.0})
	test.T(t, a.Left, Point{-1.0, 0.0}) // offsets keep their value
	test.T(t, a.AbsLeft(), Point{10.0, 11.0})

	b := NewAnchor(1.0, 1.0)
	b.Relative = false
	b.Left = Point{0.0, 1.0}
	b.Right = Point{2.0, 1.0}
	b.Move(10.0, 10.0)
	test.T(t, b.Position, Point{11.0, 11.0})
	test.T(t, b.Left, Point{10.0, 11.0})
	test.T(t, b.Right, Point{12.0, 11.0})
}

func TestAnchorTransform(t *testing.T) {
	Epsilon = 1e-3
	a := NewCurveAnchor(1.0, 0.0, 0.0, -1.0, 0.0, 1.0)
	a.Transform(Identity.Rotate(90.0))
	test.T(t, a.Position, Point{0.0, 1.0})
	test.T(t, a.Left, Point{1.0, 0.0})
	test.T(t, a.Right, Point{-1.0, 0.0})

	b := NewCurveAnchor(1.0, 0.0, 0.0, -1.0, 0.0, 1.0)
	b.Transform(Identity.Translate(5.0, 5.0))
	test.T(t, b.Position, Point{6.0, 5.0})
	test.T(t, b.Left, Point{0.0, -1.0}) // offsets do not translate
	test.T(t, b.AbsLeft(), Point{6.0, 4.0})
}

func TestAnchorEquals(t *testing.T) {
	a := NewCurveAnchor(1.0, 1.0, -1.0, 0.0, 1.0, 0.0)
	b := &Anchor{Position: Point{1.0, 1.0}, Left: Point{0.0, 1.0}, Right: Point{2.0, 1.0}, Command: CurveCmd}
	test.That(t, a.Equals(b)) // same geometry, absolute handles

	c := a.Copy()
	c.Move(1.0, 0.0)
	test.That(t, !a.Equals(c))
	test.T(t, a.Position, Point{1.0, 1.0})

	d := a.Copy()
	d.Command = LineCmd
	test.That(t, !a.Equals(d))
}

func TestAnchorString(t *testing.T) {
	test.String(t, NewAnchor(1.0, 2.0).String(), "line (1,2)")
	test.String(t, NewCurveAnchor(1.0, 1.0, -1.0, 0.0, 1.0, 0.0).String(), "curve (1,1) left=(0,1) right=(2,1)")
}
