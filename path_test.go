package vgpath

import (
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestPathEmpty(t *testing.T) {
	p := NewPath()
	test.That(t, p.Empty())
	test.T(t, p.Len(), 0)
	test.Float(t, p.Length(), 0.0)
	test.T(t, len(p.RenderVertices()), 0)
	test.String(t, p.ToSVG(), "")
	test.T(t, p.Pos(), Point{})
	test.That(t, p.PointAt(0.5, nil) == nil)

	p.MoveTo(3.0, 4.0)
	test.That(t, !p.Empty())
	test.T(t, p.Len(), 1)
	test.Float(t, p.Length(), 0.0)
	test.T(t, p.Pos(), Point{3.0, 4.0})
	test.String(t, p.ToSVG(), "M3 4")
}

func TestPathAppend(t *testing.T) {
	a := NewAnchor(0.0, 0.0)
	a.Command = MoveCmd
	b := NewAnchor(10.0, 0.0)
	p := NewPath(a, b)
	test.T(t, p.Len(), 2)
	test.That(t, p.Vertex(0) == a)
	test.Float(t, p.Length(), 10.0)

	p.Append(NewAnchor(10.0, 10.0), NewAnchor(0.0, 10.0))
	test.T(t, p.Len(), 4)
	test.Float(t, p.Length(), 30.0)

	p.Insert(1, NewAnchor(5.0, -5.0))
	test.T(t, p.Len(), 5)
	test.String(t, p.ToSVG(), "M0 0L5 -5L10 0L10 10L0 10")
	test.Float(t, p.Length(), 34.142136)

	v := p.Remove(1)
	test.T(t, v.Position, Point{5.0, -5.0})
	test.String(t, p.ToSVG(), "M0 0L10 0L10 10L0 10")
	test.Float(t, p.Length(), 30.0)

	c := NewAnchor(1.0, 1.0)
	c.Command = MoveCmd
	p.SetVertex(0, c)
	test.String(t, p.ToSVG(), "M1 1L10 0L10 10L0 10")

	p.SetVertex(0, a)
	p.Vertex(1).Position = Point{20.0, 0.0}
	p.Touch()
	test.Float(t, p.Length(), 44.142136)
}

func TestPathCommands(t *testing.T) {
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	p.LineTo(5.0, 0.0)
	test.String(t, p.ToSVG(), "M0 0L5 0")

	p = NewPath()
	p.MoveTo(0.0, 0.0)
	p.CubeTo(1.0, 1.0, 2.0, 2.0, 3.0, 4.0)
	test.String(t, p.ToSVG(), "M0 0C1 1 2 2 3 4")

	p = NewPath()
	p.MoveTo(0.0, 0.0)
	p.QuadTo(1.5, 3.0, 3.0, 0.0)
	test.String(t, p.ToSVG(), "M0 0C1 2 2 2 3 0")

	// a degenerate quadratic leaves both handles inactive
	p = NewPath()
	p.MoveTo(3.0, 4.0)
	p.QuadTo(3.0, 4.0, 3.0, 4.0)
	test.String(t, p.ToSVG(), "M3 4L3 4")

	// zero radius draws a straight line
	p = NewPath()
	p.MoveTo(0.0, 0.0)
	p.ArcTo(0.0, 5.0, 0.0, false, false, 4.0, 0.0)
	test.String(t, p.ToSVG(), "M0 0L4 0")
}

func TestPathArc(t *testing.T) {
	Epsilon = 1e-3

	// radii match the endpoint distance, the arc runs over the top
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	p.ArcTo(2.0, 1.0, 0.0, false, false, 4.0, 0.0)
	test.T(t, p.Len(), 3)
	test.T(t, p.Vertex(1).Position, Point{2.0, 1.0})
	test.T(t, p.Vertex(2).Position, Point{4.0, 0.0})
	test.T(t, p.Vertex(1).Command, CurveCmd)
	test.That(t, math.Abs(p.Length()-4.844224) < 0.01)

	p = NewPath()
	p.MoveTo(0.0, 0.0)
	p.Arc(2.0, 1.0, 0.0, 180.0, 0.0)
	test.T(t, p.Len(), 3)
	test.T(t, p.Vertex(1).Position, Point{2.0, 1.0})
	test.T(t, p.Vertex(2).Position, Point{4.0, 0.0})

	// one and a half turns, drawn as two halves and the remainder
	p = NewPath()
	p.MoveTo(0.0, 0.0)
	p.Arc(2.0, 1.0, 0.0, 540.0, 0.0)
	test.T(t, p.Len(), 7)
	test.T(t, p.Vertex(6).Position, Point{4.0, 0.0})
}

func TestPathClosed(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10L0 10")
	test.That(t, !p.Closed())
	test.Float(t, p.Length(), 30.0)

	p.Close()
	test.That(t, p.Closed())
	test.That(t, p.RenderClosed())
	test.Float(t, p.Length(), 40.0)
	test.String(t, p.ToSVG(), "M0 0L10 0L10 10L0 10z")

	p.SetWindow(0.0, 0.5)
	test.That(t, p.Closed())
	test.That(t, !p.RenderClosed())

	p.SetWindow(0.0, 1.0)
	test.That(t, p.RenderClosed())

	p.SetClosed(false)
	test.That(t, !p.Closed())
	test.Float(t, p.Length(), 30.0)
}

func TestPathWindow(t *testing.T) {
	var tts = []struct {
		s        string
		lo, hi   float64
		expected string
	}{
		{"M0 0L10 0L10 10L0 10", 0.0, 1.0, "M0 0L10 0L10 10L0 10"},
		{"M0 0L10 0L10 10L0 10", 0.0, 0.5, "M0 0L10 0L10 5"},
		{"M0 0L10 0L10 10L0 10", 0.5, 1.0, "M10 5L10 10L0 10"},
		{"M0 0L10 0L10 10L0 10", 0.25, 0.75, "M7.5 0L10 0L10 10L7.5 10"},
		{"M0 0L10 0L10 10L0 10", 0.25, 0.5, "M7.5 0L10 0L10 5"},
		{"M0 0L10 0L10 10L0 10", 1.0, 0.5, "M10 5L10 10L0 10"},
		{"M0 0L10 0L10 10L0 10", -0.5, 1.5, "M0 0L10 0L10 10L0 10"},
		{"M0 0L10 0L10 10L0 10z", 0.0, 1.0, "M0 0L10 0L10 10L0 10z"},
		{"M0 0L10 0L10 10L0 10z", 0.0, 0.5, "M0 0L10 0L10 10"},
		{"M0 0L10 0L10 10L0 10z", 0.5, 1.0, "M10 10L0 10L0 0"},
		{"M0 0L10 0L10 10L0 10z", 0.25, 0.75, "M10 0L10 10L0 10"},
		{"M0 0L10 0L10 10L0 10z", 0.75, 1.0, "M0 10L0 0"},
		{"M0 0L10 0L10 10L0 10z", 0.75, 0.9, "M0 10L0 4"},
		{"M0 0L10 0L10 10L0 10z", 0.875, 1.0, "M0 5L0 0"},
		{"M0 0L10 0L10 10L0 10z", -0.5, 1.5, "M0 0L10 0L10 10L0 10z"},
	}
	for j, tt := range tts {
		t.Run(fmt.Sprint(j), func(t *testing.T) {
			p := MustParseSVGPath(tt.s)
			p.SetWindow(tt.lo, tt.hi)
			test.String(t, p.ToSVG(), tt.expected)
		})
	}

	// restoring the full window restores the full contour
	p := MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	p.SetWindow(0.25, 0.75)
	test.String(t, p.ToSVG(), "M10 0L10 10L0 10")
	test.String(t, p.ToSVG(), "M10 0L10 10L0 10")
	p.SetWindow(0.0, 1.0)
	test.String(t, p.ToSVG(), "M0 0L10 0L10 10L0 10z")

	lo, hi := p.Window()
	test.Float(t, lo, 0.0)
	test.Float(t, hi, 1.0)
}

func TestPathWindowCurve(t *testing.T) {
	Epsilon = 1e-3
	p := MustParseSVGPath("M0 0C0 55.228475 44.771525 100 100 100")

	// the kept half keeps its tangent through the truncated handles
	p.SetWindow(0.0, 0.5)
	vs := p.RenderVertices()
	test.T(t, len(vs), 2)
	test.T(t, vs[0].Command, MoveCmd)
	test.T(t, vs[0].AbsRight(), Point{0.0, 27.614238})
	test.T(t, vs[1].Position, Point{29.289322, 70.710678})
	test.T(t, vs[1].AbsLeft(), Point{11.192881, 52.614238})
	test.Float(t, vs[1].T, 0.5)

	p.SetWindow(0.5, 1.0)
	vs = p.RenderVertices()
	test.T(t, len(vs), 2)
	test.T(t, vs[0].Position, Point{29.289322, 70.710678})
	test.T(t, vs[0].AbsRight(), Point{47.385763, 88.807119})
	test.T(t, vs[1].AbsLeft(), Point{72.385763, 100.0})
	test.T(t, vs[1].Position, Point{100.0, 100.0})
}

func TestPathEquals(t *testing.T) {
	Epsilon = 1e-10
	p := MustParseSVGPath("M0 0L10 0L10 10")
	test.T(t, p, MustParseSVGPath("M0 0L10 0L10 10"))
	test.That(t, !p.Equals(MustParseSVGPath("M0 0L10 0L10 5")))
	test.That(t, !p.Equals(MustParseSVGPath("M0 0L10 0")))

	q := MustParseSVGPath("M0 0L10 0L10 10")
	q.Close()
	test.That(t, !p.Equals(q))

	q = MustParseSVGPath("M0 0L10 0L10 10")
	q.SetWindow(0.0, 0.5)
	test.That(t, !p.Equals(q))
}

func TestPathBounds(t *testing.T) {
	Epsilon = 1e-3
	p := MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	test.T(t, p.Bounds(Identity), Rect{0.0, 0.0, 10.0, 10.0})

	// a stroke expands the box by half its width
	p.SetStrokeColor(Black)
	p.SetStrokeWidth(2.0)
	test.T(t, p.Bounds(Identity), Rect{-1.0, -1.0, 12.0, 12.0})

	p = MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	test.T(t, p.Bounds(Identity.Translate(5.0, 5.0)), Rect{5.0, 5.0, 10.0, 10.0})
	test.T(t, p.Bounds(Identity.Rotate(45.0)), Rect{-7.071068, 0.0, 14.142136, 14.142136})

	// the box covers the render window, not the full contour
	p = MustParseSVGPath("M0 0L10 0L10 10L0 10")
	p.SetWindow(0.0, 0.5)
	test.T(t, p.Bounds(Identity), Rect{0.0, 0.0, 10.0, 5.0})

	test.T(t, Circle(50.0).Bounds(Identity), Rect{-50.0, -50.0, 100.0, 100.0})
	test.T(t, MustParseSVGPath("M0 0C0 55.228475 44.771525 100 100 100").Bounds(Identity), Rect{0.0, 0.0, 100.0, 100.0})
}

func TestPathTransform(t *testing.T) {
	Epsilon = 1e-9
	p := MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	p.Translate(5.0, 0.0)
	test.String(t, p.ToSVG(), "M5 0L15 0L15 10L5 10z")

	p = MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	p.Scale(2.0, 3.0)
	test.String(t, p.ToSVG(), "M0 0L20 0L20 30L0 30z")

	p = MustParseSVGPath("M1 0")
	p.Rotate(90.0)
	test.T(t, p.Vertex(0).Position, Point{0.0, 1.0})

	// handles transform along with the positions
	p = MustParseSVGPath("M0 0C0 1 1 1 1 0")
	p.Scale(2.0, 2.0)
	test.String(t, p.ToSVG(), "M0 0C0 2 2 2 2 0")

	p = MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	p.Center()
	test.T(t, p.Bounds(Identity), Rect{-5.0, -5.0, 10.0, 10.0})
	p.Corner()
	test.T(t, p.Bounds(Identity), Rect{0.0, 0.0, 10.0, 10.0})
}

func TestPathCopy(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10")
	p.SetDashes(1.0, 2.0, 3.0)
	q := p.Copy()
	test.T(t, p, q)

	p.LineTo(0.0, 10.0)
	test.T(t, q.Len(), 3)

	q.Dashes[0] = 9.0
	test.Float(t, p.Dashes[0], 2.0)

	q.Vertex(0).Position = Point{5.0, 5.0}
	q.Touch()
	test.T(t, p.Vertex(0).Position, Point{0.0, 0.0})
}

func TestPathSubdivide(t *testing.T) {
	// straight segments pass through unchanged
	p := MustParseSVGPath("M0 0L10 0L10 10L0 10z")
	p.Subdivide(4)
	test.T(t, p.Len(), 4)
	test.That(t, p.Closed())
	test.String(t, p.ToSVG(), "M0 0L10 0L10 10L0 10z")

	p = MustParseSVGPath("M0 0C0 55.228475 44.771525 100 100 100")
	p.Subdivide(2)
	test.String(t, p.ToSVG(), "M0 0L29.289322 70.710678L100 100")

	p = Circle(50.0)
	p.Subdivide(4)
	test.T(t, p.Len(), 16)
	test.That(t, p.Closed())
	for _, v := range p.Vertices() {
		test.That(t, math.Abs(v.Position.Length()-50.0) < 0.1)
	}
}

func TestPathAutomatic(t *testing.T) {
	Epsilon = 1e-3

	// without curved, plotting forces lines and clears the handles
	p := NewPath()
	p.MoveTo(0.0, 0.0)
	p.CubeTo(0.0, 5.0, 5.0, 5.0, 10.0, 0.0)
	p.SetAutomatic(true)
	test.String(t, p.ToSVG(), "M0 0L10 0")
	test.That(t, !p.Vertex(1).HasLeft())

	// curved smooths the contour through its points
	p = NewPath(NewAnchor(0.0, 0.0), NewAnchor(10.0, 0.0), NewAnchor(20.0, 10.0))
	p.SetCurved(true)
	p.SetAutomatic(true)
	_ = p.RenderVertices()
	test.T(t, p.Vertex(0).Command, MoveCmd)
	test.That(t, !p.Vertex(0).HasRight())
	test.T(t, p.Vertex(1).Command, CurveCmd)
	test.T(t, p.Vertex(1).Left, Point{-3.048802, -1.262855})
	test.T(t, p.Vertex(1).Right, Point{4.311658, 1.785947})
	test.That(t, !p.Vertex(2).HasLeft())

	// a closed contour smooths every vertex
	p = NewPath(NewAnchor(0.0, 0.0), NewAnchor(10.0, 0.0), NewAnchor(0.0, 10.0))
	p.SetClosed(true)
	p.SetCurved(true)
	p.SetAutomatic(true)
	_ = p.RenderVertices()
	for _, v := range p.Vertices() {
		test.That(t, v.HasLeft() && v.HasRight())
	}
}

func TestPathOnChange(t *testing.T) {
	n := 0
	p := NewPath()
	p.OnChange(func() {
		n++
	})

	p.MoveTo(0.0, 0.0)
	p.LineTo(10.0, 0.0)
	p.LineTo(10.0, 10.0)
	test.T(t, n, 3)

	p.Close()
	test.T(t, n, 4)
	p.Close()
	test.T(t, n, 4)

	p.SetWindow(0.0, 0.5)
	test.T(t, n, 5)
	p.SetWindow(0.0, 0.5)
	test.T(t, n, 5)

	_ = p.Length()
	_ = p.ToSVG()
	_ = p.RenderVertices()
	test.T(t, n, 5)

	p.Touch()
	test.T(t, n, 6)
}

////////////////////////////////////////////////////////////////

func plotPathParametrization(filename string, p *Path) error {
	p0 := p.Vertex(0).Position
	p1 := p.Vertex(0).AbsRight()
	p2 := p.Vertex(1).AbsLeft()
	p3 := p.Vertex(1).Position
	total := cubicBezierLength(p0, p1, p2, p3, DefaultResolution)

	exact := make(plotter.XYs, 0, 51)
	for i := 0; i <= 50; i++ {
		u := float64(i) / 50.0
		a0, a1, a2, a3, _, _, _, _ := splitCubicBezier(p0, p1, p2, p3, u)
		f := cubicBezierLength(a0, a1, a2, a3, DefaultResolution) / total
		exact = append(exact, plotter.XY{X: f, Y: u})
	}

	engine := make(plotter.XYs, 0, 21)
	for i := 0; i <= 20; i++ {
		f := float64(i) / 20.0
		a := p.PointAt(f, nil)
		engine = append(engine, plotter.XY{X: f, Y: a.T})
	}

	plt := plot.New()
	plt.X.Label.Text = "arc length fraction"
	plt.Y.Label.Text = "curve parameter"

	line, err := plotter.NewLine(exact)
	if err != nil {
		return err
	}
	line.LineStyle.Color = colornames.Steelblue
	line.LineStyle.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(engine)
	if err != nil {
		return err
	}
	scatter.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Color = colornames.Orangered
	scatter.GlyphStyle.Radius = vg.Points(2.0)

	plt.Add(line, scatter)
	plt.Legend.Add("exact", line)
	plt.Legend.Add("engine", scatter)
	return plt.Save(7*vg.Inch, 4*vg.Inch, filename)
}

func TestPathLengthParametrization(t *testing.T) {
	if !testing.Verbose() {
		t.SkipNow()
		return
	}
	_ = os.Mkdir("test", 0755)

	p := MustParseSVGPath("M0 0C0 100 10 100 100 100")
	if err := plotPathParametrization("test/length_parametrization.png", p); err != nil {
		t.Fatal(err)
	}
}
