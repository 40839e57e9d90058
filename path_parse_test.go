package vgpath

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig string
		res  string
	}{
		{"", ""},
		{"M10 0L20 0", "M10 0L20 0"},
		{"m10 0l10 0", "M10 0L20 0"},
		{"M10 0H20V10H10z", "M10 0L20 0L20 10L10 10z"},
		{"m10 0h10v10h-10z", "M10 0L20 0L20 10L10 10z"},
		{"M0 0C0 1 1 1 1 0", "M0 0C0 1 1 1 1 0"},
		{"m0 0c0 1 1 1 1 0", "M0 0C0 1 1 1 1 0"},
		{"M0 0Q1.5 3 3 0", "M0 0C1 2 2 2 3 0"},
		{"m0 0q1.5 3 3 0", "M0 0C1 2 2 2 3 0"},
		{"M0 0C0 1 1 1 1 0S2 -1 2 0", "M0 0C0 1 1 1 1 0C1 -1 2 -1 2 0"},
		{"m0 0c0 1 1 1 1 0s1 -1 1 0", "M0 0C0 1 1 1 1 0C1 -1 2 -1 2 0"},
		{"M0 0S1 1 2 0", "M0 0C0 0 1 1 2 0"}, // no preceding curve, the first control point collapses
		{"M0 0Q3 3 6 0T12 0", "M0 0C2 2 4 2 6 0C8 -2 10 -2 12 0"},
		{"m0 0q3 3 6 0t6 0", "M0 0C2 2 4 2 6 0C8 -2 10 -2 12 0"},
		{"M0 0T4 0", "M0 0C0 0 1.3333333 0 4 0"},
		{"M0 0A0 5 0 0 0 4 0", "M0 0L4 0"}, // zero radius draws a straight line
		{"M0 0 10 0 10 10", "M0 0L10 0L10 10"},
		{"M 0,0 L10,0,10,10", "M0 0L10 0L10 10"},
		{"M1e1 0L2E1 1e1", "M10 0L20 10"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.String(t, p.ToSVG(), tt.res)
		})
	}
}

func TestParseSVGPathArcFlags(t *testing.T) {
	Epsilon = 1e-9

	// flags are bare digits and may run together with each other and the end point
	p := MustParseSVGPath("M0 0A2 1 0 11 4 0")
	test.T(t, p.Len(), 3)
	test.T(t, p.Vertex(1).Position, Point{2.0, -1.0})

	p = MustParseSVGPath("M0 0A2 1 0 0,0 4,0")
	test.T(t, p.Len(), 3)
	test.T(t, p.Vertex(1).Position, Point{2.0, 1.0})
}

func TestParseSVGPathRoundTrip(t *testing.T) {
	for i := 0; i < 10; i++ {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			p := RandomPath(8, i%2 == 0)
			s := p.ToSVG()
			q, err := ParseSVGPath(s)
			test.Error(t, err)
			test.String(t, q.ToSVG(), s)
		})
	}
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  string
	}{
		{"L10 0", "bad path: path should start with command 'M' or 'm'"},
		{"M10 0M20 0", "bad path: multiple subpaths at position 6"},
		{"M10 0zL10 0", "bad path: command after closepath at position 7"},
		{"M10 0X10", "bad path: unknown command 'X' at position 6"},
		{"M10", "bad path: expected number at position 4"},
		{"M10 0L10", "bad path: expected number at position 9"},
		{"M0 0A2 1 0 2 0 4 0", "bad path: expected flag at position 12"},
		{"M0 0A2 1 0 1 2 4 0", "bad path: expected flag at position 14"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			_, err := ParseSVGPath(tt.orig)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}
