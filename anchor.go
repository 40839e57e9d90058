package vgpath

import "fmt"

// Command determines how the segment arriving at an anchor is drawn.
type Command uint8

const (
	MoveCmd Command = iota
	LineCmd
	CurveCmd
	CloseCmd
)

func (cmd Command) String() string {
	switch cmd {
	case MoveCmd:
		return "move"
	case LineCmd:
		return "line"
	case CurveCmd:
		return "curve"
	case CloseCmd:
		return "close"
	}
	return "?"
}

// Anchor is a path vertex with two optional control handles. Left controls the segment arriving at the anchor and Right the segment leaving it. When Relative is true the handles are stored as offsets from Position, otherwise as absolute coordinates. A handle that coincides with the position is inactive and the segment falls back to a straight line on that side.
type Anchor struct {
	Position Point   `json:"position"`
	Left     Point   `json:"left"`
	Right    Point   `json:"right"`
	Relative bool    `json:"relative"`
	Command  Command `json:"command"`

	// T is the curve parameter at which this anchor was generated, set by PointAt.
	T float64 `json:"-"`
}

// NewAnchor returns an anchor at (x,y) with relative, inactive handles.
func NewAnchor(x, y float64) *Anchor {
	return &Anchor{
		Position: Point{x, y},
		Relative: true,
		Command:  LineCmd,
	}
}

// NewCurveAnchor returns an anchor at (x,y) with relative handles at (lx,ly) and (rx,ry).
func NewCurveAnchor(x, y, lx, ly, rx, ry float64) *Anchor {
	return &Anchor{
		Position: Point{x, y},
		Left:     Point{lx, ly},
		Right:    Point{rx, ry},
		Relative: true,
		Command:  CurveCmd,
	}
}

// AbsLeft returns the left control handle in absolute coordinates.
func (a *Anchor) AbsLeft() Point {
	if a.Relative {
		return a.Position.Add(a.Left)
	}
	return a.Left
}

// AbsRight returns the right control handle in absolute coordinates.
func (a *Anchor) AbsRight() Point {
	if a.Relative {
		return a.Position.Add(a.Right)
	}
	return a.Right
}

// SetAbsLeft sets the left control handle from absolute coordinates.
func (a *Anchor) SetAbsLeft(p Point) {
	if a.Relative {
		a.Left = p.Sub(a.Position)
	} else {
		a.Left = p
	}
}

// SetAbsRight sets the right control handle from absolute coordinates.
func (a *Anchor) SetAbsRight(p Point) {
	if a.Relative {
		a.Right = p.Sub(a.Position)
	} else {
		a.Right = p
	}
}

// HasLeft returns true if the left control handle is active, ie. does not coincide with the position.
func (a *Anchor) HasLeft() bool {
	if a.Relative {
		return !a.Left.IsZero()
	}
	return !a.Left.Equals(a.Position)
}

// HasRight returns true if the right control handle is active.
func (a *Anchor) HasRight() bool {
	if a.Relative {
		return !a.Right.IsZero()
	}
	return !a.Right.Equals(a.Position)
}

// ClearLeft deactivates the left control handle.
func (a *Anchor) ClearLeft() {
	if a.Relative {
		a.Left = Point{}
	} else {
		a.Left = a.Position
	}
}

// ClearRight deactivates the right control handle.
func (a *Anchor) ClearRight() {
	if a.Relative {
		a.Right = Point{}
	} else {
		a.Right = a.Position
	}
}

// Move translates the anchor by (x,y). Relative handles keep their offsets.
func (a *Anchor) Move(x, y float64) {
	d := Point{x, y}
	a.Position = a.Position.Add(d)
	if !a.Relative {
		a.Left = a.Left.Add(d)
		a.Right = a.Right.Add(d)
	}
}

// Transform applies an affine transformation to the anchor. Relative handles are transformed without the translation part.
func (a *Anchor) Transform(m Matrix) {
	if a.Relative {
		linear := m
		linear[0][2] = 0.0
		linear[1][2] = 0.0
		a.Left = linear.Dot(a.Left)
		a.Right = linear.Dot(a.Right)
	} else {
		a.Left = m.Dot(a.Left)
		a.Right = m.Dot(a.Right)
	}
	a.Position = m.Dot(a.Position)
}

// Copy returns a deep copy of the anchor.
func (a *Anchor) Copy() *Anchor {
	b := *a
	return &b
}

// Equals returns true if both anchors draw the same segment geometry.
func (a *Anchor) Equals(b *Anchor) bool {
	if a.Command != b.Command {
		return false
	}
	return a.Position.Equals(b.Position) && a.AbsLeft().Equals(b.AbsLeft()) && a.AbsRight().Equals(b.AbsRight())
}

func (a *Anchor) String() string {
	if !a.HasLeft() && !a.HasRight() {
		return fmt.Sprintf("%v %v", a.Command, a.Position)
	}
	return fmt.Sprintf("%v %v left=%v right=%v", a.Command, a.Position, a.AbsLeft(), a.AbsRight())
}
