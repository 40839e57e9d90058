package vgpath

import "image/color"

// Paint is the source for a fill or stroke: a solid color, a gradient, or a texture. The variant is fixed when the paint is assigned, readers dispatch once on the Is methods instead of re-sniffing types on every use.
type Paint struct {
	Color    color.RGBA
	Gradient Gradient
	Texture  *Texture
}

// Has returns true if the paint would draw anything.
func (p Paint) Has() bool {
	return p.IsGradient() || p.IsTexture() || p.Color.A != 0
}

// IsColor returns true if the paint is a solid color.
func (p Paint) IsColor() bool {
	return !p.IsGradient() && !p.IsTexture()
}

// IsGradient returns true if the paint is a gradient.
func (p Paint) IsGradient() bool {
	return p.Gradient != nil
}

// IsTexture returns true if the paint is a texture.
func (p Paint) IsTexture() bool {
	return p.Texture != nil
}

// LineCap is the shape a stroke ends with.
type LineCap uint8

const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

func (c LineCap) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "?"
}

// LineJoin is the shape two stroked segments join with.
type LineJoin uint8

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

func (j LineJoin) String() string {
	switch j {
	case MiterJoin:
		return "miter"
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "?"
}

// Style describes how a path is filled and stroked.
type Style struct {
	Fill        Paint
	Stroke      Paint
	StrokeWidth float64
	Cap         LineCap
	Join        LineJoin
	MiterLimit  float64
	Dashes      []float64
	DashOffset  float64
	Opacity     float64
	Visible     bool
}

// DefaultStyle is the initial style of a path: a black fill, no stroke.
var DefaultStyle = Style{
	Fill:        Paint{Color: Black},
	Stroke:      Paint{},
	StrokeWidth: 1.0,
	Cap:         ButtCap,
	Join:        MiterJoin,
	MiterLimit:  4.0,
	Opacity:     1.0,
	Visible:     true,
}

// HasFill returns true if the fill would draw.
func (s Style) HasFill() bool {
	return s.Fill.Has()
}

// HasStroke returns true if the stroke would draw.
func (s Style) HasStroke() bool {
	return s.Stroke.Has() && 0.0 < s.StrokeWidth
}

// IsDashed returns true if the stroke is dashed.
func (s Style) IsDashed() bool {
	return 0 < len(s.Dashes)
}

func (s Style) copy() Style {
	style := s
	if s.Dashes != nil {
		style.Dashes = append([]float64{}, s.Dashes...)
	}
	return style
}

// SetFillColor sets the fill to a solid color.
func (s *Style) SetFillColor(col color.RGBA) {
	s.Fill = Paint{Color: col}
}

// SetFillGradient sets the fill to a gradient.
func (s *Style) SetFillGradient(g Gradient) {
	s.Fill = Paint{Gradient: g}
}

// SetFillTexture sets the fill to a texture.
func (s *Style) SetFillTexture(t *Texture) {
	s.Fill = Paint{Texture: t}
}

// SetStrokeColor sets the stroke to a solid color.
func (s *Style) SetStrokeColor(col color.RGBA) {
	s.Stroke = Paint{Color: col}
}

// SetStrokeGradient sets the stroke to a gradient.
func (s *Style) SetStrokeGradient(g Gradient) {
	s.Stroke = Paint{Gradient: g}
}

// SetStrokeTexture sets the stroke to a texture.
func (s *Style) SetStrokeTexture(t *Texture) {
	s.Stroke = Paint{Texture: t}
}

// SetStrokeWidth sets the stroke width.
func (s *Style) SetStrokeWidth(width float64) {
	s.StrokeWidth = width
}

// SetDashes sets the dash pattern and offset along the stroke.
func (s *Style) SetDashes(offset float64, dashes ...float64) {
	s.DashOffset = offset
	s.Dashes = dashes
}
