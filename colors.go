package vgpath

import (
	"encoding/hex"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
)

// RGB returns an opaque color from red, green and blue values between 0 and 255.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// RGBA returns a color given by red, green, and blue ∈ [0,255] (non alpha premultiplied) and alpha ∈ [0,1].
func RGBA(r, g, b uint8, a float64) color.RGBA {
	return color.RGBA{
		uint8(a * float64(r)),
		uint8(a * float64(g)),
		uint8(a * float64(b)),
		uint8(a * 255.0),
	}
}

// Hex parses a CSS hexadecimal color such as e.g. #ff0000 or F00.
func Hex(s string) color.RGBA {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range s {
		if '0' <= c && c <= '9' {
			h[i] = uint8(c - '0')
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + uint8(c-'a')
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + uint8(c-'A')
		}
	}
	if len(s) == 3 {
		return color.RGBA{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}
	} else if len(s) == 4 {
		a := float64(h[3]*16+h[3]) / 255.0
		return color.RGBA{
			uint8(a * float64(h[0]*16+h[0])),
			uint8(a * float64(h[1]*16+h[1])),
			uint8(a * float64(h[2]*16+h[2])),
			h[3]*16 + h[3],
		}
	} else if len(s) == 6 {
		return color.RGBA{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}
	} else if len(s) == 8 {
		a := float64(h[6]*16+h[7]) / 255.0
		return color.RGBA{
			uint8(a * float64(h[0]*16+h[1])),
			uint8(a * float64(h[2]*16+h[3])),
			uint8(a * float64(h[4]*16+h[5])),
			h[6]*16 + h[7],
		}
	}
	return Black
}

// toCSSColor writes the color in its shortest CSS form, undoing the alpha premultiplication for the rgba() notation.
func toCSSColor(col color.RGBA) string {
	if col.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{col.R, col.G, col.B})
		if buf[1] == buf[2] && buf[3] == buf[4] && buf[5] == buf[6] {
			buf[2] = buf[3]
			buf[3] = buf[5]
			buf = buf[:4]
		}
		return string(buf)
	} else if col.A == 0 {
		return "rgba(0,0,0,0)"
	}
	a := float64(col.A) / 255.0
	r := uint8(float64(col.R)/a + 0.5)
	g := uint8(float64(col.G)/a + 0.5)
	b := uint8(float64(col.B)/a + 0.5)
	return fmt.Sprintf("rgba(%d,%d,%d,%v)", r, g, b, math.Round(a*100000.0)/100000.0)
}

// Transparent when used as a fill or stroke color indicates that the fill or stroke is not drawn.
var Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}

var (
	Black = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

////////////////////////////////////////////////////////////////

// Gradient is a color gradient for filling or stroking.
type Gradient interface {
	SetView(Matrix) Gradient
	At(float64, float64) color.RGBA
}

// Stop is a color and offset for gradients.
type Stop struct {
	Offset float64
	Color  color.RGBA
}

// Stops are the colors and offsets of a gradient, sorted by offset.
type Stops []Stop

// Add adds a color stop, keeping the sort order and replacing a stop at the same offset.
func (stops *Stops) Add(t float64, color color.RGBA) {
	stop := Stop{math.Min(math.Max(t, 0.0), 1.0), color}
	for i := range *stops {
		if Equal((*stops)[i].Offset, stop.Offset) {
			(*stops)[i] = stop
			return
		} else if stop.Offset < (*stops)[i].Offset {
			*stops = append((*stops)[:i], append(Stops{stop}, (*stops)[i:]...)...)
			return
		}
	}
	*stops = append(*stops, stop)
}

// At returns the color at position t between 0 and 1.
func (stops Stops) At(t float64) color.RGBA {
	if len(stops) == 0 {
		return Transparent
	} else if t <= 0.0 || len(stops) == 1 {
		return stops[0].Color
	} else if 1.0 <= t {
		return stops[len(stops)-1].Color
	}
	for i, stop := range stops[1:] {
		if t < stop.Offset {
			t = (t - stops[i].Offset) / (stop.Offset - stops[i].Offset)
			return colorLerp(stops[i].Color, stop.Color, t)
		}
	}
	return stops[len(stops)-1].Color
}

func colorLerp(c0, c1 color.RGBA, t float64) color.RGBA {
	r0, g0, b0, a0 := c0.RGBA()
	r1, g1, b1, a1 := c1.RGBA()
	return color.RGBA{
		lerp(r0, r1, t),
		lerp(g0, g1, t),
		lerp(b0, b1, t),
		lerp(a0, a1, t),
	}
}

func lerp(a, b uint32, t float64) uint8 {
	return uint8(uint32((1.0-t)*float64(a)+t*float64(b)) >> 8)
}

// LinearGradient is a linear gradient between the given start and end points. The color at offset 0 corresponds to the start position and offset 1 to the end position.
type LinearGradient struct {
	Start, End Point
	Stops

	d  Point
	d2 float64
}

// NewLinearGradient returns a new linear gradient.
func NewLinearGradient(start, end Point) *LinearGradient {
	d := end.Sub(start)
	return &LinearGradient{
		Start: start,
		End:   end,

		d:  d,
		d2: d.Dot(d),
	}
}

// SetView transforms the gradient coordinates, returning a new gradient when the view is not the identity.
func (g *LinearGradient) SetView(view Matrix) Gradient {
	if view == Identity {
		return g
	}

	gradient := *g
	gradient.Start = view.Dot(gradient.Start)
	gradient.End = view.Dot(gradient.End)
	gradient.d = gradient.End.Sub(gradient.Start)
	gradient.d2 = gradient.d.Dot(gradient.d)
	return &gradient
}

// At returns the color at position (x,y).
func (g *LinearGradient) At(x, y float64) color.RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}

	p := Point{x, y}.Sub(g.Start)
	if Equal(g.d.Y, 0.0) && !Equal(g.d.X, 0.0) {
		return g.Stops.At(p.X / g.d.X) // horizontal
	} else if !Equal(g.d.Y, 0.0) && Equal(g.d.X, 0.0) {
		return g.Stops.At(p.Y / g.d.Y) // vertical
	}
	t := p.Dot(g.d) / g.d2
	return g.Stops.At(t)
}

// RadialGradient is a radial gradient between two circles defined by their center points and radii. The color stop at offset 0 corresponds to the first circle and offset 1 to the second.
type RadialGradient struct {
	C0, C1 Point
	R0, R1 float64
	Stops

	cd    Point
	dr, a float64
}

// NewRadialGradient returns a new radial gradient.
func NewRadialGradient(c0 Point, r0 float64, c1 Point, r1 float64) *RadialGradient {
	cd := c1.Sub(c0)
	dr := r1 - r0
	return &RadialGradient{
		C0: c0,
		R0: r0,
		C1: c1,
		R1: r1,

		cd: cd,
		dr: dr,
		a:  cd.Dot(cd) - dr*dr,
	}
}

// SetView transforms the gradient coordinates, returning a new gradient when the view is not the identity.
func (g *RadialGradient) SetView(view Matrix) Gradient {
	if view == Identity {
		return g
	}

	gradient := *g
	gradient.C0 = view.Dot(gradient.C0)
	gradient.C1 = view.Dot(gradient.C1)
	gradient.cd = gradient.C1.Sub(gradient.C0)
	gradient.a = gradient.cd.Dot(gradient.cd) - gradient.dr*gradient.dr
	return &gradient
}

// At returns the color at position (x,y).
// see the reference implementation of pixman-radial-gradient
// https://github.com/servo/pixman/blob/master/pixman/pixman-radial-gradient.c#L161
func (g *RadialGradient) At(x, y float64) color.RGBA {
	if len(g.Stops) == 0 {
		return Transparent
	}

	pd := Point{x, y}.Sub(g.C0)
	b := pd.Dot(g.cd) + g.R0*g.dr
	c := pd.Dot(pd) - g.R0*g.R0
	t0, t1 := solveQuadraticFormula(g.a, -2.0*b, c)
	if !math.IsNaN(t1) {
		return g.Stops.At(t1)
	} else if !math.IsNaN(t0) {
		return g.Stops.At(t0)
	}
	return Transparent
}

// Texture is an image tiling paint drawn from an origin. When repeat is set the image tiles the plane, otherwise points outside the image are transparent.
type Texture struct {
	img    *image.RGBA
	origin Point
	repeat bool
}

// NewTexture returns a new texture paint from an image.
func NewTexture(iimg image.Image, origin Point, repeat bool) *Texture {
	img, ok := iimg.(*image.RGBA)
	if !ok {
		bounds := iimg.Bounds()
		img = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(img, img.Bounds(), iimg, bounds.Min, draw.Src)
	}
	return &Texture{
		img:    img,
		origin: origin,
		repeat: repeat,
	}
}

// At returns the color at position (x,y), bilinearly interpolated between the four neighbouring texels.
func (t *Texture) At(x, y float64) color.RGBA {
	x -= t.origin.X
	y -= t.origin.Y

	w, h := t.img.Bounds().Dx(), t.img.Bounds().Dy()
	if w == 0 || h == 0 {
		return Transparent
	}
	ix0, iy0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(ix0), y-float64(iy0)
	if !t.repeat && (ix0 < 0 || w <= ix0 || iy0 < 0 || h <= iy0) {
		return Transparent
	}

	mod := func(a, n int) int {
		return ((a % n) + n) % n
	}
	ix0, iy0 = mod(ix0, w), mod(iy0, h)
	ix1, iy1 := (ix0+1)%w, (iy0+1)%h

	var s [4]uint8
	d00 := t.img.PixOffset(ix0, iy0)
	d10 := t.img.PixOffset(ix1, iy0)
	d01 := t.img.PixOffset(ix0, iy1)
	d11 := t.img.PixOffset(ix1, iy1)
	for i := 0; i < 4; i++ {
		s[i] = uint8((1.0-fy)*((1.0-fx)*float64(t.img.Pix[d00+i])+fx*float64(t.img.Pix[d10+i])) + fy*((1.0-fx)*float64(t.img.Pix[d01+i])+fx*float64(t.img.Pix[d11+i])) + 0.5)
	}
	return color.RGBA{s[0], s[1], s[2], s[3]}
}
