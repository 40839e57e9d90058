package vgpath

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"github.com/tdewolff/parse/v2/xml"
	"golang.org/x/image/colornames"
)

// num formats a number for SVG output using the package Precision.
type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, float64(f))
	return string(minify.Number([]byte(s), Precision))
}

// ToSVG returns the SVG path data of the rendered path, that is after the window and plotting have been applied.
func (p *Path) ToSVG() string {
	vertices := p.RenderVertices()
	if len(vertices) == 0 {
		return ""
	}

	sb := strings.Builder{}
	var prev *Anchor
	for _, v := range vertices {
		switch {
		case prev == nil || v.Command == MoveCmd:
			fmt.Fprintf(&sb, "M%v %v", num(v.Position.X), num(v.Position.Y))
		case prev.HasRight() || v.HasLeft():
			cp1, cp2 := prev.AbsRight(), v.AbsLeft()
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(cp1.X), num(cp1.Y), num(cp2.X), num(cp2.Y), num(v.Position.X), num(v.Position.Y))
		default:
			fmt.Fprintf(&sb, "L%v %v", num(v.Position.X), num(v.Position.Y))
		}
		prev = v
	}
	if p.RenderClosed() {
		first := vertices[0]
		if prev.HasRight() || first.HasLeft() {
			cp1, cp2 := prev.AbsRight(), first.AbsLeft()
			fmt.Fprintf(&sb, "C%v %v %v %v %v %v", num(cp1.X), num(cp1.Y), num(cp2.X), num(cp2.Y), num(first.Position.X), num(first.Position.Y))
		}
		sb.WriteByte('z')
	}
	return sb.String()
}

// String returns the SVG path data.
func (p *Path) String() string {
	return p.ToSVG()
}

func writeSVGStops(b *strings.Builder, stops Stops) {
	for _, stop := range stops {
		fmt.Fprintf(b, `<stop offset="%v" stop-color="%s"/>`, num(stop.Offset), toCSSColor(stop.Color))
	}
}

func writeSVGPaintDef(b *strings.Builder, id string, paint Paint) error {
	switch {
	case paint.IsGradient():
		switch g := paint.Gradient.(type) {
		case *LinearGradient:
			fmt.Fprintf(b, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%v" y1="%v" x2="%v" y2="%v">`, id, num(g.Start.X), num(g.Start.Y), num(g.End.X), num(g.End.Y))
			writeSVGStops(b, g.Stops)
			b.WriteString(`</linearGradient>`)
		case *RadialGradient:
			fmt.Fprintf(b, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%v" cy="%v" r="%v" fx="%v" fy="%v">`, id, num(g.C1.X), num(g.C1.Y), num(g.R1), num(g.C0.X), num(g.C0.Y))
			writeSVGStops(b, g.Stops)
			b.WriteString(`</radialGradient>`)
		default:
			return fmt.Errorf("unsupported gradient type %T", g)
		}
	case paint.IsTexture():
		t := paint.Texture
		var buf bytes.Buffer
		if err := png.Encode(&buf, t.img); err != nil {
			return err
		}
		bounds := t.img.Bounds()
		fmt.Fprintf(b, `<pattern id="%s" patternUnits="userSpaceOnUse" x="%v" y="%v" width="%d" height="%d">`, id, num(t.origin.X), num(t.origin.Y), bounds.Dx(), bounds.Dy())
		fmt.Fprintf(b, `<image width="%d" height="%d" href="data:image/png;base64,%s"/>`, bounds.Dx(), bounds.Dy(), base64.StdEncoding.EncodeToString(buf.Bytes()))
		b.WriteString(`</pattern>`)
	}
	return nil
}

func (style Style) writeSVGAttrs(b *strings.Builder, fillRef, strokeRef string) {
	if style.HasFill() {
		if fillRef != "" {
			fmt.Fprintf(b, ` fill="url(#%s)"`, fillRef)
		} else if style.Fill.Color != Black {
			fmt.Fprintf(b, ` fill="%s"`, toCSSColor(style.Fill.Color))
		}
	} else {
		b.WriteString(` fill="none"`)
	}
	if style.HasStroke() {
		if strokeRef != "" {
			fmt.Fprintf(b, ` stroke="url(#%s)"`, strokeRef)
		} else {
			fmt.Fprintf(b, ` stroke="%s"`, toCSSColor(style.Stroke.Color))
		}
		fmt.Fprintf(b, ` stroke-width="%v"`, num(style.StrokeWidth))
		if style.Cap != ButtCap {
			fmt.Fprintf(b, ` stroke-linecap="%s"`, style.Cap)
		}
		if style.Join != MiterJoin {
			fmt.Fprintf(b, ` stroke-linejoin="%s"`, style.Join)
		} else if !Equal(style.MiterLimit, 4.0) {
			fmt.Fprintf(b, ` stroke-miterlimit="%v"`, num(style.MiterLimit))
		}
		if style.IsDashed() {
			b.WriteString(` stroke-dasharray="`)
			for i, d := range style.Dashes {
				if 0 < i {
					b.WriteByte(' ')
				}
				fmt.Fprintf(b, "%v", num(d))
			}
			b.WriteByte('"')
			if style.DashOffset != 0.0 {
				fmt.Fprintf(b, ` stroke-dashoffset="%v"`, num(style.DashOffset))
			}
		}
	}
	if !Equal(style.Opacity, 1.0) {
		fmt.Fprintf(b, ` opacity="%v"`, num(style.Opacity))
	}
}

// WriteSVG writes the paths as a standalone SVG document of the given size in user units. Gradient and texture paints are written to a defs section, invisible paths are skipped.
func WriteSVG(w io.Writer, width, height float64, paths ...*Path) error {
	var defs strings.Builder
	fillRefs := make([]string, len(paths))
	strokeRefs := make([]string, len(paths))
	n := 0
	for i, p := range paths {
		if !p.Visible {
			continue
		}
		if p.Fill.IsGradient() || p.Fill.IsTexture() {
			fillRefs[i] = fmt.Sprintf("paint%d", n)
			n++
			if err := writeSVGPaintDef(&defs, fillRefs[i], p.Fill); err != nil {
				return err
			}
		}
		if p.Stroke.IsGradient() || p.Stroke.IsTexture() {
			strokeRefs[i] = fmt.Sprintf("paint%d", n)
			n++
			if err := writeSVGPaintDef(&defs, strokeRefs[i], p.Stroke); err != nil {
				return err
			}
		}
	}

	b := strings.Builder{}
	fmt.Fprintf(&b, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, num(width), num(height), num(width), num(height))
	if 0 < defs.Len() {
		b.WriteString("<defs>")
		b.WriteString(defs.String())
		b.WriteString("</defs>")
	}
	for i, p := range paths {
		if !p.Visible || p.Empty() {
			continue
		}
		b.WriteString(`<path d="`)
		b.WriteString(p.ToSVG())
		b.WriteByte('"')
		p.Style.writeSVGAttrs(&b, fillRefs[i], strokeRefs[i])
		b.WriteString("/>")
	}
	b.WriteString("</svg>")
	_, err := io.WriteString(w, b.String())
	return err
}

////////////////////////////////////////////////////////////////

// SVG is a parsed SVG document, holding its size in user units and the styled paths it contains.
type SVG struct {
	Width  float64
	Height float64
	Paths  []*Path
}

type svgState struct {
	style Style
	m     Matrix
}

type svgParser struct {
	z   *parse.Input
	err error

	width, height, diagonal float64
	seen                    bool

	stack []svgState
	out   *SVG

	defs      map[string]Gradient
	grad      Gradient
	gradStops *Stops
	gradID    string

	styles          map[string][]string
	stylesSelectors []string

	instyle bool
	tags    []string
	classes [][]string
}

func (svg *svgParser) state() *svgState {
	return &svg.stack[len(svg.stack)-1]
}

func (svg *svgParser) parseDimension(v string, parent float64) float64 {
	if len(v) == 0 {
		return 0.0
	}

	nn, _ := parse.Dimension([]byte(v))
	f, err := strconv.ParseFloat(v[:nn], 64)
	if err != nil {
		if svg.err == nil {
			svg.err = parse.NewErrorLexer(svg.z, "bad dimension: %v: %s", err, v)
		}
		return 0.0
	}

	dim := v[nn:]
	switch strings.ToLower(dim) {
	case "cm":
		return f * 10.0 * 96.0 / 25.4
	case "mm":
		return f * 96.0 / 25.4
	case "q":
		return f * 0.25 * 96.0 / 25.4
	case "in":
		return f * 96.0
	case "pc":
		return f * 96.0 / 6.0
	case "pt":
		return f * 96.0 / 72.0
	case "", "px":
		return f
	case "%":
		return f * parent / 100.0
	}
	if svg.err == nil {
		svg.err = parse.NewErrorLexer(svg.z, "unknown dimension: %s", dim)
	}
	return 0.0
}

func (svg *svgParser) parseColorComponent(v string) uint8 {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return 0
	} else if v[len(v)-1] == '%' {
		f, err := strconv.ParseFloat(v[:len(v)-1], 64)
		if err != nil && svg.err == nil {
			svg.err = parse.NewErrorLexer(svg.z, "bad color component: %v: %s", err, v)
		}
		return uint8(f*255.0/100.0 + 0.5)
	}
	f, err := strconv.ParseUint(v, 10, 8)
	if err != nil && svg.err == nil {
		svg.err = parse.NewErrorLexer(svg.z, "bad color component: %v: %s", err, v)
	}
	return uint8(f)
}

func (svg *svgParser) parsePaint(v string) Paint {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return Paint{Color: Black}
	} else if v == "none" {
		return Paint{}
	} else if v[0] == '#' {
		return Paint{Color: Hex(v)}
	}
	v = strings.ToLower(v)
	if strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")") {
		id := strings.Trim(v[4:len(v)-1], "'\" ")
		id = strings.TrimPrefix(id, "#")
		if g, ok := svg.defs[id]; ok {
			return Paint{Gradient: g}
		}
		if svg.err == nil {
			svg.err = parse.NewErrorLexer(svg.z, "unknown paint reference: %s", v)
		}
		return Paint{}
	}
	if col, ok := colornames.Map[v]; ok {
		return Paint{Color: col}
	}
	var col color.RGBA
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		comps := strings.Split(v[4:len(v)-1], ",")
		if len(comps) != 3 {
			if svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad rgb function")
			}
			return Paint{Color: Black}
		}
		col.R = svg.parseColorComponent(comps[0])
		col.G = svg.parseColorComponent(comps[1])
		col.B = svg.parseColorComponent(comps[2])
		col.A = 255
	} else if strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")") {
		comps := strings.Split(v[5:len(v)-1], ",")
		if len(comps) != 4 {
			if svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad rgba function")
			}
			return Paint{Color: Black}
		}
		a, err := strconv.ParseFloat(strings.TrimSpace(comps[3]), 64)
		if err != nil && svg.err == nil {
			svg.err = parse.NewErrorLexer(svg.z, "bad rgba function: %v", err)
		}
		col.A = uint8(a*255.0 + 0.5)
		col.R = uint8(float64(svg.parseColorComponent(comps[0]))*a + 0.5)
		col.G = uint8(float64(svg.parseColorComponent(comps[1]))*a + 0.5)
		col.B = uint8(float64(svg.parseColorComponent(comps[2]))*a + 0.5)
	}
	return Paint{Color: col}
}

func (svg *svgParser) parsePoints(v string) []float64 {
	v = strings.ReplaceAll(v, "\n", ",")
	v = strings.ReplaceAll(v, "\t", ",")
	v = strings.ReplaceAll(v, " ", ",")

	vals := []float64{}
	for _, item := range strings.Split(v, ",") {
		if 0 < len(item) {
			val, err := strconv.ParseFloat(item, 64)
			if err != nil && svg.err == nil {
				svg.err = parse.NewErrorLexer(svg.z, "bad number array: %v: %s", err, v)
			}
			vals = append(vals, val)
		}
	}
	return vals
}

func (svg *svgParser) parseTransform(v string) Matrix {
	i, j := 0, 0
	m := Identity
	var fun string
	for i < len(v) {
		if v[i] == '(' {
			fun = strings.ToLower(strings.TrimSpace(v[j:i]))
			j = i + 1
		} else if v[i] == ')' {
			d := svg.parsePoints(v[j:i])
			switch fun {
			case "matrix":
				if len(d) != 6 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform matrix")
				} else {
					m = m.Mul(Matrix{{d[0], d[2], d[4]}, {d[1], d[3], d[5]}})
				}
			case "translate":
				if len(d) != 1 && len(d) != 2 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform translate")
				} else if len(d) == 1 {
					m = m.Translate(d[0], 0.0)
				} else {
					m = m.Translate(d[0], d[1])
				}
			case "scale":
				if len(d) != 1 && len(d) != 2 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform scale")
				} else if len(d) == 1 {
					m = m.Scale(d[0], d[0])
				} else {
					m = m.Scale(d[0], d[1])
				}
			case "rotate":
				if len(d) != 1 && len(d) != 3 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform rotate")
				} else if len(d) == 1 {
					m = m.Rotate(d[0])
				} else {
					m = m.RotateAt(d[0], d[1], d[2])
				}
			case "skewx":
				if len(d) != 1 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform skewX")
				} else {
					m = m.Shear(math.Tan(d[0]*math.Pi/180.0), 0.0)
				}
			case "skewy":
				if len(d) != 1 {
					svg.err = parse.NewErrorLexer(svg.z, "bad transform skewY")
				} else {
					m = m.Shear(0.0, math.Tan(d[0]*math.Pi/180.0))
				}
			}
			j = i + 1
		}
		i++
	}
	return m
}

// opacityColor scales a premultiplied color by the given opacity.
func opacityColor(col color.RGBA, f float64) color.RGBA {
	if f < 0.0 {
		f = 0.0
	} else if 1.0 < f {
		f = 1.0
	}
	col.R = uint8(float64(col.R)*f + 0.5)
	col.G = uint8(float64(col.G)*f + 0.5)
	col.B = uint8(float64(col.B)*f + 0.5)
	col.A = uint8(float64(col.A)*f + 0.5)
	return col
}

func (svg *svgParser) setAttribute(key, val string) {
	st := svg.state()
	switch key {
	case "fill":
		st.style.Fill = svg.parsePaint(val)
	case "stroke":
		st.style.Stroke = svg.parsePaint(val)
	case "stroke-width":
		st.style.StrokeWidth = svg.parseDimension(val, svg.diagonal)
	case "stroke-dashoffset":
		st.style.DashOffset = svg.parseDimension(val, svg.diagonal)
	case "stroke-dasharray":
		if val == "none" {
			st.style.Dashes = nil
		} else {
			st.style.Dashes = svg.parsePoints(val)
		}
	case "stroke-linecap":
		switch val {
		case "butt":
			st.style.Cap = ButtCap
		case "round":
			st.style.Cap = RoundCap
		case "square":
			st.style.Cap = SquareCap
		}
	case "stroke-linejoin":
		switch val {
		case "miter", "miter-clip":
			st.style.Join = MiterJoin
		case "round":
			st.style.Join = RoundJoin
		case "bevel":
			st.style.Join = BevelJoin
		}
	case "stroke-miterlimit":
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			st.style.MiterLimit = f
		}
	case "opacity":
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			st.style.Opacity = f
		}
	case "fill-opacity":
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			st.style.Fill.Color = opacityColor(st.style.Fill.Color, f)
		}
	case "stroke-opacity":
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			st.style.Stroke.Color = opacityColor(st.style.Stroke.Color, f)
		}
	case "display":
		if val == "none" {
			st.style.Visible = false
		}
	case "visibility":
		if val == "hidden" || val == "collapse" {
			st.style.Visible = false
		} else if val == "visible" {
			st.style.Visible = true
		}
	case "transform":
		st.m = st.m.Mul(svg.parseTransform(val))
	}
}

// drawPath adds the path at position (x,y) to the document, styled and transformed by the current state.
func (svg *svgParser) drawPath(x, y float64, p *Path) {
	if p.Empty() {
		return
	}
	st := svg.state()
	p.Style = st.style.copy()
	p.Transform(st.m.Translate(x, y))
	svg.out.Paths = append(svg.out.Paths, p)
}

// ParseSVG parses an SVG document into its styled paths. Presentation attributes, inline and document styles, transforms and gradient definitions are applied to the paths. Text, markers, images and nested svg elements are ignored.
func ParseSVG(r io.Reader) (*SVG, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z:      z,
		out:    &SVG{},
		defs:   map[string]Gradient{},
		styles: map[string][]string{},
	}
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return svg.out, l.Err()
			} else if svg.err != nil {
				return svg.out, svg.err
			} else if !svg.seen {
				return svg.out, fmt.Errorf("expected SVG tag")
			}
			return svg.out, nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			attrNames := []string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				val = val[1 : len(val)-1]
				attrNames = append(attrNames, string(l.Text()))
				attrs[string(l.Text())] = string(val)
			}

			tag := string(data[1:])
			if tag == "svg" && !svg.seen {
				var viewbox [4]float64
				if v, ok := attrs["viewBox"]; ok {
					vals := svg.parsePoints(v)
					if len(vals) != 4 {
						svg.err = parse.NewErrorLexer(svg.z, "bad viewBox")
					} else {
						copy(viewbox[:], vals)
					}
				}
				width, height := 0.0, 0.0
				if v, ok := attrs["width"]; ok {
					width = svg.parseDimension(v, 0.0)
				} else {
					width = viewbox[2] - viewbox[0]
				}
				if v, ok := attrs["height"]; ok {
					height = svg.parseDimension(v, 0.0)
				} else {
					height = viewbox[3] - viewbox[1]
				}

				svg.width, svg.height = width, height
				svg.diagonal = math.Sqrt((width*width + height*height) / 2.0)
				svg.out.Width, svg.out.Height = width, height
				svg.seen = true

				base := svgState{style: DefaultStyle, m: Identity}
				if 0.0 < viewbox[2]-viewbox[0] && 0.0 < viewbox[3]-viewbox[1] && 0.0 < width && 0.0 < height {
					base.m = Identity.Scale(width/(viewbox[2]-viewbox[0]), height/(viewbox[3]-viewbox[1])).Translate(-viewbox[0], -viewbox[1])
				}
				svg.stack = append(svg.stack, base)
			} else if !svg.seen {
				return svg.out, fmt.Errorf("expected SVG tag")
			}

			svg.stack = append(svg.stack, *svg.state())
			svg.tags = append(svg.tags, tag)
			classes := []string{}
			if v, ok := attrs["class"]; ok {
				classes = strings.Split(v, " ")
			}
			svg.classes = append(svg.classes, classes)

			// apply document styles whose selector matches this element
			for _, s := range svg.stylesSelectors {
				if styles, ok := svg.styles[s]; ok {
					selector := strings.Split(s, " ")
					i := len(svg.tags) - 1

					for len(selector) != 0 && 0 <= i {
						parts := strings.Split(selector[len(selector)-1], ".")
						t := parts[0]
						c := ""
						if len(parts) == 2 {
							c = parts[1]
						}

						tagMatches := t == "" || t == svg.tags[i]
						classMatches := c == ""
						if !classMatches {
							for _, class := range svg.classes[i] {
								if class == c {
									classMatches = true
									break
								}
							}
						}

						if tagMatches && classMatches {
							selector = selector[:len(selector)-1]
						}
						i -= 1
					}

					if len(selector) == 0 {
						for _, style := range styles {
							values := strings.Split(style, ":")
							if len(values) == 2 {
								svg.setAttribute(values[0], values[1])
							}
						}
					}
				}
			}

			for _, key := range attrNames {
				val := attrs[key]
				if key == "style" {
					for _, item := range strings.Split(val, ";") {
						if keyVal := strings.Split(item, ":"); len(keyVal) == 2 {
							svg.setAttribute(strings.TrimSpace(keyVal[0]), strings.TrimSpace(keyVal[1]))
						}
					}
				} else {
					svg.setAttribute(key, val)
				}
			}

			dim := func(key, def string, parent float64) float64 {
				if v, ok := attrs[key]; ok {
					return svg.parseDimension(v, parent)
				}
				return svg.parseDimension(def, parent)
			}

			switch tag {
			case "circle":
				cx := svg.parseDimension(attrs["cx"], svg.width)
				cy := svg.parseDimension(attrs["cy"], svg.height)
				r := svg.parseDimension(attrs["r"], svg.diagonal)
				svg.drawPath(cx, cy, Circle(r))
			case "ellipse":
				cx := svg.parseDimension(attrs["cx"], svg.width)
				cy := svg.parseDimension(attrs["cy"], svg.height)
				rx := svg.parseDimension(attrs["rx"], svg.width)
				ry := svg.parseDimension(attrs["ry"], svg.height)
				svg.drawPath(cx, cy, Ellipse(rx, ry))
			case "path":
				ps, err := parseSVGSubpaths(attrs["d"])
				if err != nil && svg.err == nil {
					svg.err = parse.NewErrorLexer(svg.z, "%v", err)
				}
				for _, p := range ps {
					svg.drawPath(0.0, 0.0, p)
				}
			case "polygon", "polyline":
				points := svg.parsePoints(attrs["points"])
				p := NewPath()
				for i := 0; i+1 < len(points); i += 2 {
					if i == 0 {
						p.MoveTo(points[0], points[1])
					} else {
						p.LineTo(points[i], points[i+1])
					}
				}
				if tag == "polygon" {
					p.Close()
				}
				svg.drawPath(0.0, 0.0, p)
			case "line":
				x1 := svg.parseDimension(attrs["x1"], svg.width)
				y1 := svg.parseDimension(attrs["y1"], svg.height)
				x2 := svg.parseDimension(attrs["x2"], svg.width)
				y2 := svg.parseDimension(attrs["y2"], svg.height)
				p := NewPath()
				p.MoveTo(x1, y1)
				p.LineTo(x2, y2)
				svg.drawPath(0.0, 0.0, p)
			case "rect":
				x := svg.parseDimension(attrs["x"], svg.width)
				y := svg.parseDimension(attrs["y"], svg.height)
				w := svg.parseDimension(attrs["width"], svg.width)
				h := svg.parseDimension(attrs["height"], svg.height)
				svg.drawPath(x, y, Rectangle(w, h))
			case "linearGradient":
				lg := NewLinearGradient(
					Point{dim("x1", "0%", svg.width), dim("y1", "0%", svg.height)},
					Point{dim("x2", "100%", svg.width), dim("y2", "0%", svg.height)})
				svg.grad, svg.gradStops = lg, &lg.Stops
				svg.gradID = attrs["id"]
			case "radialGradient":
				c := Point{dim("cx", "50%", svg.width), dim("cy", "50%", svg.height)}
				r := dim("r", "50%", svg.diagonal)
				f := c
				if v, ok := attrs["fx"]; ok {
					f.X = svg.parseDimension(v, svg.width)
				}
				if v, ok := attrs["fy"]; ok {
					f.Y = svg.parseDimension(v, svg.height)
				}
				rg := NewRadialGradient(f, 0.0, c, r)
				svg.grad, svg.gradStops = rg, &rg.Stops
				svg.gradID = attrs["id"]
			case "stop":
				if svg.gradStops != nil {
					offset := 0.0
					if v, ok := attrs["offset"]; ok {
						if strings.HasSuffix(v, "%") {
							offset = svg.parseDimension(v, 1.0)
						} else {
							offset, _ = strconv.ParseFloat(v, 64)
						}
					}
					col := svg.parsePaint(attrs["stop-color"]).Color
					if v, ok := attrs["stop-opacity"]; ok {
						if f, err := strconv.ParseFloat(v, 64); err == nil {
							col = opacityColor(col, f)
						}
					}
					svg.gradStops.Add(offset, col)
				}
			case "style":
				svg.instyle = true
			}

			if tt == xml.StartTagCloseVoidToken {
				if 1 < len(svg.stack) {
					svg.stack = svg.stack[:len(svg.stack)-1]
				}
				if 0 < len(svg.tags) {
					svg.tags = svg.tags[:len(svg.tags)-1]
					svg.classes = svg.classes[:len(svg.classes)-1]
				}
			}
		case xml.TextToken:
			if svg.instyle {
				parser := css.NewParser(parse.NewInputString(string(data)), false)
				selectors := []string{}
				styles := []string{}
				for {
					gt, _, data := parser.Next()
					if gt == css.QualifiedRuleGrammar || gt == css.BeginRulesetGrammar {
						selector := []string{}
						for _, v := range parser.Values() {
							if v.TokenType == css.DelimToken || v.TokenType == css.IdentToken {
								selector = append(selector, string(v.Data))
							} else if v.TokenType == css.WhitespaceToken {
								selector = append(selector, " ")
							}
						}
						if len(selector) != 0 {
							selectors = append(selectors, strings.Join(selector, ""))
						}
					}

					if gt == css.DeclarationGrammar {
						values := ""
						for _, value := range parser.Values() {
							values += string(value.Data)
						}
						styles = append(styles, fmt.Sprintf("%s:%s", string(data), values))
					}

					if gt == css.ErrorGrammar || gt == css.EndRulesetGrammar {
						for _, sel := range selectors {
							svg.styles[sel] = styles
							svg.stylesSelectors = append(svg.stylesSelectors, sel)
						}
						selectors = []string{}
						styles = []string{}
					}

					if gt == css.ErrorGrammar {
						break
					}
				}
			}
		case xml.EndTagToken:
			if 1 < len(svg.stack) {
				svg.stack = svg.stack[:len(svg.stack)-1]
			}
			if 0 < len(svg.tags) {
				svg.tags = svg.tags[:len(svg.tags)-1]
				svg.classes = svg.classes[:len(svg.classes)-1]
			}
			svg.instyle = false

			tag := string(data[2 : len(data)-1])
			if tag == "linearGradient" || tag == "radialGradient" {
				if svg.grad != nil && svg.gradID != "" {
					svg.defs[svg.gradID] = svg.grad
				}
				svg.grad, svg.gradStops, svg.gradID = nil, nil, ""
			}
		}
	}
}

// parseSVGSubpaths parses SVG path data that may contain multiple subpaths, returning one path per subpath.
func parseSVGSubpaths(d string) ([]*Path, error) {
	starts := []int{}
	for i := 0; i < len(d); i++ {
		if d[i] == 'M' || d[i] == 'm' {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 || skipCommaWhitespace([]byte(d)) < starts[0] {
		// no or a malformed leading moveto, let ParseSVGPath report it
		p, err := ParseSVGPath(d)
		if err != nil {
			return nil, err
		} else if p.Empty() {
			return nil, nil
		}
		return []*Path{p}, nil
	}

	paths := make([]*Path, 0, len(starts))
	var pos Point
	for k, start := range starts {
		end := len(d)
		if k+1 < len(starts) {
			end = starts[k+1]
		}
		piece := d[start:end]
		if d[start] == 'm' && 0 < k {
			// a relative moveto continues from the previous subpath's endpoint
			var f [2]float64
			n, err := parseNums([]byte(piece[1:]), f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, start+n+2)
			}
			piece = fmt.Sprintf("M%v %v%s", pos.X+f[0], pos.Y+f[1], piece[1+n:])
		}

		p, err := ParseSVGPath(piece)
		if err != nil {
			return nil, err
		} else if p.Empty() {
			continue
		}
		if p.closed {
			pos = p.Vertex(0).Position
		} else {
			pos = p.Pos()
		}
		paths = append(paths, p)
	}
	return paths, nil
}
