package vgpath

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// parseNums parses len(buf) consecutive numbers separated by commas or whitespace.
func parseNums(path []byte, buf []float64) (int, error) {
	i := 0
	for j := range buf {
		i += skipCommaWhitespace(path[i:])
		f, n := strconv.ParseFloat(path[i:])
		if n == 0 {
			return i, fmt.Errorf("expected number")
		}
		buf[j] = f
		i += n
	}
	return i, nil
}

// parseFlag parses an SVG arc flag, which is a bare 0 or 1 and may be followed immediately by the next number.
func parseFlag(path []byte) (bool, int, error) {
	i := skipCommaWhitespace(path)
	if len(path) <= i || (path[i] != '0' && path[i] != '1') {
		return false, i, fmt.Errorf("expected flag")
	}
	return path[i] == '1', i + 1, nil
}

// MustParseSVGPath parses an SVG path data string and panics on failure.
func MustParseSVGPath(s string) *Path {
	p, err := ParseSVGPath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseSVGPath parses an SVG path data string into a path. All coordinates are made absolute, H, V, S and T commands are expanded, and quadratic beziers and elliptical arcs are converted to cubic bezier segments. The path must consist of a single subpath, so a second moveto or a command after closepath is an error.
func ParseSVGPath(s string) (*Path, error) {
	path := []byte(s)
	p := NewPath()

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // previous control point for S and T

	i := 0
	for i < len(path) {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		}
		if p.Empty() && cmd != 'M' && cmd != 'm' {
			return nil, fmt.Errorf("bad path: path should start with command 'M' or 'm'")
		} else if p.closed {
			return nil, fmt.Errorf("bad path: command after closepath at position %d", i)
		}

		x, y := p.Pos().X, p.Pos().Y
		switch cmd {
		case 'M', 'm':
			if !p.Empty() {
				return nil, fmt.Errorf("bad path: multiple subpaths at position %d", i)
			}
			var f [2]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'm' {
				f[0] += x
				f[1] += y
			}
			p.MoveTo(f[0], f[1])
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			var f [2]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'l' {
				f[0] += x
				f[1] += y
			}
			p.LineTo(f[0], f[1])
		case 'H', 'h':
			var f [1]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'h' {
				f[0] += x
			}
			p.LineTo(f[0], y)
		case 'V', 'v':
			var f [1]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'v' {
				f[0] += y
			}
			p.LineTo(x, f[0])
		case 'C', 'c':
			var f [6]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'c' {
				f[0] += x
				f[1] += y
				f[2] += x
				f[3] += y
				f[4] += x
				f[5] += y
			}
			p.CubeTo(f[0], f[1], f[2], f[3], f[4], f[5])
			cpx, cpy = f[2], f[3]
		case 'S', 's':
			var f [4]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 's' {
				f[0] += x
				f[1] += y
				f[2] += x
				f[3] += y
			}
			cx, cy := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cx, cy = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(cx, cy, f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
		case 'Q', 'q':
			var f [4]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'q' {
				f[0] += x
				f[1] += y
				f[2] += x
				f[3] += y
			}
			p.QuadTo(f[0], f[1], f[2], f[3])
			cpx, cpy = f[0], f[1]
		case 'T', 't':
			var f [2]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 't' {
				f[0] += x
				f[1] += y
			}
			cx, cy := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cx, cy = 2.0*x-cpx, 2.0*y-cpy
			}
			p.QuadTo(cx, cy, f[0], f[1])
			cpx, cpy = cx, cy
		case 'A', 'a':
			var f [3]float64
			n, err := parseNums(path[i:], f[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			large, n, err := parseFlag(path[i:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			sweep, n, err := parseFlag(path[i:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			var g [2]float64
			n, err = parseNums(path[i:], g[:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i+n+1)
			}
			i += n
			if cmd == 'a' {
				g[0] += x
				g[1] += y
			}
			p.ArcTo(f[0], f[1], f[2], large, sweep, g[0], g[1])
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}

		prevCmd = cmd
		if cmd == 'M' {
			prevCmd = 'L' // subsequent coordinate pairs are implicit linetos
		} else if cmd == 'm' {
			prevCmd = 'l'
		}
	}
	return p, nil
}
