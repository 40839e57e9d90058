package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/vgpath/vgpath"
)

type InfoOptions struct {
	Resolution int  `short:"r" default:"12" desc:"Curve subdivisions per segment for length estimates"`
	JSON       bool `desc:"Output the path as JSON"`
}

type PointOptions struct {
	T          float64 `short:"t" default:"0.5" desc:"Arc length fraction along the path"`
	Resolution int     `short:"r" default:"12" desc:"Curve subdivisions per segment for length estimates"`
}

type TrimOptions struct {
	Begin  float64 `short:"b" default:"0" desc:"Window begin as a fraction of the arc length"`
	End    float64 `short:"e" default:"1" desc:"Window end as a fraction of the arc length"`
	Output string  `short:"o" desc:"Output SVG filename, prints path data when empty"`
}

type ViewOptions struct {
	Begin  float64 `short:"b" default:"0" desc:"Window begin as a fraction of the arc length"`
	End    float64 `short:"e" default:"1" desc:"Window end as a fraction of the arc length"`
	Output string  `short:"o" desc:"Output SVG filename, a temporary file when empty"`
}

var (
	infoOptions  InfoOptions
	pointOptions PointOptions
	trimOptions  TrimOptions
	viewOptions  ViewOptions
)

func main() {
	root := argp.New("Toolkit for SVG path geometry")
	info := root.AddCommand(info, "info", "Show the vertices, length and bounds of a path")
	info.AddStruct(&infoOptions)

	point := root.AddCommand(point, "point", "Evaluate the point at an arc length fraction")
	point.AddStruct(&pointOptions)

	trim := root.AddCommand(trim, "trim", "Apply an arc length window to a path")
	trim.AddStruct(&trimOptions)

	view := root.AddCommand(view, "view", "Render a path to SVG and open it in the browser")
	view.AddStruct(&viewOptions)

	root.Parse()
	root.PrintHelp()
}

// loadPaths reads the paths from an SVG file, or parses the argument as SVG path data.
func loadPaths(arg string) ([]*vgpath.Path, error) {
	if _, err := os.Stat(arg); err == nil {
		f, err := os.Open(arg)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		svg, err := vgpath.ParseSVG(f)
		if err != nil {
			return nil, err
		}
		if len(svg.Paths) == 0 {
			return nil, fmt.Errorf("no paths in %s", arg)
		}
		return svg.Paths, nil
	}

	p, err := vgpath.ParseSVGPath(arg)
	if err != nil {
		return nil, err
	}
	return []*vgpath.Path{p}, nil
}

// writeDocument writes the paths to an SVG file sized to their combined bounds.
func writeDocument(filename string, paths []*vgpath.Path) error {
	var bounds vgpath.Rect
	for i, p := range paths {
		if i == 0 {
			bounds = p.Bounds(vgpath.Identity)
		} else {
			bounds = bounds.Add(p.Bounds(vgpath.Identity))
		}
	}
	for _, p := range paths {
		p.Translate(-bounds.X, -bounds.Y)
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := vgpath.WriteSVG(f, bounds.W, bounds.H, paths...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func info(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass SVG path data or an SVG file")
	}

	paths, err := loadPaths(args[0])
	if err != nil {
		return err
	}

	for i, p := range paths {
		p.SetResolution(infoOptions.Resolution)
		if infoOptions.JSON {
			b, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			continue
		}

		fmt.Printf("Path %d: %s\n", i, p)
		fmt.Printf("  vertices: %d  closed: %v\n", p.Len(), p.Closed())
		fmt.Printf("  length: %g\n", p.Length())
		fmt.Printf("  bounds: %v\n", p.Bounds(vgpath.Identity))
		for j, a := range p.Vertices() {
			fmt.Printf("  %2d  %v\n", j, a)
		}
	}
	return nil
}

func point(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass SVG path data or an SVG file")
	}

	paths, err := loadPaths(args[0])
	if err != nil {
		return err
	}

	for _, p := range paths {
		p.SetResolution(pointOptions.Resolution)
		fmt.Println(p.PointAt(pointOptions.T, nil))
	}
	return nil
}

func trim(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass SVG path data or an SVG file")
	}

	paths, err := loadPaths(args[0])
	if err != nil {
		return err
	}
	for _, p := range paths {
		p.SetWindow(trimOptions.Begin, trimOptions.End)
	}

	if trimOptions.Output == "" {
		for _, p := range paths {
			fmt.Println(p.ToSVG())
		}
		return nil
	}
	return writeDocument(trimOptions.Output, paths)
}

func view(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("must pass SVG path data or an SVG file")
	}

	paths, err := loadPaths(args[0])
	if err != nil {
		return err
	}
	for _, p := range paths {
		p.SetWindow(viewOptions.Begin, viewOptions.End)
		if !p.HasStroke() && !p.HasFill() {
			p.SetStrokeColor(vgpath.Black)
		}
	}

	filename := viewOptions.Output
	if filename == "" {
		f, err := os.CreateTemp("", "pathinfo-*.svg")
		if err != nil {
			return err
		}
		filename = f.Name()
		f.Close()
	}

	if err := writeDocument(filename, paths); err != nil {
		return err
	}
	return browser.OpenFile(filename)
}
