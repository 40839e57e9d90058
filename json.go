package vgpath

import (
	"encoding/json"
	"fmt"
)

// MarshalText returns the command name.
func (cmd Command) MarshalText() ([]byte, error) {
	s := cmd.String()
	if s == "?" {
		return nil, fmt.Errorf("unknown command %d", uint8(cmd))
	}
	return []byte(s), nil
}

// UnmarshalText parses a command name.
func (cmd *Command) UnmarshalText(text []byte) error {
	switch string(text) {
	case "move":
		*cmd = MoveCmd
	case "line":
		*cmd = LineCmd
	case "curve":
		*cmd = CurveCmd
	case "close":
		*cmd = CloseCmd
	default:
		return fmt.Errorf("unknown command %q", text)
	}
	return nil
}

type pathJSON struct {
	Vertices  []*Anchor `json:"vertices"`
	Closed    bool      `json:"closed"`
	Curved    bool      `json:"curved"`
	Automatic bool      `json:"automatic"`
	Beginning float64   `json:"beginning"`
	Ending    float64   `json:"ending"`
}

// MarshalJSON encodes the authored vertices and path flags, not the derived render state.
func (p *Path) MarshalJSON() ([]byte, error) {
	return json.Marshal(pathJSON{
		Vertices:  p.vertices,
		Closed:    p.closed,
		Curved:    p.curved,
		Automatic: p.automatic,
		Beginning: p.beginning,
		Ending:    p.ending,
	})
}

// UnmarshalJSON replaces the path's vertices and flags and marks it dirty. A path decoded from scratch gets the default style.
func (p *Path) UnmarshalJSON(data []byte) error {
	v := pathJSON{Ending: 1.0}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	for _, a := range v.Vertices {
		if a == nil {
			return fmt.Errorf("null vertex")
		}
	}

	if len(p.vertices) == 0 && !p.Visible {
		p.Style = DefaultStyle
	}
	p.vertices = v.Vertices
	p.closed = v.Closed
	p.curved = v.Curved
	p.automatic = v.Automatic
	p.beginning = v.Beginning
	p.ending = v.Ending
	p.markDirty(true)
	return nil
}
