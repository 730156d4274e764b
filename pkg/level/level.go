// Package level holds the level data model and the level pack loader.
//
// A level pack is a JavaScript file evaluated with goja. The script must
// leave a global `levels` array behind. Each entry lists spools,
// isolators and blocks as [x, y, radius] triples and the start, finish
// and end terminals as [x, y] pairs. An optional `hint` array of strings
// is shown while the level is played.
package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Playfield size in world units.
const (
	Width  = 1280
	Height = 720
)

var (
	// ErrInvalid is wrapped by every validation failure.
	ErrInvalid = errors.New("invalid level")
	// ErrNoLevels is returned for a pack without levels.
	ErrNoLevels = errors.New("level pack has no levels")
)

// Point is a position, encoded as [x, y].
type Point struct {
	X, Y float64
}

func (p *Point) UnmarshalJSON(b []byte) error {
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("point needs 2 numbers, got %d", len(v))
	}
	p.X, p.Y = v[0], v[1]
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// Circle is a round element, encoded as [x, y, radius].
type Circle struct {
	X, Y, R float64
}

func (c *Circle) UnmarshalJSON(b []byte) error {
	var v []float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if len(v) != 3 {
		return fmt.Errorf("circle needs 3 numbers, got %d", len(v))
	}
	c.X, c.Y, c.R = v[0], v[1], v[2]
	return nil
}

func (c Circle) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.X, c.Y, c.R})
}

// Level is one puzzle.
type Level struct {
	Name      string   `json:"name,omitempty"`
	Spools    []Circle `json:"spools"`
	Isolators []Circle `json:"isolators"`
	Blocks    []Circle `json:"blocks"`
	Start     Point    `json:"start"`
	Finish    Point    `json:"finish"`
	End       Point    `json:"end"`
	Hint      []string `json:"hint,omitempty"`
}

// Validate checks that every element is finite, inside the playfield
// and has a positive radius.
func (l *Level) Validate() error {
	for _, g := range []struct {
		name    string
		circles []Circle
	}{
		{"spool", l.Spools},
		{"isolator", l.Isolators},
		{"block", l.Blocks},
	} {
		for i, c := range g.circles {
			if !finite(c.X, c.Y, c.R) {
				return fmt.Errorf("%w: %s %d is not finite", ErrInvalid, g.name, i)
			}
			if c.R <= 0 {
				return fmt.Errorf("%w: %s %d has radius %g", ErrInvalid, g.name, i, c.R)
			}
			if !inside(c.X, c.Y) {
				return fmt.Errorf("%w: %s %d at (%g,%g) is outside the playfield", ErrInvalid, g.name, i, c.X, c.Y)
			}
		}
	}
	for _, t := range []struct {
		name string
		p    Point
	}{
		{"start", l.Start},
		{"finish", l.Finish},
		{"end", l.End},
	} {
		if !finite(t.p.X, t.p.Y) || !inside(t.p.X, t.p.Y) {
			return fmt.Errorf("%w: %s (%g,%g) is outside the playfield", ErrInvalid, t.name, t.p.X, t.p.Y)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func inside(x, y float64) bool {
	return x >= 0 && x <= Width && y >= 0 && y <= Height
}
