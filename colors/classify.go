package colors

import (
	"fmt"
	"math"
)

// Lightness bounds outside of which a color is reported as plain White or Black.
const (
	whiteLightness = 97
	blackLightness = 3
)

// Match is the nearest reference entry for a sampled color.
type Match struct {
	NamedColor
	Distance float64 `json:"distance"`
}

type labEntry struct {
	named NamedColor
	lab   Lab
}

// Classifier names colors by nearest neighbour in Lab space. The reference
// table is converted once at construction and never modified afterwards.
type Classifier struct {
	entries []labEntry
}

var defaultClassifier = mustClassifier(NamedColors)

// NewClassifier converts table to Lab. It fails only on a malformed hex entry.
func NewClassifier(table []NamedColor) (*Classifier, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("classifier table is empty")
	}

	entries := make([]labEntry, 0, len(table))
	for _, nc := range table {
		rgb, err := HexToRGB(nc.Hex)
		if err != nil {
			return nil, fmt.Errorf("reference color %q: %w", nc.Name, err)
		}
		entries = append(entries, labEntry{
			named: nc,
			lab:   RGBToLab(rgb.R, rgb.G, rgb.B),
		})
	}

	return &Classifier{entries: entries}, nil
}

func mustClassifier(table []NamedColor) *Classifier {
	c, err := NewClassifier(table)
	if err != nil {
		panic(err)
	}
	return c
}

// Nearest returns the reference entry closest to (r,g,b) by ΔE76, without the
// lightness override. The first entry wins ties.
func (c *Classifier) Nearest(r, g, b int) Match {
	target := RGBToLab(r, g, b)

	best := Match{Distance: math.Inf(1)}
	for _, e := range c.entries {
		d := target.DeltaE76(e.lab)
		if d < best.Distance {
			best = Match{NamedColor: e.named, Distance: d}
		}
	}
	return best
}

// Classify returns the human readable name of (r,g,b). Near-white and
// near-black lightness overrides the nearest neighbour.
func (c *Classifier) Classify(r, g, b int) string {
	name := c.Nearest(r, g, b).Name

	l := RGBToHSL(r, g, b).L
	if l > whiteLightness {
		return "White"
	}
	if l < blackLightness {
		return "Black"
	}
	return name
}

// Classify names (r,g,b) using the built-in reference table.
func Classify(r, g, b int) string {
	return defaultClassifier.Classify(r, g, b)
}

// Nearest returns the built-in reference entry closest to (r,g,b).
func Nearest(r, g, b int) Match {
	return defaultClassifier.Nearest(r, g, b)
}
