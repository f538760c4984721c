package colors

import (
	"fmt"
	"strings"
)

// Scheme is a color harmony rule.
type Scheme string

const (
	Complementary Scheme = "complementary"
	Triadic       Scheme = "triadic"
	Analogous     Scheme = "analogous"
	Monochromatic Scheme = "monochromatic"
	Tetradic      Scheme = "tetradic"
)

// Schemes lists every supported scheme in presentation order.
var Schemes = []Scheme{Complementary, Triadic, Analogous, Monochromatic, Tetradic}

// Label returns the entry type used for colors derived by s.
func (s Scheme) Label() string {
	switch s {
	case Complementary:
		return "Complementary"
	case Triadic:
		return "Triadic"
	case Analogous:
		return "Analogous"
	case Monochromatic:
		return "Monochromatic"
	case Tetradic:
		return "Tetradic"
	}
	return string(s)
}

// BaseType is the entry type of the input color inside a palette.
const BaseType = "Base"

// Monochromatic variant limits, in percent.
const (
	monoShift    = 30
	monoMinLight = 10
	monoMaxLight = 90
	monoDesat    = 20
	monoMinSat   = 10
)

// PaletteColor is one entry of a generated palette.
type PaletteColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
	Type string `json:"type"`
	HSL  HSL    `json:"hsl"`
}

// ParseScheme accepts a scheme name case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	s := Scheme(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Schemes {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown palette scheme %q", name)
}

// GeneratePalette derives the companion colors of base for scheme. The order
// of the result is significant and stable.
func GeneratePalette(base RGB, scheme Scheme) ([]PaletteColor, error) {
	base = NewRGB(base.R, base.G, base.B)
	hsl := base.HSL()
	baseEntry := PaletteColor{
		Hex:  base.Hex(),
		Name: Classify(base.R, base.G, base.B),
		Type: BaseType,
		HSL:  hsl,
	}
	label := scheme.Label()

	switch scheme {
	case Complementary:
		return []PaletteColor{
			baseEntry,
			derive(rotate(hsl, 180), "Complement", label),
		}, nil

	case Triadic:
		return []PaletteColor{
			baseEntry,
			derive(rotate(hsl, 120), "Triadic 1", label),
			derive(rotate(hsl, 240), "Triadic 2", label),
		}, nil

	case Analogous:
		return []PaletteColor{
			derive(rotate(hsl, -30), "Analogous 1", label),
			baseEntry,
			derive(rotate(hsl, 30), "Analogous 2", label),
		}, nil

	case Monochromatic:
		dark := hsl
		dark.L = floorAt(hsl.L-monoShift, monoMinLight, hsl.L)
		light := hsl
		light.L = capAt(hsl.L+monoShift, monoMaxLight, hsl.L)
		muted := hsl
		muted.S = floorAt(hsl.S-monoDesat, monoMinSat, hsl.S)
		return []PaletteColor{
			derive(dark, "Dark", label),
			baseEntry,
			derive(light, "Light", label),
			derive(muted, "Muted", label),
		}, nil

	case Tetradic:
		return []PaletteColor{
			baseEntry,
			derive(rotate(hsl, 90), "Square 1", label),
			derive(rotate(hsl, 180), "Square 2", label),
			derive(rotate(hsl, 270), "Square 3", label),
		}, nil
	}

	return nil, fmt.Errorf("unknown palette scheme %q", scheme)
}

func derive(hsl HSL, name, label string) PaletteColor {
	hsl.S = clampInt(hsl.S, 0, 100)
	hsl.L = clampInt(hsl.L, 0, 100)
	return PaletteColor{
		Hex:  hsl.RGB().Hex(),
		Name: name,
		Type: label,
		HSL:  hsl,
	}
}

func rotate(hsl HSL, degrees int) HSL {
	hsl.H = ((hsl.H+degrees)%360 + 360) % 360
	return hsl
}

// floorAt keeps v at or above lo, but never returns more than orig.
func floorAt(v, lo, orig int) int {
	if v >= lo {
		return v
	}
	if orig < lo {
		return orig
	}
	return lo
}

// capAt keeps v at or below hi, but never returns less than orig.
func capAt(v, hi, orig int) int {
	if v <= hi {
		return v
	}
	if orig > hi {
		return orig
	}
	return hi
}
