package colors_test

import (
	"testing"

	"github.com/colorsense/api/colors"
	"github.com/google/go-cmp/cmp"
)

var red = colors.RGB{R: 255, G: 0, B: 0}

func TestGeneratePaletteRed(t *testing.T) {
	base := colors.PaletteColor{Hex: "#FF0000", Name: "Red", Type: "Base", HSL: colors.HSL{H: 0, S: 100, L: 50}}

	tests := []struct {
		scheme colors.Scheme
		want   []colors.PaletteColor
	}{
		{colors.Complementary, []colors.PaletteColor{
			base,
			{Hex: "#00FFFF", Name: "Complement", Type: "Complementary", HSL: colors.HSL{H: 180, S: 100, L: 50}},
		}},
		{colors.Triadic, []colors.PaletteColor{
			base,
			{Hex: "#00FF00", Name: "Triadic 1", Type: "Triadic", HSL: colors.HSL{H: 120, S: 100, L: 50}},
			{Hex: "#0000FF", Name: "Triadic 2", Type: "Triadic", HSL: colors.HSL{H: 240, S: 100, L: 50}},
		}},
		{colors.Analogous, []colors.PaletteColor{
			{Hex: "#FF0080", Name: "Analogous 1", Type: "Analogous", HSL: colors.HSL{H: 330, S: 100, L: 50}},
			base,
			{Hex: "#FF8000", Name: "Analogous 2", Type: "Analogous", HSL: colors.HSL{H: 30, S: 100, L: 50}},
		}},
		{colors.Tetradic, []colors.PaletteColor{
			base,
			{Hex: "#80FF00", Name: "Square 1", Type: "Tetradic", HSL: colors.HSL{H: 90, S: 100, L: 50}},
			{Hex: "#00FFFF", Name: "Square 2", Type: "Tetradic", HSL: colors.HSL{H: 180, S: 100, L: 50}},
			{Hex: "#8000FF", Name: "Square 3", Type: "Tetradic", HSL: colors.HSL{H: 270, S: 100, L: 50}},
		}},
	}

	for _, test := range tests {
		got, err := colors.GeneratePalette(red, test.scheme)
		if err != nil {
			t.Fatalf("%s: %v", test.scheme, err)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("%s palette mismatch (-want +got):\n%s", test.scheme, diff)
		}
	}
}

func TestMonochromaticRed(t *testing.T) {
	got, err := colors.GeneratePalette(red, colors.Monochromatic)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d entries, want 4", len(got))
	}

	names := []string{got[0].Name, got[1].Name, got[2].Name, got[3].Name}
	if diff := cmp.Diff([]string{"Dark", "Red", "Light", "Muted"}, names); diff != "" {
		t.Errorf("names mismatch: %s", diff)
	}
	if got[0].Hex != "#660000" || got[2].Hex != "#FF9999" {
		t.Errorf("dark/light = %s/%s, want #660000/#FF9999", got[0].Hex, got[2].Hex)
	}
	if diff := cmp.Diff(colors.HSL{H: 0, S: 80, L: 50}, got[3].HSL); diff != "" {
		t.Errorf("muted HSL mismatch: %s", diff)
	}
}

func TestMonochromaticOrdering(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				base := colors.RGB{R: r, G: g, B: b}
				p, err := colors.GeneratePalette(base, colors.Monochromatic)
				if err != nil {
					t.Fatal(err)
				}
				if len(p) != 4 {
					t.Fatalf("%v: got %d entries", base, len(p))
				}
				dark, mid, light := p[0].HSL, p[1].HSL, p[2].HSL
				for _, e := range p {
					if e.HSL.H != mid.H {
						t.Fatalf("%v: hue %d differs from base hue %d", base, e.HSL.H, mid.H)
					}
				}
				if dark.L > mid.L || mid.L > light.L {
					t.Fatalf("%v: lightness not ordered: %d %d %d", base, dark.L, mid.L, light.L)
				}
				if mid.L > 10 && dark.L == mid.L {
					t.Fatalf("%v: dark ties base without clamping", base)
				}
				if mid.L < 90 && light.L == mid.L {
					t.Fatalf("%v: light ties base without clamping", base)
				}
			}
		}
	}
}

func TestGeneratePaletteLengths(t *testing.T) {
	want := map[colors.Scheme]int{
		colors.Complementary: 2,
		colors.Triadic:       3,
		colors.Analogous:     3,
		colors.Monochromatic: 4,
		colors.Tetradic:      4,
	}
	bases := []colors.RGB{{R: 12, G: 200, B: 99}, {R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}, {R: 77, G: 77, B: 200}}
	for _, base := range bases {
		for _, scheme := range colors.Schemes {
			p, err := colors.GeneratePalette(base, scheme)
			if err != nil {
				t.Fatal(err)
			}
			if len(p) != want[scheme] {
				t.Errorf("%s for %v: got %d entries, want %d", scheme, base, len(p), want[scheme])
			}
		}
	}
}

func TestGeneratePaletteIdempotent(t *testing.T) {
	base := colors.RGB{R: 31, G: 141, B: 59}
	for _, scheme := range colors.Schemes {
		a, _ := colors.GeneratePalette(base, scheme)
		b, _ := colors.GeneratePalette(base, scheme)
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("%s not idempotent: %s", scheme, diff)
		}
	}
}

func TestParseScheme(t *testing.T) {
	s, err := colors.ParseScheme(" Triadic ")
	if err != nil || s != colors.Triadic {
		t.Errorf("ParseScheme = %q, %v", s, err)
	}
	if _, err := colors.ParseScheme("square"); err == nil {
		t.Error("expected error for unknown scheme")
	}
	if _, err := colors.GeneratePalette(red, colors.Scheme("square")); err == nil {
		t.Error("expected error from GeneratePalette for unknown scheme")
	}
}
