package colors_test

import (
	"errors"
	"math"
	"testing"

	"github.com/colorsense/api/colors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{255, 255, 255, "White"},
		{0, 0, 0, "Black"},
		{255, 0, 0, "Red"},
		{0, 0, 255, "Blue"},
		{0, 128, 128, "Teal"},
		{255, 165, 0, "Orange"},
		{1, 1, 1, "Black"},
		{250, 250, 250, "White"},
	}
	for _, test := range tests {
		if got := colors.Classify(test.r, test.g, test.b); got != test.want {
			t.Errorf("Classify(%d,%d,%d) = %q, want %q", test.r, test.g, test.b, got, test.want)
		}
	}
}

func TestClassifyLightnessOverride(t *testing.T) {
	// Snow is an exact table entry but is light enough to be reported as White.
	if got := colors.Nearest(255, 250, 250).Name; got != "Snow" {
		t.Fatalf("Nearest(255,250,250) = %q, want Snow", got)
	}
	if got := colors.Classify(255, 250, 250); got != "White" {
		t.Errorf("Classify(255,250,250) = %q, want White", got)
	}
}

func TestNearestFindsEveryTableEntry(t *testing.T) {
	for _, nc := range colors.NamedColors {
		rgb, err := colors.HexToRGB(nc.Hex)
		if err != nil {
			t.Fatalf("table entry %q: %v", nc.Name, err)
		}
		m := colors.Nearest(rgb.R, rgb.G, rgb.B)
		if m.Name != nc.Name || m.Distance != 0 {
			t.Errorf("Nearest(%s) = %q at %f, want %q at 0", nc.Hex, m.Name, m.Distance, nc.Name)
		}
	}
}

func TestNearestDistanceIsDeltaE76(t *testing.T) {
	m := colors.Nearest(10, 200, 30)
	ref, err := colors.HexToRGB(m.Hex)
	if err != nil {
		t.Fatal(err)
	}
	a, b := colors.RGBToLab(10, 200, 30), colors.RGBToLab(ref.R, ref.G, ref.B)
	want := math.Sqrt((a.L-b.L)*(a.L-b.L) + (a.A-b.A)*(a.A-b.A) + (a.B-b.B)*(a.B-b.B))
	if !almostEqual(m.Distance, want, 1e-9) {
		t.Errorf("distance = %f, want %f", m.Distance, want)
	}
}

func TestDeltaE76(t *testing.T) {
	a := colors.Lab{L: 50, A: 0, B: 0}
	b := colors.Lab{L: 53, A: 4, B: 0}
	if got := a.DeltaE76(b); !almostEqual(got, 5, 1e-12) {
		t.Errorf("DeltaE76 = %f, want 5", got)
	}
	if got := b.DeltaE76(b); got != 0 {
		t.Errorf("DeltaE76 to itself = %f", got)
	}
}

func TestClassifierTieBreak(t *testing.T) {
	c, err := colors.NewClassifier([]colors.NamedColor{
		{Name: "First", Hex: "#FF0000"},
		{Name: "Second", Hex: "#FF0000"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Classify(250, 5, 5); got != "First" {
		t.Errorf("tie resolved to %q, want First", got)
	}
}

func TestNewClassifierErrors(t *testing.T) {
	if _, err := colors.NewClassifier(nil); err == nil {
		t.Error("expected error for empty table")
	}
	_, err := colors.NewClassifier([]colors.NamedColor{{Name: "Bad", Hex: "#12"}})
	if !errors.Is(err, colors.ErrInvalidFormat) {
		t.Errorf("error = %v, want ErrInvalidFormat", err)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 51 {
			for b := 0; b < 256; b += 51 {
				if a, b2 := colors.Classify(r, g, b), colors.Classify(r, g, b); a != b2 {
					t.Fatalf("Classify(%d,%d,%d) not stable: %q vs %q", r, g, b, a, b2)
				}
			}
		}
	}
}

func TestDescribe(t *testing.T) {
	if got, want := colors.Describe("Red"), "A warm, energetic color often associated with passion, love, and power."; got != want {
		t.Errorf("Describe(Red) = %q", got)
	}
	if got := colors.Describe("Zorbex"); got != colors.FallbackDescription {
		t.Errorf("Describe(Zorbex) = %q", got)
	}
	if got := colors.Describe("Forest Green"); got == colors.FallbackDescription {
		t.Error("Describe(Forest Green) fell back")
	}
	if got := colors.Describe("red"); got != colors.FallbackDescription {
		t.Errorf("lookup must be exact, got %q", got)
	}
}
