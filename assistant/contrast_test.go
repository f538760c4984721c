package assistant

import (
	"math"
	"testing"

	"github.com/colorsense/api/colors"
)

func TestContrastRatio(t *testing.T) {
	white := colors.RGB{R: 255, G: 255, B: 255}
	black := colors.RGB{}

	if got := ContrastRatio(black, white); math.Abs(got-21) > 1e-9 {
		t.Errorf("black/white = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1 {
		t.Errorf("white/white = %v, want 1", got)
	}

	red := colors.RGB{R: 255}
	if a, b := ContrastRatio(red, white), ContrastRatio(white, red); a != b {
		t.Errorf("not symmetric: %v vs %v", a, b)
	}
	if got := ContrastRatio(red, white); math.Abs(got-4.0) > 0.01 {
		t.Errorf("red/white = %v, want ~4.0", got)
	}
}

func TestWCAGLevel(t *testing.T) {
	tests := map[float64]string{21: "AAA", 7: "AAA", 5: "AA", 4.5: "AA", 3: "fails AA"}
	for ratio, want := range tests {
		if got := WCAGLevel(ratio); got != want {
			t.Errorf("WCAGLevel(%v) = %q, want %q", ratio, got, want)
		}
	}
}

func TestPerceivedLuminance(t *testing.T) {
	if got := PerceivedLuminance(colors.RGB{R: 255}); math.Abs(got-0.299) > 1e-9 {
		t.Errorf("red = %v", got)
	}
	if got := PerceivedLuminance(colors.RGB{R: 255, G: 255, B: 255}); math.Abs(got-1) > 1e-9 {
		t.Errorf("white = %v", got)
	}
}
