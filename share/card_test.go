package share

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"strings"
	"testing"

	"github.com/colorsense/api/colors"
)

func TestRenderCardLayout(t *testing.T) {
	teal := colors.Detect(colors.RGB{G: 128, B: 128})
	card := RenderCard(teal, "a note")

	if b := card.Bounds(); b.Dx() != CardWidth || b.Dy() != CardHeight {
		t.Fatalf("bounds = %v", b)
	}
	if got := card.RGBAAt(5, 5); got != cardBackground {
		t.Errorf("background = %v", got)
	}
	if got := card.RGBAAt(200, 200); got != (color.RGBA{0, 128, 128, 255}) {
		t.Errorf("swatch centre = %v", got)
	}
	if got := card.RGBAAt(swatchX-1, swatchY+10); got != swatchBorder {
		t.Errorf("border = %v", got)
	}

	inked := false
	for x := textX; x < CardWidth && !inked; x++ {
		for y := 90; y < 125; y++ {
			if card.RGBAAt(x, y) != cardBackground {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("color name was not drawn")
	}
}

func TestWriteCardIsPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCard(&buf, colors.Detect(colors.RGB{R: 255}), ""); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != CardWidth {
		t.Errorf("width = %d", img.Bounds().Dx())
	}
}

func TestWrap(t *testing.T) {
	if got := wrap("", 100, 1); got != nil {
		t.Errorf("wrap(empty) = %v", got)
	}
	lines := wrap("one two three four five six seven eight nine ten", 70, 1)
	if len(lines) < 2 {
		t.Fatalf("expected several lines, got %v", lines)
	}
	for _, l := range lines {
		if textWidth(l, 1) > 70 && len(bytes.Fields([]byte(l))) > 1 {
			t.Errorf("line %q is %dpx wide", l, textWidth(l, 1))
		}
	}
	word := "supercalifragilisticexpialidocious"
	lines = wrap("a "+word, 70, 1)
	if lines[0] != "a" || strings.Join(lines[1:], "") != word {
		t.Errorf("long word split = %q", lines)
	}
	for _, l := range lines {
		if textWidth(l, 1) > 70 {
			t.Errorf("line %q is %dpx wide", l, textWidth(l, 1))
		}
	}
	if got := wrap("héllo", 1, 1); strings.Join(got, "") != "héllo" || len(got) != 5 {
		t.Errorf("narrow wrap = %q", got)
	}
}

func TestDrawTextClipsToCard(t *testing.T) {
	card := image.NewRGBA(image.Rect(0, 0, 100, 40))
	drawText(card, strings.Repeat("W", 1000), 50, 20, 2, textDark)
	if got := fit(strings.Repeat("W", 1000), 50, 2); got != 3 {
		t.Errorf("fit = %d, want 3", got)
	}
}

func TestRenderCardLongTextAllocations(t *testing.T) {
	info := colors.Detect(colors.RGB{R: 255})
	allocated := func(message string) uint64 {
		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)
		RenderCard(info, message)
		runtime.ReadMemStats(&after)
		return after.TotalAlloc - before.TotalAlloc
	}

	short := allocated("a short note")
	long := allocated(strings.Repeat("x", 200_000))
	spaced := allocated(strings.Repeat("word ", 40_000))
	for name, got := range map[string]uint64{"one word": long, "many words": spaced} {
		if got > 2*short+(1<<20) {
			t.Errorf("%s: rendering allocated %d bytes, short message %d", name, got, short)
		}
	}
}
