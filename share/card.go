package share

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/colorsense/api/colors"
)

const (
	CardWidth  = 800
	CardHeight = 600

	swatchX    = 50
	swatchY    = 50
	swatchSize = 300
	textX      = 400
	wrapWidth  = 350
	textBottom = 520
)

var (
	cardBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	swatchBorder   = color.RGBA{0xe5, 0xe5, 0xe5, 0xff}
	textDark       = color.RGBA{0x1f, 0x29, 0x37, 0xff}
	textMuted      = color.RGBA{0x6b, 0x72, 0x80, 0xff}
	brandBlue      = color.RGBA{0x3b, 0x82, 0xf6, 0xff}
)

var face = basicfont.Face7x13

// RenderCard draws the 800x600 share card: swatch on the left, name, codes,
// description and optional message on the right, branding at the bottom.
// Name and message are cut to MaxNameLength and MaxMessageLength, and text
// that does not fit the card is dropped.
func RenderCard(info colors.ColorInfo, message string) *image.RGBA {
	info.Name = truncate(info.Name, MaxNameLength)
	message = truncate(strings.TrimSpace(message), MaxMessageLength)

	card := image.NewRGBA(image.Rect(0, 0, CardWidth, CardHeight))
	draw.Draw(card, card.Bounds(), image.NewUniform(cardBackground), image.Point{}, draw.Src)

	swatch := image.Rect(swatchX, swatchY, swatchX+swatchSize, swatchY+swatchSize)
	draw.Draw(card, swatch.Inset(-2), image.NewUniform(swatchBorder), image.Point{}, draw.Src)
	draw.Draw(card, swatch, image.NewUniform(toRGBA(info.RGB)), image.Point{}, draw.Src)

	drawText(card, info.Name, textX, 120, 4, textDark)
	drawText(card, info.Hex, textX, 170, 3, textDark)
	drawText(card, info.RGB.String(), textX, 210, 2, textDark)
	drawText(card, hslLabel(info.HSL), textX, 240, 2, textDark)

	y := 290
	for _, line := range wrap(info.Description, wrapWidth, 2) {
		if y > textBottom {
			break
		}
		drawText(card, line, textX, y, 2, textDark)
		y += 30
	}

	if message != "" {
		y += 20
		for _, line := range wrap(message, wrapWidth, 2) {
			if y > textBottom {
				break
			}
			drawText(card, line, textX, y, 2, textMuted)
			y += 25
		}
	}

	drawText(card, "ColorSense", swatchX, 550, 2, brandBlue)
	drawText(card, "AI-Powered Color Detection", swatchX, 575, 1, textMuted)
	return card
}

// WriteCard encodes the card as PNG.
func WriteCard(w io.Writer, info colors.ColorInfo, message string) error {
	return png.Encode(w, RenderCard(info, message))
}

func toRGBA(c colors.RGB) color.RGBA {
	c = colors.NewRGB(c.R, c.G, c.B)
	return color.RGBA{
		R: safecast.MustConv[uint8](c.R),
		G: safecast.MustConv[uint8](c.G),
		B: safecast.MustConv[uint8](c.B),
		A: 0xff,
	}
}

func hslLabel(h colors.HSL) string {
	return "hsl(" + strconv.Itoa(h.H) + ", " + strconv.Itoa(h.S) + "%, " + strconv.Itoa(h.L) + "%)"
}

// textWidth is the rendered width of s in pixels at the given scale.
func textWidth(s string, scale int) int {
	return font.MeasureString(face, s).Ceil() * scale
}

// fit is the byte length of the longest prefix of s no wider than width.
func fit(s string, width, scale int) int {
	var advance fixed.Int26_6
	for i, r := range s {
		a, _ := face.GlyphAdvance(r)
		advance += a
		if advance.Ceil()*scale > width {
			return i
		}
	}
	return len(s)
}

// truncate keeps the first runes runes of s.
func truncate(s string, runes int) string {
	i := 0
	for n := 0; i < len(s) && n < runes; n++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// wrap breaks text into lines no wider than width. Words wider than width
// are split across lines.
func wrap(text string, width, scale int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		for textWidth(word, scale) > width {
			n := fit(word, width, scale)
			if n == 0 {
				_, n = utf8.DecodeRuneInString(word)
			}
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:n])
			word = word[n:]
		}
		if word == "" {
			continue
		}
		if line == "" {
			line = word
			continue
		}
		if candidate := line + " " + word; textWidth(candidate, scale) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// drawText renders s with its baseline at (x, y), magnified by scale. Text
// past the right edge of dst is not drawn.
func drawText(dst draw.Image, s string, x, y, scale int, c color.Color) {
	s = s[:fit(s, dst.Bounds().Max.X-x, scale)]
	if s == "" {
		return
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := metrics.Height.Ceil()
	width := font.MeasureString(face, s).Ceil()

	glyphs := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	top := y - ascent*scale
	target := image.Rect(x, top, x+width*scale, top+height*scale)
	draw.NearestNeighbor.Scale(dst, target, glyphs, glyphs.Bounds(), draw.Over, nil)
}
