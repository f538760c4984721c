package assistant

import (
	"math"

	"github.com/colorsense/api/colors"
)

// WCAG 2.0 minimum ratios for normal text.
const (
	MinContrastAA  = 4.5
	MinContrastAAA = 7.0
)

// PerceivedLuminance is the quick brightness estimate used to choose text color, in [0,1].
func PerceivedLuminance(c colors.RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// RelativeLuminance follows https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func RelativeLuminance(c colors.RGB) float64 {
	return 0.2126*gammaCorrect(c.R) + 0.7152*gammaCorrect(c.G) + 0.0722*gammaCorrect(c.B)
}

func gammaCorrect(channel int) float64 {
	v := float64(channel) / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio is in [1, 21] and symmetric in its arguments.
func ContrastRatio(a, b colors.RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// WCAGLevel names the highest level a ratio passes for normal text.
func WCAGLevel(ratio float64) string {
	switch {
	case ratio >= MinContrastAAA:
		return "AAA"
	case ratio >= MinContrastAA:
		return "AA"
	}
	return "fails AA"
}
