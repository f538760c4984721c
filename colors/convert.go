// Package colors implements the color classification pipeline: conversion between
// sRGB, hex, HSL and CIE Lab, nearest named color classification, descriptions and
// harmony palettes. Everything in this package is pure and safe for concurrent use.
package colors

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex color string cannot be parsed.
var ErrInvalidFormat = errors.New("invalid hex color format")

// RGB is an sRGB triple with channels in [0,255].
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages [0,100].
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// Hex returns the uppercase #RRGGBB form of c.
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// HSL returns the rounded HSL projection of c.
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// String renders c the way CSS does, e.g. rgb(255,0,0).
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// RGB converts h back to sRGB.
func (h HSL) RGB() RGB {
	return HSLToRGB(float64(h.H), float64(h.S), float64(h.L))
}

// NewRGB builds an RGB value, clamping every channel into [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// FromFloat rounds and clamps sampled floating point channels.
func FromFloat(r, g, b float64) RGB {
	return RGB{R: roundChannel(r), G: roundChannel(g), B: roundChannel(b)}
}

// RGBToHex formats the channels as #RRGGBB. Out of range channels are clamped.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

// HexToRGB parses a 6 digit hex color with or without a leading '#'.
func HexToRGB(hex string) (RGB, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidFormat, hex)
	}
	for i := 0; i < len(h); i++ {
		if !isHexDigit(h[i]) {
			return RGB{}, fmt.Errorf("%w: %q contains non-hex character %q", ErrInvalidFormat, hex, h[i])
		}
	}

	r, _ := strconv.ParseUint(h[0:2], 16, 8)
	g, _ := strconv.ParseUint(h[2:4], 16, 8)
	b, _ := strconv.ParseUint(h[4:6], 16, 8)

	return RGB{R: int(r), G: int(g), B: int(b)}, nil
}

// RGBToHSL converts an sRGB triple to rounded HSL.
func RGBToHSL(r, g, b int) HSL {
	fR := float64(clampChannel(r)) / 255
	fG := float64(clampChannel(g)) / 255
	fB := float64(clampChannel(b)) / 255

	max := math.Max(math.Max(fR, fG), fB)
	min := math.Min(math.Min(fR, fG), fB)

	var h, s float64
	l := (max + min) / 2

	if max != min {
		d := max - min
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}

		switch max {
		case fR:
			h = (fG - fB) / d
			if fG < fB {
				h += 6
			}
		case fG:
			h = (fB-fR)/d + 2
		case fB:
			h = (fR-fG)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h*360)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HSLToRGB converts hue (degrees, any value) and saturation/lightness
// (percent, clamped to [0,100]) to sRGB.
func HSLToRGB(h, s, l float64) RGB {
	h = normalizeHue(h)
	s = clampFloat(s, 0, 100) / 100
	l = clampFloat(l, 0, 100) / 100

	a := s * math.Min(l, 1-l)
	f := func(n float64) float64 {
		k := math.Mod(n+h/30, 12)
		return l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
	}

	return FromFloat(f(0)*255, f(8)*255, f(4)*255)
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func roundChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(clampFloat(math.Round(v), 0, 255))
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
