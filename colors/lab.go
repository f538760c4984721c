package colors

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// Lab is a CIE L*a*b* coordinate.
type Lab struct {
	L, A, B float64
}

// DeltaE76 is the Euclidean distance between two Lab coordinates.
func (c Lab) DeltaE76(o Lab) float64 {
	return floats.Distance(c.vec(), o.vec(), 2)
}

func (c Lab) vec() []float64 {
	return []float64{c.L, c.A, c.B}
}

// RGBToLab converts an sRGB triple to CIE Lab under D65.
func RGBToLab(r, g, b int) Lab {
	x, y, z := rgbToXYZ(r, g, b)

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func rgbToXYZ(r, g, b int) (x, y, z float64) {
	rl := srgbToLinear(r)
	gl := srgbToLinear(g)
	bl := srgbToLinear(b)

	x = rl*0.4124564 + gl*0.3575761 + bl*0.1804375
	y = rl*0.2126729 + gl*0.7151522 + bl*0.0721750
	z = rl*0.0193339 + gl*0.1191920 + bl*0.9503041
	return x, y, z
}

func srgbToLinear(c int) float64 {
	cs := float64(clampChannel(c)) / 255
	if cs <= 0.04045 {
		return cs / 12.92
	}
	return math.Pow((cs+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}
