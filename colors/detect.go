package colors

import (
	"image"

	"fortio.org/safecast"
)

// DefaultSampleSize is the side, in pixels, of the square averaged by SampleCenter.
const DefaultSampleSize = 10

// ColorInfo is the canonical result of a detection. It is value data: produce
// a new one for every detection instead of modifying an existing one.
type ColorInfo struct {
	Hex         string `json:"hex"`
	RGB         RGB    `json:"rgb"`
	HSL         HSL    `json:"hsl"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Detect runs the full pipeline for one sampled color.
func Detect(c RGB) ColorInfo {
	c = NewRGB(c.R, c.G, c.B)
	name := Classify(c.R, c.G, c.B)
	return ColorInfo{
		Hex:         c.Hex(),
		RGB:         c,
		HSL:         c.HSL(),
		Name:        name,
		Description: Describe(name),
	}
}

// SampleCenter averages the size x size square at the centre of img. The
// square is clipped to the image bounds and alpha is ignored.
func SampleCenter(img image.Image, size int) RGB {
	if size <= 0 {
		size = DefaultSampleSize
	}

	bounds := img.Bounds()
	cx := bounds.Min.X + bounds.Dx()/2
	cy := bounds.Min.Y + bounds.Dy()/2
	half := size / 2
	area := image.Rect(cx-half, cy-half, cx-half+size, cy-half+size).Intersect(bounds)
	if area.Empty() {
		return RGB{}
	}

	var sumR, sumG, sumB, n uint64
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sumR += uint64(safecast.MustConv[uint8](r >> 8))
			sumG += uint64(safecast.MustConv[uint8](g >> 8))
			sumB += uint64(safecast.MustConv[uint8](b >> 8))
			n++
		}
	}

	return RGB{
		R: int((sumR + n/2) / n),
		G: int((sumG + n/2) / n),
		B: int((sumB + n/2) / n),
	}
}

// Detector runs detections and reports each result to a callback supplied
// at construction time.
type Detector struct {
	sampleSize int
	onDetect   func(ColorInfo)
}

// NewDetector returns a Detector. onDetect may be nil.
func NewDetector(onDetect func(ColorInfo)) *Detector {
	return &Detector{sampleSize: DefaultSampleSize, onDetect: onDetect}
}

// WithSampleSize sets the side of the averaged square for DetectImage.
func (d *Detector) WithSampleSize(size int) *Detector {
	if size > 0 {
		d.sampleSize = size
	}
	return d
}

// Detect classifies c and notifies the callback.
func (d *Detector) Detect(c RGB) ColorInfo {
	info := Detect(c)
	if d.onDetect != nil {
		d.onDetect(info)
	}
	return info
}

// DetectImage samples the centre of img and classifies it.
func (d *Detector) DetectImage(img image.Image) ColorInfo {
	return d.Detect(SampleCenter(img, d.sampleSize))
}
