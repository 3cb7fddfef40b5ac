package pipeline

import (
	"github.com/lucasb-eyer/go-colorful"
)

// normalizeColor removes lighting and exposure bias: the image moves
// through L*a*b*, the L channel is min-max stretched to the full range,
// and the chroma channels stay untouched.
func normalizeColor(m *rgbImage) {
	n := m.w * m.h
	ls := make([]float64, n)
	as := make([]float64, n)
	bs := make([]float64, n)

	minL, maxL := 1.0, 0.0
	for i := 0; i < n; i++ {
		c := colorful.Color{
			R: float64(m.pix[i*3]) / 255,
			G: float64(m.pix[i*3+1]) / 255,
			B: float64(m.pix[i*3+2]) / 255,
		}
		l, a, b := c.Lab()
		ls[i], as[i], bs[i] = l, a, b
		if l < minL {
			minL = l
		}
		if l > maxL {
			maxL = l
		}
	}

	// A flat luma plane has nothing to stretch.
	if maxL-minL < 1e-9 {
		return
	}

	for i := 0; i < n; i++ {
		l := (ls[i] - minL) / (maxL - minL)
		c := colorful.Lab(l, as[i], bs[i]).Clamped()
		m.pix[i*3] = uint8(c.R*255 + 0.5)
		m.pix[i*3+1] = uint8(c.G*255 + 0.5)
		m.pix[i*3+2] = uint8(c.B*255 + 0.5)
	}
}
