package pipeline

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	claheClipLimit = 2.0
	claheTiles     = 8
)

// enhanceContrast applies contrast-limited adaptive histogram
// equalization to the L channel only, then folds the result back into
// RGB. Chroma is untouched so the lesion's color signature survives.
func enhanceContrast(m *rgbImage) {
	n := m.w * m.h
	lum := make([]uint8, n)
	as := make([]float64, n)
	bs := make([]float64, n)

	for i := 0; i < n; i++ {
		c := colorful.Color{
			R: float64(m.pix[i*3]) / 255,
			G: float64(m.pix[i*3+1]) / 255,
			B: float64(m.pix[i*3+2]) / 255,
		}
		l, a, b := c.Lab()
		if l < 0 {
			l = 0
		} else if l > 1 {
			l = 1
		}
		lum[i] = uint8(l*255 + 0.5)
		as[i], bs[i] = a, b
	}

	eq := claheEqualize(lum, m.w, m.h)

	for i := 0; i < n; i++ {
		c := colorful.Lab(float64(eq[i])/255, as[i], bs[i]).Clamped()
		m.pix[i*3] = uint8(c.R*255 + 0.5)
		m.pix[i*3+1] = uint8(c.G*255 + 0.5)
		m.pix[i*3+2] = uint8(c.B*255 + 0.5)
	}
}

// claheEqualize builds one clipped-histogram lookup table per tile and
// blends the four surrounding tables bilinearly at every pixel.
func claheEqualize(src []uint8, w, h int) []uint8 {
	tw := (w + claheTiles - 1) / claheTiles
	th := (h + claheTiles - 1) / claheTiles

	luts := make([][256]float64, claheTiles*claheTiles)
	for ty := 0; ty < claheTiles; ty++ {
		for tx := 0; tx < claheTiles; tx++ {
			x0, x1 := tx*tw, minInt((tx+1)*tw, w)
			y0, y1 := ty*th, minInt((ty+1)*th, h)

			var hist [256]int
			area := (x1 - x0) * (y1 - y0)
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					hist[src[y*w+x]]++
				}
			}

			// Clip the histogram and hand the excess back evenly.
			limit := int(claheClipLimit * float64(area) / 256)
			if limit < 1 {
				limit = 1
			}
			excess := 0
			for i := range hist {
				if hist[i] > limit {
					excess += hist[i] - limit
					hist[i] = limit
				}
			}
			share := excess / 256
			rest := excess % 256
			for i := range hist {
				hist[i] += share
				if i < rest {
					hist[i]++
				}
			}

			lut := &luts[ty*claheTiles+tx]
			cum := 0
			for i := 0; i < 256; i++ {
				cum += hist[i]
				lut[i] = 255 * float64(cum) / float64(area)
			}
		}
	}

	out := make([]uint8, len(src))
	for y := 0; y < h; y++ {
		fy := (float64(y)+0.5)/float64(th) - 0.5
		ty0 := int(fy)
		if fy < 0 {
			ty0 = -1
		}
		dy := fy - float64(ty0)
		ty1 := ty0 + 1
		ty0c, ty1c := clamp(ty0, claheTiles), clamp(ty1, claheTiles)

		for x := 0; x < w; x++ {
			fx := (float64(x)+0.5)/float64(tw) - 0.5
			tx0 := int(fx)
			if fx < 0 {
				tx0 = -1
			}
			dx := fx - float64(tx0)
			tx1 := tx0 + 1
			tx0c, tx1c := clamp(tx0, claheTiles), clamp(tx1, claheTiles)

			v := src[y*w+x]
			top := (1-dx)*luts[ty0c*claheTiles+tx0c][v] + dx*luts[ty0c*claheTiles+tx1c][v]
			bot := (1-dx)*luts[ty1c*claheTiles+tx0c][v] + dx*luts[ty1c*claheTiles+tx1c][v]
			out[y*w+x] = uint8((1-dy)*top + dy*bot + 0.5)
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
