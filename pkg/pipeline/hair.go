package pipeline

// Hair and similar thin dark artifacts are detected with a morphological
// blackhat on the luma plane and filled back in by diffusion from the
// surrounding skin. This is an approximation: dark lesion borders can be
// caught by the mask too, an accepted tradeoff.

// blackhatThreshold separates artifact response from texture noise.
const blackhatThreshold = 10

// ellipse5 is the 5x5 elliptical structuring element.
var ellipse5 = buildEllipse5()

func buildEllipse5() [][2]int {
	shape := [5][5]int{
		{0, 0, 1, 0, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
		{0, 0, 1, 0, 0},
	}
	var offsets [][2]int
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			if shape[dy][dx] == 1 {
				offsets = append(offsets, [2]int{dx - 2, dy - 2})
			}
		}
	}
	return offsets
}

func removeArtifacts(m *rgbImage) {
	gray := m.grayscale()

	// Blackhat: morphological closing minus the original. Thin dark
	// structures thinner than the kernel light up.
	closed := erode(dilate(gray, m.w, m.h), m.w, m.h)

	mask := make([]bool, len(gray))
	masked := 0
	for i := range gray {
		if int(closed[i])-int(gray[i]) > blackhatThreshold {
			mask[i] = true
			masked++
		}
	}
	if masked == 0 {
		return
	}

	inpaint(m, mask, masked)
}

func dilate(src []uint8, w, h int) []uint8 {
	out := make([]uint8, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var max uint8
			for _, d := range ellipse5 {
				nx, ny := clamp(x+d[0], w), clamp(y+d[1], h)
				if v := src[ny*w+nx]; v > max {
					max = v
				}
			}
			out[y*w+x] = max
		}
	}
	return out
}

func erode(src []uint8, w, h int) []uint8 {
	out := make([]uint8, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			min := uint8(255)
			for _, d := range ellipse5 {
				nx, ny := clamp(x+d[0], w), clamp(y+d[1], h)
				if v := src[ny*w+nx]; v < min {
					min = v
				}
			}
			out[y*w+x] = min
		}
	}
	return out
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 1
	}
	return v
}

// inpaint fills masked pixels per channel by peeling the mask inward:
// each pass fills every masked pixel with at least one known 8-neighbor,
// using the mean of those neighbors. Deterministic scan order, so the
// fill never depends on anything but pixel content.
func inpaint(m *rgbImage, mask []bool, remaining int) {
	w, h := m.w, m.h
	for remaining > 0 {
		type fill struct {
			idx int
			rgb [3]uint8
		}
		var fills []fill

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				if !mask[idx] {
					continue
				}
				var sum [3]int
				known := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny := x+dx, y+dy
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						nidx := ny*w + nx
						if mask[nidx] {
							continue
						}
						for c := 0; c < 3; c++ {
							sum[c] += int(m.pix[nidx*3+c])
						}
						known++
					}
				}
				if known == 0 {
					continue
				}
				var rgb [3]uint8
				for c := 0; c < 3; c++ {
					rgb[c] = uint8((sum[c] + known/2) / known)
				}
				fills = append(fills, fill{idx: idx, rgb: rgb})
			}
		}

		// A fully masked region with no reachable boundary cannot be
		// diffused; leave it as is.
		if len(fills) == 0 {
			return
		}

		for _, f := range fills {
			m.pix[f.idx*3] = f.rgb[0]
			m.pix[f.idx*3+1] = f.rgb[1]
			m.pix[f.idx*3+2] = f.rgb[2]
			mask[f.idx] = false
		}
		remaining -= len(fills)
	}
}
