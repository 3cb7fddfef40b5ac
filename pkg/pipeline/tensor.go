package pipeline

import "math"

// Tensor is an HxWx3 float32 image with values in [0,1], laid out
// row-major as R,G,B triplets. It is the pipeline's only output and the
// classifier's only input.
type Tensor struct {
	Width  int
	Height int
	Data   []float32
}

func newTensor(w, h int) *Tensor {
	return &Tensor{Width: w, Height: h, Data: make([]float32, w*h*3)}
}

// At returns the value at (x, y) for channel c (0=R, 1=G, 2=B).
func (t *Tensor) At(x, y, c int) float32 {
	return t.Data[(y*t.Width+x)*3+c]
}

// Mean returns the mean over all channels and pixels.
func (t *Tensor) Mean() float64 {
	var sum float64
	for _, v := range t.Data {
		sum += float64(v)
	}
	return sum / float64(len(t.Data))
}

// MeanChannel returns the mean of a single channel.
func (t *Tensor) MeanChannel(c int) float64 {
	var sum float64
	n := 0
	for i := c; i < len(t.Data); i += 3 {
		sum += float64(t.Data[i])
		n++
	}
	return sum / float64(n)
}

// StdDev returns the standard deviation over all values.
func (t *Tensor) StdDev() float64 {
	mean := t.Mean()
	var sum float64
	for _, v := range t.Data {
		d := float64(v) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(t.Data)))
}
