package pipeline

import (
	"fmt"
	"image"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

// rgbImage is the pipeline's 8-bit working representation: three bytes
// per pixel, no alpha, row-major.
type rgbImage struct {
	w, h int
	pix  []uint8
}

// toRGB normalizes channel layout: grayscale replicates into three
// channels, four-channel input loses its alpha, and color models the
// pipeline cannot express as plain RGB are rejected.
func toRGB(img image.Image) (*image.NRGBA, error) {
	switch img.(type) {
	case *image.Gray, *image.Gray16,
		*image.YCbCr, *image.Paletted,
		*image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
	default:
		return nil, &domain.DecodeError{Reason: fmt.Sprintf("unsupported color model %T", img)}
	}

	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := out.PixOffset(x, y)
			out.Pix[i] = uint8(r >> 8)
			out.Pix[i+1] = uint8(g >> 8)
			out.Pix[i+2] = uint8(bl >> 8)
			out.Pix[i+3] = 0xff
		}
	}
	return out, nil
}

// flatten packs any image into the three-byte-per-pixel working layout.
func flatten(img image.Image) *rgbImage {
	b := img.Bounds()
	m := &rgbImage{w: b.Dx(), h: b.Dy(), pix: make([]uint8, b.Dx()*b.Dy()*3)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			m.pix[i] = uint8(r >> 8)
			m.pix[i+1] = uint8(g >> 8)
			m.pix[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
	return m
}

// grayscale collapses the image to a luma plane.
func (m *rgbImage) grayscale() []uint8 {
	out := make([]uint8, m.w*m.h)
	for i := range out {
		r := float64(m.pix[i*3])
		g := float64(m.pix[i*3+1])
		b := float64(m.pix[i*3+2])
		out[i] = uint8(0.299*r + 0.587*g + 0.114*b + 0.5)
	}
	return out
}

func (m *rgbImage) toUnitTensor() *Tensor {
	t := newTensor(m.w, m.h)
	for i, p := range m.pix {
		t.Data[i] = float32(p) / 255
	}
	return t
}
