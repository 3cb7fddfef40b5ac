package pipeline

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

func grayImage(w, h int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8((x*7 + y*13) % 256)})
		}
	}
	return img
}

func rgbaImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8((x * 11) % 256),
				G: uint8((y * 17) % 256),
				B: uint8((x + y) % 256),
				A: uint8((x * y) % 256),
			})
		}
	}
	return img
}

func rgbImageFixture(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(120 + (x*3)%100),
				G: uint8(60 + (y*5)%100),
				B: uint8(40 + (x+y)%100),
				A: 255,
			})
		}
	}
	return img
}

func TestPreprocessImageShapeAndRange(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
	}{
		{"grayscale", grayImage(50, 80)},
		{"rgb", rgbImageFixture(64, 64)},
		{"rgba with alpha", rgbaImage(100, 30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tensor, err := PreprocessImage(tt.img)
			if err != nil {
				t.Fatalf("PreprocessImage() error = %v", err)
			}
			if tensor.Width != TargetSize || tensor.Height != TargetSize {
				t.Errorf("got %dx%d, want %dx%d", tensor.Width, tensor.Height, TargetSize, TargetSize)
			}
			if len(tensor.Data) != TargetSize*TargetSize*3 {
				t.Errorf("got %d values, want %d", len(tensor.Data), TargetSize*TargetSize*3)
			}
			for i, v := range tensor.Data {
				if v < 0 || v > 1 {
					t.Fatalf("value %f at index %d outside [0,1]", v, i)
				}
			}
		})
	}
}

func TestPreprocessDeterministic(t *testing.T) {
	img := rgbImageFixture(48, 72)

	first, err := PreprocessImage(img)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := PreprocessImage(img)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	for i := range first.Data {
		if first.Data[i] != second.Data[i] {
			t.Fatalf("output differs at index %d: %f vs %f", i, first.Data[i], second.Data[i])
		}
	}
}

func TestPreprocessDecodesEncodedStream(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, rgbImageFixture(40, 40)); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}

	tensor, err := Preprocess(&buf)
	if err != nil {
		t.Fatalf("Preprocess() error = %v", err)
	}
	if tensor.Width != TargetSize || tensor.Height != TargetSize {
		t.Errorf("got %dx%d, want %dx%d", tensor.Width, tensor.Height, TargetSize, TargetSize)
	}
}

func TestPreprocessRejectsGarbage(t *testing.T) {
	_, err := PreprocessBytes([]byte("definitely not an image"))
	if err == nil {
		t.Fatal("expected error for garbage input")
	}
	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T: %v", err, err)
	}
}

func TestPreprocessRejectsUnsupportedColorModel(t *testing.T) {
	_, err := PreprocessImage(image.NewCMYK(image.Rect(0, 0, 10, 10)))
	if err == nil {
		t.Fatal("expected error for CMYK input")
	}
	var decodeErr *domain.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T: %v", err, err)
	}
}
