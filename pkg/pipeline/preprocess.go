// Package pipeline prepares a raw lesion photo for classification. The
// transform chain is fixed: decode and channel-normalize, resize, color
// normalization, hair removal, contrast enhancement, unit-range scaling.
// Every step is deterministic, so identical input bytes always produce
// bit-identical tensors.
package pipeline

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/nfnt/resize"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
)

// TargetSize is the side length of the square model input.
const TargetSize = 224

// Preprocess decodes a JPEG/PNG stream and runs the full normalization
// chain. Unreadable input returns a domain.DecodeError and no tensor.
func Preprocess(r io.Reader) (*Tensor, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &domain.DecodeError{Reason: "unreadable input", Err: err}
	}
	return PreprocessImage(img)
}

// PreprocessBytes is Preprocess over an in-memory upload.
func PreprocessBytes(data []byte) (*Tensor, error) {
	return Preprocess(bytes.NewReader(data))
}

// PreprocessImage runs the transform chain on an already decoded image.
func PreprocessImage(img image.Image) (*Tensor, error) {
	rgb, err := toRGB(img)
	if err != nil {
		return nil, err
	}

	// Stretch to the model input size. Aspect ratio is deliberately not
	// preserved: cropping or padding would discard lesion border pixels.
	// Known limitation, inherited by the classifier.
	resized := resize.Resize(TargetSize, TargetSize, rgb, resize.Bicubic)

	m := flatten(resized)
	normalizeColor(m)
	removeArtifacts(m)
	enhanceContrast(m)

	return m.toUnitTensor(), nil
}
