package domain

import "fmt"

type Label string

const (
	LabelBenign   Label = "Benign"
	LabelMelanoma Label = "Melanoma"
)

// Prediction is the classifier's verdict for one image. Immutable once
// created; a new one only appears when a new image is submitted.
type Prediction struct {
	Label      Label
	Confidence float64
}

// Validate checks the classifier contract: a known label and a
// confidence in (0, 100].
func (p Prediction) Validate() error {
	if p.Label != LabelBenign && p.Label != LabelMelanoma {
		return &ContractError{Reason: fmt.Sprintf("unknown label %q", p.Label)}
	}
	if p.Confidence <= 0 || p.Confidence > 100 {
		return &ContractError{Reason: fmt.Sprintf("confidence %.2f outside (0, 100]", p.Confidence)}
	}
	return nil
}
