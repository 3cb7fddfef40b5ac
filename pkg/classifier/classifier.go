// Package classifier decides whether a normalized lesion tensor looks
// benign or like melanoma. Backends are interchangeable behind a single
// contract: label in {Benign, Melanoma}, confidence in (0, 100].
package classifier

import (
	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/pipeline"
)

// Classifier turns a normalized tensor into a labelled prediction. A
// backend must be invocable repeatedly and share no mutable state across
// calls beyond its own model weights.
type Classifier interface {
	Predict(t *pipeline.Tensor) (domain.Prediction, error)
}

// Adapter guards the collaborator contract: any backend result with an
// unknown label or out-of-range confidence becomes a ContractError
// instead of reaching the conversation.
type Adapter struct {
	backend Classifier
}

func NewAdapter(backend Classifier) *Adapter {
	return &Adapter{backend: backend}
}

func (a *Adapter) Predict(t *pipeline.Tensor) (domain.Prediction, error) {
	p, err := a.backend.Predict(t)
	if err != nil {
		return domain.Prediction{}, err
	}
	if err := p.Validate(); err != nil {
		return domain.Prediction{}, err
	}
	return p, nil
}
