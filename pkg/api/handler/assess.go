package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mkravets/skin-assist-bot/pkg/api/response"
	"github.com/mkravets/skin-assist-bot/pkg/classifier"
	"github.com/mkravets/skin-assist-bot/pkg/content"
	"github.com/mkravets/skin-assist-bot/pkg/dialogue"
	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/logger"
	"github.com/mkravets/skin-assist-bot/pkg/pipeline"
)

// maxUploadBytes caps the multipart form parse. The pipeline itself
// enforces no limit; the transport boundary does.
const maxUploadBytes = 10 << 20

type AssessResponse struct {
	Label       string `json:"label"`
	Confidence  float64 `json:"confidence"`
	Explanation string `json:"explanation"`
	NextSteps   string `json:"next_steps"`
}

// assess serves one-shot image assessment over HTTP: multipart image in,
// label, confidence, explanation and next steps out.
type assess struct {
	classifier classifier.Classifier
	writer     response.JSONWriter
}

func NewAssess(cls classifier.Classifier) *assess {
	return &assess{classifier: cls}
}

func (a *assess) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		a.writer.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		a.writer.Error(w, http.StatusBadRequest, "failed to parse form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		a.writer.Error(w, http.StatusBadRequest, "no image file provided; use 'image' as the form field name")
		return
	}
	defer file.Close()

	tensor, err := pipeline.Preprocess(file)
	if err != nil {
		var decodeErr *domain.DecodeError
		if errors.As(err, &decodeErr) {
			a.writer.Error(w, http.StatusBadRequest, "invalid image; supported formats: JPEG, PNG")
			return
		}
		slog.Error("preprocessing upload", logger.Err(err))
		a.writer.Error(w, http.StatusInternalServerError, "failed to process image")
		return
	}

	prediction, err := a.classifier.Predict(tensor)
	if err != nil {
		slog.Error("classifying upload", logger.Err(err))
		a.writer.Error(w, http.StatusInternalServerError, "prediction failed")
		return
	}

	a.writer.Success(w, AssessResponse{
		Label:       string(prediction.Label),
		Confidence:  prediction.Confidence,
		Explanation: dialogue.Explain(prediction),
		NextSteps:   content.NextSteps(prediction.Label),
	})
}
