package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkravets/skin-assist-bot/pkg/classifier"
	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/pipeline"
)

type fixedClassifier struct {
	prediction domain.Prediction
}

func (f fixedClassifier) Predict(_ *pipeline.Tensor) (domain.Prediction, error) {
	return f.prediction, nil
}

func multipartImage(t *testing.T, field string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, "lesion.png")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("writing form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func encodedPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(140 + x%60), G: uint8(90 + y%60), B: 70, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	return buf.Bytes()
}

func TestAssessHandle(t *testing.T) {
	cls := classifier.NewAdapter(fixedClassifier{
		prediction: domain.Prediction{Label: domain.LabelMelanoma, Confidence: 85},
	})
	h := NewAssess(cls)

	body, contentType := multipartImage(t, "image", encodedPNG(t))
	req := httptest.NewRequest(http.MethodPost, "/v1/assess", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp AssessResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Label != string(domain.LabelMelanoma) {
		t.Errorf("label = %q, want %q", resp.Label, domain.LabelMelanoma)
	}
	if resp.Confidence != 85 {
		t.Errorf("confidence = %f, want 85", resp.Confidence)
	}
	if resp.Explanation == "" || resp.NextSteps == "" {
		t.Error("explanation or next steps missing")
	}
}

func TestAssessHandleRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		request    func(t *testing.T) *http.Request
		wantStatus int
	}{
		{
			"wrong method",
			func(t *testing.T) *http.Request {
				return httptest.NewRequest(http.MethodGet, "/v1/assess", nil)
			},
			http.StatusMethodNotAllowed,
		},
		{
			"missing image field",
			func(t *testing.T) *http.Request {
				body, contentType := multipartImage(t, "photo", encodedPNG(t))
				req := httptest.NewRequest(http.MethodPost, "/v1/assess", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			http.StatusBadRequest,
		},
		{
			"undecodable image",
			func(t *testing.T) *http.Request {
				body, contentType := multipartImage(t, "image", []byte("not an image"))
				req := httptest.NewRequest(http.MethodPost, "/v1/assess", body)
				req.Header.Set("Content-Type", contentType)
				return req
			},
			http.StatusBadRequest,
		},
	}

	cls := classifier.NewAdapter(classifier.NewSimulated())
	h := NewAssess(cls)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, tt.request(t))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body = %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
