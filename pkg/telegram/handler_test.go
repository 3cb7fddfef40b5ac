package telegram

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type recordingService struct {
	calls  []string
	texts  []string
	photos []string
}

func (r *recordingService) Greet(_ context.Context, _ int64)            { r.calls = append(r.calls, "greet") }
func (r *recordingService) StartNewAnalysis(_ context.Context, _ int64) { r.calls = append(r.calls, "new") }
func (r *recordingService) HandleText(_ context.Context, _ int64, text string) {
	r.calls = append(r.calls, "text")
	r.texts = append(r.texts, text)
}
func (r *recordingService) HandlePhoto(_ context.Context, _ int64, fileID string) {
	r.calls = append(r.calls, "photo")
	r.photos = append(r.photos, fileID)
}
func (r *recordingService) SendRiskSummary(_ context.Context, _ int64) { r.calls = append(r.calls, "risks") }
func (r *recordingService) SendInfo(_ context.Context, _ int64)        { r.calls = append(r.calls, "info") }
func (r *recordingService) SendExamples(_ context.Context, _ int64)    { r.calls = append(r.calls, "examples") }

func textUpdate(text string) *tgbotapi.Update {
	return &tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
		Text: text,
	}}
}

func TestHandleUpdateRouting(t *testing.T) {
	tests := []struct {
		name     string
		update   *tgbotapi.Update
		wantCall string
	}{
		{"start command", textUpdate("/start"), "greet"},
		{"start with bot mention", textUpdate("/start@skin_assist_bot"), "greet"},
		{"new command", textUpdate("/new"), "new"},
		{"risks command", textUpdate("/risks"), "risks"},
		{"info command", textUpdate("/info"), "info"},
		{"examples command", textUpdate("/examples"), "examples"},
		{"unknown command falls through to text", textUpdate("/weather"), "text"},
		{"plain text", textUpdate("yes please"), "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &recordingService{}
			h := NewHandler(svc)

			h.HandleUpdate(context.Background(), tt.update)

			if len(svc.calls) != 1 || svc.calls[0] != tt.wantCall {
				t.Errorf("calls = %v, want [%s]", svc.calls, tt.wantCall)
			}
		})
	}
}

func TestHandleUpdatePicksLargestPhoto(t *testing.T) {
	svc := &recordingService{}
	h := NewHandler(svc)

	update := &tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90, Height: 90},
			{FileID: "large", Width: 800, Height: 600},
			{FileID: "medium", Width: 320, Height: 240},
		},
	}}

	h.HandleUpdate(context.Background(), update)

	if len(svc.photos) != 1 || svc.photos[0] != "large" {
		t.Errorf("photos = %v, want [large]", svc.photos)
	}
}

func TestHandleUpdateIgnoresNonMessages(t *testing.T) {
	svc := &recordingService{}
	h := NewHandler(svc)

	h.HandleUpdate(context.Background(), &tgbotapi.Update{})

	if len(svc.calls) != 0 {
		t.Errorf("calls = %v, want none", svc.calls)
	}
}
