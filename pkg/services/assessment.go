package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/mkravets/skin-assist-bot/pkg/classifier"
	"github.com/mkravets/skin-assist-bot/pkg/content"
	"github.com/mkravets/skin-assist-bot/pkg/dialogue"
	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/logger"
	"github.com/mkravets/skin-assist-bot/pkg/pipeline"
	"github.com/mkravets/skin-assist-bot/pkg/risk"
	"github.com/mkravets/skin-assist-bot/pkg/sanitize"
)

type SessionRepository interface {
	Update(chatID int64, fn func(*domain.Session))
	Snapshot(chatID int64) (domain.Session, bool)
}

type FileDownloader interface {
	DownloadFileBytes(ctx context.Context, fileID string) ([]byte, error)
}

// assessmentService orchestrates one user turn at a time: chat text goes
// through the dialogue machine, photos go through the pipeline and
// classifier. Replies leave through responseCh.
type assessmentService struct {
	sessions   SessionRepository
	classifier classifier.Classifier
	machine    *dialogue.Machine
	files      FileDownloader
	responseCh chan<- domain.Response
	now        func() time.Time
}

func NewAssessmentService(
	sessions SessionRepository,
	cls classifier.Classifier,
	machine *dialogue.Machine,
	files FileDownloader,
	responseCh chan<- domain.Response,
) *assessmentService {
	return &assessmentService{
		sessions:   sessions,
		classifier: cls,
		machine:    machine,
		files:      files,
		responseCh: responseCh,
		now:        time.Now,
	}
}

// Greet resets the session and opens the conversation with the welcome
// message.
func (a *assessmentService) Greet(ctx context.Context, chatID int64) {
	var text string
	a.sessions.Update(chatID, func(s *domain.Session) {
		s.Reset()
		text = dialogue.Welcome(a.now())
		s.Append(domain.RoleAssistant, text)
	})
	a.responseCh <- domain.Response{ChatID: chatID, Text: text}
}

// StartNewAnalysis clears everything in one step - history, stage,
// stored answers, prediction - and greets anew. Partial resets are never
// valid.
func (a *assessmentService) StartNewAnalysis(ctx context.Context, chatID int64) {
	var text string
	a.sessions.Update(chatID, func(s *domain.Session) {
		s.Reset()
		text = "Starting a new analysis.\n\n" + dialogue.Welcome(a.now())
		s.Append(domain.RoleAssistant, text)
	})
	a.responseCh <- domain.Response{ChatID: chatID, Text: text}
}

// HandleText runs one chat turn to completion. User text is PII-scrubbed
// before it touches the transcript or the stored answers.
func (a *assessmentService) HandleText(ctx context.Context, chatID int64, text string) {
	clean := sanitize.Scrub(text)

	var reply string
	a.sessions.Update(chatID, func(s *domain.Session) {
		s.Append(domain.RoleUser, clean)
		reply = a.machine.Process(s, clean)
		s.Append(domain.RoleAssistant, reply)
	})

	slog.InfoContext(ctx, "processed chat turn", "chatID", chatID)
	a.responseCh <- domain.Response{ChatID: chatID, Text: reply}
}

// HandlePhoto downloads the uploaded photo and runs the assessment.
func (a *assessmentService) HandlePhoto(ctx context.Context, chatID int64, fileID string) {
	data, err := a.files.DownloadFileBytes(ctx, fileID)
	if err != nil {
		slog.ErrorContext(ctx, "downloading photo", logger.Err(err))
		a.responseCh <- domain.Response{ChatID: chatID, Err: err}
		return
	}
	a.HandleImage(ctx, chatID, data)
}

// HandleImage runs the pipeline and classifier over an upload. On
// success the stage is forced to post_prediction from wherever the
// conversation was. On failure the session is deliberately untouched:
// the previous prediction, if any, stays valid and the user can retry
// with a fresh upload.
func (a *assessmentService) HandleImage(ctx context.Context, chatID int64, data []byte) {
	tensor, err := pipeline.PreprocessBytes(data)
	if err != nil {
		slog.ErrorContext(ctx, "preprocessing image", logger.Err(err))
		a.responseCh <- domain.Response{
			ChatID: chatID,
			Text:   "I couldn't read that image. Please upload a clear JPEG or PNG photo of the lesion and I'll try again.",
		}
		return
	}

	prediction, err := a.classifier.Predict(tensor)
	if err != nil {
		slog.ErrorContext(ctx, "classifying image", logger.Err(err))
		a.responseCh <- domain.Response{ChatID: chatID, Err: err}
		return
	}

	var reply string
	a.sessions.Update(chatID, func(s *domain.Session) {
		p := prediction
		s.Prediction = &p
		s.Stage = domain.StagePostPrediction
		reply = dialogue.PredictionMessage(prediction)
		s.Append(domain.RoleAssistant, reply)
	})

	slog.InfoContext(ctx, "image assessed",
		"chatID", chatID,
		"label", prediction.Label,
		"confidence", prediction.Confidence,
	)
	a.responseCh <- domain.Response{ChatID: chatID, Text: reply}
}

// SendRiskSummary reports the risk flags extracted from the stored
// medical history answers.
func (a *assessmentService) SendRiskSummary(ctx context.Context, chatID int64) {
	s, ok := a.sessions.Snapshot(chatID)
	if !ok {
		a.responseCh <- domain.Response{ChatID: chatID, Text: "We haven't gone through the medical history questions yet. Send /start to begin."}
		return
	}

	factors := risk.Extract(s.Responses)
	if len(factors) == 0 {
		a.responseCh <- domain.Response{ChatID: chatID, Text: "No specific risk factors stood out from your answers so far."}
		return
	}

	lines := lo.Map(factors, func(f domain.RiskFactor, _ int) string {
		return "• " + string(f)
	})
	a.responseCh <- domain.Response{
		ChatID: chatID,
		Text:   "Based on your answers, these risk factors stand out:\n" + strings.Join(lines, "\n"),
	}
}

// SendInfo delivers the static educational blocks.
func (a *assessmentService) SendInfo(ctx context.Context, chatID int64) {
	a.responseCh <- domain.Response{
		ChatID: chatID,
		Text:   content.Description() + "\n\n" + content.Disclaimer() + "\n\n" + content.Educational(),
	}
}

// SendExamples lists the educational example images.
func (a *assessmentService) SendExamples(ctx context.Context, chatID int64) {
	lines := lo.Map(content.Examples(), func(e content.Example, _ int) string {
		return "• " + e.Caption + ": " + e.URL
	})
	a.responseCh <- domain.Response{
		ChatID: chatID,
		Text:   "These are examples of the types of skin lesion images the assistant can analyze:\n" + strings.Join(lines, "\n"),
	}
}
