package telegram

import (
	"context"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"
)

type AssessmentService interface {
	Greet(ctx context.Context, chatID int64)
	StartNewAnalysis(ctx context.Context, chatID int64)
	HandleText(ctx context.Context, chatID int64, text string)
	HandlePhoto(ctx context.Context, chatID int64, fileID string)
	SendRiskSummary(ctx context.Context, chatID int64)
	SendInfo(ctx context.Context, chatID int64)
	SendExamples(ctx context.Context, chatID int64)
}

type handler struct {
	assessment AssessmentService
}

func NewHandler(assessment AssessmentService) *handler {
	return &handler{assessment: assessment}
}

func (h *handler) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	if update.Message == nil {
		slog.WarnContext(ctx, "ignoring non-message update")
		return
	}
	h.handleMessage(ctx, update.Message)
}

func (h *handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch {
	case len(msg.Photo) > 0:
		// Telegram sends several sizes of the same photo; analyze the
		// largest one.
		largest := lo.MaxBy(msg.Photo, func(a, b tgbotapi.PhotoSize) bool {
			return a.Width*a.Height > b.Width*b.Height
		})
		h.assessment.HandlePhoto(ctx, chatID, largest.FileID)

	case isCommand(msg.Text):
		h.handleCommand(ctx, chatID, msg.Text)

	case msg.Text != "":
		h.assessment.HandleText(ctx, chatID, msg.Text)

	default:
		slog.WarnContext(ctx, "ignoring unsupported message type", "chatID", chatID)
	}
}

func isCommand(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "/")
}

func (h *handler) handleCommand(ctx context.Context, chatID int64, text string) {
	cmd := strings.ToLower(strings.TrimSpace(text))
	cmd = strings.Split(cmd, "@")[0]

	switch {
	case cmd == "/start":
		h.assessment.Greet(ctx, chatID)

	case cmd == "/new":
		h.assessment.StartNewAnalysis(ctx, chatID)

	case strings.HasPrefix(cmd, "/risks"):
		h.assessment.SendRiskSummary(ctx, chatID)

	case strings.HasPrefix(cmd, "/info"):
		h.assessment.SendInfo(ctx, chatID)

	case strings.HasPrefix(cmd, "/examples"):
		h.assessment.SendExamples(ctx, chatID)

	default:
		slog.WarnContext(ctx, "unhandled command", "cmd", cmd)
		h.assessment.HandleText(ctx, chatID, text)
	}
}
