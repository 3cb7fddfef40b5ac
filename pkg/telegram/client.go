package telegram

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/logger"
)

type client struct {
	token     string
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		token:     token,
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendResponse delivers one assistant message. A response carrying an
// error is translated into a generic apology; details stay in the logs.
func (c *client) SendResponse(ctx context.Context, response *domain.Response) {
	text := response.Text
	if response.Err != nil {
		slog.ErrorContext(ctx, "delivering error response", logger.Err(response.Err))
		text = "Something went wrong while processing your request. Please try again."
	}

	msg := tgbotapi.NewMessage(response.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := c.bot.Send(msg); err != nil {
		slog.ErrorContext(ctx, "sending message", "chatID", response.ChatID, logger.Err(err))
	}
}

// DownloadFileBytes fetches an uploaded file into memory. Nothing is
// written to disk: images live only for the duration of a turn.
func (c *client) DownloadFileBytes(ctx context.Context, fileID string) ([]byte, error) {
	file, err := c.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(c.token), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.bot.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Error("closing body", logger.Err(closeErr))
		}
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	return data, nil
}

// StartTyping shows the typing indicator while a turn is processed.
func (c *client) StartTyping(ctx context.Context, chatID int64) {
	action := tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)
	if _, err := c.bot.Request(action); err != nil {
		slog.WarnContext(ctx, "sending typing action", "chatID", chatID, logger.Err(err))
	}
}
