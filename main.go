package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v9"

	apihandler "github.com/mkravets/skin-assist-bot/pkg/api/handler"
	"github.com/mkravets/skin-assist-bot/pkg/auth"
	"github.com/mkravets/skin-assist-bot/pkg/classifier"
	"github.com/mkravets/skin-assist-bot/pkg/dialogue"
	"github.com/mkravets/skin-assist-bot/pkg/domain"
	"github.com/mkravets/skin-assist-bot/pkg/logger"
	"github.com/mkravets/skin-assist-bot/pkg/repository"
	"github.com/mkravets/skin-assist-bot/pkg/services"
	"github.com/mkravets/skin-assist-bot/pkg/telegram"
	"github.com/mkravets/skin-assist-bot/pkg/workers"
)

type Config struct {
	TelegramBotToken          string  `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramAuthorizedUserIDs []int64 `env:"TELEGRAM_AUTHORIZED_USER_IDS" envSeparator:" "`
	HTTPAddr                  string  `env:"HTTP_ADDR" envDefault:":8080"`
	ModelPath                 string  `env:"MODEL_PATH"`
	ModelMetadataPath         string  `env:"MODEL_METADATA_PATH"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	workerGroup, err := setupWorkers()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return workerGroup.Start(ctx)
}

func setupWorkers() (workers.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}
	authenticator := auth.NewAuthenticator(cfg.TelegramAuthorizedUserIDs)

	// The simulated scorer is the default; a configured ONNX model is a
	// drop-in replacement behind the same contract.
	var backend classifier.Classifier = classifier.NewSimulated()
	if cfg.ModelPath != "" {
		onnx, err := classifier.NewONNX(cfg.ModelPath, cfg.ModelMetadataPath)
		if err != nil {
			return nil, fmt.Errorf("creating onnx classifier: %w", err)
		}
		backend = onnx
	}
	adapter := classifier.NewAdapter(backend)

	sessionRepository := repository.NewSessionRepository()
	machine := dialogue.NewMachine()

	responseCh := make(chan domain.Response)

	assessmentService := services.NewAssessmentService(
		sessionRepository,
		adapter,
		machine,
		telegramClient,
		responseCh,
	)

	handler := telegram.NewHandler(assessmentService)

	listener, err := workers.NewTelegramListener(
		telegramClient,
		authenticator,
		handler,
		responseCh,
	)
	if err != nil {
		return nil, fmt.Errorf("creating telegram listener: %w", err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", apihandler.NewHealth().Handle)
	mux.HandleFunc("/v1/assess", apihandler.NewAssess(adapter).Handle)

	return workers.Group{
		listener,
		workers.NewHTTPServer(cfg.HTTPAddr, mux),
	}, nil
}
