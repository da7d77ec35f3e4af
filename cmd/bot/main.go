package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

func main() {
	if err := run(); err != nil {
		// Fatal is logrus' highest severity short of panic and exits with status 1.
		logger.Component("main").WithError(err).Fatal("Could not start bot")
	}
}

// run wires the bot and blocks until SIGINT or SIGTERM.
// Startup errors are returned before the first poll.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger.Init(cfg)
	mainLogger := logger.Component("main")
	mainLogger.WithFields(logrus.Fields{
		"environment":   cfg.Environment,
		"poll_interval": cfg.PollInterval.String(),
		"chat_id":       cfg.TelegramChatID,
	}).Info("Configuration loaded")

	// Offline skips getMe, so a Telegram outage at startup is not fatal; the bot only sends.
	bot, err := telebot.NewBot(telebot.Settings{
		Token:   cfg.TelegramToken,
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		Offline: true,
	})
	if err != nil {
		return fmt.Errorf("create telegram bot: %w", err)
	}
	tgClient := telegram.NewTelebotAdapter(bot, telegram.NewLimiter(cfg.TelegramRatePerSec))

	practicumClient := practicum.NewClient(practicum.Config{
		Endpoint: cfg.PracticumEndpoint,
		Token:    cfg.PracticumToken,
		Timeout:  cfg.HTTPTimeout,
		Logger:   logger.Component("practicum"),
	})

	statusPoller := app.NewStatusPoller(
		practicumClient,
		tgClient,
		cfg.TelegramChatID,
		logger.Component("status_poller"),
	)

	pollScheduler := scheduler.NewPollScheduler(
		statusPoller,
		cfg.PollInterval,
		logger.Component("scheduler"),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pollScheduler.Start(ctx)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	cancel()
	pollScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
	return nil
}
