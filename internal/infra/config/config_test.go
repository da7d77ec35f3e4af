package config

import (
	"testing"
	"time"

	"homework_status_bot/internal/domain/homework"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PRACTICUM_TOKEN", "practicum-token")
	t.Setenv("TELEGRAM_TOKEN", "telegram-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")
	for _, key := range []string{"PRACTICUM_ENDPOINT", "POLL_INTERVAL", "HTTP_TIMEOUT", "TELEGRAM_RATE_PER_SEC", "LOG_LEVEL", "ENVIRONMENT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.PracticumToken != "practicum-token" || cfg.TelegramToken != "telegram-token" {
		t.Fatalf("tokens not loaded: %+v", cfg)
	}
	if cfg.TelegramChatID != 123456 {
		t.Fatalf("expected chat id 123456, got %d", cfg.TelegramChatID)
	}
	if cfg.PracticumEndpoint != DefaultPracticumURL {
		t.Fatalf("unexpected endpoint %q", cfg.PracticumEndpoint)
	}
	if cfg.PollInterval != defaultPollInterval || cfg.HTTPTimeout != defaultHTTPTimeout {
		t.Fatalf("unexpected durations: %s %s", cfg.PollInterval, cfg.HTTPTimeout)
	}
	if cfg.TelegramRatePerSec != defaultTelegramRate {
		t.Fatalf("unexpected rate %v", cfg.TelegramRatePerSec)
	}
	if cfg.LogLevel != "info" || cfg.Environment != "development" {
		t.Fatalf("unexpected log settings: %s %s", cfg.LogLevel, cfg.Environment)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	t.Setenv("PRACTICUM_ENDPOINT", "http://localhost:8080/api/")
	t.Setenv("POLL_INTERVAL", "30s")
	t.Setenv("HTTP_TIMEOUT", "2s")
	t.Setenv("TELEGRAM_RATE_PER_SEC", "0.5")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TelegramChatID != -100200300 {
		t.Fatalf("expected negative group chat id, got %d", cfg.TelegramChatID)
	}
	if cfg.PracticumEndpoint != "http://localhost:8080/api/" {
		t.Fatalf("unexpected endpoint %q", cfg.PracticumEndpoint)
	}
	if cfg.PollInterval != 30*time.Second || cfg.HTTPTimeout != 2*time.Second {
		t.Fatalf("unexpected durations: %s %s", cfg.PollInterval, cfg.HTTPTimeout)
	}
	if cfg.TelegramRatePerSec != 0.5 {
		t.Fatalf("unexpected rate %v", cfg.TelegramRatePerSec)
	}
	if cfg.LogLevel != "debug" || cfg.Environment != "production" {
		t.Fatalf("expected lowercased log settings, got %s %s", cfg.LogLevel, cfg.Environment)
	}
}

func TestLoadMissingRequiredIsConfigError(t *testing.T) {
	for _, key := range []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, "")

			cfg, err := Load()
			if err == nil {
				t.Fatalf("expected error when %s is empty, got %+v", key, cfg)
			}
			if homework.KindOf(err) != homework.KindConfig {
				t.Fatalf("expected config kind, got %s", homework.KindOf(err))
			}
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"TELEGRAM_CHAT_ID":      "@channel",
		"POLL_INTERVAL":         "500ms",
		"HTTP_TIMEOUT":          "soon",
		"TELEGRAM_RATE_PER_SEC": "-1",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			setRequired(t)
			t.Setenv(key, val)

			if _, err := Load(); homework.KindOf(err) != homework.KindConfig {
				t.Fatalf("expected config error for %s=%s, got %v", key, val, err)
			}
		})
	}
}
