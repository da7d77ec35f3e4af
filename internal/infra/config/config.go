package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"homework_status_bot/internal/domain/homework"

	"github.com/joho/godotenv"
)

const (
	defaultPollInterval   = 10 * time.Minute
	minPollInterval       = time.Second // cron.Every does not go below one second
	defaultHTTPTimeout    = 10 * time.Second
	defaultTelegramRate   = 1.0
	DefaultPracticumURL   = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	defaultLogLevel       = "info"
	defaultEnvironmentTag = "development"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken     string
	PracticumEndpoint  string
	TelegramToken      string
	TelegramChatID     int64
	TelegramRatePerSec float64
	PollInterval       time.Duration
	HTTPTimeout        time.Duration
	LogLevel           string
	Environment        string
}

// Load reads configuration from environment variables and .env file (if present).
// Any problem with a required value is returned as a homework.KindConfig error.
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, configError("PRACTICUM_TOKEN is not set", nil)
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, configError("TELEGRAM_TOKEN is not set", nil)
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, configError("TELEGRAM_CHAT_ID is not set", nil)
	}
	cfg.TelegramChatID, err = strconv.ParseInt(strings.TrimSpace(chatIDStr), 10, 64)
	if err != nil {
		return nil, configError("invalid TELEGRAM_CHAT_ID", err)
	}

	cfg.PracticumEndpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.PracticumEndpoint == "" {
		cfg.PracticumEndpoint = DefaultPracticumURL
	}

	cfg.PollInterval, err = durationEnv("POLL_INTERVAL", defaultPollInterval)
	if err != nil {
		return nil, err
	}
	if cfg.PollInterval < minPollInterval {
		return nil, configError(fmt.Sprintf("POLL_INTERVAL must be at least %s", minPollInterval), nil)
	}

	cfg.HTTPTimeout, err = durationEnv("HTTP_TIMEOUT", defaultHTTPTimeout)
	if err != nil {
		return nil, err
	}

	cfg.TelegramRatePerSec = defaultTelegramRate
	if raw := os.Getenv("TELEGRAM_RATE_PER_SEC"); raw != "" {
		cfg.TelegramRatePerSec, err = strconv.ParseFloat(raw, 64)
		if err != nil || cfg.TelegramRatePerSec <= 0 {
			return nil, configError("invalid TELEGRAM_RATE_PER_SEC", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = defaultEnvironmentTag
	}

	return cfg, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, configError("invalid "+key, err)
	}
	if d <= 0 {
		return 0, configError(key+" must be positive", nil)
	}
	return d, nil
}

func configError(msg string, err error) error {
	return homework.NewError(homework.KindConfig, msg, err)
}
