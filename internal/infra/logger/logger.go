// internal/infra/logger/logger.go
package logger

import (
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
)

// ServiceName tags every entry created through Component.
const ServiceName = "homework_status_bot"

// Log is the global logger instance
var Log = logrus.New()

// Init initializes the global logger based on application configuration.
func Init(cfg *config.AppConfig) {
	Log.SetOutput(os.Stdout)
	Configure(Log, cfg.LogLevel, cfg.Environment)

	Component("logger").WithFields(logrus.Fields{
		"level":       Log.GetLevel().String(),
		"environment": cfg.Environment,
	}).Debug("Logger initialized")
}

// Configure applies level and formatter to l.
func Configure(l *logrus.Logger, levelName, environment string) {
	l.SetLevel(parseLevel(l, levelName))
	l.SetFormatter(formatterFor(environment))
}

// Component returns an entry from the global logger scoped to one part of the bot.
// Fields such as homework, chat_id and kind are added by the callers.
func Component(name string) *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"service":   ServiceName,
		"component": name,
	})
}

func parseLevel(l *logrus.Logger, name string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(name))
	if err != nil {
		l.WithError(err).Warnf("Invalid log level '%s', defaulting to 'info'", name)
		return logrus.InfoLevel
	}
	return level
}

// formatterFor picks JSON for deployed environments and text for local runs.
func formatterFor(environment string) logrus.Formatter {
	switch strings.ToLower(environment) {
	case "production", "staging":
		return &logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"}
	default:
		return &logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"}
	}
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}
