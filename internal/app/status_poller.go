// internal/app/status_poller.go
package app

import (
	"context"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

const failurePrefix = "Сбой в работе программы"

// StatusPoller runs poll cycles against the homework API and relays status changes to one chat.
// All of its state belongs to the poller; callers must not run Poll concurrently.
type StatusPoller struct {
	source         homework.Source
	telegramClient domainTelegram.Client
	chatID         int64
	logger         *logrus.Entry
	now            func() time.Time

	tracker   *homework.Tracker
	cursor    time.Time // unix epoch until the first successful poll, so that poll returns every homework
	lastError string
}

func NewStatusPoller(
	source homework.Source,
	tc domainTelegram.Client,
	chatID int64,
	logger *logrus.Entry,
) *StatusPoller {
	return &StatusPoller{
		source:         source,
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
		now:            time.Now,
		tracker:        homework.NewTracker(),
		cursor:         time.Unix(0, 0),
	}
}

// Poll runs one fetch, validate, interpret and notify cycle.
// Failures are logged and reported to the chat; Poll itself never fails.
func (s *StatusPoller) Poll(ctx context.Context) {
	started := s.now()
	logCtx := s.logger.WithField("from_date", s.cursor.Unix())
	logCtx.Debug("Polling homework statuses")

	if err := s.pollOnce(ctx, logCtx); err != nil {
		s.handleFailure(ctx, err)
		return
	}

	s.cursor = started
	if s.lastError != "" {
		logCtx.Info("Poll recovered after failure")
	}
	s.lastError = ""
}

func (s *StatusPoller) pollOnce(ctx context.Context, logCtx *logrus.Entry) error {
	payload, err := s.source.FetchHomeworks(ctx, s.cursor)
	if err != nil {
		return err
	}

	resp, err := homework.ValidateResponse(payload)
	if err != nil {
		return err
	}
	logCtx.WithField("homeworks_count", len(resp.Homeworks)).Debug("Response validated")

	for _, entry := range resp.Homeworks {
		rec, err := homework.ParseHomework(entry)
		if err != nil {
			return err
		}

		decision, err := s.tracker.Observe(rec.Name, rec.Status)
		if err != nil {
			return fmt.Errorf("работа %q: %w", rec.Name, err)
		}

		hwLogger := logCtx.WithFields(logrus.Fields{
			"homework": rec.Name,
			"status":   rec.Status,
		})
		if !decision.Notify {
			hwLogger.Debug("Status unchanged")
			continue
		}

		hwLogger.Info("Status changed")
		s.send(ctx, homework.FormatStatusChange(rec.Name, decision.Verdict), hwLogger)
	}
	return nil
}

// handleFailure reports err once per consecutive run of identical failures.
// Every occurrence is logged.
func (s *StatusPoller) handleFailure(ctx context.Context, err error) {
	kind := homework.KindOf(err)
	message := fmt.Sprintf("%s: %v", failurePrefix, err)

	logWithError := s.logger.WithError(err).WithField("kind", kind.String())
	switch kind {
	case homework.KindConnectivity:
		logWithError.Error("Homework API is unreachable")
	case homework.KindDataFormat:
		logWithError.Error("Homework API returned malformed data")
	case homework.KindUnknownStatus:
		logWithError.Error("Homework API returned an unknown status")
	default:
		logWithError.Error("Poll cycle failed")
	}

	if message == s.lastError {
		logWithError.Debug("Error already reported, not resending")
		return
	}
	if s.send(ctx, message, logWithError) {
		s.lastError = message
	}
}

// send delivers text to the configured chat. Failures are logged and swallowed.
func (s *StatusPoller) send(ctx context.Context, text string, logCtx *logrus.Entry) bool {
	if err := s.telegramClient.SendMessage(ctx, s.chatID, text); err != nil {
		logCtx.WithError(err).WithField("chat_id", s.chatID).Error("Failed to send Telegram message")
		return false
	}
	logCtx.WithField("chat_id", s.chatID).Debugf("Message sent: %s", text)
	return true
}

// LastError returns the last failure message delivered to the chat, or "" after a successful cycle.
func (s *StatusPoller) LastError() string {
	return s.lastError
}

// Tracked returns how many distinct homeworks have been seen.
func (s *StatusPoller) Tracked() int {
	return s.tracker.Len()
}
