// internal/infra/telegram/client.go
package telegram

import (
	"context"

	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"golang.org/x/time/rate"
	"gopkg.in/telebot.v3"
)

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot     *telebot.Bot
	limiter *rate.Limiter
}

var _ domainTelegram.Client = (*TelebotAdapter)(nil)

// NewTelebotAdapter wraps b. A nil limiter disables send pacing.
func NewTelebotAdapter(b *telebot.Bot, limiter *rate.Limiter) *TelebotAdapter {
	return &TelebotAdapter{bot: b, limiter: limiter}
}

// NewLimiter paces sends to ratePerSec messages per second with a burst of one.
func NewLimiter(ratePerSec float64) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(ratePerSec), 1)
}

// SendMessage sends a plain text message to chatID.
// Every failure is reported as a homework.KindSend error.
func (tba *TelebotAdapter) SendMessage(ctx context.Context, chatID int64, text string) error {
	if tba.limiter != nil {
		if err := tba.limiter.Wait(ctx); err != nil {
			return homework.NewError(homework.KindSend, "rate limiter", err)
		}
	}

	_, err := tba.bot.Send(telebot.ChatID(chatID), text, &telebot.SendOptions{DisableWebPagePreview: true})
	if err != nil {
		return homework.NewError(homework.KindSend, "", err)
	}
	return nil
}
