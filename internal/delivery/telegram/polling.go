package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const pollTimeout = 60

// NewPollingUpdates starts long polling and returns the update channel.
func NewPollingUpdates(bot *tgbotapi.BotAPI) tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout

	return bot.GetUpdatesChan(u)
}

// RegisterWebhook points Telegram at webhookURL.
func RegisterWebhook(r Requester, webhookURL string) error {
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return err
	}

	_, err = r.Request(wh)
	return err
}

// RemoveWebhook clears a previously registered webhook so long polling works.
func RemoveWebhook(r Requester) error {
	_, err := r.Request(tgbotapi.DeleteWebhookConfig{})
	return err
}
