package telegram

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// SendWordOfTheDay implements service.BroadcastNotifier.
func (h *Handler) SendWordOfTheDay(chatID int64, payload entities.BroadcastPayload) error {
	if _, err := h.sender.Send(newPlainMessage(chatID, formatWordOfTheDay(payload))); err != nil {
		return err
	}

	h.logger.Debug("word of the day sent",
		zap.Int64("chat_id", chatID),
		zap.String("level", payload.Level),
		zap.String("term", payload.Word.Term),
	)
	return nil
}
