package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

type SubscriberService struct {
	subscribers SubscriberStorage
	logger      *zap.Logger
}

func NewSubscriberService(subscribers SubscriberStorage, logger *zap.Logger) *SubscriberService {
	return &SubscriberService{subscribers: subscribers, logger: logger}
}

// Subscribe opts the user in to the daily broadcast. Repeated calls are no-ops.
func (s *SubscriberService) Subscribe(_ context.Context, userID, chatID int64) error {
	if s.subscribers.Add(*entities.NewSubscriber(userID, chatID)) {
		s.logger.Info("user subscribed",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
		)
	}
	return nil
}
