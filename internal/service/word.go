package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// WordService teaches words and manages the user's selected level.
type WordService struct {
	words       WordRepository
	subscribers SubscriberStorage
	logger      *zap.Logger
}

func NewWordService(words WordRepository, subscribers SubscriberStorage, logger *zap.Logger) *WordService {
	return &WordService{
		words:       words,
		subscribers: subscribers,
		logger:      logger,
	}
}

// Levels returns the known level names.
func (s *WordService) Levels() []string {
	return s.words.Levels()
}

// LevelFor returns the user's selected level, falling back to the default level
// when nothing is selected or the selection is no longer known.
func (s *WordService) LevelFor(_ context.Context, userID int64) string {
	sub, ok := s.subscribers.Get(userID)
	if ok && sub.Level != "" && s.words.HasLevel(sub.Level) {
		return sub.Level
	}
	return s.words.DefaultLevel()
}

// SelectLevel validates the level name and stores it as the user's level.
func (s *WordService) SelectLevel(ctx context.Context, userID, chatID int64, level string) error {
	if !s.words.HasLevel(level) {
		return fmt.Errorf("%w: %q", ErrInvalidLevelSelection, level)
	}

	if !s.subscribers.SetLevel(userID, level) {
		s.subscribers.Add(*entities.NewSubscriber(userID, chatID))
		s.subscribers.SetLevel(userID, level)
	}

	s.logger.Info("level selected",
		zap.Int64("user_id", userID),
		zap.String("level", level),
	)
	return nil
}

// Teach returns a random word from the user's level.
func (s *WordService) Teach(ctx context.Context, userID int64) (entities.Word, error) {
	return s.words.GetRandom(s.LevelFor(ctx, userID))
}
