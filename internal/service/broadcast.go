package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

const defaultBroadcastConcurrency = 8

var ErrNotifierNotSet = errors.New("notifier not initialized")

// BroadcastService sends the word of the day to every subscriber.
type BroadcastService struct {
	words       WordRepository
	subscribers SubscriberStorage
	notifier    BroadcastNotifier
	concurrency int
	logger      *zap.Logger
}

// NewBroadcastService creates a new broadcast service.
func NewBroadcastService(
	words WordRepository,
	subscribers SubscriberStorage,
	concurrency int,
	logger *zap.Logger,
) *BroadcastService {
	if concurrency <= 0 {
		concurrency = defaultBroadcastConcurrency
	}

	return &BroadcastService{
		words:       words,
		subscribers: subscribers,
		concurrency: concurrency,
		logger:      logger,
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *BroadcastService) SetNotifier(notifier BroadcastNotifier) {
	s.notifier = notifier
}

// SendDailyWords delivers a word of the day to each subscriber. Every subscriber
// gets an independently chosen level and word. A failed delivery is logged and
// counted but never stops the others.
func (s *BroadcastService) SendDailyWords(ctx context.Context) (entities.BroadcastReport, error) {
	report := entities.BroadcastReport{RunID: uuid.NewString()}

	subs := s.subscribers.List()
	report.Subscribers = len(subs)
	if len(subs) == 0 {
		s.logger.Info("no subscribers, skipping broadcast", zap.String("run_id", report.RunID))
		return report, nil
	}

	if s.notifier == nil {
		return report, ErrNotifierNotSet
	}

	s.logger.Info("broadcasting word of the day",
		zap.String("run_id", report.RunID),
		zap.Int("subscribers", len(subs)),
	)

	var sent, failed atomic.Int64
	p := pool.New().WithMaxGoroutines(s.concurrency)

	for _, sub := range subs {
		p.Go(func() {
			if ctx.Err() != nil {
				failed.Add(1)
				return
			}

			var pc panics.Catcher
			var err error
			pc.Try(func() { err = s.deliver(sub) })
			if r := pc.Recovered(); r != nil {
				err = r.AsError()
			}

			if err != nil {
				failed.Add(1)
				s.logger.Error("failed to deliver word of the day",
					zap.String("run_id", report.RunID),
					zap.Int64("user_id", sub.UserID),
					zap.Error(err),
				)
				return
			}
			sent.Add(1)
		})
	}
	p.Wait()

	report.Sent = int(sent.Load())
	report.Failed = int(failed.Load())

	s.logger.Info("broadcast finished",
		zap.String("run_id", report.RunID),
		zap.Int("sent", report.Sent),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}

func (s *BroadcastService) deliver(sub entities.Subscriber) error {
	level, word, err := s.words.GetRandomAny()
	if err != nil {
		return fmt.Errorf("pick word: %w", err)
	}

	payload := entities.BroadcastPayload{Level: level, Word: word}
	if err := s.notifier.SendWordOfTheDay(sub.ChatID, payload); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
