// Package app wires configuration, storage, services and the Telegram
// transport into a running bot.
package app

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/config"
	"github.com/aliskhannn/vocabulary-bot/internal/delivery/telegram"
	"github.com/aliskhannn/vocabulary-bot/internal/logger"
	"github.com/aliskhannn/vocabulary-bot/internal/repository"
	"github.com/aliskhannn/vocabulary-bot/internal/service"
	"github.com/aliskhannn/vocabulary-bot/internal/storage"
)

// Run starts the bot and blocks until ctx is cancelled or a component fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if err := tgbotapi.SetLogger(logger.NewBotLogger(log)); err != nil {
		return fmt.Errorf("set bot api logger: %w", err)
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return fmt.Errorf("create bot api: %w", err)
	}
	bot.Debug = cfg.Telegram.Debug

	log.Info("authorized on account", zap.String("username", bot.Self.UserName))

	words, err := repository.NewWordRepository(cfg.Words.LevelSources(), log)
	if err != nil {
		return fmt.Errorf("load words: %w", err)
	}

	loc, err := cfg.Broadcast.Location()
	if err != nil {
		return err
	}

	// Storage.
	sessions := storage.NewQuizStorage()
	subscribers := storage.NewSubscriberStorage()
	conversations := storage.NewConversationStorage()

	// Services.
	subscriberService := service.NewSubscriberService(subscribers, log)
	wordService := service.NewWordService(words, subscribers, log)
	quizService := service.NewQuizService(words, sessions, cfg.Quiz.Length, cfg.Quiz.SessionTTL, log)
	broadcastService := service.NewBroadcastService(words, subscribers, cfg.Broadcast.Concurrency, log)

	handler := telegram.NewHandler(
		bot,
		log,
		subscriberService,
		wordService,
		quizService,
		conversations,
		telegram.Options{FeedbackURL: cfg.FeedbackURL},
	)
	broadcastService.SetNotifier(handler)

	if err := telegram.SetCommands(bot); err != nil {
		log.Warn("failed to set bot commands", zap.Error(err))
	}

	scheduler := service.NewScheduler(loc, log)
	if err := scheduler.Add(ctx, "daily_words", cfg.Broadcast.Schedule, service.BroadcastJob(broadcastService, log)); err != nil {
		return err
	}
	if cfg.Quiz.SessionTTL > 0 {
		if err := scheduler.Add(ctx, "session_cleanup", cfg.Quiz.CleanupSchedule, service.CleanupJob(quizService, conversations)); err != nil {
			return err
		}
	}

	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError()

	p.Go(func(ctx context.Context) error {
		scheduler.Run(ctx)
		return nil
	})

	switch cfg.Telegram.Mode {
	case config.ModeWebhook:
		server, err := telegram.NewWebhookServer(cfg.Telegram.WebhookURL, cfg.Telegram.ListenAddr, log)
		if err != nil {
			return err
		}
		if err := telegram.RegisterWebhook(bot, cfg.Telegram.WebhookURL); err != nil {
			return fmt.Errorf("register webhook: %w", err)
		}

		p.Go(server.Run)
		p.Go(func(ctx context.Context) error {
			return ignoreCanceled(handler.Run(ctx, server.Updates()))
		})
	default:
		if err := telegram.RemoveWebhook(bot); err != nil {
			log.Warn("failed to remove webhook", zap.Error(err))
		}

		p.Go(func(ctx context.Context) error {
			defer bot.StopReceivingUpdates()
			return ignoreCanceled(handler.Run(ctx, telegram.NewPollingUpdates(bot)))
		})
	}

	log.Info("bot started", zap.String("mode", cfg.Telegram.Mode))

	if err := p.Wait(); err != nil {
		return err
	}

	log.Info("bot stopped")
	return nil
}

func ignoreCanceled(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
