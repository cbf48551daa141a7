package telegram

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/repository"
	"github.com/aliskhannn/vocabulary-bot/internal/service"
)

// handleStart subscribes the user to the word of the day and shows the main menu.
func (h *Handler) handleStart(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.subscriberService.Subscribe(ctx, userID, chatID); err != nil {
			h.logger.Error("failed to subscribe user",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
		}

		return h.send(newMenuMessage(chatID, msgWelcome))
	}
}

func (h *Handler) handleInfo() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgInfo))
	}
}

func (h *Handler) handleFeedback() HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, fmt.Sprintf(msgFeedback, h.opts.FeedbackURL)))
	}
}

// handleTeachWord sends a random word from the user's level.
func (h *Handler) handleTeachWord(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		w, err := h.wordService.Teach(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrEmptyVocabulary) {
				return h.send(newPlainMessage(chatID, msgNoWords))
			}
			return err
		}

		return h.send(newPlainMessage(chatID, formatNewWord(w)))
	}
}

// handleChooseLevel prompts with the known levels; the reply is handled by
// handleLevelSelection.
func (h *Handler) handleChooseLevel(userID int64) HandlerFunc {
	return func(_ context.Context, chatID int64) error {
		h.conversations.Set(userID, entities.StepAwaitingLevel)

		msg := newPlainMessage(chatID, msgChooseLevel)
		msg.ReplyMarkup = buildLevelKeyboard(h.wordService.Levels())
		return h.send(msg)
	}
}

// handleLevelSelection validates the level name typed after the prompt.
func (h *Handler) handleLevelSelection(userID int64, level string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := h.wordService.SelectLevel(ctx, userID, chatID, level)
		if errors.Is(err, service.ErrInvalidLevelSelection) {
			h.logger.Debug("invalid level selected",
				zap.Int64("user_id", userID),
				zap.String("level", level),
			)
			return h.send(newMenuMessage(chatID, msgInvalidLevel))
		}
		if err != nil {
			return err
		}

		return h.send(newMenuMessage(chatID, fmt.Sprintf(msgLevelSelected, level)))
	}
}

// handleQuiz starts a new quiz on the user's level, replacing an active one.
func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		level := h.wordService.LevelFor(ctx, userID)

		step, err := h.quizService.Start(ctx, userID, chatID, level)
		if err != nil {
			if errors.Is(err, service.ErrInsufficientVocabulary) {
				h.logger.Warn("not enough words for a quiz",
					zap.Int64("user_id", userID),
					zap.String("level", level),
					zap.Error(err),
				)
				return h.send(newMenuMessage(chatID, formatTooFewWords(err, level)))
			}
			return err
		}

		if err := h.send(newPlainMessage(chatID, fmt.Sprintf(msgQuizStarted, step.Total))); err != nil {
			return err
		}

		return h.sendQuizQuestion(chatID, step)
	}
}

// handleQuizAnswer scores the reply to the pending question and continues or finishes the quiz.
func (h *Handler) handleQuizAnswer(userID int64, answer string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		step, err := h.quizService.SubmitAnswer(ctx, userID, answer)
		switch {
		case errors.Is(err, service.ErrNoActiveQuizSession), errors.Is(err, service.ErrSessionExpired):
			return h.send(newMenuMessage(chatID, msgRestartTest))
		case errors.Is(err, service.ErrInsufficientVocabulary):
			return h.send(newMenuMessage(chatID, formatTooFewWords(err, "")))
		case err != nil:
			return err
		}

		if err := h.send(newPlainMessage(chatID, formatAnswerFeedback(step))); err != nil {
			return err
		}

		if step.Finished {
			return h.send(newMenuMessage(chatID, formatQuizResult(step)))
		}

		return h.sendQuizQuestion(chatID, step)
	}
}

func (h *Handler) sendQuizQuestion(chatID int64, step *service.QuizStep) error {
	msg := newMessage(chatID, formatQuizQuestion(step))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(step.Next.Options)
	return h.send(msg)
}
