package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

var ErrUpdatesClosed = errors.New("updates channel closed")

type Options struct {
	FeedbackURL string
}

type Handler struct {
	sender            Sender
	logger            *zap.Logger
	subscriberService SubscriberService
	wordService       WordService
	quizService       QuizService
	conversations     ConversationStorage
	opts              Options
}

func NewHandler(
	sender Sender,
	logger *zap.Logger,
	subscriberService SubscriberService,
	wordService WordService,
	quizService QuizService,
	conversations ConversationStorage,
	opts Options,
) *Handler {
	return &Handler{
		sender:            sender,
		logger:            logger,
		subscriberService: subscriberService,
		wordService:       wordService,
		quizService:       quizService,
		conversations:     conversations,
		opts:              opts,
	}
}

// Run handles updates one at a time until ctx is done or the channel closes.
func (h *Handler) Run(ctx context.Context, updates <-chan tgbotapi.Update) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return ErrUpdatesClosed
			}
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		h.logger.Debug("update without user message", zap.Int("update_id", update.UpdateID))
		return
	}

	msg := update.Message
	userID, chatID := msg.From.ID, msg.Chat.ID

	h.logger.Debug("update received",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
		zap.String("text", msg.Text),
	)

	if msg.IsCommand() {
		a := resolveCommand(msg.Command())
		if a == actionNone {
			h.logger.Debug("unknown command ignored",
				zap.Int64("user_id", userID),
				zap.String("command", msg.Command()),
			)
			return
		}
		h.dispatch(ctx, a, userID, chatID)
		return
	}

	h.HandleText(ctx, userID, chatID, msg.Text)
}

// HandleStart subscribes the user and shows the main menu.
func (h *Handler) HandleStart(ctx context.Context, userID, chatID int64) {
	h.dispatch(ctx, actionStart, userID, chatID)
}

// HandleText routes free text. Menu labels take precedence over pending
// continuations; otherwise a pending level choice or quiz question consumes
// the text. Bare menu keys are only recognised with nothing pending, so an
// answer that spells one is still scored. Anything else is ignored.
func (h *Handler) HandleText(ctx context.Context, userID, chatID int64, text string) {
	pending := h.hasContinuation(userID)

	a := resolveLabel(text)
	if a == actionNone && !pending {
		a = resolveText(text)
	}
	if a != actionNone {
		h.dispatch(ctx, a, userID, chatID)
		return
	}

	if pending {
		h.HandleScheduledAnswer(ctx, userID, chatID, text)
		return
	}

	h.logger.Debug("unrecognized text ignored", zap.Int64("user_id", userID))
}

// HandleScheduledAnswer handles the reply to a level prompt or a quiz question.
func (h *Handler) HandleScheduledAnswer(ctx context.Context, userID, chatID int64, text string) {
	if h.conversations.Pop(userID) == entities.StepAwaitingLevel {
		_ = h.withErrorHandling("level_selection", userID, h.handleLevelSelection(userID, text))(ctx, chatID)
		return
	}

	_ = h.withErrorHandling("quiz_answer", userID, h.handleQuizAnswer(userID, text))(ctx, chatID)
}

func (h *Handler) hasContinuation(userID int64) bool {
	return h.conversations.Get(userID) != entities.StepIdle || h.quizService.HasPendingQuestion(userID)
}

// dispatch runs a menu or command action. Any pending level prompt is
// dropped first, whichever way the action was triggered.
func (h *Handler) dispatch(ctx context.Context, a action, userID, chatID int64) {
	h.conversations.Set(userID, entities.StepIdle)

	h.logger.Debug("dispatching action",
		zap.Int64("user_id", userID),
		zap.Stringer("action", a),
	)

	var fn HandlerFunc
	switch a {
	case actionStart:
		fn = h.handleStart(userID)
	case actionInfo:
		fn = h.handleInfo()
	case actionFeedback:
		fn = h.handleFeedback()
	case actionTeachWord:
		fn = h.handleTeachWord(userID)
	case actionChooseLevel:
		fn = h.handleChooseLevel(userID)
	case actionQuiz:
		fn = h.handleQuiz(userID)
	default:
		return
	}

	_ = h.withErrorHandling(a.String(), userID, fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newMenuMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.sender.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
		return err
	}
	return nil
}
