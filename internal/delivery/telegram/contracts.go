package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/service"
)

// Sender delivers messages to Telegram. *tgbotapi.BotAPI implements it.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Requester performs Bot API calls without a message result. *tgbotapi.BotAPI implements it.
type Requester interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type SubscriberService interface {
	Subscribe(ctx context.Context, userID, chatID int64) error
}

type WordService interface {
	Levels() []string
	LevelFor(ctx context.Context, userID int64) string
	SelectLevel(ctx context.Context, userID, chatID int64, level string) error
	Teach(ctx context.Context, userID int64) (entities.Word, error)
}

type QuizService interface {
	Start(ctx context.Context, userID, chatID int64, level string) (*service.QuizStep, error)
	SubmitAnswer(ctx context.Context, userID int64, answer string) (*service.QuizStep, error)
	HasPendingQuestion(userID int64) bool
}

type ConversationStorage interface {
	Set(userID int64, step entities.Step)
	Get(userID int64) entities.Step
	Pop(userID int64) entities.Step
}
