package service

import (
	"time"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// WordRepository provides read-only vocabulary access.
type WordRepository interface {
	Levels() []string
	DefaultLevel() string
	HasLevel(name string) bool
	GetLevel(name string) (entities.Level, error)
	GetRandom(level string) (entities.Word, error)
	GetRandomAny() (string, entities.Word, error)
}

// QuizStorage keeps quiz sessions by user ID.
type QuizStorage interface {
	Store(session *entities.QuizSession)
	Get(userID int64) (*entities.QuizSession, bool)
	Update(userID int64, fn func(session *entities.QuizSession)) bool
	Delete(userID int64)
	DeleteExpired(ttl time.Duration, now time.Time) int
}

// ExpiringStorage drops entries idle longer than ttl.
type ExpiringStorage interface {
	DeleteExpired(ttl time.Duration, now time.Time) int
}

// SubscriberStorage is the registry of broadcast subscribers.
type SubscriberStorage interface {
	Add(sub entities.Subscriber) bool
	Get(userID int64) (entities.Subscriber, bool)
	SetLevel(userID int64, level string) bool
	List() []entities.Subscriber
}

// BroadcastNotifier delivers the word of the day to a chat.
type BroadcastNotifier interface {
	SendWordOfTheDay(chatID int64, payload entities.BroadcastPayload) error
}
