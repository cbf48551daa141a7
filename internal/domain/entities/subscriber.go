package entities

import "time"

// Subscriber is a user opted in to the word-of-the-day broadcast.
type Subscriber struct {
	UserID       int64  // Telegram user ID
	ChatID       int64  // chat the broadcast is delivered to
	Level        string // selected level, empty means the default level
	SubscribedAt time.Time
}

func NewSubscriber(userID, chatID int64) *Subscriber {
	return &Subscriber{
		UserID:       userID,
		ChatID:       chatID,
		SubscribedAt: time.Now(),
	}
}
