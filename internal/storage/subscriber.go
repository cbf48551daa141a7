package storage

import (
	"sort"
	"sync"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// SubscriberStorage is the in-memory registry of broadcast subscribers.
// Subscribers are never removed.
type SubscriberStorage struct {
	mu          sync.RWMutex
	subscribers map[int64]entities.Subscriber
}

func NewSubscriberStorage() *SubscriberStorage {
	return &SubscriberStorage{
		subscribers: make(map[int64]entities.Subscriber),
	}
}

// Add registers a subscriber. It returns true if the user was not subscribed yet.
// An existing subscriber keeps its level; only the chat ID is refreshed.
func (s *SubscriberStorage) Add(sub entities.Subscriber) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, exists := s.subscribers[sub.UserID]
	if exists {
		prev.ChatID = sub.ChatID
		s.subscribers[sub.UserID] = prev
		return false
	}

	s.subscribers[sub.UserID] = sub
	return true
}

// Get returns the subscriber with the given user ID.
func (s *SubscriberStorage) Get(userID int64) (entities.Subscriber, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.subscribers[userID]
	return sub, ok
}

// SetLevel stores the selected level of a subscriber.
// It returns false if the user is not subscribed.
func (s *SubscriberStorage) SetLevel(userID int64, level string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.subscribers[userID]
	if !ok {
		return false
	}
	sub.Level = level
	s.subscribers[userID] = sub
	return true
}

// List returns a snapshot of all subscribers ordered by subscription time.
func (s *SubscriberStorage) List() []entities.Subscriber {
	s.mu.RLock()
	out := make([]entities.Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		out = append(out, sub)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].SubscribedAt.Equal(out[j].SubscribedAt) {
			return out[i].UserID < out[j].UserID
		}
		return out[i].SubscribedAt.Before(out[j].SubscribedAt)
	})
	return out
}

// Len returns the number of subscribers.
func (s *SubscriberStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}
