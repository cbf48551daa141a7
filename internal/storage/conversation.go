package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// ConversationStorage keeps the pending step of each user.
type ConversationStorage struct {
	mu    sync.RWMutex
	steps map[int64]entities.Conversation
}

func NewConversationStorage() *ConversationStorage {
	return &ConversationStorage{
		steps: make(map[int64]entities.Conversation),
	}
}

// Set records the pending step of a user. StepIdle clears it.
func (s *ConversationStorage) Set(userID int64, step entities.Step) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step == entities.StepIdle {
		delete(s.steps, userID)
		return
	}

	s.steps[userID] = entities.Conversation{
		UserID:    userID,
		Step:      step,
		UpdatedAt: time.Now(),
	}
}

// Get returns the pending step of a user, StepIdle if none.
func (s *ConversationStorage) Get(userID int64) entities.Step {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.steps[userID].Step
}

// Pop returns the pending step of a user and clears it.
func (s *ConversationStorage) Pop(userID int64) entities.Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.steps[userID]
	delete(s.steps, userID)
	return c.Step
}

// DeleteExpired removes steps older than ttl.
func (s *ConversationStorage) DeleteExpired(ttl time.Duration, now time.Time) int {
	if ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, c := range s.steps {
		if now.Sub(c.UpdatedAt) > ttl {
			delete(s.steps, userID)
			removed++
		}
	}
	return removed
}
