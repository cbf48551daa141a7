package storage

import (
	"sync"
	"time"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// QuizStorage provides in-memory storage for quiz sessions by user ID.
// At most one session is kept per user.
type QuizStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.QuizSession
}

// NewQuizStorage creates a new QuizStorage.
func NewQuizStorage() *QuizStorage {
	return &QuizStorage{
		sessions: make(map[int64]*entities.QuizSession),
	}
}

// Store saves the session, replacing any active session of the same user.
func (s *QuizStorage) Store(session *entities.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.UserID] = session
}

// Get retrieves the session of a user.
func (s *QuizStorage) Get(userID int64) (*entities.QuizSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[userID]
	return session, ok
}

// Update applies fn to the user's session under the write lock.
// It returns false if the user has no session.
func (s *QuizStorage) Update(userID int64, fn func(session *entities.QuizSession)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		return false
	}
	fn(session)
	return true
}

// Delete removes the session of a user.
func (s *QuizStorage) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}

// Len returns the number of stored sessions.
func (s *QuizStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// DeleteExpired removes sessions idle longer than ttl and returns how many were removed.
func (s *QuizStorage) DeleteExpired(ttl time.Duration, now time.Time) int {
	if ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for userID, session := range s.sessions {
		if session.Expired(ttl, now) {
			delete(s.sessions, userID)
			removed++
		}
	}
	return removed
}
