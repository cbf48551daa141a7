package entities

import (
	"time"

	"github.com/google/uuid"
)

// DefaultQuizLength is the number of questions in a quiz.
const DefaultQuizLength = 5

// QuizSession represents a single in-progress quiz of a user.
// It tracks the score, the number of questions asked and the pending question.
type QuizSession struct {
	ID        uuid.UUID // session ID used in logs
	UserID    int64     // user ID who started the quiz
	ChatID    int64     // chat the quiz runs in
	Level     string    // level the questions are drawn from
	Score     int       // number of correct answers so far
	Asked     int       // number of questions asked so far
	Total     int       // total number of questions in the quiz
	Pending   *Question // question waiting for an answer
	StartedAt time.Time // timestamp when the quiz started
	UpdatedAt time.Time // timestamp of the last question or answer
}

// NewQuizSession creates a new quiz session for a user on the given level.
func NewQuizSession(userID, chatID int64, level string, total int) *QuizSession {
	if total <= 0 {
		total = DefaultQuizLength
	}

	now := time.Now()
	return &QuizSession{
		ID:        uuid.New(),
		UserID:    userID,
		ChatID:    chatID,
		Level:     level,
		Total:     total,
		StartedAt: now,
		UpdatedAt: now,
	}
}

// Ask registers q as the pending question and counts it as asked.
func (qs *QuizSession) Ask(q *Question) {
	qs.Pending = q
	qs.Asked++
	qs.UpdatedAt = time.Now()
}

// Answer checks the answer against the pending question and clears it.
// It returns the answered question and whether the answer was correct.
func (qs *QuizSession) Answer(answer string) (*Question, bool) {
	q := qs.Pending
	if q == nil {
		return nil, false
	}

	correct := q.IsCorrect(answer)
	if correct {
		qs.Score++
	}
	qs.Pending = nil
	qs.UpdatedAt = time.Now()

	return q, correct
}

// Finished reports whether all questions have been asked.
func (qs *QuizSession) Finished() bool {
	return qs.Asked >= qs.Total
}

// Expired reports whether the session has been idle longer than ttl.
// A non-positive ttl never expires.
func (qs *QuizSession) Expired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.Sub(qs.UpdatedAt) > ttl
}
