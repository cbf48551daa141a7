package service

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

// QuizStep is the outcome of starting a quiz or answering a question.
type QuizStep struct {
	SessionID string
	Level     string

	// Answered is the question just answered, nil when the quiz has just started.
	Answered *entities.Question
	Correct  bool

	// Next is the question to ask, nil when the quiz is finished.
	Next *entities.Question

	Score    int
	Asked    int
	Total    int
	Finished bool
}

type QuizService struct {
	words    WordRepository
	sessions QuizStorage
	length   int
	ttl      time.Duration
	now      func() time.Time
	logger   *zap.Logger
}

func NewQuizService(
	words WordRepository,
	sessions QuizStorage,
	length int,
	ttl time.Duration,
	logger *zap.Logger,
) *QuizService {
	if length <= 0 {
		length = entities.DefaultQuizLength
	}

	return &QuizService{
		words:    words,
		sessions: sessions,
		length:   length,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Start creates a new session on the level, replacing any active one, and asks
// the first question. On error no session is left behind.
func (s *QuizService) Start(_ context.Context, userID, chatID int64, level string) (*QuizStep, error) {
	lvl, err := s.words.GetLevel(level)
	if err != nil {
		return nil, err
	}

	s.sessions.Delete(userID)

	translations := lvl.Translations()
	if len(translations) < OptionsCount {
		return nil, &InsufficientVocabularyError{Level: level, Distinct: len(translations)}
	}

	session := entities.NewQuizSession(userID, chatID, level, s.length)
	q, err := s.newQuestion(lvl)
	if err != nil {
		return nil, err
	}
	session.Ask(q)
	s.sessions.Store(session)

	s.logger.Info("quiz started",
		zap.Int64("user_id", userID),
		zap.String("session_id", session.ID.String()),
		zap.String("level", level),
	)

	return stepFrom(session, nil, false), nil
}

// SubmitAnswer checks the answer to the pending question, updates the score and
// either asks the next question or completes the quiz, deleting the session.
func (s *QuizService) SubmitAnswer(_ context.Context, userID int64, answer string) (*QuizStep, error) {
	session, ok := s.sessions.Get(userID)
	if !ok || session.Pending == nil {
		return nil, ErrNoActiveQuizSession
	}

	if session.Expired(s.ttl, s.now()) {
		s.sessions.Delete(userID)
		s.logger.Info("quiz session expired",
			zap.Int64("user_id", userID),
			zap.String("session_id", session.ID.String()),
		)
		return nil, ErrSessionExpired
	}

	lvl, err := s.words.GetLevel(session.Level)
	if err != nil {
		s.sessions.Delete(userID)
		return nil, err
	}

	var (
		step    *QuizStep
		stepErr error
	)
	updated := s.sessions.Update(userID, func(session *entities.QuizSession) {
		answered, correct := session.Answer(answer)
		if answered == nil {
			stepErr = ErrNoActiveQuizSession
			return
		}

		if session.Finished() {
			step = stepFrom(session, answered, correct)
			return
		}

		q, err := s.newQuestion(lvl)
		if err != nil {
			stepErr = err
			return
		}
		session.Ask(q)
		step = stepFrom(session, answered, correct)
	})
	if !updated {
		return nil, ErrNoActiveQuizSession
	}
	if stepErr != nil {
		s.sessions.Delete(userID)
		return nil, stepErr
	}

	if step.Finished {
		s.sessions.Delete(userID)
		s.logger.Info("quiz finished",
			zap.Int64("user_id", userID),
			zap.String("session_id", step.SessionID),
			zap.Int("score", step.Score),
			zap.Int("total", step.Total),
		)
	}

	return step, nil
}

// HasPendingQuestion reports whether the user's next message answers a question.
func (s *QuizService) HasPendingQuestion(userID int64) bool {
	session, ok := s.sessions.Get(userID)
	return ok && session.Pending != nil
}

// Cleanup removes sessions idle longer than the configured TTL.
func (s *QuizService) Cleanup(_ context.Context) int {
	removed := s.sessions.DeleteExpired(s.ttl, s.now())
	if removed > 0 {
		s.logger.Info("expired quiz sessions removed", zap.Int("count", removed))
	}
	return removed
}

func (s *QuizService) newQuestion(lvl entities.Level) (*entities.Question, error) {
	if len(lvl.Words) == 0 {
		return nil, &InsufficientVocabularyError{Level: lvl.Name}
	}

	w := lvl.Words[rand.Intn(len(lvl.Words))]
	translations := lvl.Translations()
	options, err := GenerateOptions(w.Translation, translations)
	if errors.Is(err, ErrInsufficientVocabulary) {
		return nil, &InsufficientVocabularyError{Level: lvl.Name, Distinct: len(translations)}
	}
	if err != nil {
		return nil, err
	}

	return &entities.Question{
		Term:    w.Term,
		Correct: w.Translation,
		Options: options,
	}, nil
}

func stepFrom(session *entities.QuizSession, answered *entities.Question, correct bool) *QuizStep {
	return &QuizStep{
		SessionID: session.ID.String(),
		Level:     session.Level,
		Answered:  answered,
		Correct:   correct,
		Next:      session.Pending,
		Score:     session.Score,
		Asked:     session.Asked,
		Total:     session.Total,
		Finished:  session.Finished() && session.Pending == nil,
	}
}
