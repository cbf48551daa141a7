package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLevelSelection  = errors.New("invalid level selection")
	ErrNoActiveQuizSession    = errors.New("no active quiz session")
	ErrSessionExpired         = errors.New("quiz session expired")
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary")
)

// InsufficientVocabularyError reports a level with too few distinct
// translations to build a question. It matches ErrInsufficientVocabulary.
type InsufficientVocabularyError struct {
	Level    string
	Distinct int
}

func (e *InsufficientVocabularyError) Error() string {
	return fmt.Sprintf("%s: level %q has %d distinct translations", ErrInsufficientVocabulary, e.Level, e.Distinct)
}

func (e *InsufficientVocabularyError) Unwrap() error {
	return ErrInsufficientVocabulary
}
