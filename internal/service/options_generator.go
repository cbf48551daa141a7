package service

import (
	"fmt"
	"math/rand"
)

// OptionsCount is the number of options offered for every question.
const OptionsCount = 4

// GenerateOptions builds shuffled multiple choice options for the correct translation.
// Distractors are sampled without replacement from translations, skipping the correct
// one and duplicates. It fails with ErrInsufficientVocabulary instead of offering
// fewer options.
func GenerateOptions(correct string, translations []string) ([]string, error) {
	candidates := make([]string, 0, len(translations))
	seen := map[string]struct{}{correct: {}}
	for _, t := range translations {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		candidates = append(candidates, t)
	}

	need := OptionsCount - 1
	if len(candidates) < need {
		return nil, fmt.Errorf("%w: need %d distractors, have %d", ErrInsufficientVocabulary, need, len(candidates))
	}

	// Partial Fisher-Yates: the first need elements become the sample.
	for i := 0; i < need; i++ {
		j := i + rand.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}

	options := make([]string, 0, OptionsCount)
	options = append(options, candidates[:need]...)
	options = append(options, correct)

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options, nil
}
