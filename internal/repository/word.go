package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
)

var (
	ErrVocabularySourceMissing = errors.New("vocabulary source missing")
	ErrUnknownLevel            = errors.New("unknown level")
	ErrEmptyVocabulary         = errors.New("empty vocabulary")
	ErrDuplicateLevel          = errors.New("duplicate level")
)

const utf8BOM = "\uFEFF"

// LevelSource describes where the vocabulary of one level is loaded from.
type LevelSource struct {
	Name string `mapstructure:"name"`
	Path string `mapstructure:"path"`
}

// WordRepository provides read-only access to the vocabulary, partitioned by level.
// It is populated once and never mutated, so it is safe for concurrent use.
type WordRepository struct {
	levels []entities.Level
	index  map[string]int
}

// NewWordRepository loads every configured level from its word list file.
// A missing file does not fail startup: the level is kept with an empty vocabulary.
func NewWordRepository(sources []LevelSource, logger *zap.Logger) (*WordRepository, error) {
	if len(sources) == 0 {
		sources = []LevelSource{{Name: entities.DefaultLevelName}}
	}

	levels := make([]entities.Level, 0, len(sources))
	for _, src := range sources {
		name := strings.TrimSpace(src.Name)
		if name == "" {
			name = entities.DefaultLevelName
		}

		words, err := LoadWords(src.Path)
		switch {
		case errors.Is(err, ErrVocabularySourceMissing):
			logger.Warn("vocabulary source missing, level stays empty",
				zap.String("level", name),
				zap.String("path", src.Path),
			)
		case err != nil:
			return nil, fmt.Errorf("load level %q: %w", name, err)
		default:
			logger.Info("vocabulary loaded",
				zap.String("level", name),
				zap.String("path", src.Path),
				zap.Int("words", len(words)),
			)
		}

		levels = append(levels, entities.Level{Name: name, Words: words})
	}

	return NewWordRepositoryFromLevels(levels...)
}

// NewWordRepositoryFromLevels builds a repository from already loaded levels.
func NewWordRepositoryFromLevels(levels ...entities.Level) (*WordRepository, error) {
	r := &WordRepository{
		levels: make([]entities.Level, 0, len(levels)),
		index:  make(map[string]int, len(levels)),
	}

	for _, l := range levels {
		if _, exists := r.index[l.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLevel, l.Name)
		}
		r.index[l.Name] = len(r.levels)
		r.levels = append(r.levels, l)
	}

	return r, nil
}

// Levels returns level names in configured order.
func (r *WordRepository) Levels() []string {
	names := make([]string, len(r.levels))
	for i, l := range r.levels {
		names[i] = l.Name
	}
	return names
}

// DefaultLevel returns the first configured level.
func (r *WordRepository) DefaultLevel() string {
	if len(r.levels) == 0 {
		return entities.DefaultLevelName
	}
	return r.levels[0].Name
}

// HasLevel reports whether name is a known level.
func (r *WordRepository) HasLevel(name string) bool {
	_, ok := r.index[name]
	return ok
}

// GetLevel returns the level with the given name.
func (r *WordRepository) GetLevel(name string) (entities.Level, error) {
	i, ok := r.index[name]
	if !ok {
		return entities.Level{}, fmt.Errorf("%w: %s", ErrUnknownLevel, name)
	}
	return r.levels[i], nil
}

// WordsFor returns the vocabulary of a level.
func (r *WordRepository) WordsFor(level string) ([]entities.Word, error) {
	l, err := r.GetLevel(level)
	if err != nil {
		return nil, err
	}
	return l.Words, nil
}

// GetRandom returns a random word of the level.
func (r *WordRepository) GetRandom(level string) (entities.Word, error) {
	words, err := r.WordsFor(level)
	if err != nil {
		return entities.Word{}, err
	}
	if len(words) == 0 {
		return entities.Word{}, fmt.Errorf("%w: %s", ErrEmptyVocabulary, level)
	}
	return words[rand.Intn(len(words))], nil
}

// GetRandomAny picks a random non-empty level and a random word within it.
func (r *WordRepository) GetRandomAny() (string, entities.Word, error) {
	candidates := make([]int, 0, len(r.levels))
	for i, l := range r.levels {
		if len(l.Words) > 0 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return "", entities.Word{}, ErrEmptyVocabulary
	}

	l := r.levels[candidates[rand.Intn(len(candidates))]]
	return l.Name, l.Words[rand.Intn(len(l.Words))], nil
}

// LoadWords reads a word list file.
// It returns ErrVocabularySourceMissing if the file does not exist.
func LoadWords(path string) ([]entities.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrVocabularySourceMissing, path)
		}
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	return ParseWords(f)
}

// ParseWords parses "term=translation" lines. Blank lines, lines without "="
// and lines with an empty side are skipped. A repeated term keeps its first
// position and takes the last translation.
func ParseWords(r io.Reader) ([]entities.Word, error) {
	var words []entities.Word
	positions := make(map[string]int)

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, utf8BOM)
			first = false
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		term, translation, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		term = strings.TrimSpace(term)
		translation = strings.TrimSpace(translation)
		if term == "" || translation == "" {
			continue
		}

		if i, exists := positions[term]; exists {
			words[i].Translation = translation
			continue
		}

		positions[term] = len(words)
		words = append(words, entities.Word{Term: term, Translation: translation})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}
