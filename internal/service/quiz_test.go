package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/repository"
	"github.com/aliskhannn/vocabulary-bot/internal/storage"
)

var czechWords = []entities.Word{
	{Term: "fish", Translation: "ryba"},
	{Term: "replay", Translation: "přehrát"},
	{Term: "bow", Translation: "luk"},
	{Term: "minute", Translation: "minuta"},
}

func newTestWords(t *testing.T, levels ...entities.Level) *repository.WordRepository {
	t.Helper()
	if len(levels) == 0 {
		levels = []entities.Level{{Name: entities.DefaultLevelName, Words: czechWords}}
	}
	repo, err := repository.NewWordRepositoryFromLevels(levels...)
	require.NoError(t, err)
	return repo
}

func newTestQuizService(t *testing.T, ttl time.Duration) (*QuizService, *storage.QuizStorage) {
	t.Helper()
	sessions := storage.NewQuizStorage()
	return NewQuizService(newTestWords(t), sessions, entities.DefaultQuizLength, ttl, zaptest.NewLogger(t)), sessions
}

func TestQuizService_AllCorrect(t *testing.T) {
	svc, sessions := newTestQuizService(t, 0)
	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 1, entities.DefaultLevelName)
	require.NoError(t, err)
	require.NotNil(t, step.Next)
	assert.Equal(t, 1, step.Asked)
	assert.Nil(t, step.Answered)

	for i := 1; i <= entities.DefaultQuizLength; i++ {
		prev := step
		step, err = svc.SubmitAnswer(ctx, 1, prev.Next.Correct)
		require.NoError(t, err)

		assert.True(t, step.Correct)
		assert.Equal(t, prev.Next, step.Answered)
		assert.Equal(t, i, step.Score)
		assert.GreaterOrEqual(t, step.Score, prev.Score)

		if i < entities.DefaultQuizLength {
			assert.Equal(t, prev.Asked+1, step.Asked)
			assert.False(t, step.Finished)
			require.NotNil(t, step.Next)
		}
	}

	assert.True(t, step.Finished)
	assert.Nil(t, step.Next)
	assert.Equal(t, 5, step.Score)
	assert.Equal(t, 5, step.Asked)
	assert.Equal(t, 0, sessions.Len())
}

func TestQuizService_WrongAnswersKeepScore(t *testing.T) {
	svc, sessions := newTestQuizService(t, 0)
	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 1, entities.DefaultLevelName)
	require.NoError(t, err)

	answers := []bool{true, false, true, false, false}
	for i, right := range answers {
		answer := "definitely wrong"
		if right {
			answer = step.Next.Correct
		}

		prevScore := step.Score
		step, err = svc.SubmitAnswer(ctx, 1, answer)
		require.NoError(t, err)

		assert.Equal(t, right, step.Correct, "answer %d", i)
		if right {
			assert.Equal(t, prevScore+1, step.Score)
		} else {
			assert.Equal(t, prevScore, step.Score)
		}
	}

	assert.True(t, step.Finished)
	assert.Equal(t, 2, step.Score)
	assert.Equal(t, 0, sessions.Len())
}

func TestQuizService_ExactMatchOnly(t *testing.T) {
	svc, _ := newTestQuizService(t, 0)
	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 1, entities.DefaultLevelName)
	require.NoError(t, err)

	step, err = svc.SubmitAnswer(ctx, 1, " "+step.Next.Correct)
	require.NoError(t, err)
	assert.False(t, step.Correct)
	assert.Equal(t, 0, step.Score)
}

func TestQuizService_QuestionOptions(t *testing.T) {
	words := []entities.Word{
		{Term: "fish", Translation: "ryba"},
		{Term: "replay", Translation: "přehrát"},
		{Term: "bow", Translation: "luk"},
		{Term: "minute", Translation: "minuta"},
		{Term: "time", Translation: "čas"},
		{Term: "cheese", Translation: "sýr"},
	}
	level := entities.Level{Name: "Easy", Words: words}
	svc := NewQuizService(newTestWords(t, level), storage.NewQuizStorage(), 5, 0, zaptest.NewLogger(t))
	ctx := context.Background()

	vocabulary := map[string]string{}
	for _, w := range words {
		vocabulary[w.Term] = w.Translation
	}

	for range 50 {
		step, err := svc.Start(ctx, 1, 1, "Easy")
		require.NoError(t, err)

		q := step.Next
		assert.Equal(t, vocabulary[q.Term], q.Correct)
		require.Len(t, q.Options, OptionsCount)

		seen := map[string]bool{}
		matches := 0
		for _, opt := range q.Options {
			assert.False(t, seen[opt], "duplicate option %q", opt)
			seen[opt] = true
			assert.Contains(t, level.Translations(), opt)
			if opt == q.Correct {
				matches++
			}
		}
		assert.Equal(t, 1, matches)
	}
}

func TestQuizService_InsufficientVocabulary(t *testing.T) {
	small := entities.Level{Name: "Tiny", Words: czechWords[:3]}
	dup := entities.Level{Name: "Dup", Words: append(append([]entities.Word{}, czechWords[:3]...),
		entities.Word{Term: "fishes", Translation: "ryba"})}
	sessions := storage.NewQuizStorage()
	svc := NewQuizService(newTestWords(t, small, dup), sessions, 5, 0, zaptest.NewLogger(t))

	for _, level := range []string{"Tiny", "Dup"} {
		_, err := svc.Start(context.Background(), 1, 1, level)
		assert.ErrorIs(t, err, ErrInsufficientVocabulary, level)
		assert.Equal(t, 0, sessions.Len())

		var vocabErr *InsufficientVocabularyError
		require.ErrorAs(t, err, &vocabErr)
		assert.Equal(t, level, vocabErr.Level)
		assert.Equal(t, 3, vocabErr.Distinct)
	}
}

func TestQuizService_UnknownLevel(t *testing.T) {
	svc, _ := newTestQuizService(t, 0)

	_, err := svc.Start(context.Background(), 1, 1, "Level 9")
	assert.ErrorIs(t, err, repository.ErrUnknownLevel)
}

func TestQuizService_NoSession(t *testing.T) {
	svc, sessions := newTestQuizService(t, 0)

	_, err := svc.SubmitAnswer(context.Background(), 42, "ryba")
	assert.ErrorIs(t, err, ErrNoActiveQuizSession)
	assert.Equal(t, 0, sessions.Len())
	assert.False(t, svc.HasPendingQuestion(42))
}

func TestQuizService_RestartResetsSession(t *testing.T) {
	svc, sessions := newTestQuizService(t, 0)
	ctx := context.Background()

	step, err := svc.Start(ctx, 1, 1, entities.DefaultLevelName)
	require.NoError(t, err)
	_, err = svc.SubmitAnswer(ctx, 1, step.Next.Correct)
	require.NoError(t, err)

	step, err = svc.Start(ctx, 1, 1, entities.DefaultLevelName)
	require.NoError(t, err)
	assert.Equal(t, 0, step.Score)
	assert.Equal(t, 1, step.Asked)
	assert.Equal(t, 1, sessions.Len())
}

func TestQuizService_SessionTTL(t *testing.T) {
	svc, sessions := newTestQuizService(t, 30*time.Minute)
	ctx := context.Background()

	_, err := svc.Start(ctx, 1, 1, entities.DefaultLevelName)
	require.NoError(t, err)
	_, err = svc.Start(ctx, 2, 2, entities.DefaultLevelName)
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(time.Hour) }

	_, err = svc.SubmitAnswer(ctx, 1, "ryba")
	assert.ErrorIs(t, err, ErrSessionExpired)
	_, ok := sessions.Get(1)
	assert.False(t, ok)

	assert.Equal(t, 1, svc.Cleanup(ctx))
	assert.Equal(t, 0, sessions.Len())
}

func TestGenerateOptions(t *testing.T) {
	translations := []string{"ryba", "luk", "čas", "sýr", "minuta", "luk"}

	for range 100 {
		opts, err := GenerateOptions("ryba", translations)
		require.NoError(t, err)
		require.Len(t, opts, OptionsCount)
		assert.ElementsMatch(t, uniq(opts), opts)
		assert.Contains(t, opts, "ryba")
	}

	_, err := GenerateOptions("ryba", []string{"ryba", "luk", "luk", "čas"})
	assert.ErrorIs(t, err, ErrInsufficientVocabulary)
}

func uniq(in []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
