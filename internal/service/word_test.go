package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/storage"
)

func TestWordService_SelectLevel(t *testing.T) {
	subs := storage.NewSubscriberStorage()
	words := newTestWords(t,
		entities.Level{Name: "Level 1", Words: czechWords[:2]},
		entities.Level{Name: "Level 2", Words: czechWords[2:]},
	)
	svc := NewWordService(words, subs, zaptest.NewLogger(t))
	ctx := context.Background()

	require.NoError(t, NewSubscriberService(subs, zaptest.NewLogger(t)).Subscribe(ctx, 1, 1))
	assert.Equal(t, "Level 1", svc.LevelFor(ctx, 1))

	err := svc.SelectLevel(ctx, 1, 1, "Level 3")
	assert.ErrorIs(t, err, ErrInvalidLevelSelection)
	assert.Equal(t, "Level 1", svc.LevelFor(ctx, 1))

	require.NoError(t, svc.SelectLevel(ctx, 1, 1, "Level 2"))
	assert.Equal(t, "Level 2", svc.LevelFor(ctx, 1))

	for range 10 {
		w, err := svc.Teach(ctx, 1)
		require.NoError(t, err)
		assert.Contains(t, czechWords[2:], w)
	}
}

func TestWordService_TeachDefaultLevel(t *testing.T) {
	svc := NewWordService(newTestWords(t), storage.NewSubscriberStorage(), zaptest.NewLogger(t))

	w, err := svc.Teach(context.Background(), 99)
	require.NoError(t, err)
	assert.Contains(t, czechWords, w)
}
