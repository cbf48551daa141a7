package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aliskhannn/vocabulary-bot/internal/domain/entities"
	"github.com/aliskhannn/vocabulary-bot/internal/storage"
)

type fakeNotifier struct {
	mu      sync.Mutex
	sent    map[int64]entities.BroadcastPayload
	failFor map[int64]bool
	panicOn map[int64]bool
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		sent:    map[int64]entities.BroadcastPayload{},
		failFor: map[int64]bool{},
		panicOn: map[int64]bool{},
	}
}

func (n *fakeNotifier) SendWordOfTheDay(chatID int64, payload entities.BroadcastPayload) error {
	if n.panicOn[chatID] {
		panic("transport exploded")
	}
	if n.failFor[chatID] {
		return errors.New("bot was blocked by the user")
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent[chatID] = payload
	return nil
}

func TestBroadcastService_NoSubscribers(t *testing.T) {
	notifier := newFakeNotifier()
	svc := NewBroadcastService(newTestWords(t), storage.NewSubscriberStorage(), 2, zaptest.NewLogger(t))
	svc.SetNotifier(notifier)

	report, err := svc.SendDailyWords(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Subscribers)
	assert.Equal(t, 0, report.Sent)
	assert.Empty(t, notifier.sent)
}

func TestBroadcastService_IsolatesFailures(t *testing.T) {
	subs := storage.NewSubscriberStorage()
	for id := int64(1); id <= 6; id++ {
		subs.Add(*entities.NewSubscriber(id, id*10))
	}

	notifier := newFakeNotifier()
	notifier.failFor[20] = true
	notifier.panicOn[40] = true

	levels := []entities.Level{
		{Name: "Easy", Words: czechWords[:2]},
		{Name: "Hard", Words: czechWords[2:]},
		{Name: "Empty"},
	}
	svc := NewBroadcastService(newTestWords(t, levels...), subs, 3, zaptest.NewLogger(t))
	svc.SetNotifier(notifier)

	report, err := svc.SendDailyWords(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 6, report.Subscribers)
	assert.Equal(t, 4, report.Sent)
	assert.Equal(t, 2, report.Failed)

	for _, chatID := range []int64{10, 30, 50, 60} {
		payload, ok := notifier.sent[chatID]
		require.True(t, ok, "chat %d", chatID)
		assert.Contains(t, []string{"Easy", "Hard"}, payload.Level)
		assert.Contains(t, czechWords, payload.Word)
	}
}

func TestBroadcastService_NotifierNotSet(t *testing.T) {
	subs := storage.NewSubscriberStorage()
	subs.Add(*entities.NewSubscriber(1, 1))

	svc := NewBroadcastService(newTestWords(t), subs, 1, zaptest.NewLogger(t))
	_, err := svc.SendDailyWords(context.Background())
	assert.ErrorIs(t, err, ErrNotifierNotSet)
}
