package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestWebhookServer_Health(t *testing.T) {
	s, err := NewWebhookServer("https://bot.example.com/tg/hook", ":0", zaptest.NewLogger(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWebhookServer_ReceivesUpdates(t *testing.T) {
	s, err := NewWebhookServer("https://bot.example.com/tg/hook", ":0", zaptest.NewLogger(t))
	require.NoError(t, err)

	body := `{"update_id":10,"message":{"message_id":1,"date":0,"text":"English test 🤓","from":{"id":42,"is_bot":false,"first_name":"A"},"chat":{"id":4242,"type":"private"}}}`
	req := httptest.NewRequest(http.MethodPost, "/tg/hook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case update := <-s.Updates():
		assert.Equal(t, 10, update.UpdateID)
		require.NotNil(t, update.Message)
		assert.Equal(t, int64(42), update.Message.From.ID)
		assert.Equal(t, int64(4242), update.Message.Chat.ID)
		assert.Equal(t, "English test 🤓", update.Message.Text)
	case <-time.After(time.Second):
		t.Fatal("update was not published")
	}
}

func TestWebhookServer_RejectsInvalidPayload(t *testing.T) {
	s, err := NewWebhookServer("https://bot.example.com/tg/hook", ":0", zaptest.NewLogger(t))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tg/hook", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, s.Updates())
}

func TestWebhookServer_UnknownPath(t *testing.T) {
	s, err := NewWebhookServer("https://bot.example.com/tg/hook", ":0", zaptest.NewLogger(t))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/other", strings.NewReader("{}")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebhookServer_RunStopsOnCancel(t *testing.T) {
	s, err := NewWebhookServer("https://bot.example.com/", "127.0.0.1:0", zaptest.NewLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("webhook server did not stop")
	}
}
