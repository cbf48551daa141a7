package logger

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aliskhannn/vocabulary-bot/internal/config"
)

var _ tgbotapi.BotLogger = (*BotLogger)(nil)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "production"} {
		l, err := New(&config.Config{Env: env})
		require.NoError(t, err)
		assert.NotNil(t, l)
	}
}

func TestBotLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	bl := NewBotLogger(zap.New(core))

	bl.Printf("Endpoint: %s, params: %v\n", "getMe", map[string]string{})
	bl.Println("response", 200)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Endpoint: getMe, params: map[]", entries[0].Message)
	assert.Equal(t, "response 200", entries[1].Message)
	assert.Equal(t, "tgbotapi", entries[0].LoggerName)
}
