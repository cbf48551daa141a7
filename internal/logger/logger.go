// Package logger builds the application's zap logger.
package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/config"
)

// New returns a JSON production logger for the production environment and a
// human-readable development logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg.Env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return l.With(zap.String("env", cfg.Env)), nil
}

// BotLogger routes the Bot API client's log output into zap.
// It satisfies tgbotapi.BotLogger.
type BotLogger struct {
	logger *zap.Logger
}

func NewBotLogger(l *zap.Logger) *BotLogger {
	return &BotLogger{logger: l.Named("tgbotapi")}
}

func (b *BotLogger) Println(v ...interface{}) {
	b.logger.Debug(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (b *BotLogger) Printf(format string, v ...interface{}) {
	b.logger.Debug(strings.TrimSuffix(fmt.Sprintf(format, v...), "\n"))
}
