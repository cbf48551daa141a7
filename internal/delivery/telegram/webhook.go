package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	webhookBuffer   = 100
	shutdownTimeout = 5 * time.Second
)

// WebhookServer receives updates pushed by Telegram and exposes a health check.
type WebhookServer struct {
	engine  *gin.Engine
	server  *http.Server
	updates chan tgbotapi.Update
	path    string
	logger  *zap.Logger
}

// NewWebhookServer creates a server listening on addr. Updates are accepted on
// the path of webhookURL.
func NewWebhookServer(webhookURL, addr string, logger *zap.Logger) (*WebhookServer, error) {
	u, err := url.Parse(webhookURL)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}

	path := u.Path
	if path == "" {
		path = "/"
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	s := &WebhookServer{
		engine:  engine,
		updates: make(chan tgbotapi.Update, webhookBuffer),
		path:    path,
		logger:  logger,
	}

	engine.GET("/healthz", s.health)
	engine.POST(path, s.receive)

	s.server = &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Updates returns the channel received updates are published to.
func (s *WebhookServer) Updates() <-chan tgbotapi.Update {
	return s.updates
}

// Handler exposes the HTTP handler.
func (s *WebhookServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *WebhookServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("webhook server listening",
			zap.String("addr", s.server.Addr),
			zap.String("path", s.path),
		)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown webhook server: %w", err)
	}
	return nil
}

func (s *WebhookServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *WebhookServer) receive(c *gin.Context) {
	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		s.logger.Warn("invalid webhook payload", zap.Error(err))
		c.Status(http.StatusBadRequest)
		return
	}

	select {
	case s.updates <- update:
		c.Status(http.StatusOK)
	case <-c.Request.Context().Done():
		c.Status(http.StatusServiceUnavailable)
	}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
