package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/app"
	"github.com/aliskhannn/vocabulary-bot/internal/config"
	"github.com/aliskhannn/vocabulary-bot/internal/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "vocabot",
		Short:        "Vocabulary quiz bot for Telegram",
		Long:         `vocabot teaches vocabulary pairs, runs five question tests and sends a word of the day to subscribers.`,
		SilenceUsage: true,
		RunE:         runBot,
	}

	rootCmd.AddCommand(newWordsCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBot(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, log); err != nil {
		log.Error("bot failed", zap.Error(err))
		return err
	}

	log.Info("shutdown signal received")
	return nil
}
