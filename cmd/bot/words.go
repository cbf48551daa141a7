package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/vocabulary-bot/internal/config"
	"github.com/aliskhannn/vocabulary-bot/internal/repository"
	"github.com/aliskhannn/vocabulary-bot/internal/service"
)

func newWordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Validate vocabulary files and print per-level stats",
		Long:  `Load every configured level and report its word count and whether it has enough distinct translations for a test.`,
		RunE:  runWords,
	}
}

func runWords(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadWords()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	words, err := repository.NewWordRepository(cfg.Words.LevelSources(), log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tWORDS\tTRANSLATIONS\tQUIZ")
	for _, name := range words.Levels() {
		lvl, err := words.GetLevel(name)
		if err != nil {
			return err
		}

		quiz := "ok"
		if n := len(lvl.Translations()); n < service.OptionsCount {
			quiz = fmt.Sprintf("needs %d", service.OptionsCount)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, len(lvl.Words), len(lvl.Translations()), quiz)
	}
	return w.Flush()
}
