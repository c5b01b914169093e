package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artinmajd/ai-cover-letter-generator/internal/history"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Browse saved letters interactively (TUI)",
	Long:  "Opens an interactive browser over the history database: pick a letter, read it, scroll.",
	RunE:  runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	s := openStore(cfg, logger)
	defer s.Close()

	recs, err := s.List()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println("No letters in history yet. Generate one first.")
		return nil
	}

	return history.RunBrowser(recs)
}
