package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var pruneOlderThan time.Duration

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated cover letters",
	Long:  "Reads the history database and prints a table of saved letters, newest first.",
	RunE:  runHistory,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old letters from the history",
	RunE:  runHistoryPrune,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)
	historyPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 30*24*time.Hour, "delete letters older than this duration")
}

func runHistory(cmd *cobra.Command, args []string) error {
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
		fmt.Println("No letters in history yet.")
		return nil
	}

	fmt.Printf("%-5s %-17s %-14s %s\n", "ID", "Created", "Model", "Job")
	fmt.Println(strings.Repeat("─", 70))
	for _, rec := range recs {
		fmt.Printf("%-5d %-17s %-14s %s\n",
			rec.ID,
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			rec.Model,
			rec.JobBrief,
		)
	}
	fmt.Printf("\n%d letter(s). Use `covergen review` to read one.\n", len(recs))
	return nil
}

func runHistoryPrune(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	s := openStore(cfg, logger)
	defer s.Close()

	n, err := s.Prune(pruneOlderThan)
	if err != nil {
		return err
	}
	fmt.Printf("Pruned %d letter(s) older than %v.\n", n, pruneOlderThan)
	return nil
}
