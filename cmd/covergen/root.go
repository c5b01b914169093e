package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/artinmajd/ai-cover-letter-generator/internal/config"
	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
	"github.com/artinmajd/ai-cover-letter-generator/internal/store"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "covergen [resume] [job_description]",
	Short: "AI cover letter generator",
	Long: `Covergen reads a resume (text or PDF) and a job description and asks
OpenAI to write a tailored cover letter.

Each positional argument may be a file path or literal text. With no
arguments the default resume and job-description files are used.`,
	Args: cobra.MaximumNArgs(2),
	// Default to `generate` so that `covergen resume.pdf jd.txt` works
	// without naming the subcommand.
	RunE:         runGenerate,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: COVERGEN_CONFIG env var or ./covergen.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	addGenerateFlags(rootCmd)
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > COVERGEN_CONFIG env var > "./covergen.yaml".
// A missing default config file is fine; built-in defaults apply.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("COVERGEN_CONFIG"); env != "" {
			path = env
		} else if _, err := os.Stat("covergen.yaml"); err != nil {
			return config.Default()
		} else {
			path = "covergen.yaml"
		}
	}
	return config.Load(path)
}

// setupLogger logs to stderr; stdout is reserved for the generated letter.
func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// openStore returns the letter history store configured in cfg, or a NopStore
// when history is off.
func openStore(cfg *config.Config, logger *slog.Logger) model.LetterStore {
	if !cfg.History.Enabled {
		return store.NewNopStore()
	}
	s, err := store.NewSQLiteStore(cfg.History.DBPath)
	if err != nil {
		logger.Warn("failed to open history store, continuing without history", "error", err)
		return store.NewNopStore()
	}
	return s
}
