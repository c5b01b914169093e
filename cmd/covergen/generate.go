package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/artinmajd/ai-cover-letter-generator/internal/ai"
	"github.com/artinmajd/ai-cover-letter-generator/internal/config"
	"github.com/artinmajd/ai-cover-letter-generator/internal/input"
	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
	"github.com/artinmajd/ai-cover-letter-generator/internal/output"
)

var (
	outputPath string
	modelName  string
	dryRun     bool
	noSave     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [resume] [job_description]",
	Short: "Generate a cover letter",
	Long: `Resolve the resume and job description, call OpenAI once, and print the
generated cover letter to stdout (or write it to --output).`,
	Args: cobra.MaximumNArgs(2),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

// addGenerateFlags registers the generation flags on cmd. They live on both
// the root command and the explicit generate subcommand.
func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the letter to this file instead of stdout")
	cmd.Flags().StringVarP(&modelName, "model", "m", "", "OpenAI model to use (default from config, gpt-4o)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the composed prompt and exit without calling the API")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "do not record this letter in the history database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if modelName != "" {
		cfg.AI.Model = modelName
	}

	resolver := input.Resolver{
		DefaultResumePath:  cfg.Defaults.ResumePath,
		DefaultJobDescPath: cfg.Defaults.JobDescriptionPath,
	}
	resume, jobDesc, err := resolver.Resolve(args)
	if err != nil {
		return err
	}

	logger.Debug("inputs resolved",
		"resume_bytes", len(resume),
		"job_description_bytes", len(jobDesc),
		"model", cfg.AI.Model,
	)
	if cfg.Contact.IsEmpty() {
		logger.Warn("no contact info configured; the letter will have no contact lines (set CONTACT_EMAIL etc.)")
	}

	httpClient := &http.Client{Timeout: cfg.AI.Timeout}
	provider := ai.NewOpenAIProvider(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model, httpClient)
	gen := ai.NewLetterGenerator(provider, ai.CoverLetterTemplate, logger)

	if dryRun {
		prompt, err := gen.Prompt(resume, jobDesc, cfg.Contact)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), prompt)
		return nil
	}

	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	letter, err := gen.Generate(cmd.Context(), resume, jobDesc, cfg.Contact)
	if err != nil {
		return err
	}

	if err := output.Write(os.Stdout, outputPath, letter); err != nil {
		return err
	}
	if outputPath != "" {
		logger.Info("cover letter saved", "path", outputPath)
	}

	if !noSave && cfg.History.Enabled {
		saveToHistory(cfg, jobDesc, letter, logger)
	}
	return nil
}

// saveToHistory records the letter. The letter has already been emitted, so a
// store failure is only a warning.
func saveToHistory(cfg *config.Config, jobDesc, letter string, logger *slog.Logger) {
	s := openStore(cfg, logger)
	defer s.Close()

	_, err := s.Save(model.LetterRecord{
		Model:    cfg.AI.Model,
		JobBrief: jobBrief(jobDesc),
		Letter:   letter,
	})
	if err != nil {
		logger.Warn("failed to record letter in history", "error", err)
	}
}

// jobBrief returns a short single-line excerpt of the job description for
// history listings.
func jobBrief(jobDesc string) string {
	line := strings.TrimSpace(jobDesc)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	const maxBrief = 80
	if r := []rune(line); len(r) > maxBrief {
		line = string(r[:maxBrief]) + "…"
	}
	return line
}
