package ai

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/template"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// LetterGenerator composes the prompt and performs the single LLM call.
type LetterGenerator struct {
	provider LLMProvider
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewLetterGenerator creates a generator using the given provider and prompt template.
func NewLetterGenerator(provider LLMProvider, tmpl *template.Template, logger *slog.Logger) *LetterGenerator {
	return &LetterGenerator{
		provider: provider,
		tmpl:     tmpl,
		logger:   logger,
	}
}

// promptData is the shape rendered into the prompt template.
type promptData struct {
	Resume         string
	JobDescription string
	ContactLines   []string
}

// Prompt renders the full prompt for the given inputs without calling the
// provider. Used by --dry-run and exercised directly in tests.
func (g *LetterGenerator) Prompt(resume, jobDesc string, contact model.ContactInfo) (string, error) {
	var buf bytes.Buffer
	err := g.tmpl.Execute(&buf, promptData{
		Resume:         resume,
		JobDescription: jobDesc,
		ContactLines:   contactLines(contact),
	})
	if err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// Generate produces the cover letter text for the given inputs.
func (g *LetterGenerator) Generate(ctx context.Context, resume, jobDesc string, contact model.ContactInfo) (string, error) {
	prompt, err := g.Prompt(resume, jobDesc, contact)
	if err != nil {
		return "", err
	}

	g.logger.Debug("calling llm", "prompt_bytes", len(prompt))

	raw, err := g.provider.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	letter := strings.TrimSpace(raw)
	if letter == "" {
		return "", &model.RemoteError{Err: fmt.Errorf("llm returned an empty letter")}
	}
	return letter, nil
}

// contactLines renders one "Label: value" line per non-empty contact field.
// Field order is fixed so the prompt stays deterministic.
func contactLines(c model.ContactInfo) []string {
	var lines []string
	if c.Email != "" {
		lines = append(lines, "Email: "+c.Email)
	}
	if c.Phone != "" {
		lines = append(lines, "Phone: "+c.Phone)
	}
	if c.LinkedIn != "" {
		lines = append(lines, "LinkedIn: "+c.LinkedIn)
	}
	if c.Website != "" {
		lines = append(lines, "Website: "+c.Website)
	}
	return lines
}
