package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OPENAI_API_KEY", "CONTACT_EMAIL", "CONTACT_PHONE", "CONTACT_LINKEDIN", "CONTACT_WEBSITE"} {
		t.Setenv(key, "")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "covergen.yaml")
	content := `
defaults:
  resume: cv.pdf
  job_description: jd.txt
ai:
  model: gpt-4o-mini
  api_key: file-key
  timeout: 90s
history:
  enabled: false
  db_path: letters.db
contact:
  email: jane@example.com
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Defaults.ResumePath != "cv.pdf" || cfg.Defaults.JobDescriptionPath != "jd.txt" {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if cfg.AI.Model != "gpt-4o-mini" || cfg.AI.APIKey != "file-key" {
		t.Errorf("AI = %+v", cfg.AI)
	}
	if cfg.AI.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.AI.Timeout)
	}
	if cfg.History.Enabled || cfg.History.DBPath != "letters.db" {
		t.Errorf("History = %+v", cfg.History)
	}
	if cfg.Contact.Email != "jane@example.com" {
		t.Errorf("Contact = %+v", cfg.Contact)
	}
}

func TestDefault_FillsEverything(t *testing.T) {
	clearEnv(t)

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cfg.Defaults.ResumePath != "resume.pdf" || cfg.Defaults.JobDescriptionPath != "job_description.txt" {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if cfg.AI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.AI.Model)
	}
	if cfg.AI.BaseURL != "https://api.openai.com/v1" {
		t.Errorf("BaseURL = %q", cfg.AI.BaseURL)
	}
	if cfg.AI.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v, want 60s", cfg.AI.Timeout)
	}
	if !cfg.History.Enabled {
		t.Error("history should be enabled by default")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("CONTACT_EMAIL", "env@example.com")

	dir := t.TempDir()
	path := filepath.Join(dir, "covergen.yaml")
	content := `
ai:
  api_key: file-key
contact:
  email: file@example.com
  phone: "+1 555 0100"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AI.APIKey != "env-key" {
		t.Errorf("APIKey = %q, env must win", cfg.AI.APIKey)
	}
	if cfg.Contact.Email != "env@example.com" {
		t.Errorf("Email = %q, env must win", cfg.Contact.Email)
	}
	if cfg.Contact.Phone != "+1 555 0100" {
		t.Errorf("Phone = %q, file value must survive when env is unset", cfg.Contact.Phone)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *model.ConfigError", err)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("ai: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *model.ConfigError", err)
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "covergen.yaml")
	if err := os.WriteFile(path, []byte("ai:\n  timeout: soon\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var cfgErr *model.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want *model.ConfigError", err)
	}
}

func TestRequireAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	var authErr *model.AuthError
	if err := cfg.RequireAPIKey(); !errors.As(err, &authErr) {
		t.Fatalf("err = %v, want *model.AuthError when no key is set", err)
	}

	cfg.AI.APIKey = "k"
	if err := cfg.RequireAPIKey(); err != nil {
		t.Errorf("RequireAPIKey with key set: %v", err)
	}
}
