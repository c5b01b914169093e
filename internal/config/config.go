package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/artinmajd/ai-cover-letter-generator/internal/model"
)

// Config is the root configuration for covergen, loaded once at startup and
// immutable afterwards.
type Config struct {
	Defaults DefaultsConfig
	AI       AIConfig
	History  HistoryConfig
	Contact  model.ContactInfo
}

// DefaultsConfig holds the fallback input files used when positional
// arguments are absent.
type DefaultsConfig struct {
	ResumePath         string
	JobDescriptionPath string
}

// AIConfig controls the OpenAI call.
type AIConfig struct {
	BaseURL string        // defaults to https://api.openai.com/v1
	Model   string        // OpenAI model identifier, e.g. "gpt-4o"
	APIKey  string        // from OPENAI_API_KEY (or config file)
	Timeout time.Duration // per-request timeout
}

// HistoryConfig controls the local letter history database.
type HistoryConfig struct {
	Enabled bool
	DBPath  string
}

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultModel         = "gpt-4o"
	defaultTimeout       = 60 * time.Second
	defaultResumePath    = "resume.pdf"
	defaultJobDescPath   = "job_description.txt"
	defaultHistoryDB     = "covergen.db"
)

// rawConfig is used for YAML unmarshaling (snake_case fields and duration as string).
type rawConfig struct {
	Defaults rawDefaultsConfig `yaml:"defaults"`
	AI       rawAIConfig       `yaml:"ai"`
	History  rawHistoryConfig  `yaml:"history"`
	Contact  rawContactConfig  `yaml:"contact"`
}

type rawDefaultsConfig struct {
	Resume         string `yaml:"resume"`
	JobDescription string `yaml:"job_description"`
}

type rawAIConfig struct {
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
	APIKey  string `yaml:"api_key"`
	Timeout string `yaml:"timeout"`
}

type rawHistoryConfig struct {
	Enabled *bool  `yaml:"enabled"` // pointer so an absent key keeps the default (on)
	DBPath  string `yaml:"db_path"`
}

type rawContactConfig struct {
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	LinkedIn string `yaml:"linkedin"`
	Website  string `yaml:"website"`
}

// Default returns the configuration used when no config file is present.
// Environment variables are still applied.
func Default() (*Config, error) {
	return finish(rawConfig{})
}

// Load reads and parses the YAML config file at path, applies environment
// overrides, validates the result, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.ConfigError{Err: fmt.Errorf("read config: %w", err)}
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, &model.ConfigError{Err: fmt.Errorf("parse config: %w", err)}
	}

	return finish(raw)
}

func finish(raw rawConfig) (*Config, error) {
	timeout := defaultTimeout
	if raw.AI.Timeout != "" {
		var err error
		timeout, err = time.ParseDuration(raw.AI.Timeout)
		if err != nil {
			return nil, &model.ConfigError{Err: fmt.Errorf("parse ai.timeout %q: %w", raw.AI.Timeout, err)}
		}
	}

	cfg := &Config{
		Defaults: DefaultsConfig{
			ResumePath:         orDefault(raw.Defaults.Resume, defaultResumePath),
			JobDescriptionPath: orDefault(raw.Defaults.JobDescription, defaultJobDescPath),
		},
		AI: AIConfig{
			BaseURL: orDefault(raw.AI.BaseURL, defaultOpenAIBaseURL),
			Model:   orDefault(raw.AI.Model, defaultModel),
			APIKey:  raw.AI.APIKey,
			Timeout: timeout,
		},
		History: HistoryConfig{
			Enabled: raw.History.Enabled == nil || *raw.History.Enabled,
			DBPath:  orDefault(raw.History.DBPath, defaultHistoryDB),
		},
		Contact: model.ContactInfo{
			Email:    raw.Contact.Email,
			Phone:    raw.Contact.Phone,
			LinkedIn: raw.Contact.LinkedIn,
			Website:  raw.Contact.Website,
		},
	}

	applyEnv(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv overlays process environment variables onto cfg. Environment
// values win over config-file values so that the documented variables
// (OPENAI_API_KEY, CONTACT_*) always take effect.
func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("CONTACT_EMAIL"); v != "" {
		cfg.Contact.Email = v
	}
	if v := os.Getenv("CONTACT_PHONE"); v != "" {
		cfg.Contact.Phone = v
	}
	if v := os.Getenv("CONTACT_LINKEDIN"); v != "" {
		cfg.Contact.LinkedIn = v
	}
	if v := os.Getenv("CONTACT_WEBSITE"); v != "" {
		cfg.Contact.Website = v
	}
}

// The API key is deliberately not validated here: history browsing and
// --dry-run work without one. Generation checks it via RequireAPIKey.
func validate(cfg *Config) error {
	if cfg.AI.BaseURL == "" {
		return &model.ConfigError{Err: errors.New("ai.base_url must not be empty")}
	}
	if cfg.AI.Model == "" {
		return &model.ConfigError{Err: errors.New("ai.model must not be empty")}
	}
	if cfg.AI.Timeout <= 0 {
		return &model.ConfigError{Err: fmt.Errorf("ai.timeout must be positive, got %v", cfg.AI.Timeout)}
	}
	return nil
}

// RequireAPIKey fails when no credential is available for the remote call.
func (c *Config) RequireAPIKey() error {
	if c.AI.APIKey == "" {
		return &model.AuthError{Err: errors.New("OPENAI_API_KEY is not set (put it in the environment or a .env file)")}
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
