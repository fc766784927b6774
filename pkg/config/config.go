package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// InputSource selects where the user question is read from.
type InputSource string

const (
	InputStdin InputSource = "stdin"
	InputArgv  InputSource = "argv"
)

const (
	// DefaultModel is the fine-tuned navigation model used by the stdin build.
	DefaultModel         = "ft:gpt-4o-mini-2024-07-18:group-1-chatbotters:edu2:AUtL6885"
	DefaultPromptVariant = "refined"
	DefaultEnvFile       = "config/.env"
)

// Config holds all runtime configuration for the chatbot.
type Config struct {
	InputSource   InputSource
	Model         string
	PromptVariant string
	Interactive   bool
	Render        bool
	Verbose       bool

	EnvFile string
	APIKey  string
	BaseURL string
}

// DefaultConfig returns a baseline configuration without side effects.
func DefaultConfig() Config {
	return Config{
		InputSource:   InputStdin,
		Model:         DefaultModel,
		PromptVariant: DefaultPromptVariant,
		EnvFile:       DefaultEnvFile,
	}
}

// fileConfig mirrors the optional YAML configuration file.
type fileConfig struct {
	InputSource string `yaml:"input_source"`
	Model       string `yaml:"model"`
	Prompt      string `yaml:"prompt"`
	BaseURL     string `yaml:"base_url"`
	EnvFile     string `yaml:"env_file"`
	Interactive *bool  `yaml:"interactive"`
	Render      *bool  `yaml:"render"`
	Verbose     *bool  `yaml:"verbose"`
}

// LoadFile overlays values from a YAML file on top of base.
// An empty path returns base unchanged.
func LoadFile(path string, base Config) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := base
	if v := strings.TrimSpace(fc.InputSource); v != "" {
		cfg.InputSource = InputSource(v)
	}
	if v := strings.TrimSpace(fc.Model); v != "" {
		cfg.Model = v
	}
	if v := strings.TrimSpace(fc.Prompt); v != "" {
		cfg.PromptVariant = v
	}
	if v := strings.TrimSpace(fc.BaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(fc.EnvFile); v != "" {
		cfg.EnvFile = v
	}
	if fc.Interactive != nil {
		cfg.Interactive = *fc.Interactive
	}
	if fc.Render != nil {
		cfg.Render = *fc.Render
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	return cfg, nil
}

// LoadEnv loads cfg.EnvFile into the process environment (a missing file is
// ignored) and reads the OPENAI_* variables into the returned config.
func LoadEnv(cfg Config) (Config, error) {
	if envFile := strings.TrimSpace(cfg.EnvFile); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	cfg.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if baseURL := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); model != "" {
		cfg.Model = model
	}
	return cfg, nil
}

// Normalize sanitizes configuration values and applies defaults.
func Normalize(cfg Config) Config {
	cfg.InputSource = InputSource(strings.ToLower(strings.TrimSpace(string(cfg.InputSource))))
	cfg.Model = strings.TrimSpace(cfg.Model)
	cfg.PromptVariant = strings.ToLower(strings.TrimSpace(cfg.PromptVariant))
	cfg.EnvFile = strings.TrimSpace(cfg.EnvFile)
	cfg.APIKey = strings.TrimSpace(cfg.APIKey)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)

	if cfg.InputSource == "" {
		cfg.InputSource = InputStdin
	}
	if cfg.PromptVariant == "" {
		cfg.PromptVariant = DefaultPromptVariant
	}
	return cfg
}

// Validate reports configuration values the chatbot cannot run with.
// The API key is checked by the completion client, not here.
func Validate(cfg Config) error {
	switch cfg.InputSource {
	case InputStdin, InputArgv:
	default:
		return fmt.Errorf("unknown input source %q (want %q or %q)", cfg.InputSource, InputStdin, InputArgv)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return errors.New("Model is not set")
	}
	return nil
}
