// Package config loads munassist configuration from an optional YAML file
// with environment-variable overrides. The only required value is the
// Gemini API key; everything else has a default.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all munassist configuration.
type Config struct {
	Gemini  GeminiConfig  `yaml:"gemini"`
	Logging LoggingConfig `yaml:"logging"`
}

// GeminiConfig configures the generative service client.
type GeminiConfig struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	TextModel   string `yaml:"text_model"`   // search-grounded research, topic breakdown
	ProModel    string `yaml:"pro_model"`    // speech, position paper, analysis, debate, problem solving
	ImageModel  string `yaml:"image_model"`  // image editing
	ImagenModel string `yaml:"imagen_model"` // pure image generation
	Timeout     string `yaml:"timeout"`
}

// LoggingConfig configures diagnostic logging.
type LoggingConfig struct {
	DebugMode bool   `yaml:"debug_mode"`
	Level     string `yaml:"level"`
	Dir       string `yaml:"dir"`
}

// DefaultConfig returns the built-in defaults. Model names follow the
// per-feature choices of the original application.
func DefaultConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			BaseURL:     "https://generativelanguage.googleapis.com/v1beta",
			TextModel:   "gemini-2.5-flash",
			ProModel:    "gemini-2.5-pro",
			ImageModel:  "gemini-2.5-flash-image",
			ImagenModel: "imagen-4.0-generate-001",
			Timeout:     "120s",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults if
// the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".munassist", "config.yaml")
	}
	return filepath.Join(home, ".munassist", "config.yaml")
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.Gemini.APIKey = key
	}
	if url := os.Getenv("GEMINI_BASE_URL"); url != "" {
		c.Gemini.BaseURL = url
	}
	if dir := os.Getenv("MUNASSIST_LOG_DIR"); dir != "" {
		c.Logging.Dir = dir
	}
	if os.Getenv("MUNASSIST_DEBUG") == "1" {
		c.Logging.DebugMode = true
	}
}

// Validate checks that the configuration is usable. A missing API key is
// fatal: the process refuses to initialize without a credential.
func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set (configure gemini.api_key or the environment variable)")
	}
	if c.Gemini.BaseURL == "" {
		return fmt.Errorf("gemini.base_url must not be empty")
	}
	return nil
}

// GeminiTimeout returns the HTTP client timeout as a duration.
func (c *Config) GeminiTimeout() time.Duration {
	d, err := time.ParseDuration(c.Gemini.Timeout)
	if err != nil {
		return 120 * time.Second
	}
	return d
}

// LogDir returns the directory for diagnostic logs, defaulting to
// ~/.munassist next to the config file.
func (c *Config) LogDir() string {
	if c.Logging.Dir != "" {
		return c.Logging.Dir
	}
	return filepath.Dir(DefaultPath())
}
