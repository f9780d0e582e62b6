package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all runtime configuration.
type Config struct {
	// LogFile is where the TUI writes its structured log.
	// Default: $XDG_STATE_HOME/verdict/verdict.log.
	LogFile string `yaml:"log_file"`

	// LogLevel is one of debug, info, warn, error. Default: info.
	LogLevel string `yaml:"log_level"`

	// CasesFile optionally replaces the bundled case catalog.
	CasesFile string `yaml:"cases_file"`

	// MarkdownStyle is the glamour style for prose screens. Default: dark.
	MarkdownStyle string `yaml:"markdown_style"`

	Clipboard ClipboardConfig `yaml:"clipboard"`
}

// ClipboardConfig configures the share-summary copy action.
type ClipboardConfig struct {
	// OSC52 enables the terminal escape-sequence fallback. Default: true.
	OSC52 bool `yaml:"osc52"`

	// Flash is how long the "Copied!" notice stays up. Default: 2s.
	Flash time.Duration `yaml:"flash"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:      "info",
		MarkdownStyle: "dark",
		Clipboard: ClipboardConfig{
			OSC52: true,
			Flash: 2 * time.Second,
		},
	}
}

// Load builds the configuration in priority order:
// 1. defaults
// 2. YAML file at path (or the default path; a missing default file is fine)
// 3. VERDICT_* environment variables
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("VERDICT_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	// A missing default config file is the common case.
	if err := cfg.readFile(path); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return cfg, err
	}

	cfg.applyEnv()

	if cfg.LogFile == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return cfg, err
		}
		cfg.LogFile = p
	}

	return cfg, cfg.Validate()
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("VERDICT_LOG"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("VERDICT_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("VERDICT_CASES"); v != "" {
		c.CasesFile = v
	}
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}
	if c.Clipboard.Flash <= 0 {
		return fmt.Errorf("clipboard flash must be positive, got %s", c.Clipboard.Flash)
	}
	return nil
}

// DefaultPath resolves the config file path:
// 1. $XDG_CONFIG_HOME/verdict/config.yaml
// 2. ~/.config/verdict/config.yaml
func DefaultPath() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "verdict", "config.yaml"), nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/verdict/verdict.log
// 2. ~/.local/state/verdict/verdict.log
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "verdict", "verdict.log"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
