package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-authform/pkg/validation"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// DefaultUsersPath is the file store location used when none is configured.
const DefaultUsersPath = "authform-users.yaml"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the root configuration.
type Config struct {
	Rules validation.RuleSet `yaml:"rules"`
	Store StoreConfig        `yaml:"store"`
	Log   LogConfig          `yaml:"log"`
}

// StoreConfig selects the user store backend.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads path. An empty path or a missing file yields Default.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML (or JSON) document, applies defaults and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default values for missing config fields.
func (c *Config) setDefaults() {
	if c.Rules.Preset == "" {
		c.Rules.Preset = validation.PresetStandard
	}
	c.Rules.Preset = strings.ToLower(strings.TrimSpace(c.Rules.Preset))
	if c.Store.Driver == "" {
		c.Store.Driver = DriverFile
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if c.Store.Driver == DriverFile && strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = DefaultUsersPath
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = FormatText
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, ok := validation.LookupPreset(c.Rules.Preset); !ok {
		return fmt.Errorf("rules.preset %q is not one of standard, extended", c.Rules.Preset)
	}
	if c.Rules.MinUsernameLength < 0 || c.Rules.MinPasswordLength < 0 {
		return fmt.Errorf("rules minimum lengths must not be negative")
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite, DriverFile:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("store.path is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("store.driver %q is not one of memory, sqlite, file", c.Store.Driver)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("log.format %q is not one of text, json", c.Log.Format)
	}
	return nil
}

// RuleSet returns the effective validation rules.
func (c *Config) RuleSet() validation.RuleSet {
	return c.Rules.Normalize()
}

// Logger builds a slog logger writing to w. verbose forces debug level.
func (c *Config) Logger(w io.Writer, verbose bool) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, FormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", raw)
	}
	return level, nil
}
