// Package config provides configuration loading for bigtext.
//
// Settings are resolved in layers: built-in defaults, then an optional
// TOML file, then BIGTEXT_* environment variables (a .env file in the
// working directory is folded into the environment first).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/bigtext/internal/font"
	"github.com/dshills/bigtext/internal/render/core"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrInvalidValue indicates a setting has an unusable value.
	ErrInvalidValue = errors.New("invalid config value")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Config holds all bigtext settings.
type Config struct {
	// TextChar is the foreground fill character (single character).
	TextChar string `toml:"text_char"`
	// BackgroundChar is the background fill character (single character).
	BackgroundChar string `toml:"background_char"`
	// FontSize selects the glyph size: "small" or "big".
	FontSize string `toml:"font_size"`
	// Color is the foreground color: a palette name or #rrggbb.
	Color string `toml:"color"`
	// Gradient is an optional second color for a horizontal fade.
	Gradient string `toml:"gradient"`
	// FontDir overrides the embedded fonts with a directory of
	// font_size_<N>.txt resources.
	FontDir string `toml:"font_dir"`
	// Line is the default target row.
	Line int `toml:"line"`
	// Column is the default target column.
	Column int `toml:"column"`
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration, matching the classic
// console defaults.
func Default() Config {
	return Config{
		TextChar:       "#",
		BackgroundChar: " ",
		FontSize:       "small",
		Color:          "bright-white",
		LogLevel:       "info",
	}
}

// Load resolves the configuration. A named file that doesn't exist is
// an error; pass "" to skip the file layer.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	// .env values become plain environment variables; a real
	// environment variable wins over the file per godotenv semantics.
	_ = godotenv.Load()
	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile merges a TOML file over cfg.
func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// loadEnv merges BIGTEXT_* environment variables over cfg.
func loadEnv(cfg *Config) {
	set := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	set("BIGTEXT_TEXT_CHAR", &cfg.TextChar)
	set("BIGTEXT_BACKGROUND_CHAR", &cfg.BackgroundChar)
	set("BIGTEXT_FONT_SIZE", &cfg.FontSize)
	set("BIGTEXT_COLOR", &cfg.Color)
	set("BIGTEXT_GRADIENT", &cfg.Gradient)
	set("BIGTEXT_FONT_DIR", &cfg.FontDir)
	set("BIGTEXT_LOG_LEVEL", &cfg.LogLevel)

	setInt := func(key string, dst *int) {
		if v, ok := os.LookupEnv(key); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setInt("BIGTEXT_LINE", &cfg.Line)
	setInt("BIGTEXT_COLUMN", &cfg.Column)
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if _, err := c.TextRune(); err != nil {
		return err
	}
	if _, err := c.BackgroundRune(); err != nil {
		return err
	}
	if _, err := font.ParseSize(c.FontSize); err != nil {
		return fmt.Errorf("font_size %q: %w", c.FontSize, ErrInvalidValue)
	}
	if _, err := core.ParseColor(c.Color); err != nil {
		return fmt.Errorf("color %q: %w", c.Color, ErrInvalidValue)
	}
	if c.Gradient != "" {
		if _, err := core.ParseColor(c.Gradient); err != nil {
			return fmt.Errorf("gradient %q: %w", c.Gradient, ErrInvalidValue)
		}
	}
	if c.Line < 0 || c.Column < 0 {
		return fmt.Errorf("line/column must be non-negative: %w", ErrInvalidValue)
	}
	return nil
}

// TextRune returns the foreground fill character.
func (c Config) TextRune() (rune, error) {
	return singleRune("text_char", c.TextChar)
}

// BackgroundRune returns the background fill character.
func (c Config) BackgroundRune() (rune, error) {
	return singleRune("background_char", c.BackgroundChar)
}

func singleRune(name, v string) (rune, error) {
	runes := []rune(v)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q: %w", name, v, ErrInvalidValue)
	}
	return runes[0], nil
}
