package app

import (
	"errors"
	"strings"

	"github.com/dshills/bigtext/internal/banner"
	"github.com/dshills/bigtext/internal/config"
	"github.com/dshills/bigtext/internal/font"
	"github.com/dshills/bigtext/internal/render/backend"
	"github.com/dshills/bigtext/internal/render/core"
)

// Options holds command-line settings. String overrides are applied
// over the loaded configuration when non-empty; Line/Column override
// when non-negative.
type Options struct {
	ConfigPath string
	Texts      []string

	TextChar       string
	BackgroundChar string
	FontSize       string
	Color          string
	Gradient       string
	FontDir        string
	LogLevel       string
	Line           int
	Column         int

	// Screen runs full-screen and waits for a key press.
	Screen bool
	// Watch re-renders when the config file or font directory changes.
	Watch bool
}

// App coordinates configuration, the glyph source, and the display
// backend for one run.
type App struct {
	opts    Options
	cfg     config.Config
	logger  *Logger
	backend backend.Backend
}

// New loads configuration, applies option overrides, and returns a
// ready application. The backend must be set before Run.
func New(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.LogLevel),
		Output: nil, // stderr
		Prefix: "bigtext",
	})

	return &App{opts: opts, cfg: cfg, logger: logger}, nil
}

// applyOverrides merges command-line options over the configuration.
func applyOverrides(cfg *config.Config, opts Options) {
	if opts.TextChar != "" {
		cfg.TextChar = opts.TextChar
	}
	if opts.BackgroundChar != "" {
		cfg.BackgroundChar = opts.BackgroundChar
	}
	if opts.FontSize != "" {
		cfg.FontSize = opts.FontSize
	}
	if opts.Color != "" {
		cfg.Color = opts.Color
	}
	if opts.Gradient != "" {
		cfg.Gradient = opts.Gradient
	}
	if opts.FontDir != "" {
		cfg.FontDir = opts.FontDir
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Line >= 0 {
		cfg.Line = opts.Line
	}
	if opts.Column >= 0 {
		cfg.Column = opts.Column
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *Logger {
	return a.logger
}

// SetLogger replaces the application's logger.
func (a *App) SetLogger(l *Logger) {
	a.logger = l
}

// SetBackend sets the display backend used by Run.
func (a *App) SetBackend(b backend.Backend) {
	a.backend = b
}

// Config returns the resolved configuration.
func (a *App) Config() config.Config {
	return a.cfg
}

// fontSize returns the configured glyph size. The configuration is
// validated, so parse failures cannot happen here.
func (a *App) fontSize() font.Size {
	size, _ := font.ParseSize(a.cfg.FontSize)
	return size
}

// bannerSpacing is the vertical distance between stacked banners.
func (a *App) bannerSpacing() int {
	return int(a.fontSize()) + 2
}

// SurfaceSize returns the width and height the plain writer backend
// needs to hold every banner at its configured position.
func (a *App) SurfaceSize() (width, height int) {
	size := int(a.fontSize())
	maxLen := 0
	for _, text := range a.opts.Texts {
		if len(text) > maxLen {
			maxLen = len(text)
		}
	}
	width = a.cfg.Column + maxLen*(size+1)
	height = a.cfg.Line + len(a.opts.Texts)*a.bannerSpacing()
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

// Run initializes the backend, renders every banner, and, in screen or
// watch mode, loops until a key press or interrupt.
func (a *App) Run() error {
	if a.backend == nil {
		return errors.New("no backend configured")
	}
	if err := a.backend.Init(); err != nil {
		return err
	}
	defer a.backend.Shutdown()

	if err := a.render(); err != nil {
		return err
	}

	if !a.opts.Screen && !a.opts.Watch {
		return nil
	}
	return a.loop()
}

// glyphSource returns the table source: an on-disk font directory when
// configured, the embedded fonts otherwise.
func (a *App) glyphSource() banner.Source {
	if a.cfg.FontDir != "" {
		dir := a.cfg.FontDir
		return func(size font.Size) (*font.Table, error) {
			return font.LoadDir(dir, size)
		}
	}
	return font.Load
}

// render paints every requested text as a stacked banner. A text with
// unsupported characters is logged and skipped; a missing glyph
// resource is fatal.
func (a *App) render() error {
	textChar, err := a.cfg.TextRune()
	if err != nil {
		return err
	}
	backChar, err := a.cfg.BackgroundRune()
	if err != nil {
		return err
	}
	color, err := core.ParseColor(a.cfg.Color)
	if err != nil {
		return err
	}

	size := a.fontSize()
	source := a.glyphSource()
	log := a.logger.WithComponent("render")

	for i, raw := range a.opts.Texts {
		// Each text owns a fixed slot so a skipped banner doesn't
		// shift the ones below it.
		line := a.cfg.Line + i*a.bannerSpacing()

		t := banner.New()
		t.SetSource(source)
		if err := t.SetFontSize(size); err != nil {
			return err
		}
		if err := t.SetText(strings.ToUpper(raw)); err != nil {
			log.Error("skipping %q: %v", raw, err)
			continue
		}
		t.SetTextChar(textChar)
		t.SetBackgroundChar(backChar)
		t.SetColor(color)
		if a.cfg.Gradient != "" {
			grad, err := core.ParseColor(a.cfg.Gradient)
			if err != nil {
				return err
			}
			t.SetGradient(grad)
		}

		log.Debug("painting %s at (%d, %d)", t, line, a.cfg.Column)
		if err := t.Paint(a.backend, line, a.cfg.Column); err != nil {
			return err
		}
	}

	return nil
}

// reload re-resolves configuration and repaints. Used by watch mode;
// failures are logged, not fatal, so a half-saved config doesn't kill
// the session.
func (a *App) reload() {
	log := a.logger.WithComponent("watch")

	cfg, err := config.Load(a.opts.ConfigPath)
	if err != nil {
		log.Warn("config reload failed: %v", err)
		return
	}
	applyOverrides(&cfg, a.opts)
	if err := cfg.Validate(); err != nil {
		log.Warn("config reload failed: %v", err)
		return
	}
	a.cfg = cfg

	a.backend.Clear()
	if err := a.render(); err != nil {
		log.Warn("repaint failed: %v", err)
	}
}
