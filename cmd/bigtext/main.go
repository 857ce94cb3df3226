// Package main is the entry point for the bigtext banner renderer.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/bigtext/internal/app"
	"github.com/dshills/bigtext/internal/render/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var surface backend.Backend
	if opts.Screen {
		tb, err := backend.NewTerminal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
			return 1
		}
		surface = tb
	} else {
		width, height := application.SurfaceSize()
		// When stdout is a real terminal, let banners use its full width.
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > width {
			width = w
		}
		surface = backend.NewWriter(os.Stdout, width, height)
	}
	application.SetBackend(surface)

	// Handle signals so watch mode restores the terminal on Ctrl-C.
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		surface.Shutdown()
		os.Exit(0)
	}()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.TextChar, "text-char", "", "Foreground fill character")
	flag.StringVar(&opts.BackgroundChar, "background-char", "", "Background fill character")
	flag.StringVar(&opts.FontSize, "size", "", "Font size: small or big")
	flag.StringVar(&opts.Color, "color", "", "Foreground color (name or #rrggbb)")
	flag.StringVar(&opts.Gradient, "gradient", "", "Second color for a horizontal fade")
	flag.StringVar(&opts.FontDir, "font-dir", "", "Directory with font_size_<N>.txt resources")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.IntVar(&opts.Line, "line", -1, "Target row of the first banner")
	flag.IntVar(&opts.Column, "column", -1, "Target column of the banners")
	flag.BoolVar(&opts.Screen, "screen", false, "Render full-screen and wait for a key")
	flag.BoolVar(&opts.Watch, "watch", false, "Re-render when config or fonts change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bigtext - pseudographic block-letter banners\n\n")
		fmt.Fprintf(os.Stderr, "Usage: bigtext [options] TEXT...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bigtext HELLO!                          Small white banner\n")
		fmt.Fprintf(os.Stderr, "  bigtext -size big -color bright-green WELCOME!\n")
		fmt.Fprintf(os.Stderr, "  bigtext -color '#ff0066' -gradient '#0066ff' FINALLY!\n")
		fmt.Fprintf(os.Stderr, "  bigtext -screen -watch -font-dir ./fonts AB\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("bigtext %s (%s)\n", version, commit)
		os.Exit(0)
	}

	opts.Texts = flag.Args()
	if len(opts.Texts) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	return opts
}
