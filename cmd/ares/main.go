// Package main is the entry point for the Ares editor.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/ares/internal/app"
	"github.com/dshills/ares/internal/config"
	"github.com/dshills/ares/internal/renderer"
	"github.com/dshills/ares/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type flags struct {
	configPath string
	logLevel   string
	noWatch    bool
	filename   string
}

func main() {
	os.Exit(run())
}

func run() int {
	f := parseFlags()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: ares must be run in a terminal")
		return 1
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}

	logger, closer, err := app.OpenLogFile(cfg.Log.File, app.ParseLogLevel(cfg.Log.Level), app.ParseLogFormat(cfg.Log.Format))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	renderer.Version = version
	logger.Info("starting ares %s (%s)", version, commit)

	// Errors are printed after the terminal is restored.
	runErr := runEditor(cfg, logger, f)
	if runErr != nil {
		logger.Error("exit: %v", runErr)
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		return 1
	}
	return 0
}

func runEditor(cfg *config.Config, logger *app.Logger, f flags) error {
	screen, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Shutdown()

	application, err := app.New(app.Options{
		Config:   cfg,
		Backend:  screen,
		Logger:   logger,
		Filename: f.filename,
		Watch:    !f.noWatch,
	})
	if err != nil {
		return err
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = application.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func parseFlags() flags {
	var f flags
	var showVersion bool
	var showHelp bool

	flag.StringVar(&f.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&f.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&f.noWatch, "no-watch", false, "Do not watch the open file for external changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Ares - a small terminal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ares [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ares                  Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  ares main.c           Open a file\n")
		fmt.Fprintf(os.Stderr, "  ares -c my.toml x.go  Use another config file\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Ares %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	switch f.logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", f.logLevel)
		os.Exit(1)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		f.filename = flag.Arg(0)
	default:
		fmt.Fprintln(os.Stderr, "Error: at most one file may be given")
		flag.Usage()
		os.Exit(2)
	}

	return f
}
