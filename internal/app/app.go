// Package app wires configuration, ingestion and output together
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/mjeanroy/eslint/internal/config"
	"github.com/mjeanroy/eslint/internal/ingest"
	"github.com/mjeanroy/eslint/internal/logger"
	"github.com/mjeanroy/eslint/internal/parser"
	"github.com/mjeanroy/eslint/internal/printer"
	"github.com/mjeanroy/eslint/internal/summary"
)

// App encapsulates the main application functionality
type App struct {
	cfg    *config.Config
	log    *logger.Logger
	Output io.Writer
}

// New creates a new App instance
func New(cfg *config.Config) *App {
	// Configure color globally
	color.NoColor = !cfg.UseColors

	log := logger.New(os.Stderr, cfg.UseColors)
	log.SetLevel(cfg.LogLevel)
	if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{
		cfg:    cfg,
		log:    log,
		Output: os.Stdout,
	}
}

// Run executes the ingestion pipeline and reports its results. The
// returned error is non-nil only for configuration errors.
func (a *App) Run() error {
	startTime := time.Now()

	absRoot, err := filepath.Abs(a.cfg.Cwd)
	if err != nil {
		return fmt.Errorf("app: invalid working directory '%s': %w", a.cfg.Cwd, err)
	}
	rootInfo, err := os.Stat(absRoot)
	if err != nil {
		return fmt.Errorf("app: cannot access working directory '%s': %w", absRoot, err)
	}
	if !rootInfo.IsDir() {
		return fmt.Errorf("app: working directory '%s' is not a directory", absRoot)
	}

	a.log.Debug("Working directory: %s", absRoot)
	a.log.Debug("Patterns: %v", a.cfg.Patterns)
	if len(a.cfg.Extensions) > 0 {
		a.log.Debug("Extensions: %v", a.cfg.Extensions)
	}
	if !a.cfg.Ignore {
		a.log.Debug("Ignore filter disabled")
	}

	p := printer.New()
	p.WithOutput(a.Output)
	p.WithColors(a.cfg.UseColors && !a.cfg.JSONOutput)
	if a.cfg.JSONOutput {
		p.WithJSON(true)
	}

	var failures []ingest.FileResult
	callbacks := ingest.Callbacks{
		OnFile: func(fr ingest.FileResult) {
			if fr.Err != nil {
				failures = append(failures, fr)
				return
			}
			p.PrintFile(fr.File)
		},
		OnComplete: func(parsed int) {
			a.log.Debug("Ingestion complete: %d file(s) parsed", parsed)
		},
	}

	in := ingest.New(parser.New(),
		ingest.WithRoot(absRoot),
		ingest.WithExtensions(a.cfg.Extensions),
		ingest.WithIgnore(a.cfg.Ignore),
		ingest.WithIgnorePath(a.cfg.IgnorePath),
		ingest.WithIgnorePatterns(a.cfg.IgnorePatterns),
		ingest.WithCallbacks(callbacks),
		ingest.WithLogger(a.log),
	)

	_, stats, err := in.Ingest(a.cfg.Patterns...)
	if err != nil {
		return err
	}

	p.Finalize()
	summary.DisplayResults(a.log, stats, time.Since(startTime), a.cfg.Quiet)

	if a.cfg.ShowFailed {
		summary.DisplayFailures(a.log, failures, os.Stderr, a.cfg.Quiet)
	}

	return nil
}
