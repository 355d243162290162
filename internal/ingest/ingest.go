package ingest

import (
	"fmt"
	"os"

	"github.com/mjeanroy/eslint/internal/ignore"
	"github.com/mjeanroy/eslint/internal/resolver"
	"github.com/mjeanroy/eslint/internal/utils"
)

// Ingestor resolves patterns, filters candidates and parses survivors.
// One Ingest call owns all of its mutable state; Ingestors themselves
// hold only configuration and may be reused sequentially.
type Ingestor struct {
	parser Parser

	root           string
	extensions     []string
	ignoreEnabled  bool
	ignorePath     string
	ignorePatterns []string
	callbacks      Callbacks
	log            utils.Logger
}

// New creates an Ingestor around the given parser
func New(parser Parser, opts ...Option) *Ingestor {
	in := &Ingestor{
		parser:        parser,
		root:          ".",
		ignoreEnabled: true,
		log:           utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Ingest expands the patterns, drops excluded candidates, parses the
// rest in resolved order and returns the resulting mapping with run
// statistics. Per-file read and parse failures are absorbed; the only
// returned errors are configuration errors (an unreadable ignore source
// or an unresolvable root), reported before any candidate is processed.
func (in *Ingestor) Ingest(patterns ...string) (*Result, Stats, error) {
	var stats Stats

	res, err := resolver.New(in.root,
		resolver.WithExtensions(in.extensions),
		resolver.WithLogger(in.log),
	)
	if err != nil {
		return nil, stats, err
	}

	filter, err := ignore.NewFromConfig(ignore.Config{
		RootDir:    in.root,
		IgnorePath: in.ignorePath,
		Patterns:   in.ignorePatterns,
		Disabled:   !in.ignoreEnabled,
		Logger:     in.log,
	})
	if err != nil {
		return nil, stats, err
	}

	candidates, err := res.Resolve(patterns...)
	if err != nil {
		return nil, stats, err
	}
	stats.Resolved = len(candidates)
	in.log.Debug("ingest: resolved %d candidate(s) under '%s'", len(candidates), res.Root())

	result := newResult()
	for _, path := range candidates {
		if filter.IsExcluded(path) {
			stats.Excluded++
			continue
		}
		stats.Attempted++

		fr := in.processFile(path)
		if fr.Err != nil {
			stats.Failed++
			in.log.Warn("ingest: skipping '%s': %v", path, fr.Err)
		} else {
			stats.Parsed++
			result.add(path, fr.File)
		}

		if in.callbacks.OnFile != nil {
			in.callbacks.OnFile(fr)
		}
	}

	if in.callbacks.OnComplete != nil {
		in.callbacks.OnComplete(result.Len())
	}

	in.log.Info("ingest: parsed %d of %d attempted file(s)", stats.Parsed, stats.Attempted)
	return result, stats, nil
}

// processFile reads one candidate and hands it to the parser. The file
// handle is scoped to the read and released before parsing starts.
func (in *Ingestor) processFile(path string) FileResult {
	text, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("ingest: failed to read '%s': %w", path, err)}
	}

	file, err := in.parse(text, path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	if file == nil {
		return FileResult{Path: path, Err: fmt.Errorf("ingest: parser returned no artifact for '%s'", path)}
	}
	if file.Path == "" {
		file.Path = path
	}
	return FileResult{Path: path, File: file}
}

// parse contains the parser panic guard: a panicking parser fails that
// file, not the run.
func (in *Ingestor) parse(text []byte, path string) (file *SourceFile, err error) {
	defer func() {
		if r := recover(); r != nil {
			file = nil
			err = fmt.Errorf("ingest: parser panic for '%s': %v", path, r)
		}
	}()
	return in.parser.Parse(text, path)
}
