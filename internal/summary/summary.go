// Package summary handles display of run results and statistics
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mjeanroy/eslint/internal/ingest"
)

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults shows the end results of an ingestion run
func DisplayResults(logger Logger, stats ingest.Stats, duration time.Duration, quiet bool) {
	if quiet {
		return
	}
	logger.Info("Parsed %d of %d attempted file(s) (%d excluded).",
		stats.Parsed, stats.Attempted, stats.Excluded)
	logger.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// DisplayFailures formats and prints the files that failed to parse
func DisplayFailures(logger Logger, failures []ingest.FileResult, output io.Writer, quiet bool) {
	infoLog := func(format string, args ...interface{}) {
		if !quiet {
			logger.Info(format, args...)
		}
	}

	infoLog("--- Failed Files (%d) ---", len(failures))
	if len(failures) > 0 {
		// Sort for consistent output
		sort.Slice(failures, func(i, j int) bool {
			return failures[i].Path < failures[j].Path
		})
		for _, item := range failures {
			fmt.Fprintf(output, "Failed %s: %v\n", item.Path, item.Err)
		}
	} else {
		infoLog("No files failed to parse.")
	}
	infoLog("--- End Failed Files ---")
}
