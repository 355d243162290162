package ingest

import "github.com/mjeanroy/eslint/internal/utils"

// Option is a functional option for configuring an Ingestor
type Option func(*Ingestor)

// WithRoot sets the resolution root used for relative patterns and
// ignore rules. Defaults to ".".
func WithRoot(root string) Option {
	return func(in *Ingestor) {
		if root != "" {
			in.root = root
		}
	}
}

// WithExtensions sets the suffixes recognized during directory expansion
func WithExtensions(extensions []string) Option {
	return func(in *Ingestor) {
		in.extensions = extensions
	}
}

// WithIgnore enables or disables the ignore filter. Enabled by default.
func WithIgnore(enabled bool) Option {
	return func(in *Ingestor) {
		in.ignoreEnabled = enabled
	}
}

// WithIgnorePath overrides the ignore-pattern source location
func WithIgnorePath(path string) Option {
	return func(in *Ingestor) {
		in.ignorePath = path
	}
}

// WithIgnorePatterns adds inline ignore rules
func WithIgnorePatterns(patterns []string) Option {
	return func(in *Ingestor) {
		in.ignorePatterns = patterns
	}
}

// WithCallbacks sets the per-run notification hooks
func WithCallbacks(cb Callbacks) Option {
	return func(in *Ingestor) {
		in.callbacks = cb
	}
}

func WithLogger(log utils.Logger) Option {
	return func(in *Ingestor) {
		if log != nil {
			in.log = log
		}
	}
}
