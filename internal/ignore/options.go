package ignore

import "github.com/mjeanroy/eslint/internal/utils"

// Option functions for configuration
type Option func(*Filter)

// WithIgnorePath overrides the location of the ignore-pattern source.
func WithIgnorePath(path string) Option {
	return func(f *Filter) {
		f.ignorePath = path
	}
}

// WithPatterns adds inline rules evaluated after the file's rules.
func WithPatterns(patterns []string) Option {
	return func(f *Filter) {
		f.patterns = patterns
	}
}

// WithDisabled builds a filter that excludes nothing.
func WithDisabled(disabled bool) Option {
	return func(f *Filter) {
		f.disabled = disabled
	}
}

func WithLogger(log utils.Logger) Option {
	return func(f *Filter) {
		if log != nil {
			f.log = log
		}
	}
}
