package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/denormal/go-gitignore"

	"github.com/mjeanroy/eslint/internal/utils"
)

// New creates and initializes a Filter rooted at rootDir. Rules come from
// the ignore file (DefaultIgnoreFile under the root unless overridden)
// followed by any inline patterns. A missing ignore file means the filter
// excludes nothing; an ignore file that exists but cannot be read is a
// configuration error.
func New(rootDir string, opts ...Option) (*Filter, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	f := &Filter{
		rootDir: absRootDir,
		log:     utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}

	if err := f.init(); err != nil {
		return nil, err
	}
	return f, nil
}

// NewFromConfig creates a Filter from a Config struct
func NewFromConfig(cfg Config) (*Filter, error) {
	options := []Option{
		WithDisabled(cfg.Disabled),
	}
	if cfg.IgnorePath != "" {
		options = append(options, WithIgnorePath(cfg.IgnorePath))
	}
	if len(cfg.Patterns) > 0 {
		options = append(options, WithPatterns(cfg.Patterns))
	}
	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	return New(cfg.RootDir, options...)
}

// init loads the rule source and compiles the gitignore engine
func (f *Filter) init() error {
	if f.disabled {
		f.log.Debug("ignore.New: filter is disabled, skipping rule loading")
		return nil
	}

	path := f.ignorePath
	if path == "" {
		path = filepath.Join(f.rootDir, DefaultIgnoreFile)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(f.rootDir, path)
	}

	var lines []string
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		f.log.Debug("ignore.New: loaded rules from %q", path)
		lines = append(lines, string(content))
	case os.IsNotExist(err):
		f.log.Debug("ignore.New: no ignore file at %q", path)
	default:
		return fmt.Errorf("ignore: failed to read ignore file '%s': %w", path, err)
	}

	lines = append(lines, f.patterns...)
	source := strings.Join(lines, "\n")
	if strings.TrimSpace(source) == "" {
		f.log.Debug("ignore.New: no rules configured, filter excludes nothing")
		return nil
	}

	f.rules = gitignore.New(strings.NewReader(source), f.rootDir, nil)
	return nil
}
