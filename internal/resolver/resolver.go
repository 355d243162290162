// Package resolver expands file, directory and glob patterns into
// candidate source file paths.
package resolver

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mjeanroy/eslint/internal/utils"
)

// Resolver turns caller-supplied patterns into an ordered, deduplicated
// list of absolute file paths. Relative patterns are resolved against an
// explicit root directory, never against ambient process state.
type Resolver struct {
	root string
	exts *ExtensionSet
	log  utils.Logger
}

// Option is a functional option for configuring a Resolver
type Option func(*Resolver)

// WithExtensions sets the suffixes recognized during directory expansion
func WithExtensions(extensions []string) Option {
	return func(r *Resolver) {
		r.exts = NewExtensionSet(extensions)
	}
}

// WithLogger sets a custom logger for the resolver
func WithLogger(log utils.Logger) Option {
	return func(r *Resolver) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a Resolver rooted at the given directory
func New(root string, opts ...Option) (*Resolver, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolver: failed to get absolute path for root '%s': %w", root, err)
	}

	r := &Resolver{
		root: absRoot,
		exts: NewExtensionSet(nil),
		log:  utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Root returns the absolute resolution root.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve expands each pattern in order and unions the results. Every
// returned path is absolute, canonicalized and unique; the first
// occurrence of a path determines its position. A pattern that matches
// nothing contributes nothing and is not an error.
func (r *Resolver) Resolve(patterns ...string) ([]string, error) {
	seen := make(map[string]struct{})
	var candidates []string

	for _, pattern := range patterns {
		for _, path := range r.resolveOne(pattern) {
			canonical := canonicalize(path)
			if _, dup := seen[canonical]; dup {
				r.log.Debug("resolver: duplicate candidate %q", canonical)
				continue
			}
			seen[canonical] = struct{}{}
			candidates = append(candidates, canonical)
		}
	}

	return candidates, nil
}

// resolveOne expands a single pattern. An existing regular file wins over
// glob interpretation, then an existing directory, then glob expansion.
func (r *Resolver) resolveOne(pattern string) []string {
	abs := pattern
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(r.root, abs)
	}

	info, err := os.Stat(abs)
	if err == nil {
		if info.Mode().IsRegular() {
			r.log.Debug("resolver: pattern %q names a file", pattern)
			return []string{abs}
		}
		if info.IsDir() {
			r.log.Debug("resolver: pattern %q names a directory", pattern)
			return r.expandDir(abs)
		}
		// Named but neither a regular file nor a directory (socket, device).
		r.log.Debug("resolver: pattern %q names a non-regular file, skipping", pattern)
		return nil
	}

	return r.expandGlob(abs)
}

// expandDir recursively enumerates regular files beneath dir, keeping
// those with a recognized extension. Traversal is lexicographic per
// directory level. Symbolic links are followed unless doing so would
// revisit an already-visited real path.
func (r *Resolver) expandDir(dir string) []string {
	visited := make(map[string]struct{})
	visited[canonicalize(dir)] = struct{}{}

	var files []string
	r.walkDir(dir, visited, &files)
	return files
}

func (r *Resolver) walkDir(dir string, visited map[string]struct{}, files *[]string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.log.Warn("resolver: cannot read directory %q: %v", dir, err)
		return
	}

	// os.ReadDir sorts entries by name, which keeps traversal stable.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		isDir := entry.IsDir()
		isRegular := entry.Type().IsRegular()

		if entry.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				r.log.Debug("resolver: skipping dangling symlink %q: %v", path, err)
				continue
			}
			isDir = target.IsDir()
			isRegular = target.Mode().IsRegular()
		}

		if isDir {
			real := canonicalize(path)
			if _, seen := visited[real]; seen {
				r.log.Debug("resolver: not descending into %q, real path already visited", path)
				continue
			}
			visited[real] = struct{}{}
			r.walkDir(path, visited, files)
			continue
		}

		if isRegular && r.exts.IsRecognized(entry.Name()) {
			*files = append(*files, path)
		}
	}
}

// expandGlob treats the pattern as a glob expression. Matched regular
// files are included verbatim, with no extension filtering. A malformed
// glob matches nothing.
func (r *Resolver) expandGlob(pattern string) []string {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		r.log.Debug("resolver: pattern %q is not a valid glob: %v", pattern, err)
		return nil
	}

	var files []string
	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, match)
	}
	return files
}

// canonicalize resolves symlinks and relative segments so that two
// patterns naming the same file dedupe to one candidate.
func canonicalize(path string) string {
	if real, err := filepath.EvalSymlinks(path); err == nil {
		return real
	}
	return filepath.Clean(path)
}
