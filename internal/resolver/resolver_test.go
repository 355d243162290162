package resolver

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates the given files (with parent directories) under root
func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("var a = 1;\n"), 0o644))
	}
}

// canonicalRoot returns the symlink-resolved temp dir so expectations
// line up with the resolver's canonicalized candidates
func canonicalRoot(t *testing.T) string {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return root
}

func resolve(t *testing.T, root string, patterns []string, opts ...Option) []string {
	t.Helper()
	r, err := New(root, opts...)
	require.NoError(t, err)
	got, err := r.Resolve(patterns...)
	require.NoError(t, err)
	return got
}

// rel converts absolute candidates back to root-relative slash paths
func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestResolveExplicitFileBypassesExtensionPolicy(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "script.weird")

	got := resolve(t, root, []string{"script.weird"})
	assert.Equal(t, []string{"script.weird"}, rel(t, root, got))
}

func TestResolveDirectoryAppliesExtensionPolicy(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root,
		"src/b.js",
		"src/a.js",
		"src/readme.txt",
		"src/nested/deep/c.js",
		"src/nested/d.ts",
	)

	got := resolve(t, root, []string{"src"})
	assert.Equal(t, []string{"src/a.js", "src/b.js", "src/nested/deep/c.js"}, rel(t, root, got))
}

func TestResolveDirectoryWithConfiguredExtensions(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "src/a.js", "src/b.ts", "src/c.md")

	got := resolve(t, root, []string{"src"}, WithExtensions([]string{".js", ".ts"}))
	assert.Equal(t, []string{"src/a.js", "src/b.ts"}, rel(t, root, got))
}

func TestResolveGlobMatchesNestedFilesVerbatim(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root,
		"dir/x.js",
		"dir/sub/y.js",
		"dir/sub/skip.txt",
		"dir/other.mjs",
	)

	got := rel(t, root, resolve(t, root, []string{"dir/**/*.js"}))
	sort.Strings(got)
	assert.Equal(t, []string{"dir/sub/y.js", "dir/x.js"}, got)

	// The glob encodes the intended extensions itself.
	got = rel(t, root, resolve(t, root, []string{"dir/**/*.mjs"}))
	assert.Equal(t, []string{"dir/other.mjs"}, got)
}

func TestResolveDeduplicatesAcrossPatterns(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "src/a.js", "src/b.js")

	got := resolve(t, root, []string{"src/a.js", "src", "src/*.js"})
	assert.Equal(t, []string{"src/a.js", "src/b.js"}, rel(t, root, got))
}

func TestResolveFirstOccurrenceDeterminesOrder(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "src/a.js", "src/b.js", "lib/z.js")

	got := resolve(t, root, []string{"src/b.js", "lib", "src"})
	assert.Equal(t, []string{"src/b.js", "lib/z.js", "src/a.js"}, rel(t, root, got))
}

func TestResolveMissingPatternContributesNothing(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "a.js")

	got := resolve(t, root, []string{"missing.js", "nope/**/*.js", "a.js"})
	assert.Equal(t, []string{"a.js"}, rel(t, root, got))
}

func TestResolveAbsolutePattern(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "a.js")

	got := resolve(t, root, []string{filepath.Join(root, "a.js")})
	assert.Equal(t, []string{"a.js"}, rel(t, root, got))
}

func TestResolveSymlinkCycleTerminates(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "dir/a.js", "dir/sub/b.js")

	// dir/sub/loop points back at dir
	if err := os.Symlink(filepath.Join(root, "dir"), filepath.Join(root, "dir", "sub", "loop")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got := resolve(t, root, []string{"dir"})
	assert.Equal(t, []string{"dir/a.js", "dir/sub/b.js"}, rel(t, root, got))
}

func TestResolveSymlinkedFileDedupesWithTarget(t *testing.T) {
	root := canonicalRoot(t)
	writeTree(t, root, "src/a.js")

	if err := os.Symlink(filepath.Join(root, "src", "a.js"), filepath.Join(root, "src", "alias.js")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	got := resolve(t, root, []string{"src"})
	assert.Equal(t, []string{"src/a.js"}, rel(t, root, got))
}
