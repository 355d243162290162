package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeIgnoreFile(t *testing.T, root, name, content string) string {
	t.Helper()
	path := filepath.Join(root, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func abs(root string, parts ...string) string {
	return filepath.Join(append([]string{root}, parts...)...)
}

func TestFilterWithoutIgnoreFileExcludesNothing(t *testing.T) {
	root := t.TempDir()

	f, err := New(root)
	require.NoError(t, err)

	assert.False(t, f.IsExcluded(abs(root, "src", "a.js")))
	assert.False(t, f.IsExcluded(abs(root, "node_modules", "b.js")))
}

func TestFilterBasicExclusion(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "node_modules/\n*.min.js\n")

	f, err := New(root)
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "node_modules", "pkg", "index.js")))
	assert.True(t, f.IsExcluded(abs(root, "dist", "bundle.min.js")))
	assert.False(t, f.IsExcluded(abs(root, "src", "a.js")))
}

func TestFilterNegationReincludesNarrowerPath(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "dist/**\n!dist/keep.js\n")

	f, err := New(root)
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "dist", "drop.js")))
	assert.False(t, f.IsExcluded(abs(root, "dist", "keep.js")))
}

func TestFilterContentsOnlyExclusionIsNotTerminal(t *testing.T) {
	root := t.TempDir()
	// "dist/**" matches everything inside dist without excluding the
	// directory itself, so the file-level negation must still win, even
	// for deeper paths.
	writeIgnoreFile(t, root, DefaultIgnoreFile, "dist/**\n!dist/keep.js\n!dist/sub/deep.js\n")

	f, err := New(root)
	require.NoError(t, err)

	assert.False(t, f.IsExcluded(abs(root, "dist", "keep.js")))
	assert.False(t, f.IsExcluded(abs(root, "dist", "sub", "deep.js")))
	assert.True(t, f.IsExcluded(abs(root, "dist", "drop.js")))
	assert.True(t, f.IsExcluded(abs(root, "dist", "sub", "other.js")))
}

func TestFilterDirectoryExclusionIsTerminal(t *testing.T) {
	root := t.TempDir()
	// The directory itself is excluded, so a deeper negation cannot
	// re-include files below it.
	writeIgnoreFile(t, root, DefaultIgnoreFile, "build/\n!build/keep.js\n")

	f, err := New(root)
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "build", "keep.js")))
	assert.True(t, f.IsExcluded(abs(root, "build", "drop.js")))
}

func TestFilterCommentsAndBlankLinesIgnored(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "# generated output\n\n*.log\n")

	f, err := New(root)
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "debug.log")))
	assert.False(t, f.IsExcluded(abs(root, "generated output")))
}

func TestFilterAnchoredPattern(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "/vendor\n")

	f, err := New(root)
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "vendor", "lib.js")))
	assert.False(t, f.IsExcluded(abs(root, "src", "vendor", "lib.js")))
}

func TestFilterInlinePatterns(t *testing.T) {
	root := t.TempDir()

	f, err := New(root, WithPatterns([]string{"coverage/"}))
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "coverage", "lcov.info")))
	assert.False(t, f.IsExcluded(abs(root, "src", "a.js")))
}

func TestFilterInlinePatternsEvaluateAfterFileRules(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "tmp/**\n")

	f, err := New(root, WithPatterns([]string{"!tmp/keep.js"}))
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "tmp", "drop.js")))
	assert.False(t, f.IsExcluded(abs(root, "tmp", "keep.js")))
}

func TestFilterCustomIgnorePath(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, ".customignore", "secret/\n")

	f, err := New(root, WithIgnorePath(".customignore"))
	require.NoError(t, err)

	assert.True(t, f.IsExcluded(abs(root, "secret", "key.js")))
}

func TestFilterMissingCustomIgnorePathIsNotAnError(t *testing.T) {
	root := t.TempDir()

	f, err := New(root, WithIgnorePath("does-not-exist"))
	require.NoError(t, err)
	assert.False(t, f.IsExcluded(abs(root, "a.js")))
}

func TestFilterUnreadableIgnoreSourceIsConfigurationError(t *testing.T) {
	root := t.TempDir()
	// A directory at the ignore path is readable as an entry but not as a
	// rule source.
	require.NoError(t, os.Mkdir(filepath.Join(root, ".eslintignore"), 0o755))

	_, err := New(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ignore:")
}

func TestFilterDisabledExcludesNothing(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "**\n")

	f, err := New(root, WithDisabled(true))
	require.NoError(t, err)
	assert.False(t, f.IsExcluded(abs(root, "a.js")))
}

func TestFilterPathOutsideRootNeverExcluded(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "**\n")

	f, err := New(root)
	require.NoError(t, err)
	assert.False(t, f.IsExcluded(abs(other, "a.js")))
}

func TestNewFromConfig(t *testing.T) {
	root := t.TempDir()
	writeIgnoreFile(t, root, DefaultIgnoreFile, "dist/\n")

	f, err := NewFromConfig(Config{RootDir: root})
	require.NoError(t, err)
	assert.True(t, f.IsExcluded(abs(root, "dist", "a.js")))

	disabled, err := NewFromConfig(Config{RootDir: root, Disabled: true})
	require.NoError(t, err)
	assert.False(t, disabled.IsExcluded(abs(root, "dist", "a.js")))
}
