package ignore

import (
	"path/filepath"
	"strings"
)

// IsExcluded reports whether the absolute path is matched by an active
// ignore rule. Rules follow gitignore semantics: later rules win, a
// negated rule re-includes a previously excluded path, and a path below
// an excluded directory stays excluded unless the directory itself is
// re-included first. Paths outside the root are never excluded.
func (f *Filter) IsExcluded(absPath string) bool {
	if f == nil || f.disabled || f.rules == nil {
		return false
	}

	rel, err := filepath.Rel(f.rootDir, absPath)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	rel = filepath.ToSlash(rel)

	f.log.Debug("ignore.IsExcluded: checking path %q", rel)

	// Directory exclusion is terminal: if any ancestor directory is
	// excluded and not itself re-included, deeper negations cannot apply.
	segments := strings.Split(rel, "/")
	for i := 1; i < len(segments); i++ {
		dir := strings.Join(segments[:i], "/")
		if f.dirExcluded(dir) {
			f.log.Debug("ignore.IsExcluded: %q excluded via parent directory %q", rel, dir)
			return true
		}
	}

	if excluded, _ := f.match(rel, false); excluded {
		f.log.Debug("ignore.IsExcluded: %q excluded by rule", rel)
		return true
	}
	return false
}

// dirExcluded reports whether the rules exclude the directory itself.
// A trailing "/**" matches everything inside a directory without
// excluding the directory, so such a rule is not terminal and deeper
// negations still apply.
func (f *Filter) dirExcluded(dir string) bool {
	excluded, pattern := f.match(dir, true)
	if !excluded {
		return false
	}
	pattern = strings.TrimSuffix(pattern, "/")
	return !strings.HasSuffix(pattern, "/**")
}

// match evaluates the compiled rules for one relative path. The last
// matching rule decides; no match means the path stays included. On
// exclusion the deciding pattern is returned alongside.
func (f *Filter) match(rel string, isDir bool) (excluded bool, pattern string) {
	// The gitignore library can panic on some malformed patterns; treat
	// that as "no decision" for the path.
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("ignore: panic recovered while matching %q: %v", rel, r)
			excluded = false
			pattern = ""
		}
	}()

	m := f.rules.Relative(rel, isDir)
	if m == nil || !m.Ignore() {
		return false, ""
	}
	return true, m.String()
}
