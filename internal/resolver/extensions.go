package resolver

import "strings"

// DefaultExtensions returns the extensions used when none are configured.
func DefaultExtensions() []string {
	return []string{".js"}
}

// ExtensionSet holds the configured set of recognized file-name suffixes.
// Matching is case-sensitive; entries keep their configured order.
type ExtensionSet struct {
	exts []string
}

// NewExtensionSet builds an ExtensionSet from the given suffixes. Entries
// without a leading dot are normalized ("js" becomes ".js"), empty entries
// are dropped, and an empty input falls back to DefaultExtensions.
func NewExtensionSet(extensions []string) *ExtensionSet {
	if len(extensions) == 0 {
		extensions = DefaultExtensions()
	}

	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = DefaultExtensions()
	}

	return &ExtensionSet{exts: exts}
}

// IsRecognized reports whether the path's suffix matches any configured
// extension. It is consulted only for files discovered by directory
// expansion; explicit files and glob matches are taken as-is.
func (s *ExtensionSet) IsRecognized(path string) bool {
	for _, ext := range s.exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Extensions returns the configured suffixes in order.
func (s *ExtensionSet) Extensions() []string {
	out := make([]string, len(s.exts))
	copy(out, s.exts)
	return out
}
