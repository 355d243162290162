// Package ingest drives pattern resolution, ignore filtering and parsing
// to produce the path-to-source mapping consumed by analysis rules.
package ingest

// SourceFile is the parsed representation of one ingested file. Its
// identity is the absolute file path; presence in a Result means the file
// parsed without error.
type SourceFile struct {
	Path string
	Text []byte
}

// Parser turns raw file text into a SourceFile. Implementations are
// external collaborators; any returned error (or panic) is treated as a
// per-file parse failure, never as a run failure.
type Parser interface {
	Parse(text []byte, path string) (*SourceFile, error)
}

// FileResult reports the outcome of one parse attempt. File is nil
// exactly when Err is non-nil.
type FileResult struct {
	Path string
	File *SourceFile
	Err  error
}

// Callbacks are the optional per-run notification hooks. OnFile fires
// once per candidate that passed the ignore filter, synchronously and in
// resolved order; OnComplete fires once after all candidates, with the
// number of files that made it into the result mapping.
type Callbacks struct {
	OnFile     func(FileResult)
	OnComplete func(parsed int)
}

// Stats summarizes one Ingest run.
type Stats struct {
	Resolved  int // candidate paths produced by pattern resolution
	Excluded  int // candidates dropped by the ignore filter
	Attempted int // candidates read and handed to the parser
	Parsed    int // attempts that produced a SourceFile
	Failed    int // attempts that did not
}

// Result is the ordering-preserving mapping from absolute file path to
// parsed SourceFile. Keys appear in candidate resolution order.
type Result struct {
	paths []string
	files map[string]*SourceFile
}

func newResult() *Result {
	return &Result{files: make(map[string]*SourceFile)}
}

func (r *Result) add(path string, file *SourceFile) {
	if _, exists := r.files[path]; !exists {
		r.paths = append(r.paths, path)
	}
	r.files[path] = file
}

// Len returns the number of successfully parsed files.
func (r *Result) Len() int {
	return len(r.paths)
}

// Paths returns the mapping's keys in insertion order.
func (r *Result) Paths() []string {
	out := make([]string, len(r.paths))
	copy(out, r.paths)
	return out
}

// Get returns the SourceFile for a path, if present.
func (r *Result) Get(path string) (*SourceFile, bool) {
	f, ok := r.files[path]
	return f, ok
}
