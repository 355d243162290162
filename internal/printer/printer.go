// Package printer handles output formatting and display
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/mjeanroy/eslint/internal/ingest"
)

// Printer writes the ingested file listing to the configured destination
type Printer struct {
	output      io.Writer
	count       atomic.Int64
	useColors   bool
	jsonOutput  bool
	jsonStarted bool
}

// New creates a new Printer with default settings
func New() *Printer {
	return &Printer{
		output:    os.Stdout,
		useColors: true,
	}
}

// WithOutput sets the output destination
func (p *Printer) WithOutput(w io.Writer) *Printer {
	p.output = w
	return p
}

// WithColors enables or disables colored output
func (p *Printer) WithColors(enabled bool) *Printer {
	p.useColors = enabled
	return p
}

// WithJSON enables JSON output mode
func (p *Printer) WithJSON(enabled bool) *Printer {
	p.jsonOutput = enabled
	return p
}

// JSONFileEntry represents one parsed file in JSON output
type JSONFileEntry struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

// PrintFile outputs one successfully parsed file
func (p *Printer) PrintFile(file *ingest.SourceFile) {
	p.count.Add(1)

	if p.jsonOutput {
		if !p.jsonStarted {
			fmt.Fprint(p.output, "[\n")
			p.jsonStarted = true
		} else {
			fmt.Fprint(p.output, ",\n")
		}

		entry := JSONFileEntry{Path: file.Path, Size: len(file.Text)}
		jsonData, err := json.MarshalIndent(entry, "  ", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
			return
		}
		fmt.Fprintf(p.output, "  %s", jsonData)
		return
	}

	if p.useColors {
		fmt.Fprintf(p.output, "\033[1;36m%s\033[0m\n", file.Path)
	} else {
		fmt.Fprintf(p.output, "%s\n", file.Path)
	}
}

// Finalize completes any pending operations (like closing the JSON array)
func (p *Printer) Finalize() {
	if p.jsonOutput {
		if p.jsonStarted {
			fmt.Fprint(p.output, "\n]\n")
		} else {
			fmt.Fprint(p.output, "[]\n")
		}
	}
}

// GetCount returns the number of files printed
func (p *Printer) GetCount() int64 {
	return p.count.Load()
}
