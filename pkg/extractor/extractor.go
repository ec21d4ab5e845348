// Package extractor normalizes heterogeneous source syntax into one shared
// record model. One extractor exists per supported language: Python uses a
// full syntax tree, the others use ordered pattern matching over raw text.
package extractor

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/panbanda/codegraph/pkg/complexity"
)

// EdgeKind is the relationship a dependency edge expresses.
type EdgeKind string

// EdgeImport is the only kind emitted today; the field exists so call or
// inheritance edges can join the model without a schema change.
const EdgeImport EdgeKind = "import"

// String returns the string representation.
func (k EdgeKind) String() string {
	return string(k)
}

// DependencyEdge is a directed reference from a source file to a module or
// file target. Targets may be external and unresolved. Duplicate edges
// between the same pair are recorded once per occurrence.
type DependencyEdge struct {
	Source string   `json:"source" toon:"source"`
	Target string   `json:"target" toon:"target"`
	Kind   EdgeKind `json:"type" toon:"type"`
	Line   int      `json:"line" toon:"line"`
	Column int      `json:"column" toon:"column"`
}

// FileAnalysis is the normalized result of extracting one file.
type FileAnalysis struct {
	Dependencies    []DependencyEdge    `json:"dependencies" toon:"dependencies"`
	Complexity      []complexity.Record `json:"complexity" toon:"complexity"`
	Functions       []string            `json:"functions" toon:"functions"`
	Imports         []string            `json:"imports" toon:"imports"`
	TypeDefinitions []string            `json:"type_definitions" toon:"type_definitions"`
}

// NewFileAnalysis returns an empty analysis with allocated slices, the value
// extractors hand back alongside a recoverable diagnostic on failure.
func NewFileAnalysis() *FileAnalysis {
	return &FileAnalysis{
		Dependencies:    make([]DependencyEdge, 0),
		Complexity:      make([]complexity.Record, 0),
		Functions:       make([]string, 0),
		Imports:         make([]string, 0),
		TypeDefinitions: make([]string, 0),
	}
}

// Extractor turns one file's raw content into a FileAnalysis.
// Extract never aborts a multi-file run: on malformed input it returns an
// empty FileAnalysis together with the error as a recoverable diagnostic.
type Extractor interface {
	// CanHandle reports whether this extractor claims the file, by extension.
	CanHandle(path string) bool

	// Extract analyzes the file content.
	Extract(path string, content []byte) (*FileAnalysis, error)
}

// Registry is a fixed ordered list of extractors dispatched first-match by
// extension. Exactly one extractor handles a given file.
type Registry struct {
	extractors []Extractor
}

// NewRegistry creates the default registry: Python, JavaScript, Go.
func NewRegistry() *Registry {
	return &Registry{
		extractors: []Extractor{
			NewPython(),
			NewJavaScript(),
			NewGo(),
		},
	}
}

// For returns the first extractor claiming path, or nil when no extractor
// matches. Unmatched files are excluded from analysis, not errored.
func (r *Registry) For(path string) Extractor {
	for _, e := range r.extractors {
		if e.CanHandle(path) {
			return e
		}
	}
	return nil
}

// Close releases parser resources held by the extractors.
func (r *Registry) Close() {
	for _, e := range r.extractors {
		if c, ok := e.(interface{ Close() }); ok {
			c.Close()
		}
	}
}

// hasExtension reports whether path ends in one of exts.
func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// validUTF8 rejects content that does not decode as UTF-8. Decode failure is
// a recoverable per-file error, never fatal to the run.
func validUTF8(path string, content []byte) error {
	if !utf8.Valid(content) {
		return fmt.Errorf("%s: content is not valid UTF-8", path)
	}
	return nil
}

// splitLines splits content for line-oriented pattern scanning.
func splitLines(content []byte) []string {
	return strings.Split(string(content), "\n")
}

// braceWindow approximates a function body by brace-depth counting from the
// declaration line, bounded by window lines to cap worst-case scan cost.
// When the window exhausts before braces balance the partial slice collected
// so far stands in as the body.
func braceWindow(lines []string, start, window int) []string {
	if start >= len(lines) {
		return nil
	}

	end := start + window
	if end > len(lines) {
		end = len(lines)
	}

	depth := 0
	body := make([]string, 0, 8)
	for i := start; i < end; i++ {
		line := lines[i]
		body = append(body, line)
		depth += strings.Count(line, "{") - strings.Count(line, "}")
		if i > start && depth <= 0 {
			break
		}
	}
	return body
}
