package extractor

import (
	"regexp"
	"strings"

	"github.com/panbanda/codegraph/pkg/complexity"
)

var (
	goSingleImport = regexp.MustCompile(`^\s*import\s+(?:\w+\s+)?"([^"]+)"`)
	goBlockImport  = regexp.MustCompile(`^\s*(?:\w+\s+|\.\s+|_\s+)?"([^"]+)"`)
	goFuncPattern  = regexp.MustCompile(`func\s+(?:\([^)]*\)\s+)?(\w+)\s*\([^)]*\)`)
	goLoopPattern  = regexp.MustCompile(`\b(for|range)\b`)
	goTypePattern  = regexp.MustCompile(`type\s+(\w+)\s+(?:struct|interface)\b`)
)

// goBodyWindow is wider than the JS one; Go bodies are brace heavy and the
// scan terminates on balance anyway.
const goBodyWindow = 100

// Golang is the pattern-based extractor for Go sources. Import blocks are
// tracked with a small state machine since grouped imports span lines.
type Golang struct{}

// NewGo creates the Go extractor.
func NewGo() *Golang {
	return &Golang{}
}

// CanHandle implements Extractor.
func (g *Golang) CanHandle(path string) bool {
	return hasExtension(path, []string{".go"})
}

// Extract implements Extractor.
func (g *Golang) Extract(path string, content []byte) (*FileAnalysis, error) {
	fa := NewFileAnalysis()

	if err := validUTF8(path, content); err != nil {
		return fa, err
	}

	lines := splitLines(content)
	g.extractImports(lines, path, fa)
	g.extractFunctions(lines, path, fa)

	for _, m := range goTypePattern.FindAllStringSubmatch(string(content), -1) {
		fa.TypeDefinitions = append(fa.TypeDefinitions, m[1])
	}

	return fa, nil
}

func (g *Golang) extractImports(lines []string, path string, fa *FileAnalysis) {
	inBlock := false
	for lineNum, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case !inBlock && strings.HasPrefix(trimmed, "import ("):
			inBlock = true
			continue
		case inBlock && trimmed == ")":
			inBlock = false
			continue
		}

		var target string
		if inBlock {
			if m := goBlockImport.FindStringSubmatch(line); m != nil {
				target = m[1]
			}
		} else if m := goSingleImport.FindStringSubmatch(line); m != nil {
			target = m[1]
		}
		if target == "" {
			continue
		}

		fa.Dependencies = append(fa.Dependencies, DependencyEdge{
			Source: path,
			Target: target,
			Kind:   EdgeImport,
			Line:   lineNum + 1,
			Column: strings.Index(line, `"`),
		})
		fa.Imports = append(fa.Imports, target)
	}
}

func (g *Golang) extractFunctions(lines []string, path string, fa *FileAnalysis) {
	for lineNum, line := range lines {
		m := goFuncPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := m[1]
		fa.Functions = append(fa.Functions, name)

		body := braceWindow(lines, lineNum, goBodyWindow)
		class := complexity.EstimateText(body, name, goLoopPattern)
		fa.Complexity = append(fa.Complexity,
			complexity.NewRecord(name, path, class, lineNum+1))
	}
}
