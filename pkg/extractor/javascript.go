package extractor

import (
	"regexp"

	"github.com/panbanda/codegraph/pkg/complexity"
)

// JavaScript-family patterns, tried in order per line. ES imports, side
// effect imports, CommonJS require, and dynamic import each bind one name.
var jsImportPatterns = []*regexp.Regexp{
	regexp.MustCompile(`import\s+.*\s+from\s+['"]([^'"]+)['"]`),
	regexp.MustCompile(`import\s+['"]([^'"]+)['"]`),
	regexp.MustCompile(`require\s*\(\s*['"]([^'"]+)['"]\s*\)`),
	regexp.MustCompile(`import\s*\(\s*['"]([^'"]+)['"]\s*\)`),
}

// Declaration forms: named functions, object-literal methods, assigned
// function expressions, and arrow functions.
var jsFunctionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`function\s+(\w+)\s*\(`),
	regexp.MustCompile(`(\w+)\s*:\s*function\s*\(`),
	regexp.MustCompile(`(\w+)\s*=\s*function\s*\(`),
	regexp.MustCompile(`(\w+)\s*=\s*\([^)]*\)\s*=>\s*{`),
	regexp.MustCompile(`const\s+(\w+)\s*=\s*\([^)]*\)\s*=>`),
}

var (
	jsLoopPattern  = regexp.MustCompile(`\b(for|while|forEach)\b`)
	jsClassPattern = regexp.MustCompile(`class\s+(\w+)(?:\s+extends\s+\w+)?`)
)

// jsBodyWindow bounds the brace scan for the lightly-braced JS family.
const jsBodyWindow = 50

// JavaScript is the pattern-based extractor for the JavaScript/TypeScript
// family. It scans raw text line by line; no syntax tree is built.
type JavaScript struct{}

// NewJavaScript creates the JavaScript extractor.
func NewJavaScript() *JavaScript {
	return &JavaScript{}
}

// CanHandle implements Extractor.
func (j *JavaScript) CanHandle(path string) bool {
	return hasExtension(path, []string{".js", ".ts", ".jsx", ".tsx"})
}

// Extract implements Extractor.
func (j *JavaScript) Extract(path string, content []byte) (*FileAnalysis, error) {
	fa := NewFileAnalysis()

	if err := validUTF8(path, content); err != nil {
		return fa, err
	}

	lines := splitLines(content)
	j.extractImports(lines, path, fa)
	j.extractFunctions(lines, path, fa)

	for _, m := range jsClassPattern.FindAllStringSubmatch(string(content), -1) {
		fa.TypeDefinitions = append(fa.TypeDefinitions, m[1])
	}

	return fa, nil
}

// extractImports records one edge per import occurrence, with line and
// column taken from the match position.
func (j *JavaScript) extractImports(lines []string, path string, fa *FileAnalysis) {
	for lineNum, line := range lines {
		for _, pattern := range jsImportPatterns {
			for _, idx := range pattern.FindAllStringSubmatchIndex(line, -1) {
				target := line[idx[2]:idx[3]]
				fa.Dependencies = append(fa.Dependencies, DependencyEdge{
					Source: path,
					Target: target,
					Kind:   EdgeImport,
					Line:   lineNum + 1,
					Column: idx[0],
				})
				fa.Imports = append(fa.Imports, target)
			}
		}
	}
}

// extractFunctions finds declaration-like lines, approximates each body by
// brace counting, and estimates its complexity.
func (j *JavaScript) extractFunctions(lines []string, path string, fa *FileAnalysis) {
	for lineNum, line := range lines {
		for _, pattern := range jsFunctionPatterns {
			m := pattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			name := m[1]
			fa.Functions = append(fa.Functions, name)

			body := braceWindow(lines, lineNum, jsBodyWindow)
			class := complexity.EstimateText(body, name, jsLoopPattern)
			fa.Complexity = append(fa.Complexity,
				complexity.NewRecord(name, path, class, lineNum+1))

			// First matching form wins, otherwise arrow functions
			// would be counted twice.
			break
		}
	}
}
