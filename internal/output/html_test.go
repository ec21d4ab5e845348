package output

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/panbanda/codegraph/pkg/analyzer"
	"github.com/panbanda/codegraph/pkg/complexity"
	"github.com/panbanda/codegraph/pkg/extractor"
	"github.com/panbanda/codegraph/pkg/graph"
)

func TestRenderHTML(t *testing.T) {
	result := &analyzer.AnalysisResult{
		Dependencies: []extractor.DependencyEdge{
			{Source: "a.py", Target: "os", Kind: extractor.EdgeImport, Line: 1},
		},
		Complexity: []complexity.Record{
			complexity.NewRecord("slow", "a.py", complexity.ON2, 10),
		},
		Cycles: []graph.Cycle{
			{Nodes: []string{"a.py", "b.py", "a.py"}, Severity: graph.SeverityWarning},
		},
		Metrics: analyzer.ProjectMetrics{
			TotalFiles:           2,
			TotalFunctions:       1,
			AverageComplexity:    complexity.ON2,
			DependencyCount:      1,
			CircularDependencies: 1,
		},
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, result); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Total Files: 2",
		"<td>slow</td>",
		`class="warning"`,
		"a.py → b.py → a.py",
		"a.py &rarr; os (import)",
		"Consider optimizing",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestRenderHTMLNoCycles(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, &analyzer.AnalysisResult{}); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No circular dependencies found!") {
		t.Error("empty result missing no-cycles message")
	}
}

func TestRenderHTMLCapsDependencies(t *testing.T) {
	result := &analyzer.AnalysisResult{}
	for i := 0; i < maxReportDependencies+10; i++ {
		result.Dependencies = append(result.Dependencies, extractor.DependencyEdge{
			Source: fmt.Sprintf("f%d.py", i),
			Target: "os",
			Kind:   extractor.EdgeImport,
		})
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, result); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, `class="dependency"`); got != maxReportDependencies {
		t.Errorf("rendered %d dependencies, want %d", got, maxReportDependencies)
	}
	if len(result.Dependencies) != maxReportDependencies+10 {
		t.Error("RenderHTML mutated the caller's result")
	}
}
