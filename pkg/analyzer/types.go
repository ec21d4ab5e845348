package analyzer

import (
	"github.com/panbanda/codegraph/pkg/complexity"
	"github.com/panbanda/codegraph/pkg/extractor"
	"github.com/panbanda/codegraph/pkg/graph"
)

// ProjectMetrics summarizes a whole analysis run.
type ProjectMetrics struct {
	TotalFiles           int              `json:"total_files" toon:"total_files"`
	TotalFunctions       int              `json:"total_functions" toon:"total_functions"`
	AverageComplexity    complexity.Class `json:"average_complexity" toon:"average_complexity"`
	DependencyCount      int              `json:"dependency_count" toon:"dependency_count"`
	CircularDependencies int              `json:"circular_dependencies" toon:"circular_dependencies"`
}

// Diagnostic reports a file that could not be fully analyzed. Diagnostics
// never abort a run; the file simply contributes nothing.
type Diagnostic struct {
	Path    string `json:"path" toon:"path"`
	Message string `json:"message" toon:"message"`
}

// AnalysisResult is the complete output of one analysis run. Dependencies
// and Complexity are flat sequences in input file order.
type AnalysisResult struct {
	Dependencies []extractor.DependencyEdge `json:"dependencies" toon:"dependencies"`
	Complexity   []complexity.Record        `json:"complexity" toon:"complexity"`
	Cycles       []graph.Cycle              `json:"cycles" toon:"cycles"`
	Metrics      ProjectMetrics             `json:"metrics" toon:"metrics"`
	Diagnostics  []Diagnostic               `json:"diagnostics,omitempty" toon:"diagnostics,omitempty"`
}
