// Package analyzer ties extraction, graph construction, and metrics into
// the three top-level operations: full analysis, single file complexity,
// and cycle detection. All three are stateless across invocations; a run
// never sees data from a previous one.
package analyzer

import (
	"context"
	"fmt"

	"github.com/panbanda/codegraph/internal/fileproc"
	"github.com/panbanda/codegraph/pkg/complexity"
	"github.com/panbanda/codegraph/pkg/extractor"
	"github.com/panbanda/codegraph/pkg/graph"
	"github.com/panbanda/codegraph/pkg/source"
)

// Analyzer runs dependency and complexity analysis over source files.
type Analyzer struct {
	registry    *extractor.Registry
	workers     int
	maxFileSize int64
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithWorkers sets the number of concurrent extraction workers.
// Values below 2 keep extraction sequential.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		a.workers = n
	}
}

// WithMaxFileSize sets the maximum file size to analyze (0 = no limit).
func WithMaxFileSize(maxSize int64) Option {
	return func(a *Analyzer) {
		a.maxFileSize = maxSize
	}
}

// New creates an analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		registry: extractor.NewRegistry(),
		workers:  1,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Close releases analyzer resources.
func (a *Analyzer) Close() {
	a.registry.Close()
}

// fileOutcome is the per-file unit of work. Exactly one of analysis or
// diag is meaningful; a file without a matching extractor has neither.
type fileOutcome struct {
	analysis *extractor.FileAnalysis
	diag     *Diagnostic
	claimed  bool
}

// Analyze extracts dependencies and complexity from every file, builds a
// fresh dependency graph, and computes aggregate metrics. Files that fail
// to read or parse surface as diagnostics, never as an error return.
func (a *Analyzer) Analyze(ctx context.Context, files []string, src source.ContentSource) (*AnalysisResult, error) {
	outcomes, err := a.extractAll(ctx, files, src)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{
		Dependencies: make([]extractor.DependencyEdge, 0),
		Complexity:   make([]complexity.Record, 0),
		Cycles:       make([]graph.Cycle, 0),
	}

	g := graph.New()
	functions := 0

	for _, out := range outcomes {
		if out.diag != nil {
			result.Diagnostics = append(result.Diagnostics, *out.diag)
		}
		if out.claimed {
			result.Metrics.TotalFiles++
		}
		if out.analysis == nil {
			continue
		}

		result.Dependencies = append(result.Dependencies, out.analysis.Dependencies...)
		result.Complexity = append(result.Complexity, out.analysis.Complexity...)
		functions += len(out.analysis.Functions)
	}

	for _, dep := range result.Dependencies {
		g.AddEdge(dep.Source, dep.Target)
	}
	result.Cycles = g.Cycles()

	classes := make([]complexity.Class, len(result.Complexity))
	for i, rec := range result.Complexity {
		classes[i] = rec.Class
	}

	result.Metrics.TotalFunctions = functions
	result.Metrics.AverageComplexity = complexity.Average(classes)
	result.Metrics.DependencyCount = len(result.Dependencies)
	result.Metrics.CircularDependencies = len(result.Cycles)

	return result, nil
}

// ExtractComplexity analyzes a single file and returns its per-function
// complexity records.
func (a *Analyzer) ExtractComplexity(ctx context.Context, path string, src source.ContentSource) ([]complexity.Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	ext := a.registry.For(path)
	if ext == nil {
		return nil, fmt.Errorf("no extractor for %s", path)
	}

	content, err := src.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	fa, err := ext.Extract(path, content)
	if err != nil {
		return nil, err
	}
	return fa.Complexity, nil
}

// DetectCycles builds the dependency graph for the files and returns only
// the circular dependencies.
func (a *Analyzer) DetectCycles(ctx context.Context, files []string, src source.ContentSource) ([]graph.Cycle, error) {
	g, err := a.DependencyGraph(ctx, files, src)
	if err != nil {
		return nil, err
	}
	return g.Cycles(), nil
}

// DependencyGraph extracts dependency edges from the files and returns the
// graph built from them.
func (a *Analyzer) DependencyGraph(ctx context.Context, files []string, src source.ContentSource) (*graph.Graph, error) {
	outcomes, err := a.extractAll(ctx, files, src)
	if err != nil {
		return nil, err
	}

	g := graph.New()
	for _, out := range outcomes {
		if out.analysis == nil {
			continue
		}
		for _, dep := range out.analysis.Dependencies {
			g.AddEdge(dep.Source, dep.Target)
		}
	}
	return g, nil
}

// extractAll runs extraction over all files, sequentially or on a worker
// pool, and returns one outcome per input file in input order.
func (a *Analyzer) extractAll(ctx context.Context, files []string, src source.ContentSource) ([]fileOutcome, error) {
	tracker := TrackerFromContext(ctx)
	if tracker != nil {
		tracker.Add(len(files))
	}

	tick := func(path string) {
		if tracker != nil {
			tracker.Tick(path)
		}
	}

	if a.workers > 1 {
		return a.extractConcurrent(ctx, files, src, tick)
	}

	outcomes := make([]fileOutcome, len(files))
	for i, path := range files {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		outcomes[i] = a.extractOne(a.registry, path, src)
		tick(path)
	}
	return outcomes, nil
}

func (a *Analyzer) extractConcurrent(ctx context.Context, files []string, src source.ContentSource, tick func(string)) ([]fileOutcome, error) {
	outcomes, procErrs := fileproc.MapIndexed(ctx, files, a.workers,
		func(reg *extractor.Registry, path string) (fileOutcome, error) {
			return a.extractOne(reg, path, src), nil
		},
		func() {
			// Completion order is arbitrary, so no per-file label.
			tick("")
		})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	_ = procErrs // extractOne reports failures as diagnostics, never errors
	return outcomes, nil
}

// extractOne reads and extracts a single file. Failures become
// diagnostics; files no extractor claims contribute nothing at all.
func (a *Analyzer) extractOne(reg *extractor.Registry, path string, src source.ContentSource) fileOutcome {
	ext := reg.For(path)
	if ext == nil {
		return fileOutcome{}
	}

	content, err := src.Read(path)
	if err != nil {
		return fileOutcome{
			claimed: true,
			diag:    &Diagnostic{Path: path, Message: fmt.Sprintf("read failed: %v", err)},
		}
	}

	if a.maxFileSize > 0 && int64(len(content)) > a.maxFileSize {
		return fileOutcome{
			claimed: true,
			diag:    &Diagnostic{Path: path, Message: "file exceeds size limit"},
		}
	}

	fa, err := ext.Extract(path, content)
	out := fileOutcome{analysis: fa, claimed: true}
	if err != nil {
		out.diag = &Diagnostic{Path: path, Message: err.Error()}
	}
	return out
}
