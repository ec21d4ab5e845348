package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/panbanda/codegraph/internal/output"
	"github.com/panbanda/codegraph/internal/progress"
	"github.com/panbanda/codegraph/pkg/analyzer"
	"github.com/panbanda/codegraph/pkg/source"
	"github.com/urfave/cli/v2"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Run the full dependency and complexity analysis",
		ArgsUsage: "[path...]",
		Action:    runAnalyze,
	}
}

func runAnalyze(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	files, err := scanFiles(cfg, getPaths(c))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	a := newAnalyzer(cfg)
	defer a.Close()

	bar := progress.NewTracker("Analyzing...", len(files))
	tracker := analyzer.NewTracker(func(_, _ int, _ string) {
		bar.Tick()
	})
	ctx := analyzer.WithTracker(context.Background(), tracker)

	result, err := a.Analyze(ctx, files, source.NewFilesystem())
	bar.FinishSuccess()
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	if formatter.Format() == output.FormatHTML {
		return output.RenderHTML(formatter.Writer(), result)
	}

	report := buildAnalysisReport(result, formatter.Colored())
	if err := formatter.Output(report); err != nil {
		return err
	}

	if cfg.Output.Verbose && len(result.Diagnostics) > 0 && formatter.Format() == output.FormatText {
		color.Yellow("Skipped files (%d):", len(result.Diagnostics))
		for _, d := range result.Diagnostics {
			fmt.Printf("  - %s: %s\n", d.Path, d.Message)
		}
	}

	return nil
}

// buildAnalysisReport assembles the renderable report for text, markdown,
// json, and toon output.
func buildAnalysisReport(result *analyzer.AnalysisResult, colored bool) *output.Report {
	metrics := &output.Section{
		Title: "Project Metrics",
		Content: fmt.Sprintf(
			"Files: %d\nFunctions: %d\nAverage complexity: %s\nDependencies: %d\nCircular dependencies: %d",
			result.Metrics.TotalFiles,
			result.Metrics.TotalFunctions,
			result.Metrics.AverageComplexity,
			result.Metrics.DependencyCount,
			result.Metrics.CircularDependencies,
		),
	}

	var rows [][]string
	for _, rec := range result.Complexity {
		class := string(rec.Class)
		if colored && rec.Warning != "" {
			class = color.RedString(class)
		}
		rows = append(rows, []string{
			rec.Function,
			truncate(rec.File, 60),
			fmt.Sprintf("%d", rec.Line),
			class,
			rec.Warning,
		})
	}
	complexityTable := output.NewTable(
		"Complexity",
		[]string{"Function", "File", "Line", "Complexity", "Warning"},
		rows,
		nil,
		result.Complexity,
	)

	var cycleLines []string
	for _, cycle := range result.Cycles {
		line := strings.Join(cycle.Nodes, " → ")
		if colored {
			line = output.SeverityColor(string(cycle.Severity), line)
		}
		cycleLines = append(cycleLines, fmt.Sprintf("%s (%s)", line, cycle.Severity))
	}
	if len(cycleLines) == 0 {
		cycleLines = []string{"No circular dependencies found!"}
	}
	cycles := &output.Section{
		Title:   "Circular Dependencies",
		Content: strings.Join(cycleLines, "\n"),
	}

	return &output.Report{
		Title:    "CodeGraph Analysis",
		Sections: []output.Renderable{metrics, complexityTable, cycles},
		Data:     result,
	}
}
