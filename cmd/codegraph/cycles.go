package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/panbanda/codegraph/internal/output"
	"github.com/panbanda/codegraph/internal/progress"
	"github.com/panbanda/codegraph/pkg/analyzer"
	"github.com/panbanda/codegraph/pkg/graph"
	"github.com/panbanda/codegraph/pkg/source"
	"github.com/urfave/cli/v2"
)

func cyclesCmd() *cli.Command {
	return &cli.Command{
		Name:      "cycles",
		Aliases:   []string{"check-cycles"},
		Usage:     "Detect circular dependencies",
		ArgsUsage: "[path...]",
		Action:    runCycles,
	}
}

func runCycles(c *cli.Context) error {
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

	bar := progress.NewTracker("Detecting cycles...", len(files))
	tracker := analyzer.NewTracker(func(_, _ int, _ string) {
		bar.Tick()
	})
	ctx := analyzer.WithTracker(context.Background(), tracker)

	cycles, err := a.DetectCycles(ctx, files, source.NewFilesystem())
	bar.FinishSuccess()
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var lines []string
	for _, cycle := range cycles {
		line := strings.Join(cycle.Nodes, " → ")
		if formatter.Colored() {
			line = output.SeverityColor(string(cycle.Severity), line)
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", line, cycle.Severity))
	}
	if len(lines) == 0 {
		lines = []string{"No circular dependencies found!"}
	}

	section := &output.Section{
		Title:   "Circular Dependencies",
		Content: strings.Join(lines, "\n"),
		Data:    map[string][]graph.Cycle{"cycles": cycles},
	}
	return formatter.Output(section)
}
