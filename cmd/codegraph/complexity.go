package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/panbanda/codegraph/internal/output"
	"github.com/panbanda/codegraph/pkg/source"
	"github.com/urfave/cli/v2"
)

func complexityCmd() *cli.Command {
	return &cli.Command{
		Name:      "complexity",
		Aliases:   []string{"cx"},
		Usage:     "Estimate per-function complexity of a single file",
		ArgsUsage: "<file>",
		Action:    runComplexity,
	}
}

func runComplexity(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("complexity requires exactly one file argument")
	}
	path := c.Args().First()

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	a := newAnalyzer(cfg)
	defer a.Close()

	records, err := a.ExtractComplexity(context.Background(), path, source.NewFilesystem())
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.ParseFormat(c.String("format")), c.String("output"), cfg.Output.Color)
	if err != nil {
		return err
	}
	defer formatter.Close()

	var rows [][]string
	for _, rec := range records {
		class := string(rec.Class)
		if formatter.Colored() && rec.Warning != "" {
			class = color.RedString(class)
		}
		rows = append(rows, []string{
			rec.Function,
			fmt.Sprintf("%d", rec.Line),
			class,
			rec.Warning,
		})
	}

	table := output.NewTable(
		fmt.Sprintf("Complexity: %s", path),
		[]string{"Function", "Line", "Complexity", "Warning"},
		rows,
		[]string{fmt.Sprintf("Functions: %d", len(records))},
		records,
	)
	return formatter.Output(table)
}
