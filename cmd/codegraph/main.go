package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

var version = "dev"

func main() {
	app := &cli.App{
		Name:    "codegraph",
		Usage:   "Dependency and complexity analysis for source trees",
		Version: version,
		Description: `CodeGraph scans a project, extracts import dependencies and
per-function complexity estimates, and reports circular dependencies.

Supports: Python, JavaScript, TypeScript, Go`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (TOML, YAML, or JSON)",
				EnvVars: []string{"CODEGRAPH_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json, markdown, toon, html",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to file",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Additional exclude patterns (gitignore syntax)",
			},
			&cli.IntFlag{
				Name:  "jobs",
				Usage: "Number of extraction workers (default from config)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose output",
			},
		},
		Commands: []*cli.Command{
			analyzeCmd(),
			complexityCmd(),
			cyclesCmd(),
			graphCmd(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
