package main

import (
	"fmt"
	"path/filepath"

	"github.com/panbanda/codegraph/internal/scanner"
	"github.com/panbanda/codegraph/pkg/analyzer"
	"github.com/panbanda/codegraph/pkg/config"
	"github.com/panbanda/codegraph/pkg/extractor"
	"github.com/urfave/cli/v2"
)

// getPaths returns paths from positional args, defaulting to ["."]
func getPaths(c *cli.Context) []string {
	if c.Args().Len() > 0 {
		return c.Args().Slice()
	}
	return []string{"."}
}

// loadConfig loads the configured file or the defaults, then applies
// command line overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
		cfg = loaded
	} else {
		cfg = config.LoadOrDefault()
	}

	cfg.Exclude.Patterns = append(cfg.Exclude.Patterns, c.StringSlice("exclude")...)
	if jobs := c.Int("jobs"); jobs > 0 {
		cfg.Analysis.Workers = jobs
	}
	if c.Bool("verbose") {
		cfg.Output.Verbose = true
	}

	return cfg, nil
}

// scanFiles collects analyzable files under each path.
func scanFiles(cfg *config.Config, paths []string) ([]string, error) {
	reg := extractor.NewRegistry()
	defer reg.Close()
	scan := scanner.New(cfg, reg)

	var files []string
	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("invalid path %s: %w", path, err)
		}
		found, err := scan.ScanDir(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to scan directory %s: %w", path, err)
		}
		files = append(files, found...)
	}
	return files, nil
}

// newAnalyzer builds an analyzer from config.
func newAnalyzer(cfg *config.Config) *analyzer.Analyzer {
	return analyzer.New(
		analyzer.WithWorkers(cfg.Analysis.Workers),
		analyzer.WithMaxFileSize(cfg.Analysis.MaxFileSize),
	)
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen < 4 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
