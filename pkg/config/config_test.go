package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Analysis.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Analysis.Workers)
	}
	if cfg.Analysis.MaxFileSize != 0 {
		t.Errorf("MaxFileSize = %d, want 0", cfg.Analysis.MaxFileSize)
	}
	if cfg.Output.Format != "text" || !cfg.Output.Color {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if !cfg.Exclude.Gitignore {
		t.Error("Gitignore default = false, want true")
	}

	for _, dir := range []string{"node_modules", "vendor", ".git", "venv", "__pycache__", "dist", "build"} {
		found := false
		for _, got := range cfg.Exclude.Dirs {
			if got == dir {
				found = true
			}
		}
		if !found {
			t.Errorf("default exclude dirs missing %q", dir)
		}
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codegraph.toml")
	content := `[analysis]
workers = 8
max_file_size = 1024

[exclude]
patterns = ["*.gen.go"]
gitignore = false

[output]
format = "json"
verbose = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Analysis.Workers)
	}
	if cfg.Analysis.MaxFileSize != 1024 {
		t.Errorf("MaxFileSize = %d, want 1024", cfg.Analysis.MaxFileSize)
	}
	if len(cfg.Exclude.Patterns) != 1 || cfg.Exclude.Patterns[0] != "*.gen.go" {
		t.Errorf("Patterns = %v", cfg.Exclude.Patterns)
	}
	if cfg.Exclude.Gitignore {
		t.Error("Gitignore = true, want false")
	}
	if cfg.Output.Format != "json" || !cfg.Output.Verbose {
		t.Errorf("Output = %+v", cfg.Output)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "codegraph.yaml")
	content := `analysis:
  workers: 4
output:
  format: markdown
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Analysis.Workers)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q, want markdown", cfg.Output.Format)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load of missing file did not fail")
	}
}

func TestLoadOrDefaultFallback(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	cfg := LoadOrDefault()
	if cfg.Analysis.Workers != 1 || cfg.Output.Format != "text" {
		t.Errorf("fallback config = %+v", cfg)
	}
}

func TestLoadOrDefaultPicksUpFile(t *testing.T) {
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(old)

	content := "[analysis]\nworkers = 3\n"
	if err := os.WriteFile("codegraph.toml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadOrDefault()
	if cfg.Analysis.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Analysis.Workers)
	}
}
