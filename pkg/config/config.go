package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration options for codegraph.
type Config struct {
	// Analysis settings
	Analysis AnalysisConfig `koanf:"analysis"`

	// File exclusion patterns
	Exclude ExcludeConfig `koanf:"exclude"`

	// Output settings
	Output OutputConfig `koanf:"output"`
}

// AnalysisConfig controls how the analysis runs.
type AnalysisConfig struct {
	// Workers is the number of concurrent extraction workers. 1 means
	// sequential.
	Workers int `koanf:"workers"`

	// MaxFileSize skips files larger than this many bytes. 0 disables
	// the limit.
	MaxFileSize int64 `koanf:"max_file_size"`
}

// ExcludeConfig defines file exclusion patterns.
type ExcludeConfig struct {
	Patterns  []string `koanf:"patterns"`
	Dirs      []string `koanf:"dirs"`
	Gitignore bool     `koanf:"gitignore"`
}

// OutputConfig controls output formatting.
type OutputConfig struct {
	Format  string `koanf:"format"` // text, json, markdown, toon
	Color   bool   `koanf:"color"`
	Verbose bool   `koanf:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Workers:     1,
			MaxFileSize: 0,
		},
		Exclude: ExcludeConfig{
			Dirs: []string{
				"node_modules",
				"vendor",
				".git",
				"venv",
				"__pycache__",
				"dist",
				"build",
			},
			Gitignore: true,
		},
		Output: OutputConfig{
			Format:  "text",
			Color:   true,
			Verbose: false,
		},
	}
}

// Load loads configuration from a file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		parser = toml.Parser()
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadOrDefault tries standard config locations and falls back to defaults.
func LoadOrDefault() *Config {
	names := []string{
		"codegraph.toml",
		"codegraph.yaml",
		"codegraph.yml",
		"codegraph.json",
		".codegraph.toml",
		".codegraph.yaml",
		".codegraph.yml",
		".codegraph.json",
	}

	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			if cfg, err := Load(name); err == nil {
				return cfg
			}
		}
	}

	return DefaultConfig()
}
