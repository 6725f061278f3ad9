package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level payapp.yaml configuration.
type Config struct {
	Project   ProjectConfig   `yaml:"project"`
	Retainage RetainageConfig `yaml:"retainage"`
	PDF       PDFConfig       `yaml:"pdf"`
	Git       GitConfig       `yaml:"git"`
}

// ProjectConfig identifies the construction project.
type ProjectConfig struct {
	Name       string `yaml:"name"`
	Contractor string `yaml:"contractor,omitempty"`
	Owner      string `yaml:"owner,omitempty"`
}

// RetainageConfig sets the rate used when a parsed header carries none.
type RetainageConfig struct {
	DefaultRatePercent float64 `yaml:"default_rate_percent"`
}

// PDFConfig orders the text extraction backends.
type PDFConfig struct {
	Backends []string `yaml:"backends"`
}

// GitConfig controls git integration for the data workspace.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a payapp.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default(projectName string) *Config {
	return &Config{
		Project: ProjectConfig{
			Name: projectName,
		},
		Retainage: RetainageConfig{
			DefaultRatePercent: 5,
		},
		PDF: PDFConfig{
			Backends: []string{"ledongthuc", "dslipak"},
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Payapp",
			AuthorEmail: "payapp@payapp.dev",
		},
	}
}
