package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/html2ans"
	"gopkg.in/yaml.v3"
)

// Config holds settings read from the YAML config file. Command-line flags
// override these values.
type Config struct {
	DB          string `yaml:"db"`
	StartTag    string `yaml:"start_tag"`
	Strict      bool   `yaml:"strict"`
	Extractor   string `yaml:"extractor"`
	Concurrency int    `yaml:"concurrency"`
	Verbose     bool   `yaml:"verbose"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Extractor:   extractorNone,
		Concurrency: 4,
	}
}

// LoadConfig reads the config file at path on top of DefaultConfig.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, html2ans.Errorf(html2ans.EINVALID, "invalid config %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes cfg as YAML to path.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	switch c.Extractor {
	case "", extractorNone, extractorTrafilatura, extractorReadability:
	default:
		return html2ans.Errorf(html2ans.EINVALID, "unknown extractor %q (want none, trafilatura or readability)", c.Extractor)
	}
	if c.Concurrency < 0 {
		return html2ans.Errorf(html2ans.EINVALID, "concurrency must not be negative")
	}
	return nil
}

func defaultConfigPath() string {
	if path := os.Getenv("HTML2ANS_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".html2ans", "config.yaml")
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "html2ans.db"
	}
	dir := filepath.Join(home, ".html2ans")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "html2ans.db")
}
