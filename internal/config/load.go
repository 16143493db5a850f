package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load builds settings with priority: defaults < file < flags. args are
// the command line arguments without the program name.
func Load(args []string) (*Settings, error) {
	f, err := parseFlags(args)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	if f.configPath != "" {
		if err := loadFromFile(cfg, f.configPath); err != nil {
			return nil, fmt.Errorf("loading settings from %s: %w", f.configPath, err)
		}
	}

	f.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

// loadFromFile merges a YAML file into cfg.
func loadFromFile(cfg *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// SaveTo writes the settings as YAML.
func (s *Settings) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
