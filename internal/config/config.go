package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level cashmonitor.yaml configuration.
type Config struct {
	Data       DataConfig       `yaml:"data"`
	Currency   string           `yaml:"currency"`
	Pin        PinConfig        `yaml:"pin"`
	Categories CategoriesConfig `yaml:"categories,omitempty"`
	Backup     BackupConfig     `yaml:"backup"`
}

// DataConfig locates the month files on disk.
type DataConfig struct {
	Dir string `yaml:"dir"`
}

// PinConfig controls the edit/delete session.
type PinConfig struct {
	SessionMinutes int `yaml:"session_minutes"`
}

// CategoriesConfig overrides the built-in category sets. Empty lists keep
// the defaults.
type CategoriesConfig struct {
	Expense []string `yaml:"expense,omitempty"`
	Income  []string `yaml:"income,omitempty"`
}

// BackupConfig controls git snapshots of the data directory.
type BackupConfig struct {
	AutoSnapshot bool `yaml:"auto_snapshot"`
}

// Load reads a cashmonitor.yaml file from disk.
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

// Default returns a Config with sensible defaults for a new setup.
func Default(dataDir string) *Config {
	return &Config{
		Data:     DataConfig{Dir: dataDir},
		Currency: "EUR",
		Pin:      PinConfig{SessionMinutes: 5},
		Backup:   BackupConfig{AutoSnapshot: false},
	}
}
