package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable defaults loaded from the file named by --config
// (galach.yaml in the working directory by default). Every field has a sane default so a missing or partially
// filled file is never an error worth stopping over.
type Config struct {
	Color      bool   `yaml:"color"`
	OutputKind string `yaml:"output"` // "text", "json", or "yaml"
	CacheDir   string `yaml:"cache_dir"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Color:      true,
		OutputKind: "text",
		CacheDir:   ".galach-cache",
	}
}

// LoadConfig reads and parses path, filling in defaults for any field the
// file leaves unset.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
