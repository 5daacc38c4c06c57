package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI settings, loadable from an optional YAML file and
// overridable by flags.
type Config struct {
	Depth    int    `yaml:"depth"`
	Seed     uint64 `yaml:"seed"`
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Depth:    3,
		Seed:     0, // 0 means draw a random seed
		LogLevel: "info",
	}
}

// loadConfig reads the YAML file at path into the defaults. A missing file
// is fine when the path is the default location.
func loadConfig(path string, mustExist bool) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !mustExist {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Depth < 1 {
		return cfg, fmt.Errorf("config %s: depth must be at least 1", path)
	}
	return cfg, nil
}
