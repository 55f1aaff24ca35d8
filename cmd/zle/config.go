package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config contains the knobs of the zle binary. All fields are optional.
type Config struct {
	// Prompt is written before the line content.
	Prompt string `yaml:"prompt"`
	// HistoryFile is the path of the command history database. When empty,
	// history is kept in memory only.
	HistoryFile string `yaml:"history-file"`
	// MaxHistorySize is the maximal number of history entries to keep.
	MaxHistorySize int `yaml:"max-history-size"`
}

func defaultConfig() Config {
	return Config{Prompt: "zle> ", MaxHistorySize: 1000}
}

// loadConfig reads the configuration from path. A missing file is not an
// error; the defaults are returned.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultConfig().Prompt
	}
	if cfg.MaxHistorySize <= 0 {
		cfg.MaxHistorySize = defaultConfig().MaxHistorySize
	}
	return cfg, nil
}

// defaultConfigPath returns the default location of the config file,
// $XDG_CONFIG_HOME/zle/config.yaml or the OS equivalent.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "zle", "config.yaml")
}
