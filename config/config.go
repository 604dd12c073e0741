package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults.
type Config struct {
	IntervalSec  int    `json:"interval_sec"`
	HistorySize  int    `json:"history_size"`
	ScenarioPath string `json:"scenario_path,omitempty"`
	EventsOut    string `json:"events_out,omitempty"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalSec: 1,
		HistorySize: 300, // ~5 min at 1s
	}
}

// Path returns ~/.config/provertop/config.json (or XDG_CONFIG_HOME).
// Returns empty string if the home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "provertop", "config.json")
}

// Load loads config from disk; returns defaults on any error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("provertop: warning: config parse error: %v", err)
	}
	if cfg.IntervalSec < 1 {
		cfg.IntervalSec = 1
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = Default().HistorySize
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
