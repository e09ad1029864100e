// Package config loads engine configuration from a TOML file, the same
// format and library (BurntSushi/toml) the teacher corpus reaches for
// whenever a project needs a config file rather than flags/env alone.
package config

import (
	"github.com/BurntSushi/toml"
)

// Config is the engine's top-level configuration.
type Config struct {
	// CacheBytes bounds the weighted materialisation cache (spec §4.5).
	CacheBytes int64 `toml:"cache_bytes"`
	// Verbose turns on the executor's per-node logrus logging by default.
	Verbose bool `toml:"verbose"`
	// DatasetRoot names a default dataset root directory. It is decoded
	// from the file but not read by the engine or the CLI:
	// engine.RegisterDataset takes an already-opened dataset.Dataset.
	DatasetRoot string `toml:"dataset_root"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		CacheBytes: 256 << 20,
		Verbose:    false,
	}
}

// Load reads and decodes a TOML config file, filling in defaults for
// anything the file doesn't set.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
