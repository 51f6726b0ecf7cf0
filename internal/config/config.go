// Package config reads the optional mircfg.toml overriding renderer
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the working directory.
const FileName = "mircfg.toml"

// Config holds the renderer settings a mircfg.toml may override. Empty
// fields mean "not set" and keep the built-in default.
type Config struct {
	Renderer string `toml:"renderer"`
	Format   string `toml:"format"`
	OutDir   string `toml:"out_dir"`
	Section  string `toml:"section"`
}

// Load reads path. A missing file yields a zero Config and ok=false; a
// malformed file is an error.
func Load(path string) (Config, bool, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	return cfg, true, nil
}
