// Package config handles nonzerogen.toml project configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by FindAndLoad.
const FileName = "nonzerogen.toml"

// Config represents a nonzerogen.toml file.
type Config struct {
	Generate Generate `toml:"generate"`

	// Dir is the directory containing the nonzerogen.toml file (set at load time).
	Dir string `toml:"-"`
}

// Generate supplies defaults for the generate command. Command-line flags
// override every field.
type Generate struct {
	Package string `toml:"package"`
	Output  string `toml:"output"`
	Import  string `toml:"import"`
	DB      string `toml:"db"`
}

// Load parses nonzerogen.toml from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses the configuration file at path. Unknown keys are an error
// so typos do not silently fall back to defaults. Dir is set to the
// directory holding the file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var c Config
	md, err := toml.Decode(string(data), &c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	c.Dir, err = filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}

	return &c, nil
}

// FindAndLoad walks up from startDir to find a nonzerogen.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// OutputPath returns the configured output resolved against Dir.
func (c *Config) OutputPath() string { return c.resolve(c.Generate.Output) }

// DBPath returns the configured ledger path resolved against Dir.
func (c *Config) DBPath() string { return c.resolve(c.Generate.DB) }

func (c *Config) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Dir, p)
}
