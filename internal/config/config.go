// Package config loads the optional systemsgen.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the conventional config name. It is never read implicitly:
// a run without --config uses only flags and built-in defaults.
const DefaultFile = "systemsgen.yaml"

// Config mirrors the generator flags. Unset keys leave the flag defaults alone.
type Config struct {
	Input      string `yaml:"input"`
	Output     string `yaml:"output"`
	Format     string `yaml:"format"`
	SkipHeader *bool  `yaml:"skip_header"`
	Verify     *bool  `yaml:"verify"`
}

// Load reads and strictly decodes path. An empty file is a zero Config.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads explicit when set and returns the path that was loaded.
// With no explicit path it returns a zero Config and "", even when
// DefaultFile exists in the working directory.
func Discover(explicit string) (Config, string, error) {
	if explicit == "" {
		return Config{}, "", nil
	}
	cfg, err := Load(explicit)
	return cfg, explicit, err
}
