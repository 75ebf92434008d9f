// Package config loads an optional di.yaml file used to seed the CLI's
// flag defaults, so a project directory can pin its preferred input
// files and output behavior without repeating flags on every invocation.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI's flag surface. Zero values mean "not set":
// the CLI only overrides a flag default when the corresponding field
// is non-empty/non-zero.
type Config struct {
	Inputs     []string `yaml:"inputs"`
	Output     string   `yaml:"output"`
	NoOutput   bool     `yaml:"no_output"`
	TraceOn    bool     `yaml:"trace"`
	TraceMatch []string `yaml:"trace_filters"`
}

// Load reads and parses the YAML file at path. A missing file is not an
// error — it returns a zero-value Config so the CLI falls back entirely
// to its own flag defaults.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
