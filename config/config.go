// Package config loads the optional batch-run configuration file: a YAML
// document naming benchmark files to run together with shared alphabet
// overrides, supplementing the single-file benchmark format.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/synthregex/synthregex/alphabet"
)

// Config is the optional --config document.
type Config struct {
	// Alphabet overrides the default alphabet for every listed benchmark,
	// unless a Run entry sets its own.
	Alphabet string `yaml:"alphabet"`

	// InflateP, when true, also inflates P's 'X' placeholders. Defaults to false (baseline: inflate N only).
	InflateP bool `yaml:"inflate_p"`

	// Runs lists the benchmark files to execute, in order.
	Runs []Run `yaml:"runs"`
}

// Run is one benchmark file entry, with an optional per-file alphabet
// override.
type Run struct {
	File     string `yaml:"file"`
	Alphabet string `yaml:"alphabet"`
}

// Load reads and parses a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: reading %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "config: parsing %s", path)
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = alphabet.DefaultAlphabet
	}
	for i := range cfg.Runs {
		if cfg.Runs[i].Alphabet == "" {
			cfg.Runs[i].Alphabet = cfg.Alphabet
		}
	}
	return &cfg, nil
}
