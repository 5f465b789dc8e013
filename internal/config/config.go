// Package config loads runtime settings from an optional YAML file and lets
// CLI flags override whatever the file set, the same layering the rest of
// the retrieval pack uses for its own config packages.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inetvm/inet/internal/inet"
)

// Config is the union of everything a run of the CLI needs: net sizing,
// worker count, and logging.
type Config struct {
	ArenaCapacity  uint64 `yaml:"arena_capacity"`
	Workers        int    `yaml:"workers"`
	MaxWiringDepth int    `yaml:"max_wiring_depth"`
	MaxSteps       uint64 `yaml:"max_steps"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

// Default returns the same sizing inet.DefaultConfig uses, plus ambient
// logging defaults.
func Default() Config {
	nc := inet.DefaultConfig()
	return Config{
		ArenaCapacity:  nc.ArenaCapacity,
		Workers:        nc.Workers,
		MaxWiringDepth: nc.MaxWiringDepth,
		MaxSteps:       0,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Load reads a YAML file at path into a copy of base, leaving fields the
// file doesn't set untouched. A missing path is not an error: callers pass
// an empty string when no --config flag was given.
func Load(path string, base Config) (Config, error) {
	if path == "" {
		return base, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: reading %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}

// NetConfig projects the subset inet.NewNet consumes.
func (c Config) NetConfig() inet.Config {
	return inet.Config{
		ArenaCapacity:  c.ArenaCapacity,
		Workers:        c.Workers,
		MaxWiringDepth: c.MaxWiringDepth,
	}
}

// Budget projects the subset Evaluate consumes.
func (c Config) Budget() inet.Budget {
	return inet.Budget{MaxSteps: c.MaxSteps}
}

// NewLogger builds a logrus.Logger configured per LogLevel/LogFormat,
// falling back to info/text on an unrecognized value rather than failing
// a run over a typo'd flag.
func NewLogger(c Config) *logrus.Logger {
	log := logrus.New()
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	if c.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log
}
