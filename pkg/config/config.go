// Package config loads the benchmark scenarios run by `search bench`.
package config

import (
	"os"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/scottcagno/stringsearch/pkg/logging"
	"github.com/scottcagno/stringsearch/pkg/search"
)

// TextKind selects the generator used to build a scenario's text.
type TextKind string

const (
	TextRandom     TextKind = "random"
	TextRepetitive TextKind = "repetitive"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the complete benchmark configuration.
type Config struct {
	// Parallelism bounds how many algorithms run at once. Default: NumCPU.
	Parallelism int `yaml:"parallelism"`

	// LogLevel is one of debug, info, warn, error. Default: warn.
	LogLevel string `yaml:"log_level"`

	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario describes one doubling run: every algorithm searches texts of
// StartSize, 2*StartSize, ... (Steps sizes in all) for Pattern.
type Scenario struct {
	Name       string   `yaml:"name"`
	Text       TextKind `yaml:"text"`
	Pattern    string   `yaml:"pattern"`
	StartSize  int      `yaml:"start_size"`
	Steps      int      `yaml:"steps"`
	Algorithms []string `yaml:"algorithms"`
}

// DefaultConfig reproduces the classic efficiency runs: an average case on
// random text and the naive scan's worst case on repetitive text.
func DefaultConfig() *Config {
	return &Config{
		Parallelism: runtime.NumCPU(),
		LogLevel:    "warn",
		Scenarios: []Scenario{
			{
				Name:       "random",
				Text:       TextRandom,
				Pattern:    "ABCDE",
				StartSize:  1_000_000,
				Steps:      6,
				Algorithms: search.Names(),
			},
			{
				Name:       "worst-case",
				Text:       TextRepetitive,
				Pattern:    "AAAAB",
				StartSize:  1_000_000,
				Steps:      6,
				Algorithms: search.Names(),
			},
		},
	}
}

// Load reads the YAML file at path and merges it over DefaultConfig. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", path)
	}
	cfg.mergeWith(&parsed)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeWith copies the non-zero values of other into c. Scenarios replace
// the defaults as a whole; missing scenario fields take the default values
// of the first default scenario.
func (c *Config) mergeWith(other *Config) {
	if other.Parallelism != 0 {
		c.Parallelism = other.Parallelism
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if len(other.Scenarios) == 0 {
		return
	}
	base := c.Scenarios[0]
	scenarios := make([]Scenario, 0, len(other.Scenarios))
	for _, s := range other.Scenarios {
		if s.Text == "" {
			s.Text = base.Text
		}
		if s.StartSize == 0 {
			s.StartSize = base.StartSize
		}
		if s.Steps == 0 {
			s.Steps = base.Steps
		}
		if len(s.Algorithms) == 0 {
			s.Algorithms = base.Algorithms
		}
		if s.Name == "" {
			s.Name = string(s.Text) + "/" + s.Pattern
		}
		scenarios = append(scenarios, s)
	}
	c.Scenarios = scenarios
}

// Validate checks the configuration for values the harness cannot run.
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return errors.Wrapf(ErrInvalid, "parallelism must be at least 1, got %d", c.Parallelism)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level: %v", err)
	}
	if len(c.Scenarios) == 0 {
		return errors.Wrap(ErrInvalid, "no scenarios")
	}
	for _, s := range c.Scenarios {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks a single scenario.
func (s Scenario) Validate() error {
	if s.Pattern == "" {
		return errors.Wrapf(ErrInvalid, "scenario %q: pattern is empty", s.Name)
	}
	switch s.Text {
	case TextRandom, TextRepetitive:
	default:
		return errors.Wrapf(ErrInvalid, "scenario %q: unknown text kind %q", s.Name, s.Text)
	}
	if s.StartSize < len(s.Pattern) {
		return errors.Wrapf(ErrInvalid, "scenario %q: start_size %d is shorter than the pattern", s.Name, s.StartSize)
	}
	if s.Steps < 0 {
		return errors.Wrapf(ErrInvalid, "scenario %q: steps must not be negative, got %d", s.Name, s.Steps)
	}
	for _, name := range s.Algorithms {
		if _, err := search.Lookup(name); err != nil {
			return errors.Wrapf(ErrInvalid, "scenario %q: %v", s.Name, err)
		}
	}
	return nil
}
