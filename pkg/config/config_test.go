package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/stringsearch/pkg/search"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Len(t, cfg.Scenarios, 2)

	assert.Equal(t, TextRandom, cfg.Scenarios[0].Text)
	assert.Equal(t, "ABCDE", cfg.Scenarios[0].Pattern)
	assert.Equal(t, TextRepetitive, cfg.Scenarios[1].Text)
	assert.Equal(t, "AAAAB", cfg.Scenarios[1].Pattern)
	for _, s := range cfg.Scenarios {
		assert.Equal(t, 1_000_000, s.StartSize)
		assert.Equal(t, 6, s.Steps)
		assert.Equal(t, search.Names(), s.Algorithms)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Scenarios, cfg.Scenarios)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
parallelism: 2
log_level: debug
scenarios:
  - pattern: GATTACA
    start_size: 4096
    algorithms: [kmp, boyer-moore]
  - name: worst
    text: repetitive
    pattern: AAAB
    steps: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, "debug", cfg.LogLevel)
	require.Len(t, cfg.Scenarios, 2)

	first := cfg.Scenarios[0]
	assert.Equal(t, "random/GATTACA", first.Name)
	assert.Equal(t, TextRandom, first.Text)
	assert.Equal(t, 4096, first.StartSize)
	assert.Equal(t, 6, first.Steps)
	assert.Equal(t, []string{"kmp", "boyer-moore"}, first.Algorithms)

	second := cfg.Scenarios[1]
	assert.Equal(t, "worst", second.Name)
	assert.Equal(t, TextRepetitive, second.Text)
	assert.Equal(t, 1_000_000, second.StartSize)
	assert.Equal(t, 3, second.Steps)
	assert.Equal(t, search.Names(), second.Algorithms)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")

	_, err = Load(writeConfig(t, "scenarios: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")

	_, err = Load(writeConfig(t, "parallelism: -1\n"))
	assert.True(t, errors.Is(err, ErrInvalid))
}

func TestValidate(t *testing.T) {
	valid := Scenario{Name: "s", Text: TextRandom, Pattern: "ABC", StartSize: 10, Steps: 1}
	require.NoError(t, valid.Validate())

	tests := map[string]func(s *Scenario){
		"empty pattern":       func(s *Scenario) { s.Pattern = "" },
		"unknown text":        func(s *Scenario) { s.Text = "lorem" },
		"start below pattern": func(s *Scenario) { s.StartSize = 2 },
		"negative steps":      func(s *Scenario) { s.Steps = -1 },
		"unknown algorithm":   func(s *Scenario) { s.Algorithms = []string{"kmp", "sunday"} },
	}
	for name, mutate := range tests {
		s := valid
		mutate(&s)
		err := s.Validate()
		assert.True(t, errors.Is(err, ErrInvalid), name)
	}

	cfg := DefaultConfig()
	cfg.LogLevel = "loud"
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))

	cfg = DefaultConfig()
	cfg.Scenarios = nil
	assert.True(t, errors.Is(cfg.Validate(), ErrInvalid))
}
