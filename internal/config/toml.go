// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"raceday/internal/weather"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Forecast      ForecastConfig     `toml:"forecast"`
	Probabilities map[string]float64 `toml:"probabilities"`
	Slots         map[string]int     `toml:"slots"`
}

// ForecastConfig maps forecast-related settings.
type ForecastConfig struct {
	Sessions      *[]string `toml:"sessions"`
	SetClipboard  *bool     `toml:"set-clipboard"`
	PlotEvolution *bool     `toml:"plot-evolution"`
	Seed          *int64    `toml:"seed"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// ParseProbabilities converts the string-keyed probability section into a
// typed mapping. Unknown condition names are errors.
func ParseProbabilities(raw map[string]float64) (map[weather.Condition]float64, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[weather.Condition]float64, len(raw))
	for name, value := range raw {
		c, err := weather.ParseCondition(name)
		if err != nil {
			return nil, fmt.Errorf("invalid probabilities entry: %w", err)
		}
		if _, ok := out[c]; ok {
			return nil, fmt.Errorf("duplicate probabilities entry for %v", c)
		}
		out[c] = value
	}
	return out, nil
}

// ParseSlots converts the string-keyed slots section into a typed mapping.
// Unknown session names are errors; value clamping is the forecaster's job.
func ParseSlots(raw map[string]int) (map[weather.Session]int, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[weather.Session]int, len(raw))
	for name, value := range raw {
		s, err := weather.ParseSession(name)
		if err != nil {
			return nil, fmt.Errorf("invalid slots entry: %w", err)
		}
		if _, ok := out[s]; ok {
			return nil, fmt.Errorf("duplicate slots entry for %v", s)
		}
		out[s] = value
	}
	return out, nil
}

// ParseSessions converts configured session names into typed sessions.
func ParseSessions(raw []string) ([]weather.Session, error) {
	out := make([]weather.Session, 0, len(raw))
	for _, name := range raw {
		s, err := weather.ParseSession(name)
		if err != nil {
			return nil, fmt.Errorf("invalid sessions entry: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// DefaultConfigTemplate returns the commented template written on first run.
// Uncommented values override the built-in defaults; CLI flags override both.
func DefaultConfigTemplate() string {
	var b strings.Builder
	b.WriteString(`# raceday configuration
# Uncomment a value to enable it. CLI flags override config values.

[forecast]
# sessions = ["practice", "qualifying", "race"]
# set-clipboard = false    # Copy the rendered forecast to the clipboard
# plot-evolution = false   # Plot probability evolution after generating
# seed = 0                 # Fixed random seed (0 = time-based)

# Partial tables are fine: conditions left out share the remaining
# probability mass equally. Totals above 1.0 are normalized with a warning.
[probabilities]
`)
	for _, c := range weather.Conditions() {
		fmt.Fprintf(&b, "# %s = %.4f\n", c.String(), c.DefaultProbability())
	}
	b.WriteString(`
# Weather slots per session, clamped to 1-4.
[slots]
# practice = 4
# qualifying = 2
# race = 4
`)
	return b.String()
}
