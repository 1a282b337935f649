// Package config loads robolab settings from a YAML file, an optional .env
// file and ROBOLAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/enpm702/robolab/mazeapi"
)

// Environment variables that override file settings.
const (
	EnvLogLevel   = "ROBOLAB_LOG_LEVEL"
	EnvMaxSteps   = "ROBOLAB_MAX_STEPS"
	EnvWatchReset = "ROBOLAB_WATCH_RESET"
)

// DefaultPath is the config file read when none is given on the command line.
const DefaultPath = "robolab.yaml"

// Config holds every robolab setting.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MaxSteps bounds the number of forward moves in a maze run.
	// Zero means run until stopped.
	MaxSteps int `yaml:"max_steps"`

	// WatchReset makes the maze run poll the simulator's reset button.
	WatchReset bool `yaml:"watch_reset"`

	// Markers are painted before the run starts and after every reset.
	Markers []Marker `yaml:"markers"`

	// Walls are drawn once before the run starts.
	Walls []Wall `yaml:"walls"`

	// HistoryFile stores operator console history. Empty disables it.
	HistoryFile string `yaml:"history_file"`
}

// Marker colors and labels one cell.
type Marker struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Color string `yaml:"color"`
	Text  string `yaml:"text"`
}

// Wall is a wall marking on one side of a cell.
type Wall struct {
	X   int    `yaml:"x"`
	Y   int    `yaml:"y"`
	Dir string `yaml:"dir"`
}

// DefaultConfig returns the settings used when nothing else is configured:
// a blue start cell, the four center goal cells and two walls at the start.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		MaxSteps:   0,
		WatchReset: false,
		Markers: []Marker{
			{X: 0, Y: 0, Color: "B", Text: "start"},
			{X: 8, Y: 7, Color: "R", Text: "goal"},
			{X: 7, Y: 7, Color: "C", Text: "goal"},
			{X: 8, Y: 8, Color: "G", Text: "goal"},
			{X: 7, Y: 8, Color: "O", Text: "goal"},
		},
		Walls: []Wall{
			{X: 0, Y: 0, Dir: "w"},
			{X: 0, Y: 0, Dir: "s"},
		},
		HistoryFile: defaultHistoryFile(),
	}
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robolab_history")
}

// LoadDotEnv loads environment variables from the given .env files, or
// from ./.env when none are named. Missing files are not an error.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case errors.Is(err, fs.ErrNotExist):
			// Defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}

	if v := os.Getenv(EnvMaxSteps); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid integer %q", EnvMaxSteps, v)
		}
		c.MaxSteps = n
	}

	if v := os.Getenv(EnvWatchReset); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q", EnvWatchReset, v)
		}
		c.WatchReset = b
	}
	return nil
}

// Validate checks the settings that would otherwise fail mid-run.
// Coordinates are not checked: the maze size is only known once the
// simulator is connected.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be >= 0, got %d", c.MaxSteps)
	}
	for i, m := range c.Markers {
		if len(m.Color) > 1 {
			return fmt.Errorf("markers[%d]: color must be one character, got %q", i, m.Color)
		}
	}
	for i, w := range c.Walls {
		if len(w.Dir) != 1 || !mazeapi.Direction(w.Dir[0]).Valid() {
			return fmt.Errorf("walls[%d]: dir must be one of n, e, s, w, got %q", i, w.Dir)
		}
	}
	return nil
}

// HasColor reports whether the marker paints its cell.
func (m Marker) HasColor() bool {
	return m.Color != ""
}

// ColorCode returns the marker's wire color code.
func (m Marker) ColorCode() mazeapi.Color {
	if m.Color == "" {
		return 0
	}
	return mazeapi.Color(m.Color[0])
}

// Direction returns the wall's wire direction.
func (w Wall) Direction() mazeapi.Direction {
	if w.Dir == "" {
		return 0
	}
	return mazeapi.Direction(w.Dir[0])
}
