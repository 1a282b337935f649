package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enpm702/robolab/mazeapi"
)

// clearEnv makes sure no ROBOLAB_* variable from the outer environment
// leaks into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvMaxSteps, "")
	t.Setenv(EnvWatchReset, "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.MaxSteps)
	assert.False(t, cfg.WatchReset)
	require.Len(t, cfg.Markers, 5)
	assert.Equal(t, Marker{X: 0, Y: 0, Color: "B", Text: "start"}, cfg.Markers[0])
	assert.Equal(t, []Wall{{0, 0, "w"}, {0, 0, "s"}}, cfg.Walls)
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadEmptyPath(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "robolab.yaml")
	data := `
log_level: debug
max_steps: 250
watch_reset: true
markers:
  - {x: 15, y: 15, color: y, text: corner}
walls:
  - {x: 3, y: 4, dir: e}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 250, cfg.MaxSteps)
	assert.True(t, cfg.WatchReset)
	assert.Equal(t, []Marker{{X: 15, Y: 15, Color: "y", Text: "corner"}}, cfg.Markers)
	assert.Equal(t, []Wall{{X: 3, Y: 4, Dir: "e"}}, cfg.Walls)
}

func TestLoadInvalidYAML(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_steps: [1, 2"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSaveLoad(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "robolab.yaml")
	cfg := DefaultConfig()
	cfg.MaxSteps = 42
	cfg.HistoryFile = ""

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvMaxSteps, "10")
	t.Setenv(EnvWatchReset, "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 10, cfg.MaxSteps)
	assert.True(t, cfg.WatchReset)
}

func TestEnvOverridesInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"max steps", EnvMaxSteps, "many"},
		{"watch reset", EnvWatchReset, "perhaps"},
		{"log level", EnvLogLevel, "shout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative steps", func(c *Config) { c.MaxSteps = -1 }},
		{"long color", func(c *Config) { c.Markers[0].Color = "blue" }},
		{"bad wall dir", func(c *Config) { c.Walls[0].Dir = "up" }},
		{"empty wall dir", func(c *Config) { c.Walls[0].Dir = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestMarkerAndWallCodes(t *testing.T) {
	m := Marker{Color: "G"}
	assert.True(t, m.HasColor())
	assert.Equal(t, mazeapi.ColorDarkGreen, m.ColorCode())
	assert.False(t, Marker{Text: "x"}.HasColor())

	assert.Equal(t, mazeapi.West, Wall{Dir: "w"}.Direction())
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ROBOLAB_MAX_STEPS=7\n"), 0644))
	// godotenv never overrides a variable that is already set, even to "".
	require.NoError(t, os.Unsetenv(EnvMaxSteps))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv(EnvMaxSteps) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxSteps)
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
