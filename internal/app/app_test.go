package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"launchapp/internal/config"
	"launchapp/internal/launcher"
	"launchapp/internal/prefs"
	"launchapp/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
globalSettings:
  preferencesFile: %PREFS%
packagePaths:
  - %PACKAGES%
projects:
  - name: alpha
    versions: [v2, v1]
    applications:
      - name: maya
        label: Maya
        command: ["true"]
        requires: [maya-2020]
  - name: beta
`

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	packages := filepath.Join(dir, "packages")
	require.NoError(t, os.MkdirAll(filepath.Join(packages, "maya", "2020", "bin"), 0o755))
	prefsPath := filepath.Join(dir, "preferences.yaml")

	content := bytes.ReplaceAll([]byte(testConfig), []byte("%PREFS%"), []byte(prefsPath))
	content = bytes.ReplaceAll(content, []byte("%PACKAGES%"), []byte(packages))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path, prefsPath
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(true, false, "alpha")
	assert.True(t, cfg.NoTUI)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "alpha", cfg.Project)
	assert.Nil(t, cfg.LaunchConfig, "configuration is loaded by NewApplication")
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   *Config
		level logging.LogLevel
	}{
		{name: "default", cfg: &Config{}, level: logging.LevelInfo},
		{name: "debug flag", cfg: &Config{Debug: true}, level: logging.LevelDebug},
		{
			name:  "configured",
			cfg:   &Config{LaunchConfig: &config.LaunchConfig{GlobalSettings: config.GlobalSettings{LogLevel: "warn"}}},
			level: logging.LevelWarn,
		},
		{
			name:  "invalid configured level",
			cfg:   &Config{LaunchConfig: &config.LaunchConfig{GlobalSettings: config.GlobalSettings{LogLevel: "loud"}}},
			level: logging.LevelInfo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.level, tt.cfg.LogLevel())
		})
	}
}

func TestNewApplication_StoresStartupProject(t *testing.T) {
	configPath, prefsPath := writeConfig(t)
	cfg := NewConfig(false, false, "beta")
	cfg.ConfigPath = configPath

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.Equal(t, prefsPath, application.Services().Prefs.Path())
	assert.Equal(t, "beta", application.Services().Prefs.String(prefs.KeyStartupProject))
}

func TestNewApplication_ListingLeavesStartupProject(t *testing.T) {
	configPath, _ := writeConfig(t)
	cfg := NewConfig(true, false, "beta")
	cfg.ConfigPath = configPath

	application, err := NewApplication(cfg)
	require.NoError(t, err)
	assert.Empty(t, application.Services().Prefs.String(prefs.KeyStartupProject))
}

func TestNewApplication_UnknownProject(t *testing.T) {
	configPath, _ := writeConfig(t)
	cfg := NewConfig(true, false, "gamma")
	cfg.ConfigPath = configPath

	_, err := NewApplication(cfg)
	assert.ErrorIs(t, err, launcher.ErrUnknownProject)
}

func TestNewApplication_MissingConfig(t *testing.T) {
	cfg := NewConfig(true, false, "")
	cfg.ConfigPath = filepath.Join(t.TempDir(), "nope.yaml")
	_, err := NewApplication(cfg)
	assert.Error(t, err)
}

func TestRunCLIMode(t *testing.T) {
	configPath, _ := writeConfig(t)
	cfg := NewConfig(true, false, "")
	cfg.ConfigPath = configPath
	application, err := NewApplication(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCLIMode(context.Background(), cfg, application.Services(), &out))

	assert.Contains(t, out.String(), "* alpha (v2, v1)")
	assert.Contains(t, out.String(), "Maya")
	assert.Contains(t, out.String(), "maya-2020")
	assert.Contains(t, out.String(), "  beta\n    no applications")
	assert.Contains(t, out.String(), "state: ready")
}

func TestRunCLIMode_FiltersProject(t *testing.T) {
	configPath, _ := writeConfig(t)
	cfg := NewConfig(true, false, "beta")
	cfg.ConfigPath = configPath
	application, err := NewApplication(cfg)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, runCLIMode(context.Background(), cfg, application.Services(), &out))
	assert.NotContains(t, out.String(), "alpha")
	assert.Contains(t, out.String(), "* beta")
	assert.Contains(t, out.String(), "state: noapps")
}
