package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookups at an empty temp dir and clears overrides
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvAPIURL, "")
	t.Setenv(EnvRequestTimeout, "")
	t.Setenv(EnvThemeFile, "")
	t.Chdir(dir)
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "taskflow")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	assert.Equal(t, "q", defaults.Quit)
	assert.Equal(t, "H", defaults.MoveTaskLeft)
	assert.Equal(t, "L", defaults.MoveTaskRight)
	assert.Equal(t, "enter", defaults.ViewTask)
	assert.Equal(t, "d", defaults.DeleteTask)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, "q", cfg.KeyMappings.Quit)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "https://tasks.example.com/"
request_timeout: 3s
key_mappings:
  quit: "x"
  add_task: "a"
theme:
  preset: monochrome
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tasks.example.com", cfg.APIURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "x", cfg.KeyMappings.Quit)
	assert.Equal(t, "a", cfg.KeyMappings.AddTask)
	assert.Equal(t, "e", cfg.KeyMappings.EditTask, "unspecified values use defaults")
	assert.Equal(t, "#FFFFFF", cfg.ColorScheme.Accent)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "api_url: [unterminated")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `api_url: "http://file"`)
	t.Setenv(EnvAPIURL, "http://env:9000")
	t.Setenv(EnvRequestTimeout, "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env:9000", cfg.APIURL)
	assert.Equal(t, 250*time.Millisecond, cfg.RequestTimeout)

	t.Setenv(EnvRequestTimeout, "soon")
	_, err = Load()
	assert.ErrorContains(t, err, EnvRequestTimeout)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.Unsetenv(EnvAPIURL))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TASKFLOW_API_URL=http://dotenv:1234\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://dotenv:1234", cfg.APIURL)
	require.NoError(t, os.Unsetenv(EnvAPIURL))
}

func TestSaveConfig(t *testing.T) {
	dir := isolate(t)

	cfg := &Config{
		APIURL:         "http://saved",
		RequestTimeout: 5 * time.Second,
		KeyMappings:    KeyMappings{Quit: "x"},
	}
	cfg.applyDefaults()
	require.NoError(t, cfg.Save())

	assert.FileExists(t, filepath.Join(dir, "taskflow", "config.yaml"))

	reloaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://saved", reloaded.APIURL)
	assert.Equal(t, 5*time.Second, reloaded.RequestTimeout)
	assert.Equal(t, "x", reloaded.KeyMappings.Quit)
}
