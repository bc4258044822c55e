package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a config.yaml in dir
func writeTempConfig(t *testing.T, dir string, content FileConfig) string {
	t.Helper()
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFileConfig_MissingFileUsesDefaults(t *testing.T) {
	tempDir := t.TempDir()

	file, err := LoadFileConfig(tempDir)
	require.NoError(t, err)
	require.NotNil(t, file)

	// Empty file config leaves everything to the compiled defaults.
	opts, err := Resolve(file)
	require.NoError(t, err)
	assert.Equal(t, TargetAuto, opts.Target)
	assert.Equal(t, DefaultPublicURL, opts.PublicURL)
}

func TestLoadFileConfig_ReadsValues(t *testing.T) {
	tempDir := t.TempDir()
	writeTempConfig(t, tempDir, FileConfig{
		APIToken:   "abc123",
		Target:     "desktop",
		DesktopURL: "http://localhost:9999/api",
	})

	file, err := LoadFileConfig(tempDir)
	require.NoError(t, err)

	assert.Equal(t, "abc123", file.APIToken)
	assert.Equal(t, "desktop", file.Target)
	assert.Equal(t, "http://localhost:9999/api", file.DesktopURL)
	assert.Empty(t, file.OutputFormat)
	assert.Nil(t, file.Quiet)
}

func TestLoadFileConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte("target: [unclosed"), 0o644))

	_, err := LoadFileConfig(tempDir)
	require.Error(t, err)

	var ce *ConfigurationError
	assert.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "malformed")
}

func TestSaveFileConfig_RoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	quiet := true

	in := &FileConfig{
		APIToken:     "tok",
		Target:       "public",
		OutputFormat: "json",
		Quiet:        &quiet,
	}
	require.NoError(t, SaveFileConfig(tempDir, in))

	out, err := LoadFileConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, in.APIToken, out.APIToken)
	assert.Equal(t, in.Target, out.Target)
	assert.Equal(t, in.OutputFormat, out.OutputFormat)
	require.NotNil(t, out.Quiet)
	assert.True(t, *out.Quiet)
}

func TestSaveFileConfig_CreatesDirectory(t *testing.T) {
	tempDir := filepath.Join(t.TempDir(), "nested", "marvin")

	require.NoError(t, SaveFileConfig(tempDir, &FileConfig{APIToken: "tok"}))

	_, err := os.Stat(ConfigFilePath(tempDir))
	assert.NoError(t, err)
}

func TestSaveFileConfig_RestrictsPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	tempDir := t.TempDir()
	require.NoError(t, SaveFileConfig(tempDir, &FileConfig{APIToken: "tok"}))

	info, err := os.Stat(ConfigFilePath(tempDir))
	require.NoError(t, err)
	assert.Equal(t, configFileMode, info.Mode().Perm(), "config file holds tokens and must not be world-readable")
}

func TestSaveFileConfig_OverwritesExisting(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, SaveFileConfig(tempDir, &FileConfig{APIToken: "first"}))
	require.NoError(t, SaveFileConfig(tempDir, &FileConfig{APIToken: "second"}))

	out, err := LoadFileConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "second", out.APIToken)
}
