package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	return root
}

func TestPathsFollowXDG(t *testing.T) {
	root := isolate(t)

	assert.Equal(t, filepath.Join(root, "config", "dealer", "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join(root, "data", "cards", "decks"), GetDeckLibraryPath())
}

func TestLoadConfigCreatesDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDeckName, cfg.DefaultDeck)
	assert.True(t, cfg.TrueColor)
	assert.FileExists(t, GetConfigFilePath())
}

func TestSetDefaultDeck(t *testing.T) {
	isolate(t)

	require.NoError(t, SetDefaultDeck("euchre"))
	name, err := GetDefaultDeck()
	require.NoError(t, err)
	assert.Equal(t, "euchre", name)
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte(`true_color = false`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultDeckName, cfg.DefaultDeck)
	assert.False(t, cfg.TrueColor)
}

func TestLoadConfigRejectsBadToml(t *testing.T) {
	isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(GetConfigFilePath()), 0755))
	require.NoError(t, os.WriteFile(GetConfigFilePath(), []byte(`default_deck = `), 0644))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "error decoding config file")
}

func TestGetDeckPath(t *testing.T) {
	isolate(t)
	inLibrary := filepath.Join(GetDeckLibraryPath(), "euchre")
	require.NoError(t, os.MkdirAll(inLibrary, 0755))

	path, err := GetDeckPath("euchre")
	require.NoError(t, err)
	assert.Equal(t, inLibrary, path)

	elsewhere := t.TempDir()
	path, err = GetDeckPath(elsewhere)
	require.NoError(t, err)
	assert.Equal(t, elsewhere, path)

	_, err = GetDeckPath("no-such-deck")
	assert.ErrorContains(t, err, "deck not found")
}

func TestLoadEnvWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	assert.NoError(t, LoadEnv())
}
