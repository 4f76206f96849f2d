package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 100000.0, cfg.General.DefaultBudget)
	assert.Equal(t, 3, cfg.General.SkipRows)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	cfg := DefaultConfig()
	cfg.General.DefaultBudget = 250000
	cfg.General.SkipRows = 5
	cfg.General.ReportDir = "/reports"
	cfg.Appearance.Theme = "tokyo-night"
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestExists(t *testing.T) {
	isolateConfig(t)

	assert.False(t, Exists())
	require.NoError(t, Save(DefaultConfig()))
	assert.True(t, Exists())
}

func TestEnvOverrides(t *testing.T) {
	isolateConfig(t)
	require.NoError(t, Save(DefaultConfig()))

	t.Setenv("SHELFLIFE_BUDGET", "75000")
	t.Setenv("SHELFLIFE_SKIP_ROWS", "0")
	t.Setenv("SHELFLIFE_THEME", "terminal")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 75000.0, cfg.General.DefaultBudget)
	assert.Equal(t, 0, cfg.General.SkipRows)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := isolateConfig(t)

	path := filepath.Join(dir, "shelflife", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("this is not toml = = ="), 0o600))

	_, err := Load()
	assert.Error(t, err)
}

func TestConfigPathUnderXDG(t *testing.T) {
	dir := isolateConfig(t)
	assert.Equal(t, filepath.Join(dir, "shelflife", "config.toml"), ConfigPath())
}
