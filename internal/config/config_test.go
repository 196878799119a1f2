package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points config lookups at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvDB, "")
	t.Setenv(EnvThemeFile, "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, "trench")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".trench", DefaultDBFile), cfg.Database.Path)
	assert.False(t, cfg.Database.ForeignKeys)
	assert.False(t, cfg.Forms.Accessible)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, DefaultColorScheme(), cfg.ColorScheme)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, `database:
  path: /srv/crm/crm.db
  foreign_keys: true
forms:
  accessible: true
currency: "€"
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/crm/crm.db", cfg.Database.Path)
	assert.True(t, cfg.Database.ForeignKeys)
	assert.True(t, cfg.Forms.Accessible)
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, "monochrome", cfg.ColorScheme.Preset)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	// Unset colors come from the monochrome preset
	assert.Equal(t, MonochromeColorScheme().Normal, cfg.ColorScheme.Normal)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "forms:\n  accessible: true\n")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Forms.Accessible)
	assert.Equal(t, "$", cfg.Currency)
	assert.Equal(t, filepath.Join(dir, ".trench", DefaultDBFile), cfg.Database.Path)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database: [unclosed\n")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadConfigDBEnvOverride(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, "database:\n  path: /from/file.db\n")
	t.Setenv(EnvDB, "/from/env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.Database.Path)
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Currency = "£"
	cfg.Database.ForeignKeys = true
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadDotEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvDB+"=/dotenv/crm.db\n"), 0o644))
	t.Chdir(dir)
	require.NoError(t, os.Unsetenv(EnvDB))

	require.NoError(t, LoadDotEnv())
	assert.Equal(t, "/dotenv/crm.db", os.Getenv(EnvDB))
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadDotEnv())
}
