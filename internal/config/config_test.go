package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[files]
root = /srv/ini
sync = true

[log]
level = debug
retention_days = 7
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/ini", cfg.Files.Root)
	assert.True(t, cfg.Files.Sync)
	assert.True(t, cfg.Log.Enabled, "unset keys keep their defaults")
	assert.Equal(t, "logs", cfg.Log.Dir)
	assert.Equal(t, 7, cfg.Log.RetentionDays)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_BadLevel(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[log]\nlevel = loud\n")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadHome_ResolvesRelativeDirs(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[files]\nroot = data\n[log]\ndir = /var/log/nwn\n")

	cfg, err := LoadHome(home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), cfg.Files.Root)
	assert.Equal(t, "/var/log/nwn", cfg.Log.Dir)
}

func TestLoadHome_Defaults(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadHome(home)
	require.NoError(t, err)
	assert.Equal(t, home, cfg.Files.Root)
	assert.Equal(t, filepath.Join(home, "logs"), cfg.Log.Dir)
}
