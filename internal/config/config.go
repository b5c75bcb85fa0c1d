// Package config loads the plugin's own settings file.
//
// The file is INI, read with the same library the plugin serves documents
// with:
//
//	[files]
//	root = /srv/nwn/ini
//	sync = true
//	backup = false
//
//	[log]
//	enabled = true
//	dir = logs
//	level = debug
//	retention_days = 14
package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// FileName is the config file looked up in the plugin's home directory.
const FileName = "xp_ini.ini"

// Config holds the plugin settings.
type Config struct {
	Files Files `ini:"files"`
	Log   Log   `ini:"log"`
}

// Files controls where documents live and how they are written.
type Files struct {
	Root   string `ini:"root"`   // base directory for relative document paths
	Sync   bool   `ini:"sync"`   // fsync after every save
	Backup bool   `ini:"backup"` // keep <file>.bak of the previous contents
}

// Log controls the plugin log file.
type Log struct {
	Enabled       bool   `ini:"enabled"`
	Dir           string `ini:"dir"`
	Level         string `ini:"level"`
	RetentionDays int    `ini:"retention_days"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Log: Log{
			Enabled:       true,
			Dir:           "logs",
			Level:         "info",
			RetentionDays: 30,
		},
	}
}

// Load reads the config file at path on top of Default. A missing file is
// not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := ini.LoadSources(ini.LoadOptions{Insensitive: true, Loose: true}, path)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.MapTo(&cfg); err != nil {
		return cfg, fmt.Errorf("map config %s: %w", path, err)
	}
	if _, err := cfg.SlogLevel(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadHome reads FileName from home and makes relative directories in the
// result absolute against home.
func LoadHome(home string) (Config, error) {
	cfg, err := Load(filepath.Join(home, FileName))
	if err != nil {
		return cfg, err
	}
	cfg.Files.Root = resolve(home, cfg.Files.Root)
	cfg.Log.Dir = resolve(home, cfg.Log.Dir)
	return cfg, nil
}

// SlogLevel parses Log.Level. An empty level means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(c.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.Log.Level, err)
	}
	return lvl, nil
}

func resolve(home, p string) string {
	if p == "" {
		return home
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(home, p)
}
