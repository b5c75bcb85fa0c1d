package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/inikit/bindings"
	"github.com/joshuapare/inikit/internal/config"
	"github.com/joshuapare/inikit/internal/logger"
	"github.com/joshuapare/inikit/pkg/ini"
)

const pluginVersion = "1.0.0"

// returnBufferSize bounds strings handed back to the host. The host reads
// the buffer before its next call and never frees it.
const returnBufferSize = 64 * 1024

// start reads the config from home, sets up logging and returns a ready
// plugin.
func start(home string) (*bindings.Plugin, error) {
	cfg, err := config.LoadHome(home)
	if err != nil {
		return nil, err
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	err = logger.Init(logger.Options{
		Enabled:       cfg.Log.Enabled,
		LogDir:        cfg.Log.Dir,
		Level:         level,
		RetentionDays: cfg.Log.RetentionDays,
	})
	if err != nil {
		return nil, fmt.Errorf("init log: %w", err)
	}

	core, err := ini.Initialize(ini.Options{
		Root:   cfg.Files.Root,
		Sync:   cfg.Files.Sync,
		Backup: cfg.Files.Backup,
		Logger: logger.L,
	})
	if err != nil {
		logger.Error("plugin init failed", "home", home, "err", err)
		logger.Close()
		return nil, err
	}

	logger.Info("xp_ini plugin initialized", "version", pluginVersion, "home", home)
	return bindings.New(core, logger.L), nil
}

func main() {}

// putCString copies s into buf as a NUL-terminated string. A string that
// does not fit is cut at the last rune boundary before the terminator.
func putCString(buf []byte, s string) {
	n := len(s)
	if limit := len(buf) - 1; n > limit {
		n = limit
		for n > 0 && !utf8.RuneStart(s[n]) {
			n--
		}
	}
	copy(buf, s[:n])
	buf[n] = 0
}

// stop releases every open document and closes the log.
func stop(p *bindings.Plugin) {
	p.Close()
	logger.Info("xp_ini plugin shut down")
	logger.Close()
}
