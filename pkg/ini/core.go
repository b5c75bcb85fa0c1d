package ini

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joshuapare/inikit/internal/logger"
	"github.com/joshuapare/inikit/internal/table"
)

// Core owns the table of open documents. It is safe for concurrent use.
type Core struct {
	opts  Options
	log   *slog.Logger
	files *table.Table
}

// Initialize returns a Core with no documents open. A non-empty Root must be
// an existing directory.
func Initialize(opts Options) (*Core, error) {
	if opts.Root != "" {
		abs, err := filepath.Abs(opts.Root)
		if err != nil {
			return nil, fmt.Errorf("resolve root %s: %w", opts.Root, err)
		}
		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("root %s: %w", abs, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("root %s: not a directory", abs)
		}
		opts.Root = abs
	}

	log := opts.Logger
	if log == nil {
		log = logger.L
	}

	c := &Core{opts: opts, log: log, files: table.New()}
	log.Info("ini core initialized", "root", opts.Root, "sync", opts.Sync, "backup", opts.Backup)
	return c, nil
}

// Shutdown closes every open document without saving and returns how many
// were open. The Core stays usable afterwards.
func (c *Core) Shutdown() int {
	ids := c.files.IDs()
	n := c.files.CloseAll()
	if n > 0 {
		c.log.Info("closed unsaved documents at shutdown", "count", n, "ids", ids)
	}
	return n
}

// OpenIDs returns the ids of the open documents, sorted.
func (c *Core) OpenIDs() []string {
	return c.files.IDs()
}

// resolve makes a relative path absolute against Root.
func (c *Core) resolve(path string) string {
	if c.opts.Root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.opts.Root, path)
}
