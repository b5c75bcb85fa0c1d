package ini

import "log/slog"

// Options controls a Core.
type Options struct {
	// Root is the base directory relative document paths resolve against.
	// If empty, relative paths resolve against the working directory.
	Root string

	// Sync makes every Save wait until the bytes reach stable storage.
	Sync bool

	// Backup copies the previous file to <path>.bak before each Save.
	Backup bool

	// Logger receives lifecycle events. If nil, the plugin logger is used.
	Logger *slog.Logger
}
