/*
Package ini manages INI documents by caller-chosen identifier.

A Core keeps a table of open documents. Each document is opened from a
path, read and written through "section|key" addresses, and saved back to
the path it came from.

# Quick Start

	core, err := ini.Initialize(ini.Options{Root: "/srv/nwn"})
	if err != nil {
	    log.Fatal(err)
	}
	defer core.Shutdown()

	if err := core.Open("cfg", "settings.ini"); err != nil {
	    log.Fatal(err)
	}
	damage, _ := core.Int("cfg", "Combat|damage")
	_ = core.SetInt("cfg", "Combat|damage", damage*2)
	_ = core.Save("cfg")

# Errors

Every failure is a *types.Error. Compare with errors.Is against the
sentinels in pkg/types:

	v, err := core.String("cfg", "Combat|name")
	switch {
	case errors.Is(err, types.ErrKeyNotFound):
	    // section exists, key does not; v is ""
	case errors.Is(err, types.ErrNotOpen):
	    // "cfg" was never opened or has been closed
	}

# Settings

Each open document carries four toggles (unicode, multi-key, multi-line,
use-spaces). They start from types.DefaultSettings and are changed with
SetSetting. Settings are not persisted in the file.
*/
package ini
