// Package flush writes whole files so a crash never leaves a half-written
// INI file behind: data goes to a temporary sibling, is optionally synced to
// stable storage, and is then renamed over the target.
package flush

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultMode is used when the target does not exist yet.
const defaultMode os.FileMode = 0o644

// WriteFile atomically replaces path with data. When durable is true the
// data is flushed to disk before the rename.
func WriteFile(path string, data []byte, durable bool) error {
	mode := defaultMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	// Remove the temp file on any failure path; after a successful rename
	// this is a no-op error we ignore.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}

	if durable {
		if err := fdatasync(tmp); err != nil {
			tmp.Close()
			return fmt.Errorf("sync temp file: %w", err)
		}
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}

	return nil
}
