package ini

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joshuapare/inikit/internal/document"
	"github.com/joshuapare/inikit/internal/table"
	"github.com/joshuapare/inikit/pkg/types"
)

// Open loads the file at path with the default settings and registers it
// under id. A document already open under id is released and replaced. On
// failure nothing is registered and an earlier document under id stays open.
func (c *Core) Open(id, path string) error {
	return c.OpenWith(id, path, types.DefaultSettings())
}

// OpenWith is Open with explicit settings. Unicode and multi-key apply while
// parsing, so duplicate keys and Windows-1252 text are read as such.
func (c *Core) OpenWith(id, path string, settings types.Settings) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if path == "" {
		return types.ErrFileNotFound.Wrap(errors.New("empty path"))
	}

	resolved := c.resolve(path)
	info, err := os.Stat(resolved)
	if errors.Is(err, fs.ErrNotExist) {
		return types.ErrFileNotFound.Wrap(fmt.Errorf("%s", resolved))
	}
	if err != nil {
		return types.ErrLoad.Wrap(err)
	}
	if info.IsDir() {
		return types.ErrLoad.Wrap(fmt.Errorf("%s is a directory", resolved))
	}

	doc, err := document.Load(resolved, settings)
	if err != nil {
		return types.ErrLoad.Wrap(fmt.Errorf("%s: %w", resolved, err))
	}

	if c.files.Replace(id, doc, resolved) {
		c.log.Info("reopened file", "id", id, "path", resolved)
	} else {
		c.log.Info("opened file", "id", id, "path", resolved)
	}
	return nil
}

// Save writes the document open under id back to the path it was opened
// from. The document stays open.
func (c *Core) Save(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	return c.files.With(id, func(e table.Entry) error {
		if c.opts.Backup && fileExists(e.Path) {
			if err := copyFile(e.Path, e.Path+".bak"); err != nil {
				return types.ErrSave.Wrap(fmt.Errorf("backup %s: %w", e.Path, err))
			}
		}
		if err := e.Doc.Save(e.Path, c.opts.Sync); err != nil {
			return types.ErrSave.Wrap(fmt.Errorf("%s: %w", e.Path, err))
		}
		c.log.Info("saved file", "id", id, "path", e.Path)
		return nil
	})
}

// Close releases the document open under id without saving. Closing an id
// that is not open changes nothing and returns ErrNotOpen.
func (c *Core) Close(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if !c.files.Remove(id) {
		return types.ErrNotOpen.Wrap(fmt.Errorf("id %q", id))
	}
	c.log.Info("closed file", "id", id)
	return nil
}

// Create makes a new empty file at path. The parent directory must exist.
// No document is opened.
func (c *Core) Create(path string) error {
	if path == "" {
		return types.ErrCreate.Wrap(errors.New("empty path"))
	}

	resolved := c.resolve(path)
	f, err := os.OpenFile(resolved, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return types.ErrFileExists.Wrap(fmt.Errorf("%s", resolved))
	}
	if err != nil {
		return types.ErrCreate.Wrap(err)
	}
	if err := f.Close(); err != nil {
		return types.ErrCreate.Wrap(err)
	}

	c.log.Info("created file", "path", resolved)
	return nil
}

// Delete removes the file at path. Documents opened from it stay open, and
// saving one writes the file again.
func (c *Core) Delete(path string) error {
	if path == "" {
		return types.ErrFileNotFound.Wrap(errors.New("empty path"))
	}

	resolved := c.resolve(path)
	if !fileExists(resolved) {
		return types.ErrFileNotFound.Wrap(fmt.Errorf("%s", resolved))
	}
	if err := os.Remove(resolved); err != nil {
		return types.ErrRemove.Wrap(err)
	}

	c.log.Info("deleted file", "path", resolved)
	return nil
}

// Path returns the path the document under id was opened from.
func (c *Core) Path(id string) (string, error) {
	if id == "" {
		return "", types.ErrInvalidID
	}
	e, err := c.files.Get(id)
	if err != nil {
		return "", err
	}
	return e.Path, nil
}

// IsOpen reports whether a document is open under id.
func (c *Core) IsOpen(id string) bool {
	return id != "" && c.files.IsOpen(id)
}

// IsEmpty reports whether the document under id has no sections.
func (c *Core) IsEmpty(id string) (bool, error) {
	if id == "" {
		return false, types.ErrInvalidID
	}
	var empty bool
	err := c.files.With(id, func(e table.Entry) error {
		empty = e.Doc.IsEmpty()
		return nil
	})
	return empty, err
}

// Render returns the document under id as it would be saved, in UTF-8.
func (c *Core) Render(id string) ([]byte, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	var out []byte
	err := c.files.With(id, func(e table.Entry) error {
		out = e.Doc.Bytes()
		return nil
	})
	return out, err
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		return fmt.Errorf("failed to copy data: %w", copyErr)
	}

	return dstFile.Close()
}
