// Package table keeps the documents a process has open, keyed by the
// identifier the caller chose when opening them.
package table

import (
	"fmt"
	"sort"
	"sync"

	"github.com/joshuapare/inikit/internal/document"
	"github.com/joshuapare/inikit/pkg/types"
)

// Entry is one open document and the path it was loaded from.
type Entry struct {
	ID   string
	Path string
	Doc  *document.Document
}

// Table maps ids to entries. Each entry owns its document: replacing or
// removing an entry releases the document it held.
//
// A single map holds both the document and its path, so the two can never
// drift apart. Table is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// IsOpen reports whether id has an entry.
func (t *Table) IsOpen(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[id]
	return ok
}

// Get returns the entry for id, or ErrNotOpen.
func (t *Table) Get(id string) (Entry, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[id]
	if !ok {
		return Entry{}, types.ErrNotOpen.Wrap(fmt.Errorf("id %q", id))
	}
	return e, nil
}

// With runs fn on the entry for id while holding the table lock, so the
// document cannot be replaced or released underneath it. fn must not call
// back into the table.
func (t *Table) With(id string, fn func(Entry) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[id]
	if !ok {
		return types.ErrNotOpen.Wrap(fmt.Errorf("id %q", id))
	}
	return fn(e)
}

// Replace stores doc under id. An entry already present for id is released
// first. It reports whether an earlier entry was replaced.
func (t *Table) Replace(id string, doc *document.Document, path string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	old, replaced := t.entries[id]
	if replaced && old.Doc != doc {
		old.Doc.Close()
	}
	t.entries[id] = Entry{ID: id, Path: path, Doc: doc}
	return replaced
}

// Remove releases and erases the entry for id. Removing a missing id is a
// no-op that returns false.
func (t *Table) Remove(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[id]
	if !ok {
		return false
	}
	e.Doc.Close()
	delete(t.entries, id)
	return true
}

// CloseAll releases every entry and returns how many there were.
func (t *Table) CloseAll() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	n := len(t.entries)
	for id, e := range t.entries {
		e.Doc.Close()
		delete(t.entries, id)
	}
	return n
}

// Len returns the number of open entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// IDs returns the open ids in sorted order.
func (t *Table) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]string, 0, len(t.entries))
	for id := range t.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
