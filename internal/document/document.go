// Package document is the in-memory form of one INI file.
//
// Parsing and the section/key model come from gopkg.in/ini.v1. Document adds
// the four per-file settings (unicode, multi-key, multi-line, space padding),
// file-level encoding and a serializer that honors those settings per
// document rather than through ini.v1's package-level format switches.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/ini.v1"

	"github.com/joshuapare/inikit/internal/flush"
	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/pkg/types"
)

// ErrClosed is returned by operations on a released document.
var ErrClosed = errors.New("document closed")

// Document is one parsed INI file plus its settings.
type Document struct {
	file     *ini.File
	settings types.Settings
}

// loadOptions maps settings onto the parser.
//
// Sections and keys are case-sensitive and only '=' separates key from value.
// Inline comments and surrounding quotes are kept as part of the value, and
// a trailing backslash is literal. Lines without '=' are skipped.
func loadOptions(s types.Settings) ini.LoadOptions {
	return ini.LoadOptions{
		AllowShadows:               s.MultiKey,
		AllowDuplicateShadowValues: true,
		IgnoreInlineComment:        true,
		IgnoreContinuation:         true,
		PreserveSurroundedQuote:    true,
		SkipUnrecognizableLines:    true,
		KeyValueDelimiters:         "=",
		KeyValueDelimiterOnWrite:   "=",
		// A NUL never appears in a section name, which turns off ini.v1's
		// "parent.child" key inheritance: a key belongs to exactly one section.
		ChildSectionDelimiter: "\x00",
	}
}

// New returns an empty document.
func New(settings types.Settings) *Document {
	return &Document{
		file:     ini.Empty(loadOptions(settings)),
		settings: settings,
	}
}

// Parse builds a document from UTF-8 text.
func Parse(text []byte, settings types.Settings) (*Document, error) {
	f, err := ini.LoadSources(loadOptions(settings), text)
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}
	return &Document{file: f, settings: settings}, nil
}

// Load reads and parses the file at path using the encoding settings select.
func Load(path string, settings types.Settings) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text, err := format.DecodeText(raw, settings.Unicode)
	if err != nil {
		return nil, err
	}

	return Parse(text, settings)
}

// Save writes the document to path in its configured encoding. With durable
// set the bytes reach stable storage before Save returns.
func (d *Document) Save(path string, durable bool) error {
	if d.file == nil {
		return ErrClosed
	}

	raw, err := format.EncodeText(d.Bytes(), d.settings.Unicode)
	if err != nil {
		return err
	}

	return flush.WriteFile(path, raw, durable)
}

// Close releases the parsed content. The document must not be used after.
func (d *Document) Close() {
	d.file = nil
}

// Closed reports whether Close has been called.
func (d *Document) Closed() bool {
	return d.file == nil
}

// Settings returns the current toggles.
func (d *Document) Settings() types.Settings {
	return d.settings
}

// SetSetting changes one toggle. Switching multi-key re-parses the current
// content under the new rules so duplicate keys are kept or collapsed.
func (d *Document) SetSetting(which types.Setting, enabled bool) error {
	if d.file == nil {
		return ErrClosed
	}

	next := d.settings.With(which, enabled)
	if which != types.SettingMultiKey || next.MultiKey == d.settings.MultiKey {
		d.settings = next
		return nil
	}

	// Serialize with line breaks intact, whatever the multi-line setting.
	style := d.settings
	style.MultiLine = true
	f, err := ini.LoadSources(loadOptions(next), d.encode(style))
	if err != nil {
		return fmt.Errorf("rebuild for %s: %w", which, err)
	}

	d.file = f
	d.settings = next
	return nil
}

// Bytes renders the document as UTF-8 text.
func (d *Document) Bytes() []byte {
	if d.file == nil {
		return nil
	}
	return d.encode(d.settings)
}

// WriteTo writes the UTF-8 rendering to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}
