package document

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/pkg/types"
)

// SectionSize returns the number of keys in section, or -1 when the section
// does not exist. An existing empty section reports 0.
func (d *Document) SectionSize(section string) int {
	if d.file == nil || section == "" {
		return -1
	}
	sec, err := d.file.GetSection(section)
	if err != nil {
		return -1
	}
	return len(sec.KeyStrings())
}

// HasSection reports whether the section exists.
func (d *Document) HasSection(section string) bool {
	return d.SectionSize(section) >= 0
}

// Value returns the value of key in section. With multi-key enabled it is
// the first of the key's values. ok is false when section or key is absent.
func (d *Document) Value(section, key string) (value string, ok bool) {
	k := d.lookup(section, key)
	if k == nil {
		return "", false
	}
	return k.Value(), true
}

// Values returns the values stored under key, in file order. Empty repeats
// of a multi-key are skipped; a key whose only value is empty yields [""].
func (d *Document) Values(section, key string) []string {
	k := d.lookup(section, key)
	if k == nil {
		return nil
	}
	if vals := k.ValueWithShadows(); len(vals) > 0 {
		return vals
	}
	return []string{k.Value()}
}

// SetValue stores value under section/key, creating the section when it is
// missing. In multi-key mode an existing key gains another value instead of
// being replaced.
func (d *Document) SetValue(section, key, value string) error {
	if d.file == nil {
		return ErrClosed
	}
	if section == "" || key == "" {
		return fmt.Errorf("set %q/%q: empty section or key", section, key)
	}
	if !writableSection(section) || !writableKey(key) {
		return types.ErrInvalidAddress.Wrap(fmt.Errorf("set %q/%q: name cannot be stored in an ini file", section, key))
	}

	sec, err := d.file.NewSection(section)
	if err != nil {
		return err
	}
	if _, err := sec.NewKey(key, value); err != nil {
		return fmt.Errorf("set %s/%s: %w", section, key, err)
	}
	return nil
}

// SetInt stores an integer value.
func (d *Document) SetInt(section, key string, v int64) error {
	return d.SetValue(section, key, format.FormatInt(v))
}

// SetFloat stores a floating point value with the shortest exact rendering.
func (d *Document) SetFloat(section, key string, v float64) error {
	return d.SetValue(section, key, format.FormatFloat(v, 64))
}

// DeleteKey removes key (with all its values) from section.
func (d *Document) DeleteKey(section, key string) bool {
	if d.lookup(section, key) == nil {
		return false
	}
	sec, _ := d.file.GetSection(section)
	sec.DeleteKey(key)
	return true
}

// DeleteSection removes section and its keys.
func (d *Document) DeleteSection(section string) bool {
	if !d.HasSection(section) {
		return false
	}
	d.file.DeleteSection(section)
	return true
}

// Sections lists section names in file order. The implicit section holding
// keys that appear before any header is listed only when it has keys.
func (d *Document) Sections() []string {
	if d.file == nil {
		return nil
	}
	var names []string
	for _, sec := range d.file.Sections() {
		if isImplicitDefault(sec) {
			continue
		}
		names = append(names, sec.Name())
	}
	return names
}

// Keys lists the key names of section in file order.
func (d *Document) Keys(section string) []string {
	if !d.HasSection(section) {
		return nil
	}
	sec, _ := d.file.GetSection(section)
	return sec.KeyStrings()
}

// IsEmpty reports whether the document holds no sections and no keys.
func (d *Document) IsEmpty() bool {
	return len(d.Sections()) == 0
}

func (d *Document) lookup(section, key string) *ini.Key {
	if d.file == nil || section == "" || key == "" {
		return nil
	}
	sec, err := d.file.GetSection(section)
	if err != nil {
		return nil
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return nil
	}
	return k
}

// isImplicitDefault matches the DEFAULT section ini.v1 creates for keys
// above the first header, when nothing was put there.
func isImplicitDefault(sec *ini.Section) bool {
	return sec.Name() == ini.DefaultSection && len(sec.KeyStrings()) == 0 && sec.Comment == ""
}
