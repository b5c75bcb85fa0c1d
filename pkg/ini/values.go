package ini

import (
	"errors"
	"fmt"
	"math"

	"github.com/joshuapare/inikit/internal/address"
	"github.com/joshuapare/inikit/internal/document"
	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/internal/table"
	"github.com/joshuapare/inikit/pkg/types"
)

// access validates id and addr, then runs fn on the open document while the
// table is locked. The checks run in a fixed order: id, empty address, open
// state, section and key names.
func (c *Core) access(id, addr string, fn func(doc *document.Document, a address.Address) error) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if addr == "" {
		return types.ErrInvalidAddress.Wrap(errors.New("empty address"))
	}
	return c.files.With(id, func(e table.Entry) error {
		a, err := address.Parse(addr)
		if err != nil {
			return err
		}
		return fn(e.Doc, a)
	})
}

// String returns the value at addr. When the section exists but the key does
// not, the value is "" and the error is ErrKeyNotFound.
func (c *Core) String(id, addr string) (string, error) {
	var out string
	err := c.access(id, addr, func(doc *document.Document, a address.Address) error {
		if doc.SectionSize(a.Section) == -1 {
			return types.ErrSectionNotFound.Wrap(fmt.Errorf("[%s]", a.Section))
		}
		v, ok := doc.Value(a.Section, a.Key)
		if !ok {
			return types.ErrKeyNotFound.Wrap(fmt.Errorf("%s", a))
		}
		out = v
		return nil
	})
	return out, err
}

// Int returns the value at addr converted like C atol: leading whitespace and
// sign, then digits up to the first non-digit. Text with no leading digits
// reads as 0.
func (c *Core) Int(id, addr string) (int, error) {
	s, err := c.String(id, addr)
	if err != nil {
		return 0, err
	}
	v := format.ParseLeadingInt(s)
	switch {
	case v > math.MaxInt:
		return math.MaxInt, nil
	case v < math.MinInt:
		return math.MinInt, nil
	}
	return int(v), nil
}

// Float returns the value at addr converted like C atof.
func (c *Core) Float(id, addr string) (float64, error) {
	s, err := c.String(id, addr)
	if err != nil {
		return 0, err
	}
	return format.ParseLeadingFloat(s), nil
}

// Values returns every value stored under addr. It differs from String only
// for documents with multi-key enabled.
func (c *Core) Values(id, addr string) ([]string, error) {
	var out []string
	err := c.access(id, addr, func(doc *document.Document, a address.Address) error {
		if doc.SectionSize(a.Section) == -1 {
			return types.ErrSectionNotFound.Wrap(fmt.Errorf("[%s]", a.Section))
		}
		if _, ok := doc.Value(a.Section, a.Key); !ok {
			return types.ErrKeyNotFound.Wrap(fmt.Errorf("%s", a))
		}
		out = doc.Values(a.Section, a.Key)
		return nil
	})
	return out, err
}

// SetString stores v at addr, creating the section if needed. With multi-key
// enabled an existing key gains another value instead of being replaced.
func (c *Core) SetString(id, addr, v string) error {
	return c.access(id, addr, func(doc *document.Document, a address.Address) error {
		return wrapSet(a, doc.SetValue(a.Section, a.Key, v))
	})
}

// SetInt stores v at addr in decimal.
func (c *Core) SetInt(id, addr string, v int) error {
	return c.access(id, addr, func(doc *document.Document, a address.Address) error {
		return wrapSet(a, doc.SetInt(a.Section, a.Key, int64(v)))
	})
}

// SetFloat stores v at addr using the shortest text that reads back as v.
func (c *Core) SetFloat(id, addr string, v float64) error {
	return c.access(id, addr, func(doc *document.Document, a address.Address) error {
		return wrapSet(a, doc.SetFloat(a.Section, a.Key, v))
	})
}

// Sections lists the section names of the document under id in file order.
func (c *Core) Sections(id string) ([]string, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	var out []string
	err := c.files.With(id, func(e table.Entry) error {
		out = e.Doc.Sections()
		return nil
	})
	return out, err
}

// Keys lists the key names of section in file order.
func (c *Core) Keys(id, section string) ([]string, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	var out []string
	err := c.files.With(id, func(e table.Entry) error {
		if section == "" {
			return types.ErrInvalidAddress.Wrap(errors.New("empty section"))
		}
		if !e.Doc.HasSection(section) {
			return types.ErrSectionNotFound.Wrap(fmt.Errorf("[%s]", section))
		}
		out = e.Doc.Keys(section)
		return nil
	})
	return out, err
}

// DeleteKey removes the key at addr with all of its values.
func (c *Core) DeleteKey(id, addr string) error {
	return c.access(id, addr, func(doc *document.Document, a address.Address) error {
		if !doc.HasSection(a.Section) {
			return types.ErrSectionNotFound.Wrap(fmt.Errorf("[%s]", a.Section))
		}
		if !doc.DeleteKey(a.Section, a.Key) {
			return types.ErrKeyNotFound.Wrap(fmt.Errorf("%s", a))
		}
		return nil
	})
}

// DeleteSection removes section and every key in it.
func (c *Core) DeleteSection(id, section string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	return c.files.With(id, func(e table.Entry) error {
		if section == "" {
			return types.ErrInvalidAddress.Wrap(errors.New("empty section"))
		}
		if !e.Doc.DeleteSection(section) {
			return types.ErrSectionNotFound.Wrap(fmt.Errorf("[%s]", section))
		}
		return nil
	})
}

func wrapSet(a address.Address, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("set %s: %w", a, err)
}
