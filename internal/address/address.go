// Package address encodes and decodes the "section|key" locator game
// scripts use to name a single INI value.
package address

import (
	"fmt"
	"strings"

	"github.com/joshuapare/inikit/pkg/types"
)

// Delimiter separates the section from the key. Only the first occurrence
// counts; later ones belong to the key.
const Delimiter = "|"

// Address locates one value inside a document.
type Address struct {
	Section string
	Key     string
}

// Split divides input at the first Delimiter. Without a delimiter the whole
// input is the section and the key is empty.
func Split(input string) (section, key string) {
	section, key, _ = strings.Cut(input, Delimiter)
	return section, key
}

// Parse splits input and rejects an empty section or key.
func Parse(input string) (Address, error) {
	section, key := Split(input)
	if section == "" || key == "" {
		return Address{}, types.ErrInvalidAddress.Wrap(fmt.Errorf("%q", input))
	}
	return Address{Section: section, Key: key}, nil
}

// String re-encodes the address.
func (a Address) String() string {
	return a.Section + Delimiter + a.Key
}
