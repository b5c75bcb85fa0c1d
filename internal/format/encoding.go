package format

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Text encoding for INI files.
//
// A document in unicode mode keeps its bytes as UTF-8. Otherwise the file is
// treated as Windows-1252 (the code page the game tools write) and is
// transcoded to UTF-8 on the way in and back on the way out. Characters the
// code page cannot represent are replaced rather than failing the save.

// utf8BOM is the byte-order mark some editors prepend to UTF-8 files.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText converts raw file bytes to UTF-8.
func DecodeText(raw []byte, unicode bool) ([]byte, error) {
	if unicode {
		return bytes.TrimPrefix(raw, utf8BOM), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return nil, fmt.Errorf("decode windows-1252: %w", err)
	}
	return out, nil
}

// EncodeText converts UTF-8 text to the on-disk representation.
func EncodeText(text []byte, unicode bool) ([]byte, error) {
	if unicode {
		return text, nil
	}
	enc := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())
	out, _, err := transform.Bytes(enc, text)
	if err != nil {
		return nil, fmt.Errorf("encode windows-1252: %w", err)
	}
	return out, nil
}
