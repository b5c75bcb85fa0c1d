package document

import (
	"bytes"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/joshuapare/inikit/pkg/types"
)

const tripleQuote = `"""`

// lineBreaks flattens a value onto one line when multi-line output is off.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// encode renders the document. style supplies the formatting toggles:
// UseSpaces pads the '=' sign and MultiLine decides whether values with line
// breaks are written as """-quoted blocks or flattened onto one line.
func (d *Document) encode(style types.Settings) []byte {
	equal := "="
	if style.UseSpaces {
		equal = " = "
	}

	var buf bytes.Buffer
	first := true
	for _, sec := range d.file.Sections() {
		if isImplicitDefault(sec) {
			continue
		}

		// Put a line between sections
		if !first {
			buf.WriteString(ini.LineBreak)
		}

		writeComment(&buf, sec.Comment)

		// Keys above the first header stay headerless so they read back into
		// the same implicit section.
		if !(first && sec.Name() == ini.DefaultSection) {
			buf.WriteString("[" + sec.Name() + "]" + ini.LineBreak)
		}
		first = false

		for _, key := range sec.Keys() {
			writeComment(&buf, key.Comment)

			name := quoteKey(key.Name())
			values := key.ValueWithShadows()
			if len(values) == 0 {
				values = []string{""}
			}
			for _, v := range values {
				buf.WriteString(name + equal + quoteValue(v, style.MultiLine) + ini.LineBreak)
			}
		}
	}

	return buf.Bytes()
}

// writeComment writes a (possibly multi-line) comment, making sure every
// line starts with a comment marker.
func writeComment(buf *bytes.Buffer, comment string) {
	if comment == "" {
		return
	}
	for _, line := range strings.Split(strings.ReplaceAll(comment, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line[0] != '#' && line[0] != ';' {
			line = "; " + line
		}
		buf.WriteString(line + ini.LineBreak)
	}
}

// keyNeedsQuote reports whether name must be quoted to read back intact.
func keyNeedsQuote(name string) bool {
	if name == "" {
		return false
	}
	return strings.ContainsRune(name, '=') || strings.IndexByte("[#;\"`", name[0]) >= 0
}

// keyQuote picks a quote for name. A quoted name ends at the first closing
// quote, so the quote may not appear inside it. ok is false when none fits.
func keyQuote(name string) (quote string, ok bool) {
	switch {
	case !strings.Contains(name, "`"):
		return "`", true
	case !strings.Contains(name, `"`):
		return `"`, true
	case !strings.Contains(name, tripleQuote) && !strings.HasSuffix(name, `"`):
		return tripleQuote, true
	}
	return "", false
}

// quoteKey protects key names the parser would otherwise split or unquote.
func quoteKey(name string) string {
	if !keyNeedsQuote(name) {
		return name
	}
	if q, ok := keyQuote(name); ok {
		return q + name + q
	}
	return name
}

// writableKey reports whether name reads back unchanged after a save. The
// parser trims key names and renumbers keys named "-".
func writableKey(name string) bool {
	if name == "-" || name != strings.TrimSpace(name) || strings.ContainsAny(name, "\r\n") {
		return false
	}
	if !keyNeedsQuote(name) {
		return true
	}
	_, ok := keyQuote(name)
	return ok
}

// writableSection reports whether name fits on a header line.
func writableSection(name string) bool {
	return !strings.ContainsAny(name, "\r\n")
}

// quoteValue renders a value on one line, or as a quoted block when it spans
// lines and multi-line output is enabled. A block ends at the first line
// holding its quote, so the quote may not appear inside the value; when
// neither quote fits the value is flattened.
//
// Single-line values are """-quoted when the parser would otherwise trim them
// or take their leading quote for a block. The closing quote is the last one
// on the line, so any single-line content fits.
func quoteValue(v string, multiLine bool) string {
	if strings.ContainsAny(v, "\r\n") {
		if multiLine {
			for _, q := range []string{tripleQuote, "`"} {
				if !strings.Contains(v, q) {
					return q + v + q
				}
			}
		}
		v = lineBreaks.Replace(v)
	}
	if v != strings.TrimSpace(v) || strings.HasPrefix(v, "`") || strings.HasPrefix(v, tripleQuote) {
		return tripleQuote + v + tripleQuote
	}
	return v
}
