package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindInvalid  ErrKind = iota // malformed id or address
	ErrKindNotFound                // missing file/section/key
	ErrKindState                   // operation invalid for current state (not open, already exists)
	ErrKindIO                      // load or save failed in the filesystem or parser
)

// String implements the Stringer interface for ErrKind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindInvalid:
		return "invalid"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindState:
		return "state"
	case ErrKindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind and message, so a
// sentinel wrapped with a cause still matches the bare sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of the sentinel carrying cause.
func (e *Error) Wrap(cause error) error {
	return &Error{Kind: e.Kind, Msg: e.Msg, Err: cause}
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// Sentinels commonly returned by implementations.
var (
	// ErrInvalidID indicates an empty file identifier.
	ErrInvalidID = &Error{Kind: ErrKindInvalid, Msg: "file id not specified"}
	// ErrInvalidAddress indicates an empty address, section or key.
	ErrInvalidAddress = &Error{Kind: ErrKindInvalid, Msg: "section or key invalid"}
	// ErrNotOpen indicates an operation on an id with no open document.
	ErrNotOpen = &Error{Kind: ErrKindState, Msg: "file not opened"}
	// ErrFileExists indicates create was asked for a path that already exists.
	ErrFileExists = &Error{Kind: ErrKindState, Msg: "file already exists"}
	// ErrFileNotFound indicates open/delete on a path that does not exist.
	ErrFileNotFound = &Error{Kind: ErrKindNotFound, Msg: "file does not exist"}
	// ErrSectionNotFound indicates a read from a section the document lacks.
	ErrSectionNotFound = &Error{Kind: ErrKindNotFound, Msg: "section not found"}
	// ErrKeyNotFound indicates a read of a key absent from an existing section.
	ErrKeyNotFound = &Error{Kind: ErrKindNotFound, Msg: "key not found"}
	// ErrLoad indicates the document could not be read or parsed.
	ErrLoad = &Error{Kind: ErrKindIO, Msg: "could not load ini file"}
	// ErrSave indicates the document could not be written.
	ErrSave = &Error{Kind: ErrKindIO, Msg: "failed to save file"}
	// ErrCreate indicates a new empty file could not be created.
	ErrCreate = &Error{Kind: ErrKindIO, Msg: "failed to create file"}
	// ErrRemove indicates a file could not be deleted.
	ErrRemove = &Error{Kind: ErrKindIO, Msg: "failed to delete file"}
)

// -----------------------------------------------------------------------------
// Document Settings
// -----------------------------------------------------------------------------

// Setting names one of the per-document boolean toggles.
type Setting int

const (
	SettingUnicode Setting = iota
	SettingMultiKey
	SettingMultiLine
	SettingUseSpaces
)

// String implements the Stringer interface for Setting.
func (s Setting) String() string {
	switch s {
	case SettingUnicode:
		return "unicode"
	case SettingMultiKey:
		return "multikey"
	case SettingMultiLine:
		return "multiline"
	case SettingUseSpaces:
		return "usespaces"
	default:
		return "unknown"
	}
}

// Settings holds the four per-document toggles.
type Settings struct {
	Unicode   bool // file bytes are UTF-8; otherwise Windows-1252
	MultiKey  bool // keep duplicate keys within a section
	MultiLine bool // allow values spanning several lines
	UseSpaces bool // write "key = value" instead of "key=value"
}

// DefaultSettings returns the settings a freshly opened document starts with:
// UTF-8 text, multi-line blocks and "key = value" output, one value per key.
func DefaultSettings() Settings {
	return Settings{Unicode: true, MultiLine: true, UseSpaces: true}
}

// Get returns the value of a single toggle.
func (s Settings) Get(which Setting) bool {
	switch which {
	case SettingUnicode:
		return s.Unicode
	case SettingMultiKey:
		return s.MultiKey
	case SettingMultiLine:
		return s.MultiLine
	case SettingUseSpaces:
		return s.UseSpaces
	}
	return false
}

// With returns a copy of s with one toggle changed.
func (s Settings) With(which Setting, enabled bool) Settings {
	switch which {
	case SettingUnicode:
		s.Unicode = enabled
	case SettingMultiKey:
		s.MultiKey = enabled
	case SettingMultiLine:
		s.MultiLine = enabled
	case SettingUseSpaces:
		s.UseSpaces = enabled
	}
	return s
}
