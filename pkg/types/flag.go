package types

import "fmt"

// Flag selects the operation multiplexed onto a call-surface entry point.
// The numeric values are shipped to game scripts and must never change.
type Flag int32

const (
	FlagNone Flag = iota
	FlagOpenFile
	FlagSaveFile
	FlagCloseFile
	FlagCreateFile
	FlagDeleteFile
	FlagFileOpened
	FlagGetUnicode
	FlagSetUnicode
	FlagGetMultiKey
	FlagSetMultiKey
	FlagGetMultiLine
	FlagSetMultiLine
	FlagGetUseSpaces
	FlagSetUseSpaces
	FlagGetPath
	FlagFileEmpty
	FlagInvalid
)

var flagNames = [...]string{
	FlagNone:         "NONE",
	FlagOpenFile:     "OPEN_FILE",
	FlagSaveFile:     "SAVE_FILE",
	FlagCloseFile:    "CLOSE_FILE",
	FlagCreateFile:   "CREATE_FILE",
	FlagDeleteFile:   "DELETE_FILE",
	FlagFileOpened:   "FILE_OPENED",
	FlagGetUnicode:   "GET_UNICODE",
	FlagSetUnicode:   "SET_UNICODE",
	FlagGetMultiKey:  "GET_MULTIKEY",
	FlagSetMultiKey:  "SET_MULTIKEY",
	FlagGetMultiLine: "GET_MULTILINE",
	FlagSetMultiLine: "SET_MULTILINE",
	FlagGetUseSpaces: "GET_USESPACES",
	FlagSetUseSpaces: "SET_USESPACES",
	FlagGetPath:      "GET_PATH",
	FlagFileEmpty:    "FILE_EMPTY",
	FlagInvalid:      "INVALID",
}

// String implements the Stringer interface for Flag.
func (f Flag) String() string {
	if f >= 0 && int(f) < len(flagNames) {
		return flagNames[f]
	}
	return fmt.Sprintf("FLAG_%d", int32(f))
}

// Valid reports whether f is a known flag other than FlagInvalid.
func (f Flag) Valid() bool {
	return f >= FlagNone && f < FlagInvalid
}

// QuerySetting maps a GET_* setting flag to its setting.
func (f Flag) QuerySetting() (Setting, bool) {
	switch f {
	case FlagGetUnicode:
		return SettingUnicode, true
	case FlagGetMultiKey:
		return SettingMultiKey, true
	case FlagGetMultiLine:
		return SettingMultiLine, true
	case FlagGetUseSpaces:
		return SettingUseSpaces, true
	}
	return 0, false
}

// UpdateSetting maps a SET_* setting flag to its setting.
func (f Flag) UpdateSetting() (Setting, bool) {
	switch f {
	case FlagSetUnicode:
		return SettingUnicode, true
	case FlagSetMultiKey:
		return SettingMultiKey, true
	case FlagSetMultiLine:
		return SettingMultiLine, true
	case FlagSetUseSpaces:
		return SettingUseSpaces, true
	}
	return 0, false
}
