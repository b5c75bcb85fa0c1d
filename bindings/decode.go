package bindings

import (
	"github.com/joshuapare/inikit/pkg/types"
)

// decodeGetInt maps a GetInt flag to its op. File operations use the key
// argument as the path for OPEN_FILE, and the id argument as the path for
// CREATE_FILE and DELETE_FILE. Any other flag reads an integer.
func decodeGetInt(id, key string, flag types.Flag) types.Op {
	switch flag {
	case types.FlagOpenFile:
		return types.OpOpenFile{ID: id, Path: key}
	case types.FlagSaveFile:
		return types.OpSaveFile{ID: id}
	case types.FlagCloseFile:
		return types.OpCloseFile{ID: id}
	case types.FlagCreateFile:
		return types.OpCreateFile{Path: id}
	case types.FlagDeleteFile:
		return types.OpDeleteFile{Path: id}
	case types.FlagFileOpened:
		return types.OpQueryOpened{ID: id}
	case types.FlagFileEmpty:
		return types.OpQueryEmpty{ID: id}
	}
	if s, ok := flag.QuerySetting(); ok {
		return types.OpQuerySetting{ID: id, Setting: s}
	}
	return types.OpGetValue{ID: id, Address: key, Kind: types.KindInt}
}

// decodeSetInt maps a SetInt flag to its op. Flags other than the SET_*
// toggles write an integer.
func decodeSetInt(id, key string, flag types.Flag, value int) types.Op {
	if s, ok := flag.UpdateSetting(); ok {
		return types.OpSetSetting{ID: id, Setting: s, Enabled: value != 0}
	}
	return types.OpSetValue{ID: id, Address: key, Kind: types.KindInt, Int: value}
}

// decodeGetString maps a GetString flag to its op.
func decodeGetString(id, key string, flag types.Flag) types.Op {
	if flag == types.FlagGetPath {
		return types.OpQueryPath{ID: id}
	}
	return types.OpGetValue{ID: id, Address: key, Kind: types.KindString}
}
