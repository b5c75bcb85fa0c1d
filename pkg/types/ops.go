package types

// ValueKind is the type a plain value access reads or writes.
type ValueKind int

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
)

// String implements the Stringer interface for ValueKind.
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Op is one decoded call-surface operation.
type Op interface{ isOp() }

type OpOpenFile struct {
	ID   string
	Path string
}

func (OpOpenFile) isOp() {}

type OpSaveFile struct {
	ID string
}

func (OpSaveFile) isOp() {}

type OpCloseFile struct {
	ID string
}

func (OpCloseFile) isOp() {}

type OpCreateFile struct {
	Path string
}

func (OpCreateFile) isOp() {}

type OpDeleteFile struct {
	Path string
}

func (OpDeleteFile) isOp() {}

type OpQueryOpened struct {
	ID string
}

func (OpQueryOpened) isOp() {}

type OpQueryEmpty struct {
	ID string
}

func (OpQueryEmpty) isOp() {}

type OpQueryPath struct {
	ID string
}

func (OpQueryPath) isOp() {}

type OpQuerySetting struct {
	ID      string
	Setting Setting
}

func (OpQuerySetting) isOp() {}

type OpSetSetting struct {
	ID      string
	Setting Setting
	Enabled bool
}

func (OpSetSetting) isOp() {}

// OpGetValue reads the value at Address ("section|key") as Kind.
type OpGetValue struct {
	ID      string
	Address string
	Kind    ValueKind
}

func (OpGetValue) isOp() {}

// OpSetValue writes one of Int, Float or String according to Kind.
type OpSetValue struct {
	ID      string
	Address string
	Kind    ValueKind
	Int     int
	Float   float64
	String  string
}

func (OpSetValue) isOp() {}
