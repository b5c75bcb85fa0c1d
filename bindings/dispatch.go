package bindings

import (
	"errors"
	"fmt"

	"github.com/joshuapare/inikit/pkg/types"
)

// reply carries whichever result the op produced.
type reply struct {
	i int
	f float64
	s string
}

func boolReply(ok bool) reply {
	if ok {
		return reply{i: 1}
	}
	return reply{}
}

// run applies a single op to the core.
func (p *Plugin) run(op types.Op) (reply, error) {
	c := p.core
	switch op := op.(type) {
	case types.OpOpenFile:
		return boolReply(true), c.Open(op.ID, op.Path)

	case types.OpSaveFile:
		return boolReply(true), c.Save(op.ID)

	case types.OpCloseFile:
		return boolReply(true), c.Close(op.ID)

	case types.OpCreateFile:
		return boolReply(true), c.Create(op.Path)

	case types.OpDeleteFile:
		return boolReply(true), c.Delete(op.Path)

	case types.OpQueryOpened:
		if op.ID == "" {
			return reply{}, types.ErrInvalidID
		}
		return boolReply(c.IsOpen(op.ID)), nil

	case types.OpQueryEmpty:
		empty, err := c.IsEmpty(op.ID)
		return boolReply(empty), err

	case types.OpQueryPath:
		path, err := c.Path(op.ID)
		return reply{s: path}, err

	case types.OpQuerySetting:
		on, err := c.Setting(op.ID, op.Setting)
		return boolReply(on), err

	case types.OpSetSetting:
		return reply{}, c.SetSetting(op.ID, op.Setting, op.Enabled)

	case types.OpGetValue:
		return p.getValue(op)

	case types.OpSetValue:
		return reply{}, p.setValue(op)

	default:
		return reply{}, fmt.Errorf("unknown operation type: %T", op)
	}
}

func (p *Plugin) getValue(op types.OpGetValue) (reply, error) {
	switch op.Kind {
	case types.KindInt:
		v, err := p.core.Int(op.ID, op.Address)
		return reply{i: v}, err
	case types.KindFloat:
		v, err := p.core.Float(op.ID, op.Address)
		return reply{f: v}, err
	case types.KindString:
		v, err := p.core.String(op.ID, op.Address)
		return reply{s: v}, err
	}
	return reply{}, errors.New("unknown value kind")
}

func (p *Plugin) setValue(op types.OpSetValue) error {
	switch op.Kind {
	case types.KindInt:
		return p.core.SetInt(op.ID, op.Address, op.Int)
	case types.KindFloat:
		return p.core.SetFloat(op.ID, op.Address, op.Float)
	case types.KindString:
		return p.core.SetString(op.ID, op.Address, op.String)
	}
	return errors.New("unknown value kind")
}
