// Package bindings exposes a Core through the six flag-multiplexed entry
// points game scripts call.
//
// Each entry point takes a file id, an address (or a path for file
// operations), a flag selecting the operation and, for setters, a value.
// The flag is decoded into a types.Op, the op runs against the Core, and any
// failure is logged and turned into the type's zero value. Nothing but
// plain values crosses this boundary.
package bindings

import (
	"fmt"
	"log/slog"
	"math"
	"runtime/debug"

	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/internal/logger"
	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/joshuapare/inikit/pkg/types"
)

// Plugin serves the entry points. It is safe for concurrent use.
type Plugin struct {
	core *ini.Core
	log  *slog.Logger
}

// New returns a Plugin over core. If log is nil, the plugin logger is used.
func New(core *ini.Core, log *slog.Logger) *Plugin {
	if log == nil {
		log = logger.L
	}
	return &Plugin{core: core, log: log}
}

// Close releases every open document.
func (p *Plugin) Close() {
	p.core.Shutdown()
}

// GetInt runs a file operation or setting query and returns 1 for
// success/true and 0 otherwise. Any other flag reads an integer.
func (p *Plugin) GetInt(id, key string, flag int32) int32 {
	defer p.guard("GetInt", id, key, flag)
	p.log.Debug("GetInt", "id", id, "key", key, "flag", types.Flag(flag).String())

	r, ok := p.call("GetInt", id, key, flag, decodeGetInt(id, key, types.Flag(flag)))
	if !ok {
		return 0
	}
	return clampInt32(r.i)
}

// SetInt changes a document setting for the SET_* flags (value != 0 is
// on) and writes an integer for any other flag.
func (p *Plugin) SetInt(id, key string, flag, value int32) {
	defer p.guard("SetInt", id, key, flag)
	p.log.Debug("SetInt", "id", id, "key", key, "flag", types.Flag(flag).String(), "value", value)

	p.call("SetInt", id, key, flag, decodeSetInt(id, key, types.Flag(flag), int(value)))
}

// GetFloat reads a float. The flag is logged and otherwise ignored.
func (p *Plugin) GetFloat(id, key string, flag int32) float32 {
	defer p.guard("GetFloat", id, key, flag)
	p.log.Debug("GetFloat", "id", id, "key", key, "flag", types.Flag(flag).String())

	r, ok := p.call("GetFloat", id, key, flag, types.OpGetValue{ID: id, Address: key, Kind: types.KindFloat})
	if !ok {
		return 0
	}
	return float32(r.f)
}

// SetFloat writes a float. The flag is logged and otherwise ignored.
func (p *Plugin) SetFloat(id, key string, flag int32, value float32) {
	defer p.guard("SetFloat", id, key, flag)
	p.log.Debug("SetFloat", "id", id, "key", key, "flag", types.Flag(flag).String(), "value", value)

	p.call("SetFloat", id, key, flag, types.OpSetValue{
		ID: id, Address: key, Kind: types.KindFloat, Float: format.Widen(value),
	})
}

// GetString returns the path of an open document for GET_PATH and reads a
// string for any other flag.
func (p *Plugin) GetString(id, key string, flag int32) string {
	defer p.guard("GetString", id, key, flag)
	p.log.Debug("GetString", "id", id, "key", key, "flag", types.Flag(flag).String())

	r, ok := p.call("GetString", id, key, flag, decodeGetString(id, key, types.Flag(flag)))
	if !ok {
		return ""
	}
	return r.s
}

// SetString writes a string. The flag is logged and otherwise ignored.
func (p *Plugin) SetString(id, key string, flag int32, value string) {
	defer p.guard("SetString", id, key, flag)
	p.log.Debug("SetString", "id", id, "key", key, "flag", types.Flag(flag).String(), "value", value)

	p.call("SetString", id, key, flag, types.OpSetValue{
		ID: id, Address: key, Kind: types.KindString, String: value,
	})
}

// call runs one decoded op. Failures are logged and reported as !ok.
func (p *Plugin) call(entry, id, key string, flag int32, op types.Op) (reply, bool) {
	r, err := p.run(op)
	if err != nil {
		p.fail(entry, id, key, flag, err)
		return reply{}, false
	}
	return r, true
}

// guard turns a panic from the document layer into a logged failure; the
// entry point then returns its zero value.
func (p *Plugin) guard(entry, id, key string, flag int32) {
	if r := recover(); r != nil {
		p.log.Error("recovered panic",
			"call", entry, "id", id, "key", key, "flag", types.Flag(flag).String(),
			"panic", fmt.Sprint(r), "stack", string(debug.Stack()))
	}
}

func (p *Plugin) fail(entry, id, key string, flag int32, err error) {
	attrs := []any{"call", entry, "id", id, "key", key, "flag", types.Flag(flag).String(), "err", err}
	if kind, ok := types.KindOf(err); ok {
		attrs = append(attrs, "kind", kind.String())
	}
	p.log.Warn("call failed", attrs...)
}

func clampInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
