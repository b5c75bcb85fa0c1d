//go:build cgo

// Command xp_ini is built with -buildmode=c-shared and loaded by the server
// host. The host calls Init once with its home directory, then the six value
// entry points, then Shutdown.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/joshuapare/inikit/bindings"
)

var (
	mu     sync.Mutex
	plugin *bindings.Plugin
	retBuf *C.char
)

//export Init
func Init(home *C.char) C.int {
	mu.Lock()
	defer mu.Unlock()

	if plugin != nil {
		return 1
	}
	p, err := start(C.GoString(home))
	if err != nil {
		return 0
	}
	plugin = p
	if retBuf == nil {
		retBuf = (*C.char)(C.calloc(returnBufferSize, 1))
	}
	return 1
}

//export Shutdown
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if plugin == nil {
		return
	}
	stop(plugin)
	plugin = nil
}

//export GetInt
func GetInt(id, key *C.char, flag C.int) C.int {
	p := current()
	if p == nil {
		return 0
	}
	return C.int(p.GetInt(C.GoString(id), C.GoString(key), int32(flag)))
}

//export SetInt
func SetInt(id, key *C.char, flag, value C.int) {
	if p := current(); p != nil {
		p.SetInt(C.GoString(id), C.GoString(key), int32(flag), int32(value))
	}
}

//export GetFloat
func GetFloat(id, key *C.char, flag C.int) C.float {
	p := current()
	if p == nil {
		return 0
	}
	return C.float(p.GetFloat(C.GoString(id), C.GoString(key), int32(flag)))
}

//export SetFloat
func SetFloat(id, key *C.char, flag C.int, value C.float) {
	if p := current(); p != nil {
		p.SetFloat(C.GoString(id), C.GoString(key), int32(flag), float32(value))
	}
}

//export GetString
func GetString(id, key *C.char, flag C.int) *C.char {
	p := current()
	if p == nil || retBuf == nil {
		return nil
	}
	s := p.GetString(C.GoString(id), C.GoString(key), int32(flag))

	putCString(unsafe.Slice((*byte)(unsafe.Pointer(retBuf)), returnBufferSize), s)
	return retBuf
}

//export SetString
func SetString(id, key *C.char, flag C.int, value *C.char) {
	if p := current(); p != nil {
		p.SetString(C.GoString(id), C.GoString(key), int32(flag), C.GoString(value))
	}
}

func current() *bindings.Plugin {
	mu.Lock()
	defer mu.Unlock()
	return plugin
}
