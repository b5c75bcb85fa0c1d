//go:build windows

package flush

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync performs file sync using FlushFileBuffers.
func fdatasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
