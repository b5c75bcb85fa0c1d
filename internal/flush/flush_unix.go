//go:build linux || freebsd

package flush

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// On Linux/FreeBSD, fdatasync() is enough: file size changes are covered.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
