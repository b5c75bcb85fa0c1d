//go:build darwin

package flush

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync performs file descriptor sync.
//
// macOS has no fdatasync, and fsync does not flush the drive cache.
// F_FULLFSYNC does.
func fdatasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
