//go:build !linux && !freebsd && !darwin && !windows

package flush

import "os"

func fdatasync(f *os.File) error {
	return f.Sync()
}
