// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import (
	"os"

	"golang.org/x/sys/unix"
)

// Concurrent sessions append to the same file. Readers take a shared lock.
// Writers take an exclusive lock.
func locked(f *os.File, exclusive bool, fn func() error) error {
	how := unix.LOCK_SH
	if exclusive {
		how = unix.LOCK_EX
	}

	fd := int(f.Fd())

	if err := unix.Flock(fd, how); err != nil {
		return err
	}

	err := fn()

	if uerr := unix.Flock(fd, unix.LOCK_UN); err == nil {
		err = uerr
	}

	return err
}
