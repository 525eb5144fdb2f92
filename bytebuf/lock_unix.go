//go:build linux || freebsd || darwin

package bytebuf

import (
	"golang.org/x/sys/unix"
)

// lockPages pins p's backing pages into RAM so key material cannot be
// swapped out.
func lockPages(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return unix.Mlock(p)
}

// unlockPages releases the pin. The caller scrubs the pages first.
func unlockPages(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return unix.Munlock(p)
}
