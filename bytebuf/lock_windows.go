//go:build windows

package bytebuf

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// lockPages pins p's backing pages into RAM so key material cannot be
// swapped out.
func lockPages(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return windows.VirtualLock(uintptr(unsafe.Pointer(&p[0])), uintptr(len(p)))
}

// unlockPages releases the pin. The caller scrubs the pages first.
func unlockPages(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	return windows.VirtualUnlock(uintptr(unsafe.Pointer(&p[0])), uintptr(len(p)))
}
