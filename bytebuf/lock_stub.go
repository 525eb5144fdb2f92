//go:build !linux && !freebsd && !darwin && !windows

package bytebuf

// Page locking is unsupported on this platform; locked buffers still scrub
// their storage on release.

func lockPages(_ []byte) error { return nil }

func unlockPages(_ []byte) error { return nil }
