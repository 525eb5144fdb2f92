// Package mem is the allocator shim shared by the container packages. Every
// operation is expressed in element counts, never bytes; the element stride
// is carried by the type parameter.
//
// Failure policy: growth never returns an error. A request the runtime cannot
// satisfy aborts the process, and a request that is invalid by construction
// (negative count) panics. Containers validate caller-supplied counts before
// they reach this package, so a panic here is a bug in a container, not in
// its caller.
package mem

import (
	"fmt"
	"os"
)

// Debug flag - set to true to enable verbose logging (compile-time toggle).
const debugAlloc = false

// Runtime debug flag for allocation logging - controlled by VESSEL_LOG_ALLOC env var.
var logAlloc = os.Getenv("VESSEL_LOG_ALLOC") != ""

// Allocate returns a zeroed buffer of n elements. n == 0 yields a nil buffer;
// a nil buffer and capacity 0 are the same state.
func Allocate[T any](n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("mem: allocate %d elements", n))
	}
	if n == 0 {
		return nil
	}
	if debugAlloc || logAlloc {
		fmt.Fprintf(os.Stderr, "mem: allocate %d elements\n", n)
	}
	return make([]T, n)
}

// Resize reallocates buf to hold exactly n elements, preserving the common
// prefix. n == 0 yields a nil buffer without error. The returned buffer never
// aliases buf when n differs from len(buf), so callers holding raw pointers
// into buf must re-derive them.
func Resize[T any](buf []T, n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("mem: resize to %d elements", n))
	}
	if n == 0 {
		return nil
	}
	if n == len(buf) {
		return buf
	}
	if debugAlloc || logAlloc {
		fmt.Fprintf(os.Stderr, "mem: resize %d -> %d elements\n", len(buf), n)
	}
	next := make([]T, n)
	copy(next, buf)
	return next
}

// Free releases buf back to the runtime and returns the nil buffer. Callers
// assign the result so the container drops its last reference:
//
//	v.buf = mem.Free(v.buf)
func Free[T any](buf []T) []T {
	if debugAlloc || logAlloc {
		fmt.Fprintf(os.Stderr, "mem: free %d elements\n", len(buf))
	}
	return nil
}

// Copy copies min(len(dst), len(src)) elements from src to dst and returns
// the count. Overlapping ranges within the same buffer are handled correctly;
// insert/remove shifting depends on this.
func Copy[T any](dst, src []T) int {
	return copy(dst, src)
}

// Zero clears every element of p to the zero value, releasing whatever the
// slots referenced.
func Zero[T any](p []T) {
	clear(p)
}

// Fill overwrites every byte of p with b.
func Fill(b byte, p []byte) {
	for i := range p {
		p[i] = b
	}
}

// FillValue overwrites every element of p with v.
func FillValue[T any](v T, p []T) {
	for i := range p {
		p[i] = v
	}
}
