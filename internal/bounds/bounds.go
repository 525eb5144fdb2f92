// Package bounds contains overflow-safe index and capacity arithmetic for
// the container packages.
package bounds

import (
	"math"

	"github.com/vesselkit/vessel"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. Only non-negative operands occur in capacity math, so
// negative inputs are treated as overflow.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// CheckIndex validates a read/write index against a container's live size.
func CheckIndex(i, size int) error {
	if i < 0 || i >= size {
		return &vessel.RangeError{Index: i, Size: size}
	}
	return nil
}

// CheckInsert validates an insertion index, which may equal size (append
// position).
func CheckInsert(i, size int) error {
	if i < 0 || i > size {
		return &vessel.RangeError{Index: i, Size: size}
	}
	return nil
}

// CheckCount validates a caller-supplied size or capacity argument.
func CheckCount(n int) error {
	if n < 0 {
		return vessel.ErrNegativeCount
	}
	return nil
}

// GrowCap computes the amortized-doubling target capacity for a buffer of
// capacity cur that needs room for need more elements:
//
//	max(cur*2, cur+need)
//
// The result saturates at math.MaxInt instead of wrapping; an allocation of
// that size aborts the process long before the arithmetic matters.
func GrowCap(cur, need int) int {
	doubled, ok := MulOverflowSafe(cur, 2)
	if !ok {
		return math.MaxInt
	}
	sum, ok := AddOverflowSafe(cur, need)
	if !ok {
		return math.MaxInt
	}
	return max(doubled, sum)
}
