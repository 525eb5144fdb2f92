package vec

import (
	"cmp"

	"github.com/vesselkit/vessel/internal/mem"
)

// SortFunc sorts the Vec in place with a stable merge sort. less must be a
// strict weak ordering; equal elements keep their original relative order.
//
// Exactly one scratch buffer sized to the live length is allocated. It is
// populated once by a raw transfer from the live buffer (a bit-copy, not a
// per-element dispose/clone), and the recursion alternates the source and
// destination roles of the two buffers at each level so no further
// allocation happens. The final merged order always lands back in the live
// buffer.
func (v *Vec[T]) SortFunc(less func(a, b T) bool) {
	n := v.size
	if n < 2 {
		return
	}
	scratch := mem.Allocate[T](n)
	mem.Copy(scratch, v.buf[:n])
	mergeInto(scratch, v.buf[:n], less)
	// The scratch slots now hold stale duplicates of live elements; vacate
	// them before handing the buffer back.
	mem.Zero(scratch)
	mem.Free(scratch)
}

// Sort sorts a Vec of ordered elements ascending, stably.
func Sort[T cmp.Ordered](v *Vec[T]) {
	v.SortFunc(func(a, b T) bool { return a < b })
}

// mergeInto sorts src into dst. Precondition: src and dst hold the same
// elements. Each recursion level swaps the roles of the two buffers: the
// halves of src are sorted using dst's halves as their destination, then
// merged back into dst. Runs of length <= 1 need no merging.
func mergeInto[T any](src, dst []T, less func(a, b T) bool) {
	n := len(src)
	if n <= 1 {
		if n == 1 {
			dst[0] = src[0]
		}
		return
	}
	mid := n / 2
	mergeInto(dst[:mid], src[:mid], less)
	mergeInto(dst[mid:], src[mid:], less)
	merge(dst, src[:mid], src[mid:], less)
}

// merge combines two sorted runs into dst. It takes from the left run while
// the left run is non-empty and the right run is exhausted or the left head
// orders at-or-before the right head; the left preference on ties is what
// makes the sort stable.
func merge[T any](dst, left, right []T, less func(a, b T) bool) {
	i, j := 0, 0
	for k := range dst {
		if i < len(left) && (j >= len(right) || !less(right[j], left[i])) {
			dst[k] = left[i]
			i++
		} else {
			dst[k] = right[j]
			j++
		}
	}
}
