package view

import (
	"fmt"
	"io"

	"github.com/vesselkit/vessel"
)

// Owner is the contract a container must expose to be viewed. Get must be
// bounds-checked against the owner's live size and return a typed error past
// it; a View forwards that guarantee rather than re-implementing it.
type Owner[T any] interface {
	Size() int
	Get(i int) (T, error)
}

// View is a non-owning window [start, end) over an Owner. The zero View is
// empty and safe to query.
type View[T any] struct {
	owner Owner[T]
	start int
	end   int
}

// Of builds a view of owner covering [start, end). start and end are
// positions, not sizes, and may exceed the owner's current size; the live
// length is clamped on every access. start must be non-negative and no
// greater than end.
func Of[T any](owner Owner[T], start, end int) (View[T], error) {
	if start < 0 {
		return View[T]{}, fmt.Errorf("view: start %d: %w", start, vessel.ErrNegativeCount)
	}
	if end < start {
		return View[T]{}, fmt.Errorf("view: [%d, %d): %w", start, end, vessel.ErrBadRange)
	}
	return View[T]{owner: owner, start: start, end: end}, nil
}

// MustOf is Of, panicking on an invalid range.
func MustOf[T any](owner Owner[T], start, end int) View[T] {
	v, err := Of(owner, start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the view's effective length against the owner's current size.
// It is recomputed on every call, never memoized, so a view outlives shrink
// and clear operations on its owner safely.
func (v View[T]) Len() int {
	if v.owner == nil {
		return 0
	}
	end := min(v.end, v.owner.Size())
	if end <= v.start {
		return 0
	}
	return end - v.start
}

// Get returns the i-th element of the view. Indices past the live length
// yield a *vessel.RangeError, never undefined behavior.
func (v View[T]) Get(i int) (T, error) {
	n := v.Len()
	if i < 0 || i >= n {
		var zero T
		return zero, &vessel.RangeError{Index: i, Size: n}
	}
	return v.owner.Get(v.start + i)
}

// At is Get, panicking on an out-of-range index.
func (v View[T]) At(i int) T {
	x, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Sub returns a narrower view. start and end are relative to v and adjust
// the window without touching the owner.
func (v View[T]) Sub(start, end int) (View[T], error) {
	if start < 0 {
		return View[T]{}, fmt.Errorf("view: start %d: %w", start, vessel.ErrNegativeCount)
	}
	if end < start {
		return View[T]{}, fmt.Errorf("view: [%d, %d): %w", start, end, vessel.ErrBadRange)
	}
	return View[T]{owner: v.owner, start: v.start + start, end: min(v.start+end, v.end)}, nil
}

// MustSub is Sub, panicking on an invalid range.
func (v View[T]) MustSub(start, end int) View[T] {
	s, err := v.Sub(start, end)
	if err != nil {
		panic(err)
	}
	return s
}

// ToSlice copies the view's live elements into a fresh slice. This is the
// only allocating operation in the package.
func (v View[T]) ToSlice() []T {
	n := v.Len()
	if n == 0 {
		return nil
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		x, err := v.Get(i)
		if err != nil {
			// Owner shrank mid-copy; the view is simply shorter now.
			break
		}
		out = append(out, x)
	}
	return out
}

// Iterator walks a view front to back, re-checking the owner's live length
// at every step.
type Iterator[T any] struct {
	v    View[T]
	next int
}

// Iter returns a forward iterator over the view.
func (v View[T]) Iter() *Iterator[T] {
	return &Iterator[T]{v: v}
}

// Next returns the next element, or io.EOF when the view (or its owner) is
// exhausted.
func (it *Iterator[T]) Next() (T, error) {
	x, err := it.v.Get(it.next)
	if err != nil {
		var zero T
		return zero, io.EOF
	}
	it.next++
	return x, nil
}
