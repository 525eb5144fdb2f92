package deque

import (
	"io"

	"github.com/vesselkit/vessel/internal/mem"
)

// Iterator walks a Deque front to back or back to front without moving
// elements out. The Deque must not be mutated while an Iterator is live.
type Iterator[T any] struct {
	d    *Deque[T]
	next int
	rev  bool
}

// Iter returns a forward iterator over the live elements.
func (d *Deque[T]) Iter() *Iterator[T] {
	return &Iterator[T]{d: d}
}

// ReverseIter returns a back-to-front iterator over the live elements.
func (d *Deque[T]) ReverseIter() *Iterator[T] {
	return &Iterator[T]{d: d, next: d.size - 1, rev: true}
}

// Next returns the next element, or io.EOF when the iterator is exhausted.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.rev {
		if it.next < 0 {
			return zero, io.EOF
		}
		x := it.d.buf[it.d.physical(it.next)]
		it.next--
		return x, nil
	}
	if it.next >= it.d.size {
		return zero, io.EOF
	}
	x := it.d.buf[it.d.physical(it.next)]
	it.next++
	return x, nil
}

// ForEachPtr visits every live element front to back with a pointer into the
// ring, for in-place mutation. fn must not grow, drain, or free the deque
// during the call.
func (d *Deque[T]) ForEachPtr(fn func(i int, p *T)) {
	for i := 0; i < d.size; i++ {
		fn(i, &d.buf[d.physical(i)])
	}
}

// IndexFunc returns the logical index of the first element satisfying pred,
// or -1.
func (d *Deque[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < d.size; i++ {
		if pred(d.buf[d.physical(i)]) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any element satisfies pred.
func (d *Deque[T]) ContainsFunc(pred func(T) bool) bool {
	return d.IndexFunc(pred) >= 0
}

// Index returns the logical index of the first element equal to x, or -1.
func Index[T comparable](d *Deque[T], x T) int {
	return d.IndexFunc(func(e T) bool { return e == x })
}

// Contains reports whether d holds an element equal to x.
func Contains[T comparable](d *Deque[T], x T) bool {
	return Index(d, x) >= 0
}

// DrainIterator consumes a Deque front to back, yielding owned elements.
// Close disposes of any unconsumed remainder.
type DrainIterator[T any] struct {
	buf  []T
	drop func(T)
	head int
	left int
}

// Drain moves the Deque's contents into a move-out iterator. The Deque is
// logically emptied immediately; its buffer transfers to the iterator, and
// the Deque grows a fresh buffer on the next push.
func (d *Deque[T]) Drain() *DrainIterator[T] {
	it := &DrainIterator[T]{buf: d.buf, drop: d.drop, head: d.head, left: d.size}
	d.buf = nil
	d.size = 0
	d.head = 0
	return it
}

// Next moves the next element out to the caller, vacating its slot, or
// returns io.EOF when the drain is exhausted.
func (it *DrainIterator[T]) Next() (T, error) {
	var zero T
	if it.left == 0 {
		return zero, io.EOF
	}
	x := it.buf[it.head]
	it.buf[it.head] = zero
	it.head++
	if it.head == len(it.buf) {
		it.head = 0
	}
	it.left--
	return x, nil
}

// Close disposes of the unconsumed remainder in order and releases the
// buffer. Close is idempotent and always returns nil.
func (it *DrainIterator[T]) Close() error {
	for it.left > 0 {
		x, err := it.Next()
		if err != nil {
			break
		}
		if it.drop != nil {
			it.drop(x)
		}
	}
	it.buf = mem.Free(it.buf)
	return nil
}
