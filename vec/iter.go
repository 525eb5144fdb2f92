package vec

import (
	"io"

	"github.com/vesselkit/vessel/internal/mem"
)

// Iterator walks a Vec front to back (or back to front) without moving
// elements out. The Vec must not be mutated while an Iterator is live.
type Iterator[T any] struct {
	v    *Vec[T]
	next int
	rev  bool
}

// Iter returns a forward iterator over the live elements.
func (v *Vec[T]) Iter() *Iterator[T] {
	return &Iterator[T]{v: v}
}

// ReverseIter returns a back-to-front iterator over the live elements.
func (v *Vec[T]) ReverseIter() *Iterator[T] {
	return &Iterator[T]{v: v, next: v.size - 1, rev: true}
}

// Next returns the next element, or io.EOF when the iterator is exhausted.
func (it *Iterator[T]) Next() (T, error) {
	var zero T
	if it.rev {
		if it.next < 0 {
			return zero, io.EOF
		}
		x := it.v.buf[it.next]
		it.next--
		return x, nil
	}
	if it.next >= it.v.size {
		return zero, io.EOF
	}
	x := it.v.buf[it.next]
	it.next++
	return x, nil
}

// ForEachPtr visits every live element in order with a pointer into the
// buffer, for in-place mutation. The pointers are valid only for the duration
// of the call; fn must not grow, shrink, or free the Vec.
func (v *Vec[T]) ForEachPtr(fn func(i int, p *T)) {
	for i := 0; i < v.size; i++ {
		fn(i, &v.buf[i])
	}
}

// DrainIterator consumes a Vec, yielding owned elements front to back. Close
// disposes of any elements left unconsumed; an abandoned drain leaks nothing
// once closed.
type DrainIterator[T any] struct {
	buf  []T
	drop func(T)
	next int
	size int
}

// Drain moves the Vec's contents into a move-out iterator. The Vec is
// logically emptied immediately: its buffer transfers to the iterator, so the
// same elements can never be disposed of through the Vec again. The Vec
// itself remains usable and grows a fresh buffer on the next push.
func (v *Vec[T]) Drain() *DrainIterator[T] {
	it := &DrainIterator[T]{buf: v.buf, drop: v.drop, size: v.size}
	v.buf = nil
	v.size = 0
	return it
}

// Next moves the next element out to the caller, vacating its slot, or
// returns io.EOF when the drain is exhausted.
func (it *DrainIterator[T]) Next() (T, error) {
	var zero T
	if it.next >= it.size {
		return zero, io.EOF
	}
	x := it.buf[it.next]
	it.buf[it.next] = zero
	it.next++
	return x, nil
}

// Close disposes of the unconsumed remainder in order and releases the
// buffer. Close is idempotent and always returns nil; the error return
// satisfies io.Closer.
func (it *DrainIterator[T]) Close() error {
	for ; it.next < it.size; it.next++ {
		if it.drop != nil {
			it.drop(it.buf[it.next])
		}
		var zero T
		it.buf[it.next] = zero
	}
	it.size = 0
	it.next = 0
	it.buf = mem.Free(it.buf)
	return nil
}
