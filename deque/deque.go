package deque

import (
	"fmt"

	"github.com/vesselkit/vessel/internal/bounds"
	"github.com/vesselkit/vessel/internal/mem"
	"github.com/vesselkit/vessel/view"
)

// Deque is a double-ended ring-buffer queue. Invariants: 0 <= size <=
// capacity, and 0 <= head < capacity (head == 0 while capacity == 0).
type Deque[T any] struct {
	buf  []T // len(buf) is the capacity
	size int
	head int
	drop func(T)
}

// Option configures a Deque at construction time.
type Option[T any] func(*Deque[T])

// WithDrop sets the disposal hook invoked exactly once for every element the
// deque disposes of. Elements popped out to the caller are not dropped.
func WithDrop[T any](fn func(T)) Option[T] {
	return func(d *Deque[T]) { d.drop = fn }
}

// New returns an empty Deque with no buffer allocated.
func New[T any](opts ...Option[T]) *Deque[T] {
	d := &Deque[T]{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithCapacity returns an empty Deque with room for n elements. Negative n
// is rejected with a typed error.
func WithCapacity[T any](n int, opts ...Option[T]) (*Deque[T], error) {
	if err := bounds.CheckCount(n); err != nil {
		return nil, fmt.Errorf("deque: capacity %d: %w", n, err)
	}
	d := New(opts...)
	d.buf = mem.Allocate[T](n)
	return d, nil
}

// MustWithCapacity is WithCapacity, panicking on a negative count.
func MustWithCapacity[T any](n int, opts ...Option[T]) *Deque[T] {
	d, err := WithCapacity(n, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Size returns the number of live elements.
func (d *Deque[T]) Size() int { return d.size }

// Cap returns the current capacity.
func (d *Deque[T]) Cap() int { return len(d.buf) }

// PushBack appends value at the logical end.
func (d *Deque[T]) PushBack(value T) {
	d.grow(1)
	d.buf[d.physical(d.size)] = value
	d.size++
}

// PushFront prepends value at the logical start.
func (d *Deque[T]) PushFront(value T) {
	d.grow(1)
	d.head--
	if d.head < 0 {
		d.head += len(d.buf)
	}
	d.buf[d.head] = value
	d.size++
}

// PopFront moves the first element out to the caller, vacating its slot.
func (d *Deque[T]) PopFront() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	x := d.buf[d.head]
	d.buf[d.head] = zero
	d.head++
	if d.head == len(d.buf) {
		d.head = 0
	}
	d.size--
	return x, true
}

// PopBack moves the last element out to the caller, vacating its slot.
func (d *Deque[T]) PopBack() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	d.size--
	i := d.physical(d.size)
	x := d.buf[i]
	d.buf[i] = zero
	return x, true
}

// Front returns the first element without moving it out.
func (d *Deque[T]) Front() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	return d.buf[d.head], true
}

// Back returns the last element without moving it out.
func (d *Deque[T]) Back() (T, bool) {
	var zero T
	if d.size == 0 {
		return zero, false
	}
	return d.buf[d.physical(d.size-1)], true
}

// Get returns the i-th logical element.
func (d *Deque[T]) Get(i int) (T, error) {
	if err := bounds.CheckIndex(i, d.size); err != nil {
		var zero T
		return zero, err
	}
	return d.buf[d.physical(i)], nil
}

// At is Get, panicking on an out-of-range index.
func (d *Deque[T]) At(i int) T {
	x, err := d.Get(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Set overwrites the i-th logical element, disposing of the previous
// occupant.
func (d *Deque[T]) Set(i int, value T) error {
	if err := bounds.CheckIndex(i, d.size); err != nil {
		return err
	}
	p := d.physical(i)
	if d.drop != nil {
		d.drop(d.buf[p])
	}
	d.buf[p] = value
	return nil
}

// Clear pops from the front until empty, disposing of each element in
// logical order. Capacity is retained.
func (d *Deque[T]) Clear() {
	for {
		x, ok := d.PopFront()
		if !ok {
			return
		}
		if d.drop != nil {
			d.drop(x)
		}
	}
}

// Free disposes of every element and releases the buffer. A freed Deque is
// empty and may be reused.
func (d *Deque[T]) Free() {
	d.Clear()
	d.buf = mem.Free(d.buf)
	d.head = 0
}

// ToSlice copies the live elements front to back into a fresh slice.
func (d *Deque[T]) ToSlice() []T {
	if d.size == 0 {
		return nil
	}
	out := make([]T, 0, d.size)
	for i := 0; i < d.size; i++ {
		out = append(out, d.buf[d.physical(i)])
	}
	return out
}

// Slice returns a non-owning view of logical positions [start, end).
func (d *Deque[T]) Slice(start, end int) (view.View[T], error) {
	return view.Of[T](d, start, end)
}

func (d *Deque[T]) physical(i int) int {
	p := d.head + i
	if p >= len(d.buf) {
		p -= len(d.buf)
	}
	return p
}

// grow ensures room for n more elements, then re-linearizes the occupied
// region across the extension.
func (d *Deque[T]) grow(n int) {
	if n <= 0 || len(d.buf)-d.size >= n {
		return
	}
	oldCap := len(d.buf)
	d.buf = mem.Resize(d.buf, bounds.GrowCap(oldCap, n))
	d.handleIncrease(oldCap)
}

// handleIncrease restores the ring invariants after the backing buffer was
// extended at its tail end from oldCap to the current capacity.
func (d *Deque[T]) handleIncrease(oldCap int) {
	if d.size == 0 {
		d.head = 0
		return
	}
	// Occupied region did not wrap past the old end: nothing moves.
	if d.head <= oldCap-d.size {
		return
	}

	headSize := oldCap - d.head // from head to the old end
	tailSize := d.size - headSize
	added := len(d.buf) - oldCap

	if headSize > tailSize && added >= tailSize {
		// Cheap case: move the wrapped tail segment into the fresh space
		// just past the old end. head stays put.
		mem.Copy(d.buf[oldCap:oldCap+tailSize], d.buf[:tailSize])
		mem.Zero(d.buf[:tailSize])
		return
	}

	// Relocate the head-side segment to the new end of the enlarged buffer.
	newHead := len(d.buf) - headSize
	mem.Copy(d.buf[newHead:], d.buf[d.head:oldCap])
	staleEnd := min(oldCap, newHead)
	mem.Zero(d.buf[d.head:staleEnd])
	d.head = newHead
}

// A Deque must stay viewable.
var _ view.Owner[int] = (*Deque[int])(nil)
