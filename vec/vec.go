package vec

import (
	"fmt"
	"unsafe"

	"github.com/vesselkit/vessel/internal/bounds"
	"github.com/vesselkit/vessel/internal/mem"
	"github.com/vesselkit/vessel/view"
)

// Vec is a contiguous growable array. The zero-capacity state keeps a nil
// buffer; buffer and capacity are always nil/0 together.
type Vec[T any] struct {
	buf  []T // len(buf) is the capacity
	size int
	drop func(T)
}

// Option configures a Vec at construction time.
type Option[T any] func(*Vec[T])

// WithDrop sets the disposal hook invoked exactly once for every element the
// container disposes of (Set overwrites, Clear, Truncate, Free, abandoned
// Drain remainders). Elements moved out to the caller are not dropped.
func WithDrop[T any](fn func(T)) Option[T] {
	return func(v *Vec[T]) { v.drop = fn }
}

// New returns an empty Vec with no buffer allocated.
func New[T any](opts ...Option[T]) *Vec[T] {
	v := &Vec[T]{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// WithCapacity returns an empty Vec whose buffer already holds room for n
// elements. Negative n is rejected with a typed error.
func WithCapacity[T any](n int, opts ...Option[T]) (*Vec[T], error) {
	if err := bounds.CheckCount(n); err != nil {
		return nil, fmt.Errorf("vec: capacity %d: %w", n, err)
	}
	v := New(opts...)
	v.buf = mem.Allocate[T](n)
	return v, nil
}

// MustWithCapacity is WithCapacity, panicking on a negative count.
func MustWithCapacity[T any](n int, opts ...Option[T]) *Vec[T] {
	v, err := WithCapacity(n, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Filled returns a Vec of n copies of value.
func Filled[T any](value T, n int, opts ...Option[T]) (*Vec[T], error) {
	v, err := WithCapacity(n, opts...)
	if err != nil {
		return nil, err
	}
	mem.FillValue(value, v.buf)
	v.size = n
	return v, nil
}

// FromSlice returns a Vec holding a copy of s. The Vec owns its copy; later
// mutation of s is not observed.
func FromSlice[T any](s []T, opts ...Option[T]) *Vec[T] {
	v := New(opts...)
	v.buf = mem.Allocate[T](len(s))
	mem.Copy(v.buf, s)
	v.size = len(s)
	return v
}

// Size returns the number of live elements.
func (v *Vec[T]) Size() int { return v.size }

// Cap returns the current capacity.
func (v *Vec[T]) Cap() int { return len(v.buf) }

// Reserve ensures room for n more elements, growing to
// max(capacity*2, capacity+n) when the spare capacity is short.
func (v *Vec[T]) Reserve(n int) {
	if n <= 0 || len(v.buf)-v.size >= n {
		return
	}
	v.buf = mem.Resize(v.buf, bounds.GrowCap(len(v.buf), n))
}

// ReserveExact ensures room for exactly n more elements with no doubling
// multiplier, for callers that know the final size precisely.
func (v *Vec[T]) ReserveExact(n int) {
	if n <= 0 || len(v.buf)-v.size >= n {
		return
	}
	v.buf = mem.Resize(v.buf, v.size+n)
}

// Push appends value, growing amortized.
func (v *Vec[T]) Push(value T) {
	v.Reserve(1)
	v.buf[v.size] = value
	v.size++
}

// Pop moves the last element out to the caller. The vacated slot is zeroed.
func (v *Vec[T]) Pop() (T, bool) {
	if v.size == 0 {
		var zero T
		return zero, false
	}
	v.size--
	x := v.buf[v.size]
	var zero T
	v.buf[v.size] = zero
	return x, true
}

// Get returns the i-th element. The element stays resident; a plain read is
// not a move.
func (v *Vec[T]) Get(i int) (T, error) {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[i], nil
}

// At is Get, panicking on an out-of-range index. For hot paths that have
// already validated i.
func (v *Vec[T]) At(i int) T {
	x, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Set overwrites the i-th element, disposing of the previous occupant.
func (v *Vec[T]) Set(i int, value T) error {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		return err
	}
	v.dispose(v.buf[i])
	v.buf[i] = value
	return nil
}

// Put is Set, panicking on an out-of-range index.
func (v *Vec[T]) Put(i int, value T) {
	if err := v.Set(i, value); err != nil {
		panic(err)
	}
}

// Swap overwrites the i-th element and moves the previous occupant out to the
// caller instead of dropping it.
func (v *Vec[T]) Swap(i int, value T) (T, error) {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		var zero T
		return zero, err
	}
	old := v.buf[i]
	v.buf[i] = value
	return old, nil
}

// SwapIndexes exchanges elements i and j in place.
func (v *Vec[T]) SwapIndexes(i, j int) error {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		return err
	}
	if err := bounds.CheckIndex(j, v.size); err != nil {
		return err
	}
	v.buf[i], v.buf[j] = v.buf[j], v.buf[i]
	return nil
}

// Insert places value at index i, shifting later elements right by one.
// i may equal the size (append position).
func (v *Vec[T]) Insert(i int, value T) error {
	if err := bounds.CheckInsert(i, v.size); err != nil {
		return err
	}
	v.Reserve(1)
	mem.Copy(v.buf[i+1:v.size+1], v.buf[i:v.size])
	// Slot i now duplicates the element that moved to i+1; overwrite without
	// dropping, the element is still resident one slot over.
	v.buf[i] = value
	v.size++
	return nil
}

// RemoveAt moves the i-th element out to the caller, shifting later elements
// left by one.
func (v *Vec[T]) RemoveAt(i int) (T, error) {
	if err := bounds.CheckIndex(i, v.size); err != nil {
		var zero T
		return zero, err
	}
	x := v.buf[i]
	mem.Copy(v.buf[i:v.size-1], v.buf[i+1:v.size])
	var zero T
	v.buf[v.size-1] = zero
	v.size--
	return x, nil
}

// Clear disposes of every live element in order and resets the size to 0.
// Capacity is retained.
func (v *Vec[T]) Clear() {
	for i := 0; i < v.size; i++ {
		v.dispose(v.buf[i])
	}
	mem.Zero(v.buf[:v.size])
	v.size = 0
}

// Truncate shrinks the Vec to n elements, disposing of the cut suffix in
// order. n at or past the size is a no-op.
func (v *Vec[T]) Truncate(n int) error {
	if err := bounds.CheckCount(n); err != nil {
		return fmt.Errorf("vec: truncate to %d: %w", n, err)
	}
	if n >= v.size {
		return nil
	}
	for i := n; i < v.size; i++ {
		v.dispose(v.buf[i])
	}
	mem.Zero(v.buf[n:v.size])
	v.size = n
	return nil
}

// Append moves every element of other into v, then logically empties other
// without disposing of the moved elements a second time. other keeps its
// capacity.
func (v *Vec[T]) Append(other *Vec[T]) {
	if other == nil || other.size == 0 || other == v {
		return
	}
	v.Reserve(other.size)
	mem.Copy(v.buf[v.size:v.size+other.size], other.buf[:other.size])
	v.size += other.size
	// The elements now live in v; vacate other's slots without dropping.
	mem.Zero(other.buf[:other.size])
	other.size = 0
}

// Free disposes of every still-resident element in order and releases the
// buffer. A freed Vec is empty and may be reused; calling Free again is a
// no-op, the buffer is released exactly once.
func (v *Vec[T]) Free() {
	v.Clear()
	v.buf = mem.Free(v.buf)
}

// ToSlice copies the live elements into a fresh slice.
func (v *Vec[T]) ToSlice() []T {
	if v.size == 0 {
		return nil
	}
	out := make([]T, v.size)
	mem.Copy(out, v.buf[:v.size])
	return out
}

// Slice returns a non-owning view of [start, end). The view tracks v's live
// size on every access; it stays safe to query after v shrinks or grows.
func (v *Vec[T]) Slice(start, end int) (view.View[T], error) {
	return view.Of[T](v, start, end)
}

// ToPointer exposes the raw buffer for native hand-off: a pointer to the
// first element and the live element count. The pointer is valid for exactly
// that count, and only until the next growth, move, or Free; the caller
// coordinates lifetime with the Vec's own ownership tracking.
func (v *Vec[T]) ToPointer() (*T, int) {
	if v.size == 0 {
		return nil, 0
	}
	return unsafe.SliceData(v.buf), v.size
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (v *Vec[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < v.size; i++ {
		if pred(v.buf[i]) {
			return i
		}
	}
	return -1
}

// ContainsFunc reports whether any element satisfies pred.
func (v *Vec[T]) ContainsFunc(pred func(T) bool) bool {
	return v.IndexFunc(pred) >= 0
}

// Index returns the index of the first element equal to x, or -1.
func Index[T comparable](v *Vec[T], x T) int {
	return v.IndexFunc(func(e T) bool { return e == x })
}

// Contains reports whether v holds an element equal to x.
func Contains[T comparable](v *Vec[T], x T) bool {
	return Index(v, x) >= 0
}

func (v *Vec[T]) dispose(x T) {
	if v.drop != nil {
		v.drop(x)
	}
}

// A Vec must stay viewable.
var _ view.Owner[int] = (*Vec[int])(nil)
