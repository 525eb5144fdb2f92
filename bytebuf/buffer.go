package bytebuf

import (
	"fmt"
	"unsafe"

	"github.com/vesselkit/vessel/internal/bounds"
	"github.com/vesselkit/vessel/internal/mem"
	"github.com/vesselkit/vessel/view"
)

// ByteSource is anything exposing a contiguous byte window. Buffer itself
// qualifies, as do bytes.Buffer and similar.
type ByteSource interface {
	Bytes() []byte
}

// Buffer is a growable byte buffer: {buffer, size, capacity} with a one-byte
// stride. The zero value is an empty buffer ready for use.
type Buffer struct {
	buf  []byte // len(buf) is the capacity
	size int
	lock bool // pin backing pages, scrub on release
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithLocked pins the backing pages into RAM (mlock/VirtualLock, best
// effort) and scrubs the old storage on every reallocation and on Free.
// Intended for buffers holding key material; pair with Zero.
func WithLocked() Option {
	return func(b *Buffer) { b.lock = true }
}

// New returns an empty Buffer with no storage allocated.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithCapacity returns an empty Buffer with room for n bytes. Negative n is
// rejected with a typed error.
func WithCapacity(n int, opts ...Option) (*Buffer, error) {
	if err := bounds.CheckCount(n); err != nil {
		return nil, fmt.Errorf("bytebuf: capacity %d: %w", n, err)
	}
	b := New(opts...)
	b.setCap(n)
	return b, nil
}

// MustWithCapacity is WithCapacity, panicking on a negative count.
func MustWithCapacity(n int, opts ...Option) *Buffer {
	b, err := WithCapacity(n, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Filled returns a Buffer of n copies of value.
func Filled(value byte, n int, opts ...Option) (*Buffer, error) {
	b, err := WithCapacity(n, opts...)
	if err != nil {
		return nil, err
	}
	mem.Fill(value, b.buf)
	b.size = n
	return b, nil
}

// FromBytes returns a Buffer holding a copy of p.
func FromBytes(p []byte, opts ...Option) *Buffer {
	b := New(opts...)
	b.setCap(len(p))
	mem.Copy(b.buf, p)
	b.size = len(p)
	return b
}

// FromString returns a Buffer holding a copy of s.
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.setCap(len(s))
	copy(b.buf, s)
	b.size = len(s)
	return b
}

// FromPointer copies n bytes from a raw pointer into a fresh Buffer. The
// pointer must be valid for exactly n bytes for the duration of the call;
// afterwards the Buffer owns its own copy.
func FromPointer(p *byte, n int, opts ...Option) (*Buffer, error) {
	if err := bounds.CheckCount(n); err != nil {
		return nil, fmt.Errorf("bytebuf: from pointer, count %d: %w", n, err)
	}
	if p == nil && n > 0 {
		return nil, fmt.Errorf("bytebuf: from pointer: nil pointer with count %d", n)
	}
	b := New(opts...)
	b.setCap(n)
	if n > 0 {
		mem.Copy(b.buf, unsafe.Slice(p, n))
	}
	b.size = n
	return b, nil
}

// Size returns the number of live bytes.
func (b *Buffer) Size() int { return b.size }

// Cap returns the current capacity in bytes.
func (b *Buffer) Cap() int { return len(b.buf) }

// Bytes returns the live window of the backing storage. The window aliases
// the buffer: it is invalidated by any growth, drain, or Free, and writing
// through it writes the buffer.
func (b *Buffer) Bytes() []byte { return b.buf[:b.size] }

// ToBytes copies the live contents into a fresh slice.
func (b *Buffer) ToBytes() []byte {
	if b.size == 0 {
		return nil
	}
	out := make([]byte, b.size)
	mem.Copy(out, b.buf[:b.size])
	return out
}

// Reserve ensures room for n more bytes, growing to
// max(capacity*2, capacity+n) when the spare capacity is short.
func (b *Buffer) Reserve(n int) {
	if n <= 0 || len(b.buf)-b.size >= n {
		return
	}
	b.setCap(bounds.GrowCap(len(b.buf), n))
}

// ReserveExact ensures room for exactly n more bytes with no doubling
// multiplier.
func (b *Buffer) ReserveExact(n int) {
	if n <= 0 || len(b.buf)-b.size >= n {
		return
	}
	b.setCap(b.size + n)
}

// Push appends one byte.
func (b *Buffer) Push(value byte) {
	b.Reserve(1)
	b.buf[b.size] = value
	b.size++
}

// Pop moves the last byte out to the caller, zeroing its slot.
func (b *Buffer) Pop() (byte, bool) {
	if b.size == 0 {
		return 0, false
	}
	b.size--
	x := b.buf[b.size]
	b.buf[b.size] = 0
	return x, true
}

// Get returns the i-th byte.
func (b *Buffer) Get(i int) (byte, error) {
	if err := bounds.CheckIndex(i, b.size); err != nil {
		return 0, err
	}
	return b.buf[i], nil
}

// At is Get, panicking on an out-of-range index.
func (b *Buffer) At(i int) byte {
	x, err := b.Get(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Set overwrites the i-th byte.
func (b *Buffer) Set(i int, value byte) error {
	if err := bounds.CheckIndex(i, b.size); err != nil {
		return err
	}
	b.buf[i] = value
	return nil
}

// Put is Set, panicking on an out-of-range index.
func (b *Buffer) Put(i int, value byte) {
	if err := b.Set(i, value); err != nil {
		panic(err)
	}
}

// Swap overwrites the i-th byte and returns the previous occupant.
func (b *Buffer) Swap(i int, value byte) (byte, error) {
	if err := bounds.CheckIndex(i, b.size); err != nil {
		return 0, err
	}
	old := b.buf[i]
	b.buf[i] = value
	return old, nil
}

// SwapIndexes exchanges bytes i and j in place.
func (b *Buffer) SwapIndexes(i, j int) error {
	if err := bounds.CheckIndex(i, b.size); err != nil {
		return err
	}
	if err := bounds.CheckIndex(j, b.size); err != nil {
		return err
	}
	b.buf[i], b.buf[j] = b.buf[j], b.buf[i]
	return nil
}

// Insert places value at index i, shifting later bytes right by one. i may
// equal the size.
func (b *Buffer) Insert(i int, value byte) error {
	if err := bounds.CheckInsert(i, b.size); err != nil {
		return err
	}
	b.Reserve(1)
	mem.Copy(b.buf[i+1:b.size+1], b.buf[i:b.size])
	b.buf[i] = value
	b.size++
	return nil
}

// RemoveAt moves the i-th byte out to the caller, shifting later bytes left
// by one.
func (b *Buffer) RemoveAt(i int) (byte, error) {
	if err := bounds.CheckIndex(i, b.size); err != nil {
		return 0, err
	}
	x := b.buf[i]
	mem.Copy(b.buf[i:b.size-1], b.buf[i+1:b.size])
	b.buf[b.size-1] = 0
	b.size--
	return x, nil
}

// Append copies the source's current window into the buffer in a single
// overlap-safe copy. Appending a buffer to itself duplicates its contents.
func (b *Buffer) Append(src ByteSource) {
	if src == nil {
		return
	}
	b.AppendBytes(src.Bytes())
}

// AppendBytes copies p into the buffer in a single overlap-safe copy. p may
// alias the buffer's own storage; self-appends stay correct across the
// reallocation, including for locked buffers whose old storage is scrubbed.
func (b *Buffer) AppendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	n := len(p)
	if off, ok := b.windowOffset(p); ok {
		b.Reserve(n)
		mem.Copy(b.buf[b.size:b.size+n], b.buf[off:off+n])
		b.size += n
		return
	}
	b.Reserve(n)
	mem.Copy(b.buf[b.size:b.size+n], p)
	b.size += n
}

// windowOffset reports where p begins inside the live window, if it does.
func (b *Buffer) windowOffset(p []byte) (int, bool) {
	if b.size == 0 || len(p) == 0 {
		return 0, false
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(b.buf)))
	q := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	if q < base || q >= base+uintptr(b.size) {
		return 0, false
	}
	off := int(q - base)
	if off+len(p) > b.size {
		return 0, false
	}
	return off, true
}

// AppendString copies s into the buffer.
func (b *Buffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	b.Reserve(len(s))
	copy(b.buf[b.size:b.size+len(s)], s)
	b.size += len(s)
}

// Resize sets the live size to n: truncating (and zeroing the cut suffix)
// when shrinking, filling the new trailing space with fill when growing.
func (b *Buffer) Resize(n int, fill byte) error {
	if err := bounds.CheckCount(n); err != nil {
		return fmt.Errorf("bytebuf: resize to %d: %w", n, err)
	}
	switch {
	case n < b.size:
		mem.Fill(0, b.buf[n:b.size])
	case n > b.size:
		b.Reserve(n - b.size)
		mem.Fill(fill, b.buf[b.size:n])
	}
	b.size = n
	return nil
}

// Clear zeroes the live contents and resets the size to 0, retaining
// capacity.
func (b *Buffer) Clear() {
	mem.Fill(0, b.buf[:b.size])
	b.size = 0
}

// Truncate shrinks the buffer to n bytes, zeroing the cut suffix. n at or
// past the size is a no-op.
func (b *Buffer) Truncate(n int) error {
	if err := bounds.CheckCount(n); err != nil {
		return fmt.Errorf("bytebuf: truncate to %d: %w", n, err)
	}
	if n >= b.size {
		return nil
	}
	mem.Fill(0, b.buf[n:b.size])
	b.size = n
	return nil
}

// Zero overwrites the live contents with zero bytes in place, keeping the
// size. Intended for erasing sensitive data such as key material.
func (b *Buffer) Zero() {
	mem.Fill(0, b.buf[:b.size])
}

// Reverse reverses the live bytes in place.
func (b *Buffer) Reverse() {
	for i, j := 0, b.size-1; i < j; i, j = i+1, j-1 {
		b.buf[i], b.buf[j] = b.buf[j], b.buf[i]
	}
}

// ReverseAt reverses the live bytes from offset to the end in place. offset
// may equal the size, reversing nothing.
func (b *Buffer) ReverseAt(offset int) error {
	if err := bounds.CheckInsert(offset, b.size); err != nil {
		return err
	}
	for i, j := offset, b.size-1; i < j; i, j = i+1, j-1 {
		b.buf[i], b.buf[j] = b.buf[j], b.buf[i]
	}
	return nil
}

// Free releases the storage, scrubbing and unpinning it first when the
// buffer is locked. A freed Buffer is empty and may be reused; the storage
// is released exactly once.
func (b *Buffer) Free() {
	b.size = 0
	b.releaseBuf()
}

// Slice returns a non-owning view of [start, end). The view tracks the live
// size on every access.
func (b *Buffer) Slice(start, end int) (view.View[byte], error) {
	return view.Of[byte](b, start, end)
}

// ToPointer exposes the raw storage for native hand-off: a pointer to the
// first byte and the live byte count. The pointer is valid for exactly that
// count and only until the next growth, drain, or Free; the Buffer must not
// be freed while native code still holds the pointer.
func (b *Buffer) ToPointer() (*byte, int) {
	if b.size == 0 {
		return nil, 0
	}
	return unsafe.SliceData(b.buf), b.size
}

// setCap reallocates the backing storage to exactly n bytes, preserving the
// live prefix. Locked buffers pin the new storage and scrub the old.
func (b *Buffer) setCap(n int) {
	if n == len(b.buf) {
		return
	}
	next := mem.Allocate[byte](n)
	if b.lock && len(next) > 0 {
		_ = lockPages(next) // best effort; unsupported platforms are no-ops
	}
	mem.Copy(next, b.buf[:min(b.size, n)])
	b.releaseBuf()
	b.buf = next
}

// releaseBuf scrubs (when locked), unpins, and frees the current storage.
func (b *Buffer) releaseBuf() {
	if b.buf == nil {
		return
	}
	if b.lock {
		mem.Fill(0, b.buf)
		_ = unlockPages(b.buf)
	}
	b.buf = mem.Free(b.buf)
}

// A Buffer must stay viewable.
var _ view.Owner[byte] = (*Buffer)(nil)
