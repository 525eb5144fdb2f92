package bytebuf

import (
	"io"
	"unsafe"
)

// DrainString transfers the buffer's ownership into an immutable string with
// no additional allocation: the string reuses the backing storage directly.
// The buffer relinquishes that storage immediately - it is left empty with
// capacity 0 and may be reused, growing fresh storage on the next push.
//
// Locked buffers are the one exception: pinned pages cannot be handed to the
// garbage collector inside a string, so the contents are copied out and the
// pinned storage is scrubbed and released instead.
func (b *Buffer) DrainString() string {
	if b.size == 0 {
		b.releaseBuf()
		return ""
	}
	if b.lock {
		s := string(b.buf[:b.size])
		b.size = 0
		b.releaseBuf()
		return s
	}
	s := unsafe.String(unsafe.SliceData(b.buf), b.size)
	b.buf = nil
	b.size = 0
	return s
}

// String returns a copy of the live contents. The buffer is unchanged; use
// DrainString for the allocation-free hand-off.
func (b *Buffer) String() string {
	return string(b.buf[:b.size])
}

// Iterator walks the live bytes front to back or back to front. The Buffer
// must not be mutated while an Iterator is live.
type Iterator struct {
	b    *Buffer
	next int
	rev  bool
}

// Iter returns a forward iterator over the live bytes.
func (b *Buffer) Iter() *Iterator {
	return &Iterator{b: b}
}

// ReverseIter returns a back-to-front iterator over the live bytes.
func (b *Buffer) ReverseIter() *Iterator {
	return &Iterator{b: b, next: b.size - 1, rev: true}
}

// Next returns the next byte, or io.EOF when the iterator is exhausted.
func (it *Iterator) Next() (byte, error) {
	if it.rev {
		if it.next < 0 {
			return 0, io.EOF
		}
		x := it.b.buf[it.next]
		it.next--
		return x, nil
	}
	if it.next >= it.b.size {
		return 0, io.EOF
	}
	x := it.b.buf[it.next]
	it.next++
	return x, nil
}
