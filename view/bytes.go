package view

import "io"

// Byte-view operations. These work purely through the owner's byte accessor
// and allocate nothing from the owner's storage.

// IndexByte returns the offset of the first occurrence of c in v, or -1.
func IndexByte(v View[byte], c byte) int {
	n := v.Len()
	for i := 0; i < n; i++ {
		b, err := v.Get(i)
		if err != nil {
			return -1
		}
		if b == c {
			return i
		}
	}
	return -1
}

// Index returns the offset of the first occurrence of needle in v, or -1.
// An empty needle matches at offset 0.
func Index(v View[byte], needle []byte) int {
	if len(needle) == 0 {
		return 0
	}
	n := v.Len()
	for i := 0; i+len(needle) <= n; i++ {
		if matchAt(v, i, needle) {
			return i
		}
	}
	return -1
}

func matchAt(v View[byte], off int, needle []byte) bool {
	for j, want := range needle {
		b, err := v.Get(off + j)
		if err != nil || b != want {
			return false
		}
	}
	return true
}

// TrimLeft returns v narrowed past any leading cut bytes.
func TrimLeft(v View[byte], cut byte) View[byte] {
	i := 0
	for {
		b, err := v.Get(i)
		if err != nil || b != cut {
			break
		}
		i++
	}
	return View[byte]{owner: v.owner, start: v.start + i, end: v.end}
}

// TrimRight returns v narrowed before any trailing cut bytes.
func TrimRight(v View[byte], cut byte) View[byte] {
	n := v.Len()
	for n > 0 {
		b, err := v.Get(n - 1)
		if err != nil || b != cut {
			break
		}
		n--
	}
	return View[byte]{owner: v.owner, start: v.start, end: v.start + n}
}

// Trim returns v narrowed past leading and trailing cut bytes.
func Trim(v View[byte], cut byte) View[byte] {
	return TrimRight(TrimLeft(v, cut), cut)
}

// SplitIterator yields the sep-delimited fields of a byte view as narrower
// views, one per Next call. No owner data is copied.
type SplitIterator struct {
	v    View[byte]
	sep  byte
	next int
	done bool
}

// Split returns an iterator over the sep-delimited fields of v. Adjacent
// separators yield empty fields, matching bytes.Split.
func Split(v View[byte], sep byte) *SplitIterator {
	return &SplitIterator{v: v, sep: sep}
}

// Next returns the next field, or io.EOF when all fields have been yielded.
func (it *SplitIterator) Next() (View[byte], error) {
	if it.done {
		return View[byte]{}, io.EOF
	}
	rest := View[byte]{owner: it.v.owner, start: it.v.start + it.next, end: it.v.end}
	i := IndexByte(rest, it.sep)
	if i < 0 {
		it.done = true
		return rest, nil
	}
	field, err := rest.Sub(0, i)
	if err != nil {
		it.done = true
		return View[byte]{}, io.EOF
	}
	it.next += i + 1
	return field, nil
}
