package bytebuf

// IndexOf returns the index of the first occurrence of value, or -1.
func (b *Buffer) IndexOf(value byte) int {
	for i := 0; i < b.size; i++ {
		if b.buf[i] == value {
			return i
		}
	}
	return -1
}

// Contains reports whether the live bytes include value.
func (b *Buffer) Contains(value byte) bool {
	return b.IndexOf(value) >= 0
}

// ForEachPtr visits every live byte in order with a pointer into the
// storage, for in-place mutation. fn must not grow, drain, or free the
// buffer during the call.
func (b *Buffer) ForEachPtr(fn func(i int, p *byte)) {
	for i := 0; i < b.size; i++ {
		fn(i, &b.buf[i])
	}
}

// Sort sorts the live bytes ascending in place. Bytes of equal value are
// indistinguishable, so a single counting pass gives the stable result
// without scratch storage proportional to the size.
func (b *Buffer) Sort() {
	if b.size < 2 {
		return
	}
	var counts [256]int
	for _, x := range b.buf[:b.size] {
		counts[x]++
	}
	i := 0
	for value := 0; value < 256; value++ {
		for rangeN6 := 0; rangeN6 < counts[value]; rangeN6++ {
			b.buf[i] = byte(value)
			i++
		}
	}
}
