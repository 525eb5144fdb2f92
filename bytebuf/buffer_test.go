package bytebuf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vesselkit/vessel"
)

func Test_WithCapacity_CapacityAndSize(t *testing.T) {
	for _, n := range []int{0, 1, 64, 4096} {
		b, err := WithCapacity(n)
		require.NoError(t, err)
		require.Equal(t, n, b.Cap())
		require.Equal(t, 0, b.Size())
	}

	_, err := WithCapacity(-1)
	require.ErrorIs(t, err, vessel.ErrNegativeCount)
	require.Panics(t, func() { MustWithCapacity(-1) })
}

func Test_FromBytes_RoundTrip(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	b := FromBytes(payload)
	require.Equal(t, payload, b.ToBytes())

	// The buffer owns its copy.
	payload[0] = 0
	require.Equal(t, byte(0xDE), b.At(0))

	require.Nil(t, FromBytes(nil).ToBytes())
}

func Test_FromString_And_String(t *testing.T) {
	b := FromString("hello")
	require.Equal(t, "hello", b.String())
	require.Equal(t, 5, b.Size())
}

func Test_Filled_RepeatsByte(t *testing.T) {
	b, err := Filled(0xAA, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xAA, 0xAA}, b.ToBytes())
}

func Test_PushPop_LIFO(t *testing.T) {
	b := New()
	b.Push(1)
	b.Push(2)

	x, ok := b.Pop()
	require.True(t, ok)
	require.Equal(t, byte(2), x)
	require.Equal(t, 1, b.Size())

	b.Pop()
	_, ok = b.Pop()
	require.False(t, ok)
}

func Test_GetSetSwap_Bounds(t *testing.T) {
	b := FromBytes([]byte{10, 20, 30})

	x, err := b.Get(2)
	require.NoError(t, err)
	require.Equal(t, byte(30), x)

	_, err = b.Get(3)
	var re *vessel.RangeError
	require.ErrorAs(t, err, &re)
	require.Equal(t, 3, re.Index)

	require.NoError(t, b.Set(0, 11))
	require.Equal(t, byte(11), b.At(0))
	require.Panics(t, func() { b.At(3) })
	require.Panics(t, func() { b.Put(3, 0) })

	old, err := b.Swap(1, 21)
	require.NoError(t, err)
	require.Equal(t, byte(20), old)
	require.Equal(t, byte(21), b.At(1))

	require.NoError(t, b.SwapIndexes(0, 2))
	require.Equal(t, []byte{30, 21, 11}, b.ToBytes())
}

func Test_InsertRemove_ShiftSemantics(t *testing.T) {
	b := FromBytes([]byte{1, 2, 4})
	require.NoError(t, b.Insert(2, 3))
	require.Equal(t, []byte{1, 2, 3, 4}, b.ToBytes())

	x, err := b.RemoveAt(0)
	require.NoError(t, err)
	require.Equal(t, byte(1), x)
	require.Equal(t, []byte{2, 3, 4}, b.ToBytes())

	require.Error(t, b.Insert(5, 0))
	_, err = b.RemoveAt(3)
	require.True(t, vessel.IsRange(err))
}

func Test_Append_SingleCopySources(t *testing.T) {
	b := FromString("head")
	b.AppendBytes([]byte("+body"))
	require.Equal(t, "head+body", b.String())

	b.AppendString("!")
	require.Equal(t, "head+body!", b.String())

	other := FromString("??")
	b.Append(other)
	require.Equal(t, "head+body!??", b.String())
	require.Equal(t, 2, other.Size(), "append copies, the source keeps its bytes")

	b.Append(nil)
	require.Equal(t, "head+body!??", b.String())
}

func Test_Append_SelfAliasing(t *testing.T) {
	b := FromString("abc")
	b.Append(b)
	require.Equal(t, "abcabc", b.String())

	// Self-append through the live window, forcing reallocation mid-append.
	c := FromString("xy")
	c.AppendBytes(c.Bytes())
	require.Equal(t, "xyxy", c.String())

	// Locked storage is scrubbed on reallocation; aliasing must still work.
	l := FromString("secret", WithLocked())
	l.Append(l)
	require.Equal(t, "secretsecret", l.String())
	l.Free()
}

func Test_Resize_TruncateAndFill(t *testing.T) {
	b := FromBytes([]byte{1, 2, 3})

	require.NoError(t, b.Resize(5, 0xFF))
	require.Equal(t, []byte{1, 2, 3, 0xFF, 0xFF}, b.ToBytes())

	require.NoError(t, b.Resize(2, 0))
	require.Equal(t, []byte{1, 2}, b.ToBytes())

	// The cut suffix was scrubbed; growing again exposes zeros, not stale data.
	require.NoError(t, b.Resize(3, 0))
	require.Equal(t, []byte{1, 2, 0}, b.ToBytes())

	require.ErrorIs(t, b.Resize(-1, 0), vessel.ErrNegativeCount)
}

func Test_Zero_ErasesInPlace(t *testing.T) {
	b := FromBytes([]byte("key material"))
	n := b.Size()
	b.Zero()
	require.Equal(t, n, b.Size(), "Zero keeps the size")
	require.Equal(t, make([]byte, n), b.ToBytes())
}

func Test_Reverse_InPlace(t *testing.T) {
	b := FromBytes([]byte{1, 2, 3, 4})
	b.Reverse()
	require.Equal(t, []byte{4, 3, 2, 1}, b.ToBytes())

	empty := New()
	empty.Reverse() // no-op, no panic
	require.Equal(t, 0, empty.Size())
}

func Test_ReverseAt_SuffixOnly(t *testing.T) {
	b := FromBytes([]byte{1, 2, 3, 4, 5})
	require.NoError(t, b.ReverseAt(2))
	require.Equal(t, []byte{1, 2, 5, 4, 3}, b.ToBytes())

	require.NoError(t, b.ReverseAt(5), "offset at size reverses nothing")
	require.Error(t, b.ReverseAt(6))
	require.Error(t, b.ReverseAt(-1))
}

func Test_ClearTruncate_ScrubAndKeepCapacity(t *testing.T) {
	b := FromBytes([]byte{9, 9, 9, 9})
	capBefore := b.Cap()

	require.NoError(t, b.Truncate(2))
	require.Equal(t, []byte{9, 9}, b.ToBytes())

	b.Clear()
	require.Equal(t, 0, b.Size())
	require.Equal(t, capBefore, b.Cap())
}

func Test_Reserve_Doubling(t *testing.T) {
	b := MustWithCapacity(4)
	for rangeN0 := 0; rangeN0 < 4; rangeN0++ {
		b.Push(0)
	}
	b.Reserve(1)
	require.Equal(t, 8, b.Cap())

	b.ReserveExact(10)
	require.Equal(t, 14, b.Cap(), "size 4 + exactly 10")
}

func Test_Pointer_RoundTrip(t *testing.T) {
	src := FromBytes([]byte{1, 2, 3})
	p, n := src.ToPointer()
	require.NotNil(t, p)
	require.Equal(t, 3, n)

	dst, err := FromPointer(p, n)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, dst.ToBytes())

	// The copy is independent of the source buffer.
	src.Put(0, 9)
	require.Equal(t, byte(1), dst.At(0))

	empty := New()
	p, n = empty.ToPointer()
	require.Nil(t, p)
	require.Zero(t, n)

	_, err = FromPointer(nil, 0)
	require.NoError(t, err)
	_, err = FromPointer(nil, 3)
	require.Error(t, err)
	_, err = FromPointer(p, -1)
	require.ErrorIs(t, err, vessel.ErrNegativeCount)
}

func Test_Free_ReleasesExactlyOnce(t *testing.T) {
	b := FromString("data")
	b.Free()
	require.Equal(t, 0, b.Size())
	require.Equal(t, 0, b.Cap())

	b.Free() // idempotent
	b.Push('x')
	require.Equal(t, "x", b.String())
}

func Test_Locked_OperationsStillWork(t *testing.T) {
	// Page locking is best effort (it can fail under RLIMIT_MEMLOCK); the
	// buffer semantics must hold regardless.
	b := New(WithLocked())
	b.AppendString("0123456789")
	require.Equal(t, "0123456789", b.String())

	for i := 10; i < 100; i++ {
		b.Push(byte(i))
	}
	require.Equal(t, byte(99), b.At(99))

	b.Zero()
	require.Equal(t, 100, b.Size())
	require.Equal(t, byte(0), b.At(0))

	b.Free()
	require.Equal(t, 0, b.Cap())
}
