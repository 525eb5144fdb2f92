package vec

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

// collect drains an iterator into a slice for comparison.
func collect[T any](t *testing.T, it *Iterator[T]) []T {
	t.Helper()
	var out []T
	for {
		x, err := it.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, x)
	}
}

func Test_Iter_Forward(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, collect(t, v.Iter()))
	require.Equal(t, 3, v.Size(), "borrowed iteration moves nothing out")

	empty := New[int]()
	require.Nil(t, collect(t, empty.Iter()))
}

func Test_ReverseIter_Backward(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	require.Equal(t, []int{3, 2, 1}, collect(t, v.ReverseIter()))
}

func Test_ForEachPtr_MutatesInPlace(t *testing.T) {
	v := FromSlice([]int{1, 2, 3})
	v.ForEachPtr(func(i int, p *int) { *p += i * 10 })
	require.Equal(t, []int{1, 12, 23}, v.ToSlice())
}

func Test_Drain_ConsumesAll(t *testing.T) {
	drops := 0
	v := New(WithDrop(func(int) { drops++ }))
	for i := 1; i <= 3; i++ {
		v.Push(i)
	}

	it := v.Drain()
	require.Equal(t, 0, v.Size(), "the Vec is logically emptied immediately")
	require.Equal(t, 0, v.Cap())

	var got []int
	for {
		x, err := it.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, x)
	}
	require.Equal(t, []int{1, 2, 3}, got)
	require.NoError(t, it.Close())
	require.Zero(t, drops, "fully consumed drain disposes nothing")
}

func Test_Drain_CloseDisposesRemainder(t *testing.T) {
	var dropped []int
	v := New(WithDrop(func(x int) { dropped = append(dropped, x) }))
	for i := 1; i <= 4; i++ {
		v.Push(i)
	}

	it := v.Drain()
	x, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, 1, x)

	require.NoError(t, it.Close())
	require.Equal(t, []int{2, 3, 4}, dropped, "unconsumed remainder disposed in order")

	// Close is idempotent; a second close disposes nothing further.
	require.NoError(t, it.Close())
	require.Equal(t, []int{2, 3, 4}, dropped)

	_, err = it.Next()
	require.Equal(t, io.EOF, err)
}

func Test_Drain_SourceReusable(t *testing.T) {
	v := FromSlice([]int{1, 2})
	it := v.Drain()
	require.NoError(t, it.Close())

	v.Push(9)
	require.Equal(t, []int{9}, v.ToSlice())
}
