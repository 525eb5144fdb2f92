package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Allocate_ZeroYieldsNil(t *testing.T) {
	buf := Allocate[int](0)
	require.Nil(t, buf)

	buf = Allocate[int](4)
	require.Len(t, buf, 4)
	require.Equal(t, []int{0, 0, 0, 0}, buf)
}

func Test_Allocate_NegativePanics(t *testing.T) {
	require.Panics(t, func() { Allocate[int](-1) })
	require.Panics(t, func() { Resize([]int{1}, -1) })
}

func Test_Resize_PreservesPrefix(t *testing.T) {
	buf := []int{1, 2, 3}

	grown := Resize(buf, 6)
	require.Equal(t, []int{1, 2, 3, 0, 0, 0}, grown)

	shrunk := Resize(buf, 2)
	require.Equal(t, []int{1, 2}, shrunk)

	require.Nil(t, Resize(buf, 0))

	// Same size is identity, not a reallocation.
	same := Resize(buf, 3)
	require.Same(t, &buf[0], &same[0])
}

func Test_Copy_OverlappingRanges(t *testing.T) {
	// Shift right by one, the insert pattern.
	buf := []int{1, 2, 3, 4, 0}
	n := Copy(buf[1:5], buf[0:4])
	require.Equal(t, 4, n)
	require.Equal(t, []int{1, 1, 2, 3, 4}, buf)

	// Shift left by one, the remove pattern.
	buf = []int{1, 2, 3, 4, 5}
	Copy(buf[0:4], buf[1:5])
	require.Equal(t, []int{2, 3, 4, 5, 5}, buf)
}

func Test_Zero_ReleasesReferences(t *testing.T) {
	p := []*int{new(int), new(int)}
	Zero(p)
	require.Nil(t, p[0])
	require.Nil(t, p[1])
}

func Test_Fill_Bytes(t *testing.T) {
	p := make([]byte, 4)
	Fill(0xAB, p)
	require.Equal(t, []byte{0xAB, 0xAB, 0xAB, 0xAB}, p)

	q := make([]string, 3)
	FillValue("x", q)
	require.Equal(t, []string{"x", "x", "x"}, q)
}
