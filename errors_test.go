package vessel

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_RangeError_Message(t *testing.T) {
	err := &RangeError{Index: 7, Size: 3}
	require.Equal(t, "vessel: index 7 out of range [0, 3)", err.Error())
}

func Test_IsRange_UnwrapsChains(t *testing.T) {
	base := &RangeError{Index: 1, Size: 0}
	wrapped := fmt.Errorf("outer: %w", base)

	require.True(t, IsRange(base))
	require.True(t, IsRange(wrapped))
	require.False(t, IsRange(errors.New("other")))
	require.False(t, IsRange(ErrNegativeCount))

	var re *RangeError
	require.ErrorAs(t, wrapped, &re)
	require.Equal(t, 1, re.Index)
}
