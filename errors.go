package vessel

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeCount indicates a negative size or capacity argument.
	ErrNegativeCount = errors.New("vessel: negative count")

	// ErrBadRange indicates a view or sub-slice with start > end.
	ErrBadRange = errors.New("vessel: invalid range")
)

// RangeError reports an index outside a container's live bounds. Size is the
// container's logical size at the time of the access, not its capacity.
type RangeError struct {
	Index int
	Size  int
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("vessel: index %d out of range [0, %d)", e.Index, e.Size)
}

// IsRange reports whether err is (or wraps) a RangeError.
func IsRange(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}
