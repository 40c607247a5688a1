package metric

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch is matched by every *DimensionMismatchError via errors.Is.
var ErrDimensionMismatch = errors.New("metric: dimension mismatch")

// DimensionMismatchError reports operands of different lengths.
type DimensionMismatchError struct {
	Left  int
	Right int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("metric: wrong dimension: left(%d) != right(%d)", e.Left, e.Right)
}

// Is reports whether target is ErrDimensionMismatch.
func (e *DimensionMismatchError) Is(target error) bool { return target == ErrDimensionMismatch }

// UnsupportedMetricError is returned when a metric, name or token is not registered.
type UnsupportedMetricError struct {
	Name string
}

func (e *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("metric: unsupported metric %q", e.Name)
}
