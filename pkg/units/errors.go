package units

import (
	"errors"
	"fmt"
)

// Registry and conversion errors. These are returned by the public API and
// can be checked with errors.Is.
var (
	// ErrUnknownUnit is returned when a unit name is not in the registry.
	ErrUnknownUnit = errors.New("units: unknown unit")

	// ErrDuplicateUnit is returned when Define is called for an existing name.
	ErrDuplicateUnit = errors.New("units: unit already defined")

	// ErrDimensionMismatch is returned when an operation requires two units
	// of the same dimension and they differ.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrBadDefinition is returned when a unit definition cannot be parsed.
	ErrBadDefinition = errors.New("units: bad definition")
)

// DimensionalityError reports an operation between dimensionally
// incompatible units. It unwraps to ErrDimensionMismatch.
type DimensionalityError struct {
	From Unit
	To   Unit
	Op   string
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("units: cannot %s %q (%s) and %q (%s): dimension mismatch",
		e.Op, e.From.String(), e.From.Dimension(), e.To.String(), e.To.Dimension())
}

func (e *DimensionalityError) Unwrap() error {
	return ErrDimensionMismatch
}
