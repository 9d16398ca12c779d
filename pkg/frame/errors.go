package frame

import "errors"

// Frame errors are returned by the public API and can be checked with
// errors.Is.
var (
	// ErrColumnNotFound is returned when an expression references a column
	// that is not in the frame.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrDuplicateColumn is returned when a frame is built with two columns
	// of the same name.
	ErrDuplicateColumn = errors.New("frame: duplicate column")

	// ErrLengthMismatch is returned when series of different lengths are
	// combined into one frame.
	ErrLengthMismatch = errors.New("frame: length mismatch")

	// ErrNotNumeric is returned when a numeric expression evaluates over a
	// non-numeric column.
	ErrNotNumeric = errors.New("frame: column is not numeric")

	// ErrNotBoolean is returned when Filter is given a non-boolean
	// expression.
	ErrNotBoolean = errors.New("frame: predicate is not boolean")

	// ErrEmptyColumn is returned by aggregations over zero rows.
	ErrEmptyColumn = errors.New("frame: empty column")
)
