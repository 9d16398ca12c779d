// Package uexpr attaches physical-unit metadata to frame expressions so
// arithmetic carries and converts units automatically.
//
// A UExpr is a frame expression tagged with a unit from a units.Registry.
// The tag follows the arithmetic:
//
//   - Add/Sub require dimensionally compatible operands. The result keeps
//     the LEFT operand's unit; the right operand is rescaled to match, so
//     meter + centimeter sums in meters.
//   - Mul/Div compose and simplify units: meter * meter is meter ** 2,
//     meter / second is a velocity.
//   - To inserts a scalar conversion factor and retags: converting meters
//     to centimeters multiplies the values by 100.
//   - Transcendental functions (Log, Exp, ...) demand a dimensionless
//     operand.
//   - Comparisons rescale the right operand and return an untagged boolean
//     expression for filtering.
//
// # Usage
//
//	height, _ := uexpr.Col("height", "meter")
//	offset, _ := uexpr.Col("offset", "meter")
//	sum, _ := height.Add(offset)
//	cm, _ := sum.To("cm")
//	out, _ := df.Select(cm.Alias("total_cm"))
//
// Errors are synchronous and programmer-facing: an unknown unit string
// fails at Col, a dimensional mismatch fails at the offending operation.
// Check them with errors.Is against units.ErrUnknownUnit and
// units.ErrDimensionMismatch.
package uexpr
